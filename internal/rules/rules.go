package rules

import (
	"fmt"
	"time"

	"github.com/CheesyTech/booking/internal/config"
	"github.com/CheesyTech/booking/internal/domain"
)

// Rule is a pluggable predicate constraining valid slots beyond basic
// interval conflict detection.
type Rule interface {
	Validate(b *domain.Booking, start, end time.Time) bool
	ErrorMessage() string
}

// Factory builds a rule instance from its configured parameters.
type Factory func(cfg config.RuleConfig) (Rule, error)

// Registry maps stable rule names to factories. Custom rules register under
// their own name; configured names without a registration fail to resolve.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry preloaded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("business_hours", func(cfg config.RuleConfig) (Rule, error) {
		return NewBusinessHoursRule(cfg.Start, cfg.End, cfg.Timezone)
	})
	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

func (r *Registry) Resolve(name string, cfg config.RuleConfig) (Rule, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, name)
	}
	return f(cfg)
}
