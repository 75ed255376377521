package rules

import (
	"fmt"
	"time"

	"github.com/CheesyTech/booking/internal/domain"
)

const clockLayout = "15:04"

// BusinessHoursRule constrains slots to a time-of-day window in a given
// timezone. Both slot bounds must fall inside the window on their own
// calendar day; the bounds of the window itself are inclusive.
type BusinessHoursRule struct {
	start string
	end   string
	zone  string
	loc   *time.Location

	open  time.Duration
	close time.Duration
}

func NewBusinessHoursRule(start, end, timezone string) (*BusinessHoursRule, error) {
	if start == "" {
		start = "09:00"
	}
	if end == "" {
		end = "18:00"
	}
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q", domain.ErrValidation, timezone)
	}

	open, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	close, err := parseClock(end)
	if err != nil {
		return nil, err
	}

	return &BusinessHoursRule{
		start: start,
		end:   end,
		zone:  timezone,
		loc:   loc,
		open:  open,
		close: close,
	}, nil
}

func (r *BusinessHoursRule) Validate(_ *domain.Booking, start, end time.Time) bool {
	return r.within(start) && r.within(end)
}

func (r *BusinessHoursRule) ErrorMessage() string {
	return fmt.Sprintf("bookings are only allowed between %s and %s %s", r.start, r.end, r.zone)
}

func (r *BusinessHoursRule) within(t time.Time) bool {
	local := t.In(r.loc)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second
	return sinceMidnight >= r.open && sinceMidnight <= r.close
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: time of day %q, expected HH:MM", domain.ErrValidation, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
