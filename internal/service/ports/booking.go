package ports

import (
	"context"

	"github.com/CheesyTech/booking/internal/domain"
)

// BookingRepo is the storage port. Create and UpdateSlot take an optional
// conflict query to check inside the write transaction; nil skips the check.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, conflict *domain.ConflictQuery) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateSlot(ctx context.Context, b *domain.Booking, conflict *domain.ConflictQuery) error
	UpdateStatus(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	ExistsConflicting(ctx context.Context, q domain.ConflictQuery) (bool, error)
	ListByResource(ctx context.Context, ref domain.Ref, statuses []string) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, ref domain.Ref) ([]*domain.Booking, error)
	ListLongerThan(ctx context.Context, minutes int) ([]*domain.Booking, error)
	CompleteFinished(ctx context.Context, from, to string) ([]*domain.Booking, error)
}
