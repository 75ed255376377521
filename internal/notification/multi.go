package notification

import (
	"context"

	"github.com/CheesyTech/booking/internal/domain"
	"github.com/CheesyTech/booking/internal/service/ports"
)

// Multi fans every event out to each sink in order.
type Multi []ports.BookingNotifier

func (m Multi) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, b)
	}
}

func (m Multi) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingUpdated(ctx, b)
	}
}

func (m Multi) NotifyBookingDeleted(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingDeleted(ctx, b)
	}
}

func (m Multi) NotifyStatusChanged(ctx context.Context, b *domain.Booking, newStatus domain.BookingStatus) {
	for _, n := range m {
		n.NotifyStatusChanged(ctx, b, newStatus)
	}
}
