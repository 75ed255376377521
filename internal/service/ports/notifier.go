package ports

import (
	"context"

	"github.com/CheesyTech/booking/internal/domain"
)

// BookingNotifier receives booking lifecycle events. Delivery is
// best-effort and always happens after the repository commit.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingUpdated(ctx context.Context, b *domain.Booking)
	NotifyBookingDeleted(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, newStatus domain.BookingStatus)
}
