package domain

import (
	"fmt"
	"time"
)

// Ref identifies a bookable resource or a booking party by type tag and id,
// without owning the referenced record.
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (r Ref) IsZero() bool {
	return r.Type == "" || r.ID == ""
}

func (r Ref) String() string {
	return r.Type + "/" + r.ID
}

type Booking struct {
	ID              string          `json:"id"`
	ResourceRef     Ref             `json:"resource_ref"`
	RequesterRef    Ref             `json:"requester_ref"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	Status          string          `json:"status"`
	StatusChangedAt time.Time       `json:"status_changed_at"`
	StatusHistory   []BookingStatus `json:"status_history,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (b *Booking) HasStatus(status string) bool {
	return b.Status == status
}

// Duration reports the slot length in whole minutes.
func (b *Booking) Duration() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}

// CurrentStatus builds a snapshot of the live status. Reason and metadata
// are only kept on history entries, never on the live record.
func (b *Booking) CurrentStatus() BookingStatus {
	return BookingStatus{
		Status:    b.Status,
		ChangedAt: b.StatusChangedAt,
	}
}

type CreateBookingInput struct {
	ResourceRef  Ref
	RequesterRef Ref
	StartTime    time.Time
	EndTime      time.Time
	Status       string
}

// ValidateTimeSlot checks the slot shape: both bounds present and the end
// strictly after the start.
func ValidateTimeSlot(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidSlot)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidSlot)
	}
	return nil
}
