package dto

import (
	"time"

	"github.com/CheesyTech/booking/internal/domain"
)

type BookingResponse struct {
	ID              string `json:"id"`
	ResourceType    string `json:"resource_type"`
	ResourceID      string `json:"resource_id"`
	RequesterType   string `json:"requester_type"`
	RequesterID     string `json:"requester_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Status          string `json:"status"`
	StatusChangedAt string `json:"status_changed_at"`
	CreatedAt       string `json:"created_at"`
}

type StatusResponse struct {
	Status    string         `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	ChangedAt string         `json:"changed_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ResourceType:    b.ResourceRef.Type,
		ResourceID:      b.ResourceRef.ID,
		RequesterType:   b.RequesterRef.Type,
		RequesterID:     b.RequesterRef.ID,
		StartTime:       b.StartTime.Format(time.RFC3339),
		EndTime:         b.EndTime.Format(time.RFC3339),
		Status:          b.Status,
		StatusChangedAt: b.StatusChangedAt.Format(time.RFC3339),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToStatusResponse(s domain.BookingStatus) StatusResponse {
	return StatusResponse{
		Status:    s.Status,
		Reason:    s.Reason,
		ChangedAt: s.ChangedAt.Format(domain.StatusTimeLayout),
		Metadata:  s.Metadata,
	}
}
