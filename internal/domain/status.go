package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Default status tags shipped in the default configuration.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// StatusTimeLayout is the persisted representation of a status change
// timestamp: seconds resolution, no zone suffix.
const StatusTimeLayout = "2006-01-02 15:04:05"

// BookingStatus is an immutable snapshot of a booking status at a point
// in time.
type BookingStatus struct {
	Status    string         `json:"status"`
	Reason    string         `json:"reason,omitempty"`
	ChangedAt time.Time      `json:"changed_at"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewBookingStatus builds a status snapshot, validating the tag against the
// configured allowed set. A zero changedAt defaults to the current time.
// The timestamp is normalized to UTC: the persisted record carries no zone,
// so the stored wall clock and the parsed instant must agree.
func NewBookingStatus(status, reason string, changedAt time.Time, metadata map[string]any, allowed []string) (BookingStatus, error) {
	if !statusIn(status, allowed) {
		return BookingStatus{}, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if changedAt.IsZero() {
		changedAt = time.Now()
	}

	return BookingStatus{
		Status:    status,
		Reason:    reason,
		ChangedAt: changedAt.UTC().Truncate(time.Second),
		Metadata:  metadata,
	}, nil
}

// ToRecord flattens the snapshot into the persisted record shape.
func (s BookingStatus) ToRecord() map[string]any {
	rec := map[string]any{
		"status":     s.Status,
		"changed_at": s.ChangedAt.UTC().Format(StatusTimeLayout),
	}
	if s.Reason != "" {
		rec["reason"] = s.Reason
	}
	if s.Metadata != nil {
		rec["metadata"] = s.Metadata
	}
	return rec
}

// StatusFromRecord decodes a persisted status record. The status key is
// required; an absent changed_at defaults to now.
func StatusFromRecord(rec map[string]any) (BookingStatus, error) {
	status, ok := rec["status"].(string)
	if !ok || status == "" {
		return BookingStatus{}, fmt.Errorf("%w: status", ErrMissingField)
	}

	s := BookingStatus{Status: status}

	if reason, ok := rec["reason"].(string); ok {
		s.Reason = reason
	}
	if metadata, ok := rec["metadata"].(map[string]any); ok {
		s.Metadata = metadata
	}

	if raw, ok := rec["changed_at"].(string); ok {
		changedAt, err := time.Parse(StatusTimeLayout, raw)
		if err != nil {
			return BookingStatus{}, fmt.Errorf("%w: changed_at: %s", ErrValidation, raw)
		}
		s.ChangedAt = changedAt
	} else {
		s.ChangedAt = time.Now().UTC().Truncate(time.Second)
	}

	return s, nil
}

// EncodeStatusHistory serializes a history to the JSON array stored in the
// status_history column.
func EncodeStatusHistory(history []BookingStatus) ([]byte, error) {
	records := make([]map[string]any, 0, len(history))
	for _, s := range history {
		records = append(records, s.ToRecord())
	}
	return json.Marshal(records)
}

// DecodeStatusHistory is the inverse of EncodeStatusHistory. Empty input
// yields an empty history.
func DecodeStatusHistory(data []byte) ([]BookingStatus, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode status history: %w", err)
	}

	history := make([]BookingStatus, 0, len(records))
	for _, rec := range records {
		s, err := StatusFromRecord(rec)
		if err != nil {
			return nil, err
		}
		history = append(history, s)
	}

	return history, nil
}

func statusIn(status string, allowed []string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}
