package domain

import "time"

// ConflictQuery describes a search for bookings conflicting with a candidate
// slot on the same resource.
type ConflictQuery struct {
	Resource  Ref
	Start     time.Time
	End       time.Time
	ExcludeID string
	// ExcludeRequester, when set, drops bookings made by the same party
	// from the conflict set (allow_same_booker).
	ExcludeRequester *Ref
	// GapMinutes widens the candidate window on both sides, so bookings
	// within the gap conflict even without raw interval intersection.
	GapMinutes int
}

// Matches reports whether an existing booking conflicts with the candidate
// window. Intervals are closed on both ends: slots with exactly touching
// boundaries conflict. The repository's SQL predicate mirrors this.
func (q ConflictQuery) Matches(b *Booking) bool {
	if b.ResourceRef != q.Resource {
		return false
	}
	if q.ExcludeID != "" && b.ID == q.ExcludeID {
		return false
	}
	if q.ExcludeRequester != nil && b.RequesterRef == *q.ExcludeRequester {
		return false
	}

	gap := time.Duration(q.GapMinutes) * time.Minute
	return !b.StartTime.After(q.End.Add(gap)) && !b.EndTime.Before(q.Start.Add(-gap))
}
