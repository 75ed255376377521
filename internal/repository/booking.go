package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CheesyTech/booking/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, resource_type, resource_id, requester_type, requester_id,
			start_time, end_time, status, status_changed_at, status_history, created_at, updated_at`

// durationMinutesExpr is the Postgres expression for a booking's length in
// minutes.
const durationMinutesExpr = `EXTRACT(EPOCH FROM (end_time - start_time)) / 60`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking. A non-nil conflict query runs inside the same
// transaction behind a per-resource advisory lock, so the conflict check and
// the insert cannot interleave with a concurrent writer on that resource.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, conflict *domain.ConflictQuery) error {
	history, err := domain.EncodeStatusHistory(b.StatusHistory)
	if err != nil {
		return fmt.Errorf("encode status history: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if conflict != nil {
		if err := guardConflicts(ctx, tx, *conflict); err != nil {
			return err
		}
	}

	query := `INSERT INTO bookings (id, resource_type, resource_id, requester_type, requester_id,
				start_time, end_time, status, status_changed_at, status_history, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ResourceRef.Type, b.ResourceRef.ID,
		b.RequesterRef.Type, b.RequesterRef.ID,
		b.StartTime, b.EndTime, b.Status, b.StatusChangedAt,
		history, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

// UpdateSlot moves the booking to a new time window, rechecking conflicts
// atomically with the update when a conflict query is given.
func (r *BookingRepository) UpdateSlot(ctx context.Context, b *domain.Booking, conflict *domain.ConflictQuery) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if conflict != nil {
		if err := guardConflicts(ctx, tx, *conflict); err != nil {
			return err
		}
	}

	query := `UPDATE bookings
			  SET start_time = $2, end_time = $3, updated_at = $4
			  WHERE id = $1`
	res, err := tx.ExecContext(ctx, query, b.ID, b.StartTime, b.EndTime, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update booking slot: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateStatus persists a status transition in one commit: status, its
// changed-at stamp and the grown history together.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking) error {
	history, err := domain.EncodeStatusHistory(b.StatusHistory)
	if err != nil {
		return fmt.Errorf("encode status history: %w", err)
	}

	query := `UPDATE bookings
			  SET status = $2, status_changed_at = $3, status_history = $4, updated_at = $5
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Status, b.StatusChangedAt, history, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	return requireAffected(res)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return requireAffected(res)
}

// ExistsConflicting answers the standalone availability probe. Writers do
// not rely on it: Create and UpdateSlot run the same probe inside their own
// transaction via guardConflicts.
func (r *BookingRepository) ExistsConflicting(ctx context.Context, q domain.ConflictQuery) (bool, error) {
	query, args := conflictSQL(q)

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return false, fmt.Errorf("check conflicting bookings: %w", err)
	}

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan conflict existence: %w", err)
	}

	return exists, nil
}

// conflictSQL is the SQL translation of domain.ConflictQuery.Matches:
// closed-interval comparison against the gap-widened candidate window,
// scoped to one resource ref.
func conflictSQL(q domain.ConflictQuery) (string, []any) {
	gap := time.Duration(q.GapMinutes) * time.Minute

	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE resource_type = $1 AND resource_id = $2
				  AND start_time <= $3 AND end_time >= $4`
	args := []any{q.Resource.Type, q.Resource.ID, q.End.Add(gap), q.Start.Add(-gap)}

	if q.ExcludeID != "" {
		args = append(args, q.ExcludeID)
		query += fmt.Sprintf(" AND id != $%d", len(args))
	}
	if q.ExcludeRequester != nil {
		args = append(args, q.ExcludeRequester.Type, q.ExcludeRequester.ID)
		query += fmt.Sprintf(" AND NOT (requester_type = $%d AND requester_id = $%d)", len(args)-1, len(args))
	}
	query += ")"

	return query, args
}

// guardConflicts serializes writers on one resource with an advisory lock
// held until the transaction ends, then probes for a conflicting booking.
// Without the lock two concurrent writers could both pass the probe and
// commit overlapping slots.
func guardConflicts(ctx context.Context, tx *sql.Tx, q domain.ConflictQuery) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, q.Resource.String()); err != nil {
		return fmt.Errorf("lock resource: %w", err)
	}

	query, args := conflictSQL(q)
	var exists bool
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return fmt.Errorf("check conflicting bookings: %w", err)
	}
	if exists {
		return domain.ErrOverlapConflict
	}

	return nil
}

func (r *BookingRepository) ListByResource(ctx context.Context, ref domain.Ref, statuses []string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE resource_type = $1 AND resource_id = $2`
	args := []any{ref.Type, ref.ID}

	if len(statuses) > 0 {
		args = append(args, pq.Array(statuses))
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}
	query += " ORDER BY start_time"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings by resource: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByRequester(ctx context.Context, ref domain.Ref) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE requester_type = $1 AND requester_id = $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ref.Type, ref.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by requester: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListLongerThan(ctx context.Context, minutes int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE ` + durationMinutesExpr + ` > $1
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, minutes)
	if err != nil {
		return nil, fmt.Errorf("list bookings by duration: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// CompleteFinished sweeps bookings in the from status whose slot has ended
// into the to status, appending the superseded status to the history in the
// same statement.
func (r *BookingRepository) CompleteFinished(ctx context.Context, from, to string) ([]*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2,
		    status_history = COALESCE(status_history, '[]'::jsonb) || jsonb_build_array(
		        jsonb_build_object(
		            'status', status,
		            'changed_at', to_char(status_changed_at AT TIME ZONE 'UTC', 'YYYY-MM-DD HH24:MI:SS')
		        )
		    ),
		    status_changed_at = NOW(),
		    updated_at = NOW()
		WHERE status = $1 AND end_time < NOW()
		RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("complete finished bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var history []byte
	if err := row.Scan(
		&b.ID, &b.ResourceRef.Type, &b.ResourceRef.ID,
		&b.RequesterRef.Type, &b.RequesterRef.ID,
		&b.StartTime, &b.EndTime, &b.Status, &b.StatusChangedAt,
		&history, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	decoded, err := domain.DecodeStatusHistory(history)
	if err != nil {
		return nil, err
	}
	b.StatusHistory = decoded

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
