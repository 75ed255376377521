package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/CheesyTech/booking/internal/config"
	"github.com/CheesyTech/booking/internal/domain"
	"github.com/CheesyTech/booking/internal/rules"
	"github.com/CheesyTech/booking/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// BookingService owns slot validation, overlap detection and the status
// state machine. Slot writes hand the repository a conflict query so the
// check commits atomically with the write; notifications fire after the
// commit.
type BookingService struct {
	repo     ports.BookingRepo
	notifier ports.BookingNotifier
	registry *rules.Registry
	cfg      config.BookingConfig
	logger   logger.Logger
	now      func() time.Time
}

func NewBookingService(
	repo ports.BookingRepo,
	notifier ports.BookingNotifier,
	registry *rules.Registry,
	cfg config.BookingConfig,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		notifier: notifier,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.ResourceRef.IsZero() {
		return nil, fmt.Errorf("%w: resource reference is required", domain.ErrValidation)
	}
	if input.RequesterRef.IsZero() {
		return nil, fmt.Errorf("%w: requester reference is required", domain.ErrValidation)
	}
	if err := domain.ValidateTimeSlot(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = s.cfg.InitialStatus()
	}
	if !s.cfg.StatusAllowed(status) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}

	now := s.now().UTC()
	b := &domain.Booking{
		ID:              uuid.New().String(),
		ResourceRef:     input.ResourceRef,
		RequesterRef:    input.RequesterRef,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Status:          status,
		StatusChangedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	conflict, err := s.conflictGuard(b, b.StartTime, b.EndTime, "")
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b, conflict); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", b.ID),
		logger.String("resource", b.ResourceRef.String()),
		logger.String("requester", b.RequesterRef.String()),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b)

	return b, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) UpdateSlot(ctx context.Context, id string, start, end time.Time) (*domain.Booking, error) {
	if err := domain.ValidateTimeSlot(start, end); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	conflict, err := s.conflictGuard(b, start, end, b.ID)
	if err != nil {
		return nil, err
	}

	b.StartTime = start
	b.EndTime = end
	b.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateSlot(ctx, b, conflict); err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}

	s.logger.Info("booking slot updated",
		logger.String("booking_id", b.ID),
		logger.String("resource", b.ResourceRef.String()),
	)

	go s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), b)

	return b, nil
}

// ChangeStatus moves the booking to a new status, snapshotting the
// superseded one into the history. The whole mutation persists in a single
// update.
func (s *BookingService) ChangeStatus(ctx context.Context, id, status, reason string, metadata map[string]any) (*domain.Booking, error) {
	newStatus, err := domain.NewBookingStatus(status, reason, s.now().UTC(), metadata, s.cfg.AllowedStatuses())
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if s.cfg.EnforceTransitions && b.Status != "" && !s.cfg.CanTransition(b.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrTransitionNotAllowed, b.Status, status)
	}

	if b.Status != "" {
		b.StatusHistory = append(b.StatusHistory, domain.BookingStatus{
			Status:    b.Status,
			ChangedAt: b.StatusChangedAt,
		})
	}

	b.Status = newStatus.Status
	b.StatusChangedAt = newStatus.ChangedAt
	b.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateStatus(ctx, b); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("status", b.Status),
	)

	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), b, newStatus)

	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted",
		logger.String("booking_id", b.ID),
		logger.String("resource", b.ResourceRef.String()),
	)

	go s.notifier.NotifyBookingDeleted(context.WithoutCancel(ctx), b)

	return nil
}

// HasOverlap decides whether the candidate window conflicts with existing
// bookings on the same resource. A true result is the normal business
// answer; duration and rule violations abort with an error instead.
func (s *BookingService) HasOverlap(ctx context.Context, b *domain.Booking, start, end time.Time, excludeID string) (bool, error) {
	q, err := s.conflictGuard(b, start, end, excludeID)
	if err != nil {
		return false, err
	}
	if q == nil {
		return false, nil
	}

	exists, err := s.repo.ExistsConflicting(ctx, *q)
	if err != nil {
		return false, fmt.Errorf("check conflicts: %w", err)
	}

	return exists, nil
}

// conflictGuard validates duration and business rules for the candidate
// window and builds the conflict query the repository checks atomically
// with the write. Nil means overlap validation is disabled.
func (s *BookingService) conflictGuard(b *domain.Booking, start, end time.Time, excludeID string) (*domain.ConflictQuery, error) {
	if !s.cfg.Overlap.Enabled {
		return nil, nil
	}

	if max := s.cfg.Overlap.MaxDuration; max > 0 {
		if int(end.Sub(start)/time.Minute) > max {
			return nil, fmt.Errorf("%w: booking duration cannot exceed %d minutes", domain.ErrDurationExceeded, max)
		}
	}

	for _, name := range s.enabledRuleNames() {
		rule, err := s.registry.Resolve(name, s.cfg.Rules[name])
		if err != nil {
			return nil, err
		}
		if !rule.Validate(b, start, end) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRuleViolation, rule.ErrorMessage())
		}
	}

	q := &domain.ConflictQuery{
		Resource:   b.ResourceRef,
		Start:      start,
		End:        end,
		ExcludeID:  excludeID,
		GapMinutes: s.cfg.Overlap.MinTimeBetween,
	}
	if s.cfg.Overlap.AllowSameBooker {
		requester := b.RequesterRef
		q.ExcludeRequester = &requester
	}

	return q, nil
}

func (s *BookingService) GetCurrentStatus(ctx context.Context, id string) (domain.BookingStatus, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.BookingStatus{}, fmt.Errorf("get booking: %w", err)
	}
	return b.CurrentStatus(), nil
}

func (s *BookingService) GetStatusHistory(ctx context.Context, id string) ([]domain.BookingStatus, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b.StatusHistory, nil
}

func (s *BookingService) ListByResource(ctx context.Context, ref domain.Ref, statuses []string) ([]*domain.Booking, error) {
	for _, status := range statuses {
		if !s.cfg.StatusAllowed(status) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
		}
	}
	return s.repo.ListByResource(ctx, ref, statuses)
}

func (s *BookingService) ListByRequester(ctx context.Context, ref domain.Ref) ([]*domain.Booking, error) {
	return s.repo.ListByRequester(ctx, ref)
}

func (s *BookingService) ListLongerThan(ctx context.Context, minutes int) ([]*domain.Booking, error) {
	if minutes < 0 {
		return nil, fmt.Errorf("%w: minutes must not be negative", domain.ErrValidation)
	}
	return s.repo.ListLongerThan(ctx, minutes)
}

// CompleteFinished moves confirmed bookings whose slot has ended to
// completed. A no-op when either status is missing from the configured set.
func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Booking, error) {
	if !s.cfg.StatusAllowed(domain.StatusConfirmed) || !s.cfg.StatusAllowed(domain.StatusCompleted) {
		return nil, nil
	}

	completed, err := s.repo.CompleteFinished(ctx, domain.StatusConfirmed, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished bookings completed",
			logger.Int("count", len(completed)),
		)

		go s.notifyCompleted(context.WithoutCancel(ctx), completed)
	}

	return completed, nil
}

func (s *BookingService) notifyCompleted(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.NotifyStatusChanged(ctx, b, b.CurrentStatus())
	}
}

// enabledRuleNames returns the enabled custom rule names sorted so rule
// evaluation order is stable.
func (s *BookingService) enabledRuleNames() []string {
	names := make([]string, 0, len(s.cfg.Rules))
	for name, rc := range s.cfg.Rules {
		if rc.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
