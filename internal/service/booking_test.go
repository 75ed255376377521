package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CheesyTech/booking/internal/config"
	"github.com/CheesyTech/booking/internal/domain"
	"github.com/CheesyTech/booking/internal/rules"
	"github.com/CheesyTech/booking/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func defaultBookingCfg() config.BookingConfig {
	return config.BookingConfig{
		Statuses: config.DefaultStatuses(),
		Overlap:  config.OverlapConfig{Enabled: true},
	}
}

func newTestService(t *testing.T, cfg config.BookingConfig) (*BookingService, *mocks.MockBookingRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewBookingService(repo, notifier, rules.NewRegistry(), cfg, newTestLogger(t))
	return svc, repo, notifier
}

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		ResourceRef:  domain.Ref{Type: "room", ID: "101"},
		RequesterRef: domain.Ref{Type: "user", ID: "u1"},
		StartTime:    time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	b, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "room/101", b.ResourceRef.String())
	assert.False(t, b.StatusChangedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_ExplicitStatus(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	input := validInput()
	input.Status = domain.StatusConfirmed

	b, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	input := validInput()
	input.Status = "archived"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_Create_MissingResourceRef(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	input := validInput()
	input.ResourceRef = domain.Ref{}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_EndBeforeStart(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	input := validInput()
	input.StartTime, input.EndTime = input.EndTime, input.StartTime

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}

func TestBookingService_Create_Conflict(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrOverlapConflict)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlapConflict)
}

func TestBookingService_Create_ConflictQueryReachesWrite(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	var captured *domain.ConflictQuery
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, conflict *domain.ConflictQuery) {
			captured = conflict
		}).
		Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	input := validInput()
	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	// The check travels with the write so the repository can run both in
	// one transaction.
	require.NotNil(t, captured)
	assert.Equal(t, input.ResourceRef, captured.Resource)
	assert.Equal(t, input.StartTime, captured.Start)
	assert.Equal(t, input.EndTime, captured.End)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_OverlapDisabled(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Overlap.Enabled = false
	svc, repo, notifier := newTestService(t, cfg)

	// A nil conflict query tells the repository to skip the check.
	repo.EXPECT().Create(mock.Anything, mock.Anything, (*domain.ConflictQuery)(nil)).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	_, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_DurationExceeded(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Overlap.MaxDuration = 30
	svc, _, _ := newTestService(t, cfg)

	_, err := svc.Create(context.Background(), validInput()) // 60 minutes

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDurationExceeded)
}

func TestBookingService_Create_MinTimeBetweenWidensQuery(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Overlap.MinTimeBetween = 15
	svc, repo, notifier := newTestService(t, cfg)

	var captured *domain.ConflictQuery
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, conflict *domain.ConflictQuery) {
			captured = conflict
		}).
		Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	input := validInput()
	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, 15, captured.GapMinutes)
	assert.Equal(t, input.ResourceRef, captured.Resource)
	assert.Empty(t, captured.ExcludeID)
	assert.Nil(t, captured.ExcludeRequester)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_AllowSameBooker(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Overlap.AllowSameBooker = true
	svc, repo, notifier := newTestService(t, cfg)

	var captured *domain.ConflictQuery
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, conflict *domain.ConflictQuery) {
			captured = conflict
		}).
		Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	input := validInput()
	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, captured)
	require.NotNil(t, captured.ExcludeRequester)
	assert.Equal(t, input.RequesterRef, *captured.ExcludeRequester)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_RuleViolation(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Rules = map[string]config.RuleConfig{
		"business_hours": {Enabled: true, Start: "09:00", End: "18:00", Timezone: "UTC"},
	}
	svc, _, _ := newTestService(t, cfg)

	input := validInput()
	input.StartTime = time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	input.EndTime = time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRuleViolation)
}

func TestBookingService_Create_UnknownRule(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Rules = map[string]config.RuleConfig{
		"lunar_calendar": {Enabled: true},
	}
	svc, _, _ := newTestService(t, cfg)

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestBookingService_HasOverlap(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	b := &domain.Booking{
		ResourceRef:  domain.Ref{Type: "room", ID: "101"},
		RequesterRef: domain.Ref{Type: "user", ID: "u1"},
	}
	repo.EXPECT().ExistsConflicting(mock.Anything, mock.Anything).Return(true, nil)

	overlap, err := svc.HasOverlap(context.Background(), b,
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		"",
	)

	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestBookingService_HasOverlap_Disabled(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Overlap.Enabled = false
	svc, repo, _ := newTestService(t, cfg)

	overlap, err := svc.HasOverlap(context.Background(), &domain.Booking{},
		time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		"",
	)

	require.NoError(t, err)
	assert.False(t, overlap)
	assert.Empty(t, repo.Calls)
}

func TestBookingService_UpdateSlot_ExcludesSelf(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	existing := &domain.Booking{
		ID:           "b1",
		ResourceRef:  domain.Ref{Type: "room", ID: "101"},
		RequesterRef: domain.Ref{Type: "user", ID: "u1"},
		StartTime:    time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
	}

	var captured *domain.ConflictQuery
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	repo.EXPECT().UpdateSlot(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.Booking, conflict *domain.ConflictQuery) {
			captured = conflict
		}).
		Return(nil)
	notifier.EXPECT().NotifyBookingUpdated(mock.Anything, mock.Anything).Return()

	newStart := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	newEnd := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	b, err := svc.UpdateSlot(context.Background(), "b1", newStart, newEnd)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "b1", captured.ExcludeID)
	assert.Equal(t, newStart, b.StartTime)
	assert.Equal(t, newEnd, b.EndTime)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateSlot_Conflict(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	existing := &domain.Booking{
		ID:          "b1",
		ResourceRef: domain.Ref{Type: "room", ID: "101"},
		StartTime:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	repo.EXPECT().UpdateSlot(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrOverlapConflict)

	_, err := svc.UpdateSlot(context.Background(), "b1",
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlapConflict)
}

func TestBookingService_UpdateSlot_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.UpdateSlot(context.Background(), "missing",
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ChangeStatus_AppendsHistory(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	changedAt := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	existing := &domain.Booking{
		ID:              "b1",
		Status:          domain.StatusPending,
		StatusChangedAt: changedAt,
	}

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return()

	b, err := svc.ChangeStatus(context.Background(), "b1", domain.StatusConfirmed, "paid", map[string]any{"tx": "42"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	require.Len(t, b.StatusHistory, 1)
	assert.Equal(t, domain.StatusPending, b.StatusHistory[0].Status)
	assert.Equal(t, changedAt, b.StatusHistory[0].ChangedAt)
	// The superseded snapshot never carries the new change's reason.
	assert.Empty(t, b.StatusHistory[0].Reason)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_EmptyPriorStatus(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	repo.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1"}, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return()

	b, err := svc.ChangeStatus(context.Background(), "b1", domain.StatusPending, "", nil)

	require.NoError(t, err)
	assert.Empty(t, b.StatusHistory)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	_, err := svc.ChangeStatus(context.Background(), "b1", "archived", "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ChangeStatus_TransitionBlocked(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.EnforceTransitions = true
	svc, repo, _ := newTestService(t, cfg)

	existing := &domain.Booking{ID: "b1", Status: domain.StatusCancelled}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)

	_, err := svc.ChangeStatus(context.Background(), "b1", domain.StatusConfirmed, "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
}

func TestBookingService_ChangeStatus_TransitionAllowed(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.EnforceTransitions = true
	svc, repo, notifier := newTestService(t, cfg)

	existing := &domain.Booking{ID: "b1", Status: domain.StatusPending}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return()

	b, err := svc.ChangeStatus(context.Background(), "b1", domain.StatusConfirmed, "", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, b.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ChangeStatus_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.ChangeStatus(context.Background(), "missing", domain.StatusConfirmed, "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete_Success(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	existing := &domain.Booking{ID: "b1", ResourceRef: domain.Ref{Type: "room", ID: "101"}}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	repo.EXPECT().Delete(mock.Anything, "b1").Return(nil)
	notifier.EXPECT().NotifyBookingDeleted(mock.Anything, existing).Return()

	err := svc.Delete(context.Background(), "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_GetCurrentStatus_DropsReason(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	changedAt := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	existing := &domain.Booking{
		ID:              "b1",
		Status:          domain.StatusConfirmed,
		StatusChangedAt: changedAt,
		StatusHistory: []domain.BookingStatus{
			{Status: domain.StatusPending, Reason: "created", ChangedAt: changedAt.Add(-time.Hour)},
		},
	}
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)

	status, err := svc.GetCurrentStatus(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, status.Status)
	assert.Equal(t, changedAt, status.ChangedAt)
	assert.Empty(t, status.Reason)
	assert.Nil(t, status.Metadata)
}

func TestBookingService_CompleteFinished_Success(t *testing.T) {
	svc, repo, notifier := newTestService(t, defaultBookingCfg())

	completed := []*domain.Booking{
		{ID: "b1", Status: domain.StatusCompleted},
		{ID: "b2", Status: domain.StatusCompleted},
	}

	repo.EXPECT().CompleteFinished(mock.Anything, domain.StatusConfirmed, domain.StatusCompleted).
		Return(completed, nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, mock.Anything).Return().Times(2)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_CompleteFinished_NoneFinished(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().CompleteFinished(mock.Anything, domain.StatusConfirmed, domain.StatusCompleted).
		Return(nil, nil)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_CompleteFinished_StatusNotConfigured(t *testing.T) {
	cfg := defaultBookingCfg()
	cfg.Statuses = []config.StatusConfig{
		{Name: "pending"},
		{Name: "confirmed"},
	}
	svc, _, _ := newTestService(t, cfg)

	result, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_CompleteFinished_RepoError(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	repo.EXPECT().CompleteFinished(mock.Anything, domain.StatusConfirmed, domain.StatusCompleted).
		Return(nil, errors.New("db error"))

	_, err := svc.CompleteFinished(context.Background())

	require.Error(t, err)
}

func TestBookingService_ListByResource(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	ref := domain.Ref{Type: "room", ID: "101"}
	bookings := []*domain.Booking{{ID: "b1", ResourceRef: ref}}
	repo.EXPECT().ListByResource(mock.Anything, ref, []string(nil)).Return(bookings, nil)

	result, err := svc.ListByResource(context.Background(), ref, nil)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListByResource_StatusFilter(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	ref := domain.Ref{Type: "room", ID: "101"}
	statuses := []string{domain.StatusConfirmed, domain.StatusPending}
	repo.EXPECT().ListByResource(mock.Anything, ref, statuses).Return(nil, nil)

	_, err := svc.ListByResource(context.Background(), ref, statuses)

	require.NoError(t, err)
}

func TestBookingService_ListByResource_UnknownStatusFilter(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	_, err := svc.ListByResource(context.Background(), domain.Ref{Type: "room", ID: "101"}, []string{"archived"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ListLongerThan(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	bookings := []*domain.Booking{{ID: "b1"}}
	repo.EXPECT().ListLongerThan(mock.Anything, 90).Return(bookings, nil)

	result, err := svc.ListLongerThan(context.Background(), 90)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListLongerThan_Negative(t *testing.T) {
	svc, _, _ := newTestService(t, defaultBookingCfg())

	_, err := svc.ListLongerThan(context.Background(), -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListByRequester(t *testing.T) {
	svc, repo, _ := newTestService(t, defaultBookingCfg())

	ref := domain.Ref{Type: "user", ID: "u1"}
	bookings := []*domain.Booking{{ID: "b1", RequesterRef: ref}}
	repo.EXPECT().ListByRequester(mock.Anything, ref).Return(bookings, nil)

	result, err := svc.ListByRequester(context.Background(), ref)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
