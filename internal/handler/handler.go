package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/CheesyTech/booking/internal/domain"
	"github.com/CheesyTech/booking/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	UpdateSlot(ctx context.Context, id string, start, end time.Time) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, id, status, reason string, metadata map[string]any) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	GetCurrentStatus(ctx context.Context, id string) (domain.BookingStatus, error)
	GetStatusHistory(ctx context.Context, id string) ([]domain.BookingStatus, error)
	ListByResource(ctx context.Context, ref domain.Ref, statuses []string) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, ref domain.Ref) ([]*domain.Booking, error)
	ListLongerThan(ctx context.Context, minutes int) ([]*domain.Booking, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := h.parseSlot(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	input := domain.CreateBookingInput{
		ResourceRef:  domain.Ref{Type: req.ResourceType, ID: req.ResourceID},
		RequesterRef: domain.Ref{Type: req.RequesterType, ID: req.RequesterID},
		StartTime:    start,
		EndTime:      end,
		Status:       req.Status,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, end, ok := h.parseSlot(c, req.StartTime, req.EndTime)
	if !ok {
		return
	}

	booking, err := h.bookingService.UpdateSlot(c.Request.Context(), id, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ChangeStatus(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ChangeStatus(c.Request.Context(), id, req.Status, req.Reason, req.Metadata)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetCurrentStatus(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	status, err := h.bookingService.GetCurrentStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}

func (h *Handler) GetStatusHistory(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	history, err := h.bookingService.GetStatusHistory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.StatusResponse, 0, len(history))
	for _, s := range history {
		resp = append(resp, dto.ToStatusResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListResourceBookings(c *ginext.Context) {
	ref := domain.Ref{Type: c.Param("type"), ID: c.Param("id")}

	bookings, err := h.bookingService.ListByResource(c.Request.Context(), ref, c.QueryArray("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListLongBookings(c *ginext.Context) {
	minutes, err := strconv.Atoi(c.Param("minutes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid minutes"})
		return
	}

	bookings, err := h.bookingService.ListLongerThan(c.Request.Context(), minutes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListRequesterBookings(c *ginext.Context) {
	ref := domain.Ref{Type: c.Param("type"), ID: c.Param("id")}

	bookings, err := h.bookingService.ListByRequester(c.Request.Context(), ref)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) bookingID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", false
	}
	return id, true
}

func (h *Handler) parseSlot(c *ginext.Context, startRaw, endRaw string) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_time format, expected RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrOverlapConflict),
		errors.Is(err, domain.ErrTransitionNotAllowed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrDurationExceeded),
		errors.Is(err, domain.ErrRuleViolation),
		errors.Is(err, domain.ErrMissingField):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
