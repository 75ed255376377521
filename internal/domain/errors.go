package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidSlot          = errors.New("invalid time slot")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrMissingField         = errors.New("missing required field")
	ErrDurationExceeded     = errors.New("booking duration exceeded")
	ErrUnknownRule          = errors.New("unknown overlap rule")
	ErrRuleViolation        = errors.New("overlap rule violation")
	ErrOverlapConflict      = errors.New("booking overlaps with an existing booking")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

var (
	ErrValidation = errors.New("validation error")
)
