package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidDuration     = errors.New("appointment duration must be between 5 and 480 minutes")
	ErrInvalidView         = errors.New("view must be one of day, week, month")
	ErrDateTimeRequired    = errors.New("appointment date and time are required")
)
