package patient

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrNameRequired       = errors.New("patient name is required")
	ErrInvalidGender      = errors.New("invalid gender value")
	ErrInvalidBloodType   = errors.New("invalid blood type")
	ErrInvalidDateOfBirth = errors.New("date of birth cannot be in the future")
)
