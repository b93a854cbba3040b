package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrNameRequired  = errors.New("staff name is required")
	ErrInvalidRole   = errors.New("invalid staff role")
	ErrInvalidStatus = errors.New("invalid availability status")
)
