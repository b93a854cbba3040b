package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameRequired       = errors.New("department name is required")
)
