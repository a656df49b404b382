package employee

import "errors"

var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateID    = errors.New("employee id already exists")
	ErrNilEmployee    = errors.New("employee is required")
	ErrInvalidID      = errors.New("employee id must be positive")
	ErrMissingName    = errors.New("employee first and last name are required")
	ErrNegativeAmount = errors.New("monetary amount cannot be negative")
)
