package payroll

import "errors"

var (
	ErrNilEmployee      = errors.New("employee is required")
	ErrInvalidHours     = errors.New("hours worked must be positive")
	ErrInvalidDateRange = errors.New("date range must be \"YYYY-MM-DD to YYYY-MM-DD\"")
)
