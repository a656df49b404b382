package payroll

import (
	"time"

	"go.uber.org/zap"

	"motorph/internal/domain/employee"
)

// HoursSource reports hours worked over an inclusive date range.
type HoursSource interface {
	HoursWorked(employeeID int, start, end time.Time) float64
}

// Engine binds the pure payroll functions to an attendance source for the
// date-range variants.
type Engine struct {
	hours  HoursSource
	logger *zap.Logger
}

func NewEngine(hours HoursSource, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{hours: hours, logger: logger}
}

func (en *Engine) GrossPay(e *employee.Employee) float64   { return GrossPay(e) }
func (en *Engine) Deductions(e *employee.Employee) float64 { return Deductions(e) }
func (en *Engine) NetPay(e *employee.Employee) float64     { return NetPay(e) }

func (en *Engine) NetPayForHours(e *employee.Employee, hours float64) float64 {
	return NetPayForHours(e, hours)
}

func (en *Engine) SalaryOnHours(e *employee.Employee, hours float64) float64 {
	return SalaryOnHours(e, hours)
}

// StandardHours is the assumed monthly hours for any employee.
func (en *Engine) StandardHours(e *employee.Employee) float64 {
	if e == nil {
		return 0
	}
	return StandardMonthlyHours
}

// HoursWorkedForRange parses a "YYYY-MM-DD to YYYY-MM-DD" period and asks the
// attendance source. Any failure yields 0.
func (en *Engine) HoursWorkedForRange(e *employee.Employee, rangeText string) float64 {
	if e == nil {
		return 0
	}
	period, err := ParseDateRange(rangeText)
	if err != nil {
		en.logger.Debug("invalid pay period", zap.String("range", rangeText), zap.Error(err))
		return 0
	}
	return en.hours.HoursWorked(e.ID(), period.Start, period.End)
}

// NetPayForRange is NetPayForHours over the hours logged in the period.
func (en *Engine) NetPayForRange(e *employee.Employee, rangeText string) float64 {
	result, err := en.ComputeForRange(e, rangeText)
	if err != nil {
		return 0
	}
	return result.Net
}

func (en *Engine) Compute(e *employee.Employee) (Result, error) {
	return Compute(e)
}

func (en *Engine) ComputeForHours(e *employee.Employee, hours float64) (Result, error) {
	return ComputeForHours(e, hours)
}

func (en *Engine) ComputeForRange(e *employee.Employee, rangeText string) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEmployee
	}
	period, err := ParseDateRange(rangeText)
	if err != nil {
		en.logger.Debug("invalid pay period", zap.String("range", rangeText), zap.Error(err))
		return Result{}, err
	}
	return ComputeForHours(e, en.hours.HoursWorked(e.ID(), period.Start, period.End))
}

// Payslip renders the fixed-basis payslip text.
func (en *Engine) Payslip(e *employee.Employee) string {
	return Payslip(e)
}
