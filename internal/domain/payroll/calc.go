package payroll

import "motorph/internal/domain/employee"

// ComputeDeductions applies the fixed statutory rates to gross pay.
func ComputeDeductions(gross float64) DeductionBreakdown {
	return DeductionBreakdown{
		SSS:            gross * SSSRate,
		PhilHealth:     gross * PhilHealthRate,
		PagIBIG:        PagIBIGContrib,
		WithholdingTax: gross * WithholdingTaxRate,
	}
}

// composeGross adds the fixed allowances to a basic pay figure.
func composeGross(basicPay float64, e *employee.Employee) float64 {
	return basicPay + e.RiceSubsidy() + e.PhoneAllowance() + e.ClothingAllowance()
}

func compose(e *employee.Employee, basis Basis, hours, basicPay float64) Result {
	gross := composeGross(basicPay, e)
	breakdown := ComputeDeductions(gross)
	total := breakdown.Total()
	return Result{
		EmployeeID:      e.ID(),
		Basis:           basis,
		Hours:           hours,
		BasicPay:        basicPay,
		Gross:           gross,
		Breakdown:       breakdown,
		TotalDeductions: total,
		Net:             gross - total,
	}
}

// GrossPay is basic salary plus rice, phone and clothing allowances.
func GrossPay(e *employee.Employee) float64 {
	if e == nil {
		return 0
	}
	return composeGross(e.BasicSalary(), e)
}

func Deductions(e *employee.Employee) float64 {
	if e == nil {
		return 0
	}
	return ComputeDeductions(GrossPay(e)).Total()
}

func NetPay(e *employee.Employee) float64 {
	if e == nil {
		return 0
	}
	return GrossPay(e) - Deductions(e)
}

// NetPayForHours prorates basic salary over StandardMonthlyHours. Hours that
// are not positive are caller errors and yield 0.
func NetPayForHours(e *employee.Employee, hours float64) float64 {
	result, err := ComputeForHours(e, hours)
	if err != nil {
		return 0
	}
	return result.Net
}

// Compute is the fixed-basis payroll of e.
func Compute(e *employee.Employee) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEmployee
	}
	return compose(e, BasisFixed, StandardMonthlyHours, e.BasicSalary()), nil
}

// ComputeForHours is the payroll of e for actual hours worked.
func ComputeForHours(e *employee.Employee, hours float64) (Result, error) {
	if e == nil {
		return Result{}, ErrNilEmployee
	}
	if !(hours > 0) {
		return Result{EmployeeID: e.ID(), Basis: BasisActual, Hours: hours}, ErrInvalidHours
	}
	return compose(e, BasisActual, hours, HourlyRate(e)*hours), nil
}

func HourlyRate(e *employee.Employee) float64 {
	if e == nil {
		return 0
	}
	return e.BasicSalary() / StandardMonthlyHours
}

// SalaryOnHours is the prorated basic pay alone, without allowances or deductions.
func SalaryOnHours(e *employee.Employee, hours float64) float64 {
	return HourlyRate(e) * hours
}
