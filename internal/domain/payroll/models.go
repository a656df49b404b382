package payroll

// DeductionBreakdown holds the statutory deductions for one gross amount.
type DeductionBreakdown struct {
	SSS            float64 `json:"sss"`
	PhilHealth     float64 `json:"philHealth"`
	PagIBIG        float64 `json:"pagIbig"`
	WithholdingTax float64 `json:"withholdingTax"`
}

func (d DeductionBreakdown) Total() float64 {
	return d.SSS + d.PhilHealth + d.PagIBIG + d.WithholdingTax
}

// Result is a computed payroll figure. It is never persisted.
type Result struct {
	EmployeeID      int                `json:"employeeId"`
	Basis           Basis              `json:"basis"`
	Hours           float64            `json:"hours"`
	BasicPay        float64            `json:"basicPay"`
	Gross           float64            `json:"gross"`
	Breakdown       DeductionBreakdown `json:"breakdown"`
	TotalDeductions float64            `json:"totalDeductions"`
	Net             float64            `json:"net"`
}
