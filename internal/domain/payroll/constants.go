package payroll

const (
	// StandardMonthlyHours is the monthly hours basis of BasicSalary.
	StandardMonthlyHours = 160.0

	SSSRate            = 0.045
	PhilHealthRate     = 0.03
	PagIBIGContrib     = 100.0
	WithholdingTaxRate = 0.10

	DateLayout     = "2006-01-02"
	RangeSeparator = " to "

	CompanyName = "MotorPH Payroll System"
)

type Basis string

const (
	BasisFixed  Basis = "fixed"
	BasisActual Basis = "actual"
)
