package payroll

import (
	"strings"

	"motorph/internal/domain/employee"
)

const payslipRule = "---------------------------------------"

// Payslip is the canonical text payslip. It always uses the fixed monthly basis.
func Payslip(e *employee.Employee) string {
	if e == nil {
		return "Invalid employee."
	}

	var b strings.Builder
	b.WriteString(payslipRule + "\n")
	b.WriteString(CompanyName + "\n")
	b.WriteString("Employee: " + e.FullName() + "\n")
	b.WriteString("Position: " + e.Position() + "\n")
	b.WriteString(payslipRule + "\n")
	b.WriteString("Gross Salary: " + FormatAmount(GrossPay(e)) + "\n")
	b.WriteString("Total Deductions: " + FormatAmount(Deductions(e)) + "\n")
	b.WriteString("Net Salary: " + FormatAmount(NetPay(e)) + "\n")
	b.WriteString(payslipRule)
	return b.String()
}
