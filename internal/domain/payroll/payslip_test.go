package payroll

import (
	"strings"
	"testing"

	"motorph/internal/domain/employee"
)

func TestPayslipGolden(t *testing.T) {
	emp := newEmployee(t, employee.Params{
		FirstName:         "Manuel III",
		LastName:          "Garcia",
		Position:          "Chief Executive Officer",
		BasicSalary:       90000,
		RiceSubsidy:       1500,
		PhoneAllowance:    2000,
		ClothingAllowance: 1000,
	})

	want := strings.Join([]string{
		"---------------------------------------",
		"MotorPH Payroll System",
		"Employee: Manuel III Garcia",
		"Position: Chief Executive Officer",
		"---------------------------------------",
		"Gross Salary: 94500.00",
		"Total Deductions: 16637.50",
		"Net Salary: 77862.50",
		"---------------------------------------",
	}, "\n")

	if got := Payslip(emp); got != want {
		t.Fatalf("unexpected payslip:\n%s\nwant:\n%s", got, want)
	}
}

func TestPayslipNilEmployee(t *testing.T) {
	if got := Payslip(nil); got != "Invalid employee." {
		t.Fatalf("expected invalid employee text, got %q", got)
	}
}

func TestPayslipIgnoresHours(t *testing.T) {
	emp := newEmployee(t, employee.Params{Position: "HR Manager", BasicSalary: 60000, RiceSubsidy: 1500, PhoneAllowance: 800, ClothingAllowance: 800})

	slip := Payslip(emp)
	if !strings.Contains(slip, "Gross Salary: 63100.00\n") {
		t.Fatalf("expected fixed-basis gross, got:\n%s", slip)
	}
	if !strings.Contains(slip, "Net Salary: 51957.50\n") {
		t.Fatalf("expected fixed-basis net, got:\n%s", slip)
	}
	if strings.HasSuffix(slip, "\n") {
		t.Fatal("expected no trailing newline")
	}
}
