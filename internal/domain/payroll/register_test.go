package payroll

import (
	"strings"
	"testing"

	"motorph/internal/domain/employee"
)

func TestRegisterCSV(t *testing.T) {
	employees := []employee.Employee{
		*newEmployee(t, employee.Params{ID: 10001, FirstName: "Manuel III", LastName: "Garcia", Position: "Chief Executive Officer", BasicSalary: 90000, RiceSubsidy: 1500, PhoneAllowance: 2000, ClothingAllowance: 1000}),
		*newEmployee(t, employee.Params{ID: 10006, FirstName: "Andrea Mae", LastName: "Villanueva", Position: "HR Manager", BasicSalary: 60000, RiceSubsidy: 1500, PhoneAllowance: 800, ClothingAllowance: 800}),
	}

	rows := BuildRegister(employees)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Department != "HR" || rows[1].Net != "51957.50" {
		t.Fatalf("unexpected row: %+v", rows[1])
	}

	data, err := RegisterCSV(rows)
	if err != nil {
		t.Fatalf("csv error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "employee_id,last_name,first_name,position,department,gross,deductions,net" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "10001,Garcia,Manuel III,Chief Executive Officer,Operations,94500.00,16637.50,77862.50" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestRegisterEmpty(t *testing.T) {
	data, err := RegisterCSV(BuildRegister(nil))
	if err != nil {
		t.Fatalf("csv error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "employee_id,last_name,first_name,position,department,gross,deductions,net" {
		t.Fatalf("expected header only, got %q", data)
	}
}
