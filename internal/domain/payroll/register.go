package payroll

import (
	"github.com/gocarina/gocsv"

	"motorph/internal/domain/employee"
)

// RegisterRow is one line of the fixed-basis payroll register.
type RegisterRow struct {
	EmployeeID int    `csv:"employee_id" json:"employeeId"`
	LastName   string `csv:"last_name" json:"lastName"`
	FirstName  string `csv:"first_name" json:"firstName"`
	Position   string `csv:"position" json:"position"`
	Department string `csv:"department" json:"department"`
	Gross      string `csv:"gross" json:"gross"`
	Deductions string `csv:"deductions" json:"deductions"`
	Net        string `csv:"net" json:"net"`
}

func BuildRegister(employees []employee.Employee) []RegisterRow {
	rows := make([]RegisterRow, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		rows = append(rows, RegisterRow{
			EmployeeID: e.ID(),
			LastName:   e.LastName(),
			FirstName:  e.FirstName(),
			Position:   e.Position(),
			Department: string(e.Department()),
			Gross:      FormatAmount(GrossPay(e)),
			Deductions: FormatAmount(Deductions(e)),
			Net:        FormatAmount(NetPay(e)),
		})
	}
	return rows
}

func RegisterCSV(rows []RegisterRow) ([]byte, error) {
	return gocsv.MarshalBytes(&rows)
}
