package employee

import (
	"strings"

	"motorph/internal/platform/record"
)

const masterHeader = "Employee #,Last Name,First Name,Birthday,Address,Phone Number,SSS #,Philhealth #,TIN #,Pag-ibig #,Status,Position,Immediate Supervisor,Basic Salary,Rice Subsidy,Phone Allowance,Clothing Allowance,Gross Semi-monthly Rate,Hourly Rate"

func masterRow(id, last, first, birthday, status, position, basic, rice, phone, clothing string) string {
	fields := []string{
		id, last, first, birthday,
		`"Valero Carpark Building, Makati City"`, "966-860-270",
		"44-4506057-3", "820126853951", "442-605-657-000", "691295330870",
		status, position, "N/A",
		basic, rice, phone, clothing,
		`"45,000"`, "535.71",
	}
	return strings.Join(fields, ",")
}

func masterSource(rows ...string) record.StringSource {
	return record.StringSource(masterHeader + "\n" + strings.Join(rows, "\n") + "\n")
}

func mustEmployee(p Params) Employee {
	emp, err := New(p)
	if err != nil {
		panic(err)
	}
	return emp
}
