package employee

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Master file column positions.
const (
	colID          = 0
	colLastName    = 1
	colFirstName   = 2
	colBirthDate   = 3
	colStatus      = 10
	colPosition    = 11
	colBasicSalary = 13
	colRice        = 14
	colPhone       = 15
	colClothing    = 16

	MinMasterFields = 19
)

var errShortRow = errors.New("row has too few fields")

// parseRow builds an Employee from one split master-file row. Only short rows
// and unparsable numbers are rejected; field values are taken as stored.
func parseRow(fields []string) (Employee, error) {
	if len(fields) < MinMasterFields {
		return Employee{}, fmt.Errorf("%w: %d < %d", errShortRow, len(fields), MinMasterFields)
	}

	id, err := strconv.Atoi(fields[colID])
	if err != nil {
		return Employee{}, fmt.Errorf("employee id %q: %w", fields[colID], err)
	}

	var amounts [4]float64
	for i, col := range []int{colBasicSalary, colRice, colPhone, colClothing} {
		amounts[i], err = ParseAmount(fields[col])
		if err != nil {
			return Employee{}, fmt.Errorf("column %d: %w", col, err)
		}
	}

	return build(Params{
		ID:                id,
		FirstName:         fields[colFirstName],
		LastName:          fields[colLastName],
		BirthDate:         fields[colBirthDate],
		Position:          fields[colPosition],
		Status:            ParseEmploymentStatus(fields[colStatus]),
		BasicSalary:       amounts[0],
		RiceSubsidy:       amounts[1],
		PhoneAllowance:    amounts[2],
		ClothingAllowance: amounts[3],
	}), nil
}

// ParseAmount parses a decimal amount, ignoring thousands separators.
func ParseAmount(text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", text, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("amount %q is not finite", text)
	}
	return value, nil
}
