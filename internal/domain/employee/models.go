package employee

import (
	"fmt"
	"strings"
)

type EmploymentStatus int

const (
	StatusRegular EmploymentStatus = iota
	StatusProbationary
)

func (s EmploymentStatus) String() string {
	if s == StatusRegular {
		return "Regular"
	}
	return "Probationary"
}

// ParseEmploymentStatus maps "Regular" (any case) to StatusRegular and
// everything else to StatusProbationary.
func ParseEmploymentStatus(text string) EmploymentStatus {
	if strings.EqualFold(strings.TrimSpace(text), "Regular") {
		return StatusRegular
	}
	return StatusProbationary
}

// Params carries the raw attributes of an employee record.
type Params struct {
	ID                int
	FirstName         string
	LastName          string
	BirthDate         string
	Position          string
	Status            EmploymentStatus
	BasicSalary       float64
	RiceSubsidy       float64
	PhoneAllowance    float64
	ClothingAllowance float64
}

// Employee is an immutable employee record apart from its basic salary.
// Department and permissions are derived from the position once, in New.
type Employee struct {
	id                int
	firstName         string
	lastName          string
	birthDate         string
	position          string
	department        Department
	permissions       PermissionProfile
	status            EmploymentStatus
	basicSalary       float64
	riceSubsidy       float64
	phoneAllowance    float64
	clothingAllowance float64
}

func New(p Params) (Employee, error) {
	if p.ID <= 0 {
		return Employee{}, ErrInvalidID
	}
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return Employee{}, ErrMissingName
	}
	amounts := []struct {
		name  string
		value float64
	}{
		{"basic salary", p.BasicSalary},
		{"rice subsidy", p.RiceSubsidy},
		{"phone allowance", p.PhoneAllowance},
		{"clothing allowance", p.ClothingAllowance},
	}
	for _, amount := range amounts {
		if amount.value < 0 {
			return Employee{}, fmt.Errorf("%s: %w", amount.name, ErrNegativeAmount)
		}
	}

	return build(p), nil
}

// build derives department and permissions without validating p. Master-file
// rows go through it directly so that only structurally broken rows are skipped.
func build(p Params) Employee {
	department := DeriveDepartment(p.Position)
	return Employee{
		id:                p.ID,
		firstName:         p.FirstName,
		lastName:          p.LastName,
		birthDate:         p.BirthDate,
		position:          p.Position,
		department:        department,
		permissions:       ProfileFor(department),
		status:            p.Status,
		basicSalary:       p.BasicSalary,
		riceSubsidy:       p.RiceSubsidy,
		phoneAllowance:    p.PhoneAllowance,
		clothingAllowance: p.ClothingAllowance,
	}
}

func (e Employee) ID() int                        { return e.id }
func (e Employee) FirstName() string              { return e.firstName }
func (e Employee) LastName() string               { return e.lastName }
func (e Employee) FullName() string               { return e.firstName + " " + e.lastName }
func (e Employee) BirthDate() string              { return e.birthDate }
func (e Employee) Position() string               { return e.position }
func (e Employee) Department() Department         { return e.department }
func (e Employee) Permissions() PermissionProfile { return e.permissions }
func (e Employee) Status() EmploymentStatus       { return e.status }
func (e Employee) BasicSalary() float64           { return e.basicSalary }
func (e Employee) RiceSubsidy() float64           { return e.riceSubsidy }
func (e Employee) PhoneAllowance() float64        { return e.phoneAllowance }
func (e Employee) ClothingAllowance() float64     { return e.clothingAllowance }

// SetBasicSalary is the only in-place mutation an employee allows.
func (e *Employee) SetBasicSalary(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	e.basicSalary = amount
	return nil
}

// Params returns the attributes e was built from, with the current salary.
func (e Employee) Params() Params {
	return Params{
		ID:                e.id,
		FirstName:         e.firstName,
		LastName:          e.lastName,
		BirthDate:         e.birthDate,
		Position:          e.position,
		Status:            e.status,
		BasicSalary:       e.basicSalary,
		RiceSubsidy:       e.riceSubsidy,
		PhoneAllowance:    e.phoneAllowance,
		ClothingAllowance: e.clothingAllowance,
	}
}
