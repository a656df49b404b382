package auth

import (
	"time"

	"go.uber.org/zap"

	"motorph/internal/domain/employee"
)

// BirthDateLayout is the format of both the stored birth date and the
// password supplied at login.
const BirthDateLayout = "01/02/2006"

// Directory resolves an employee by identifier.
type Directory interface {
	GetEmployeeByID(id int) (employee.Employee, error)
}

type Service struct {
	employees Directory
	logger    *zap.Logger
}

func NewService(employees Directory, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{employees: employees, logger: logger}
}

// Authenticate accepts a login when password is the employee's birth date.
// Every failure is reported as ErrInvalidCredentials.
func (s *Service) Authenticate(employeeID int, password string) (employee.Employee, error) {
	emp, err := s.employees.GetEmployeeByID(employeeID)
	if err != nil {
		s.logger.Debug("login rejected", zap.Int("employeeId", employeeID), zap.String("reason", "unknown employee"))
		return employee.Employee{}, ErrInvalidCredentials
	}

	stored, err := time.Parse(BirthDateLayout, emp.BirthDate())
	if err != nil {
		s.logger.Warn("stored birth date unparseable", zap.Int("employeeId", employeeID), zap.Error(err))
		return employee.Employee{}, ErrInvalidCredentials
	}
	supplied, err := time.Parse(BirthDateLayout, password)
	if err != nil || !supplied.Equal(stored) {
		s.logger.Debug("login rejected", zap.Int("employeeId", employeeID), zap.String("reason", "password mismatch"))
		return employee.Employee{}, ErrInvalidCredentials
	}
	return emp, nil
}
