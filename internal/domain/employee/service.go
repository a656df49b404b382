package employee

import (
	"context"

	"go.uber.org/zap"
)

// Service enforces identity rules over a Catalog and persists after each
// successful mutation.
type Service struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewService(catalog *Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, logger: logger}
}

func (s *Service) AddEmployee(ctx context.Context, emp *Employee) error {
	if emp == nil {
		return ErrNilEmployee
	}
	if _, ok := s.catalog.FindByID(emp.ID()); ok {
		return ErrDuplicateID
	}
	s.catalog.Add(emp)
	s.save(ctx, "add", emp.ID())
	return nil
}

func (s *Service) UpdateEmployee(ctx context.Context, emp *Employee) error {
	if emp == nil {
		return ErrNilEmployee
	}
	if _, ok := s.catalog.FindByID(emp.ID()); !ok {
		return ErrNotFound
	}
	s.catalog.Update(emp)
	s.save(ctx, "update", emp.ID())
	return nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int) error {
	if _, ok := s.catalog.FindByID(id); !ok {
		return ErrNotFound
	}
	s.catalog.DeleteByID(id)
	s.save(ctx, "delete", id)
	return nil
}

func (s *Service) GetEmployeeByID(id int) (Employee, error) {
	emp, ok := s.catalog.FindByID(id)
	if !ok {
		return Employee{}, ErrNotFound
	}
	return emp, nil
}

func (s *Service) GetAllEmployees() []Employee {
	return s.catalog.All()
}

// Reload refreshes the catalog from its durable store when that store holds
// data, else from the master source. It is skipped while edits are unsaved,
// so a memory-only catalog keeps its edits until restart.
func (s *Service) Reload(ctx context.Context) error {
	if s.catalog.Unsaved() {
		s.logger.Info("employee reload skipped, catalog has unsaved edits")
		return nil
	}
	restored, err := s.catalog.Restore(ctx)
	if err != nil {
		return err
	}
	if restored {
		return nil
	}
	return s.catalog.Load()
}

// save does not roll back the in-memory mutation; durability is best effort.
func (s *Service) save(ctx context.Context, op string, id int) {
	if err := s.catalog.Save(ctx); err != nil {
		s.logger.Warn("employee catalog save failed", zap.String("op", op), zap.Int("employeeId", id), zap.Error(err))
	}
}
