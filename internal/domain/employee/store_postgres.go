package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var snapshotColumns = []string{
	"id", "first_name", "last_name", "birth_date", "position", "department",
	"employment_status", "basic_salary", "rice_subsidy", "phone_allowance", "clothing_allowance",
	"seq",
}

const loadSnapshotSQL = `
  SELECT id, first_name, last_name, birth_date, position, employment_status,
         basic_salary, rice_subsidy, phone_allowance, clothing_allowance
  FROM employees
  ORDER BY seq, id
`

// PostgresSaver rewrites the employees table with each snapshot in one
// transaction and reads it back in catalog order.
type PostgresSaver struct {
	DB *pgxpool.Pool
}

func NewPostgresSaver(db *pgxpool.Pool) *PostgresSaver {
	return &PostgresSaver{DB: db}
}

func (s *PostgresSaver) Save(ctx context.Context, records []Employee) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin employee snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM employees"); err != nil {
		return fmt.Errorf("clear employees: %w", err)
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"employees"}, snapshotColumns, pgx.CopyFromRows(snapshotRows(records))); err != nil {
		return fmt.Errorf("copy employees: %w", err)
	}
	return tx.Commit(ctx)
}

func (s *PostgresSaver) Load(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, loadSnapshotSQL)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var (
			p      Params
			status string
		)
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Position, &status,
			&p.BasicSalary, &p.RiceSubsidy, &p.PhoneAllowance, &p.ClothingAllowance); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		p.Status = ParseEmploymentStatus(status)
		out = append(out, build(p))
	}
	return out, rows.Err()
}

func snapshotRows(records []Employee) [][]any {
	rows := make([][]any, 0, len(records))
	for i, emp := range records {
		rows = append(rows, []any{
			emp.id,
			emp.firstName,
			emp.lastName,
			emp.birthDate,
			emp.position,
			string(emp.department),
			emp.status.String(),
			emp.basicSalary,
			emp.riceSubsidy,
			emp.phoneAllowance,
			emp.clothingAllowance,
			i,
		})
	}
	return rows
}
