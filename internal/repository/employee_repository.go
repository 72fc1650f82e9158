package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/repository/builder"
)

const employeeTable = "employees"

var employeeColumns = []string{"id", "name", "role", "email", "department_id", "user_id"}

type employeeRepository struct {
	db          *sql.DB
	placeholder builder.Placeholder
}

// NewEmployeeRepository creates a SQL-backed EmployeeRepository. placeholder
// must match the driver behind db.
func NewEmployeeRepository(db *sql.DB, placeholder builder.Placeholder) domain.EmployeeRepository {
	return &employeeRepository{db: db, placeholder: placeholder}
}

func (r *employeeRepository) newBuilder() *builder.SQLBuilder {
	return builder.NewSQLBuilderFor(r.placeholder)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.DepartmentID, &e.UserID)
	return e, err
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	query, args := r.newBuilder().
		Select(employeeColumns...).
		From(employeeTable).
		OrderBy("id ASC").
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query, args := r.newBuilder().
		Select(employeeColumns...).
		From(employeeTable).
		Where("id = ?", id).
		Build()

	return r.findOne(ctx, query, args)
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query, args := r.newBuilder().
		Select(employeeColumns...).
		From(employeeTable).
		Where("email = ?", email).
		Build()

	return r.findOne(ctx, query, args)
}

func (r *employeeRepository) findOne(ctx context.Context, query string, args []interface{}) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	return &e, nil
}

func (r *employeeRepository) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if e.ID == 0 {
		return r.insert(ctx, e, false)
	}

	query, args := r.newBuilder().
		Update(employeeTable).
		Set("name", e.Name).
		Set("role", e.Role).
		Set("email", e.Email).
		Set("department_id", e.DepartmentID).
		Set("user_id", e.UserID).
		Where("id = ?", e.ID).
		Build()

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Employee{}, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		// Unknown id: keep the caller's identifier.
		return r.insert(ctx, e, true)
	}
	return e, nil
}

func (r *employeeRepository) insert(ctx context.Context, e domain.Employee, withID bool) (domain.Employee, error) {
	b := r.newBuilder()
	if withID {
		b.Insert(employeeTable, employeeColumns...).
			Values(e.ID, e.Name, e.Role, e.Email, e.DepartmentID, e.UserID)
	} else {
		b.Insert(employeeTable, employeeColumns[1:]...).
			Values(e.Name, e.Role, e.Email, e.DepartmentID, e.UserID)
	}
	query, args := b.Returning("id").Build()

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.Employee{}, domain.ErrDuplicateEmail
		}
		return domain.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	if withID && r.placeholder == builder.Dollar {
		// BIGSERIAL does not see explicit ids; move the sequence past them.
		if _, err := r.db.ExecContext(ctx, syncSequenceSQL); err != nil {
			return domain.Employee{}, fmt.Errorf("failed to sync employee id sequence: %w", err)
		}
	}
	return e, nil
}

const syncSequenceSQL = `SELECT setval(pg_get_serial_sequence('employees', 'id'), (SELECT MAX(id) FROM employees))`

func (r *employeeRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args := r.newBuilder().
		Delete(employeeTable).
		Where("id = ?", id).
		Build()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

// isUniqueViolation recognises violations of the email unique index from
// lib/pq and SQLite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == "employees_email_key"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: employees.email")
}
