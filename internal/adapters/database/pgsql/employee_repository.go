package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/autofill"
	"github.com/SscSPs/sky_take_out/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_take_out/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(base BaseRepository) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: base}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, name, username, password, phone, sex, id_number, status,
	create_time, create_user, update_time, update_user`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Username,
		&e.PasswordHash,
		&e.Phone,
		&e.Sex,
		&e.IDNumber,
		&e.Status,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.UpdatedAt,
		&e.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgxEmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) error {
	if employee == nil {
		return nilEntityError("employee")
	}
	return r.write(ctx, "EmployeeMapper.Insert", autofill.OperationInsert, employee, func(ctx context.Context) error {
		query := `
			INSERT INTO employee (name, username, password, phone, sex, id_number, status,
				create_time, create_user, update_time, update_user)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id;
		`
		err := r.DB.QueryRow(ctx, query,
			employee.Name,
			employee.Username,
			employee.PasswordHash,
			employee.Phone,
			employee.Sex,
			employee.IDNumber,
			employee.Status,
			employee.CreatedAt,
			employee.CreatedBy,
			employee.UpdatedAt,
			employee.UpdatedBy,
		).Scan(&employee.ID)
		if err != nil {
			return mapWriteError(err, "employee "+employee.Username)
		}
		return nil
	})
}

func (r *PgxEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	if employee == nil {
		return nilEntityError("employee")
	}
	return r.write(ctx, "EmployeeMapper.Update", autofill.OperationUpdate, employee, func(ctx context.Context) error {
		query := `
			UPDATE employee
			SET name = $2, username = $3, password = $4, phone = $5, sex = $6, id_number = $7, status = $8,
				update_time = $9, update_user = $10
			WHERE id = $1;
		`
		tag, err := r.DB.Exec(ctx, query,
			employee.ID,
			employee.Name,
			employee.Username,
			employee.PasswordHash,
			employee.Phone,
			employee.Sex,
			employee.IDNumber,
			employee.Status,
			employee.UpdatedAt,
			employee.UpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, fmt.Sprintf("employee %d", employee.ID))
		}
		return expectOneRow(tag, fmt.Sprintf("employee %d", employee.ID))
	})
}

func (r *PgxEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE id = $1;`
	e, err := scanEmployee(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by id %d: %w", id, err)
	}
	return e, nil
}

func (r *PgxEmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employee WHERE username = $1;`
	e, err := scanEmployee(r.DB.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find employee by username %s: %w", username, err)
	}
	return e, nil
}
