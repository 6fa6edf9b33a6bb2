package repositories

import (
	"context"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindByID retrieves an employee by id.
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)

	// FindByUsername retrieves an employee by login name. It returns
	// apperrors.ErrAccountNotFound when no such account exists.
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
// Both operations stamp audit fields on the employee before it is written.
type EmployeeWriter interface {
	// Insert persists a new employee and sets its generated ID.
	Insert(ctx context.Context, employee *domain.Employee) error

	// Update writes the mutable fields of an existing employee.
	Update(ctx context.Context, employee *domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
