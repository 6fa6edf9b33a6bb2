package services

import (
	"context"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// EmployeeBootstrapSvc creates the accounts the system needs to be usable.
type EmployeeBootstrapSvc interface {
	// EnsureAdmin returns the account named username, creating an enabled
	// employee with the given name and password when it does not exist and
	// resetting the password when it no longer matches.
	EnsureAdmin(ctx context.Context, name, username, password string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeBootstrapSvc
}
