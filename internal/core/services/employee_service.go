package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/core/domain"
	portsrepo "github.com/SscSPs/sky_take_out/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sky_take_out/internal/core/ports/services"
	"github.com/SscSPs/sky_take_out/internal/ctxutil"
	"github.com/SscSPs/sky_take_out/internal/utils"
)

type EmployeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

var _ portssvc.EmployeeSvcFacade = (*EmployeeService)(nil)

func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// EnsureAdmin looks the account up by username and creates it when missing.
// An existing account whose hash does not match password gets a new hash.
// Both writes run as the system actor.
func (s *EmployeeService) EnsureAdmin(ctx context.Context, name, username, password string) (*domain.Employee, error) {
	existing, err := s.employeeRepo.FindByUsername(ctx, username)
	if err == nil {
		if utils.CheckPasswordHash(password, existing.PasswordHash) {
			s.LogDebug(ctx, "Admin account present", slog.String("username", username))
			return existing, nil
		}
		return s.resetPassword(ctx, existing, password)
	}
	if !errors.Is(err, apperrors.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to look up admin %s: %w", username, err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("cannot create admin %s: %w: %w", username, apperrors.ErrValidation, err)
	}
	employee := &domain.Employee{
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		Status:       domain.StatusEnabled,
	}
	if err := s.employeeRepo.Insert(ctxutil.WithActorID(ctx, domain.SystemActorID), employee); err != nil {
		s.LogError(ctx, err, "Failed to create admin account", slog.String("username", username))
		return nil, fmt.Errorf("failed to create admin %s: %w", username, err)
	}
	s.LogInfo(ctx, "Admin account created", slog.String("username", username), slog.Int64("employee_id", employee.ID))
	return employee, nil
}

func (s *EmployeeService) resetPassword(ctx context.Context, employee *domain.Employee, password string) (*domain.Employee, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("cannot reset password of %s: %w: %w", employee.Username, apperrors.ErrValidation, err)
	}
	employee.PasswordHash = hash
	if err := s.employeeRepo.Update(ctxutil.WithActorID(ctx, domain.SystemActorID), employee); err != nil {
		s.LogError(ctx, err, "Failed to reset admin password", slog.String("username", employee.Username))
		return nil, fmt.Errorf("failed to reset password of %s: %w", employee.Username, err)
	}
	s.LogInfo(ctx, "Admin password reset from configuration", slog.Int64("employee_id", employee.ID))
	return employee, nil
}
