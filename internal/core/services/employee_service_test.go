package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/core/domain"
	"github.com/SscSPs/sky_take_out/internal/core/services"
	"github.com/SscSPs/sky_take_out/internal/ctxutil"
	"github.com/SscSPs/sky_take_out/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// --- Test Suite Setup ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  *services.EmployeeService
	ctx      context.Context
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *EmployeeServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_Existing() {
	hash, err := utils.HashPassword("123456")
	suite.Require().NoError(err)
	admin := &domain.Employee{ID: 1, Username: "admin", PasswordHash: hash}
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(admin, nil).Once()

	got, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.Require().NoError(err)
	suite.Same(admin, got)
	suite.Equal(hash, got.PasswordHash)
	suite.mockRepo.AssertNotCalled(suite.T(), "Insert", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_ResetsChangedPassword() {
	oldHash, err := utils.HashPassword("old-secret")
	suite.Require().NoError(err)
	admin := &domain.Employee{ID: 1, Username: "admin", PasswordHash: oldHash}
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(admin, nil).Once()

	var updateCtx context.Context
	suite.mockRepo.On("Update", mock.Anything, admin).Run(func(args mock.Arguments) {
		updateCtx = args.Get(0).(context.Context)
	}).Return(nil).Once()

	got, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.Require().NoError(err)
	suite.True(utils.CheckPasswordHash("123456", got.PasswordHash))
	suite.False(utils.CheckPasswordHash("old-secret", got.PasswordHash))
	actor, ok := ctxutil.ActorIDFromContext(updateCtx)
	suite.True(ok)
	suite.Equal(domain.SystemActorID, actor)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_ResetFailure() {
	admin := &domain.Employee{ID: 1, Username: "admin", PasswordHash: "not-a-bcrypt-hash"}
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(admin, nil).Once()
	suite.mockRepo.On("Update", mock.Anything, admin).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_CreatesMissingAccount() {
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(nil, apperrors.ErrAccountNotFound).Once()

	var insertCtx context.Context
	suite.mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *domain.Employee) bool {
		return e.Username == "admin" && e.Name == "Administrator" && e.Status == domain.StatusEnabled
	})).Run(func(args mock.Arguments) {
		insertCtx = args.Get(0).(context.Context)
		args.Get(1).(*domain.Employee).ID = 1
	}).Return(nil).Once()

	got, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.Require().NoError(err)
	suite.Equal(int64(1), got.ID)
	suite.True(utils.CheckPasswordHash("123456", got.PasswordHash))
	actor, ok := ctxutil.ActorIDFromContext(insertCtx)
	suite.True(ok)
	suite.Equal(domain.SystemActorID, actor)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_EmptyPassword() {
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, utils.ErrEmptyPassword)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_LookupFailure() {
	boom := errors.New("connection refused")
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(nil, boom).Once()

	_, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.ErrorIs(err, boom)
}

func (suite *EmployeeServiceTestSuite) TestEnsureAdmin_InsertFailure() {
	suite.mockRepo.On("FindByUsername", suite.ctx, "admin").Return(nil, apperrors.ErrAccountNotFound).Once()
	suite.mockRepo.On("Insert", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.EnsureAdmin(suite.ctx, "Administrator", "admin", "123456")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Run Suite ---
func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
