package pgsql

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/SscSPs/sky_take_out/internal/autofill"
	"github.com/SscSPs/sky_take_out/internal/core/domain"
	"github.com/SscSPs/sky_take_out/internal/ctxutil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type fakeCall struct {
	sql  string
	args []any
}

// fakeDB records statements and answers them with canned results.
type fakeDB struct {
	calls   []fakeCall
	row     fakeRow
	tag     pgconn.CommandTag
	execErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	return f.tag, f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, fakeCall{sql: sql, args: args})
	return f.row
}

func (f *fakeDB) lastArgs() []any {
	return f.calls[len(f.calls)-1].args
}

type RepositoryTestSuite struct {
	suite.Suite
	now   time.Time
	db    *fakeDB
	repos struct {
		employee *PgxEmployeeRepository
		category *PgxCategoryRepository
		setmeal  *PgxSetmealRepository
	}
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.db = &fakeDB{}
	interceptor := autofill.NewInterceptor(
		autofill.WithClock(func() time.Time { return suite.now }),
		autofill.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	provider := NewRepositoryProvider(suite.db, interceptor)
	suite.repos.employee = provider.EmployeeRepo.(*PgxEmployeeRepository)
	suite.repos.category = provider.CategoryRepo.(*PgxCategoryRepository)
	suite.repos.setmeal = provider.SetmealRepo.(*PgxSetmealRepository)
}

func actorCtx(id int64) context.Context {
	return ctxutil.WithActorID(context.Background(), id)
}

// --- Test Cases ---

func (suite *RepositoryTestSuite) TestEmployeeInsertWritesStampedFields() {
	suite.db.row = fakeRow{values: []any{int64(42)}}
	emp := &domain.Employee{Name: "Ada", Username: "ada", PasswordHash: "hash", Status: domain.StatusEnabled}

	suite.Require().NoError(suite.repos.employee.Insert(actorCtx(7), emp))

	suite.Equal(int64(42), emp.ID)
	args := suite.db.lastArgs()
	suite.Require().Len(args, 11)
	suite.Equal("ada", args[1])
	suite.Equal(suite.now, args[7])
	suite.Equal(int64(7), args[8])
	suite.Equal(suite.now, args[9])
	suite.Equal(int64(7), args[10])
}

func (suite *RepositoryTestSuite) TestEmployeeInsertDuplicate() {
	suite.db.row = fakeRow{err: &pgconn.PgError{Code: "23505"}}

	err := suite.repos.employee.Insert(actorCtx(7), &domain.Employee{Username: "ada"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *RepositoryTestSuite) TestEmployeeInsertOtherFailure() {
	suite.db.row = fakeRow{err: errors.New("connection reset")}

	err := suite.repos.employee.Insert(actorCtx(7), &domain.Employee{Username: "ada"})
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(500, appErr.Code)
}

func (suite *RepositoryTestSuite) TestEmployeeUpdateWritesPasswordAndUpdatePair() {
	suite.db.tag = pgconn.NewCommandTag("UPDATE 1")
	emp := &domain.Employee{ID: 1, Username: "admin", PasswordHash: "new-hash", Status: domain.StatusEnabled}

	suite.Require().NoError(suite.repos.employee.Update(ctxutil.WithActorID(context.Background(), domain.SystemActorID), emp))

	args := suite.db.lastArgs()
	suite.Require().Len(args, 10)
	suite.Equal(int64(1), args[0])
	suite.Equal("new-hash", args[3])
	suite.Equal(suite.now, args[8])
	suite.Equal(domain.SystemActorID, args[9])
	suite.True(emp.CreatedAt.IsZero())
}

func (suite *RepositoryTestSuite) TestNilEntityRejectedBeforeStatement() {
	ctx := actorCtx(7)

	suite.ErrorIs(suite.repos.employee.Insert(ctx, nil), apperrors.ErrValidation)
	suite.ErrorIs(suite.repos.employee.Update(ctx, nil), apperrors.ErrValidation)
	suite.ErrorIs(suite.repos.category.Insert(ctx, nil), apperrors.ErrValidation)
	suite.ErrorIs(suite.repos.category.Update(ctx, nil), apperrors.ErrValidation)
	suite.ErrorIs(suite.repos.setmeal.Insert(ctx, nil), apperrors.ErrValidation)
	suite.ErrorIs(suite.repos.setmeal.Update(ctx, nil), apperrors.ErrValidation)
	suite.Empty(suite.db.calls)
}

func (suite *RepositoryTestSuite) TestEmployeeFindByUsernameMissing() {
	suite.db.row = fakeRow{err: pgx.ErrNoRows}

	_, err := suite.repos.employee.FindByUsername(context.Background(), "ghost")
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestEmployeeFindByUsername() {
	created := suite.now.Add(-time.Hour)
	suite.db.row = fakeRow{values: []any{
		int64(1), "Administrator", "admin", "hash", "", "", "", domain.StatusEnabled,
		created, int64(0), created, int64(0),
	}}

	emp, err := suite.repos.employee.FindByUsername(context.Background(), "admin")
	suite.Require().NoError(err)
	suite.Equal("admin", emp.Username)
	suite.True(emp.IsEnabled())
	suite.Equal(created, emp.CreatedAt)
	suite.Equal([]any{"admin"}, suite.db.lastArgs())
}

func (suite *RepositoryTestSuite) TestCategoryUpdateOnlyWritesUpdatePair() {
	suite.db.tag = pgconn.NewCommandTag("UPDATE 1")
	t0 := suite.now.Add(-24 * time.Hour)
	cat := &domain.Category{ID: 3, Type: domain.CategoryTypeDish, Name: "Drinks"}
	cat.SetCreated(t0, 7)
	cat.SetUpdated(t0, 7)

	suite.Require().NoError(suite.repos.category.Update(actorCtx(9), cat))

	suite.Equal(t0, cat.CreatedAt)
	suite.Equal(int64(7), cat.CreatedBy)
	args := suite.db.lastArgs()
	suite.Require().Len(args, 7)
	suite.Equal(suite.now, args[5])
	suite.Equal(int64(9), args[6])
}

func (suite *RepositoryTestSuite) TestCategoryUpdateMissingRow() {
	suite.db.tag = pgconn.NewCommandTag("UPDATE 0")

	err := suite.repos.category.Update(actorCtx(9), &domain.Category{ID: 99})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestCategoryFindByIDMissing() {
	suite.db.row = fakeRow{err: pgx.ErrNoRows}

	_, err := suite.repos.category.FindByID(context.Background(), 5)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestSetmealInsert() {
	suite.db.row = fakeRow{values: []any{int64(11)}}
	combo := &domain.Setmeal{CategoryID: 3, Name: "combo-1", Price: decimal.RequireFromString("38.50")}

	suite.Require().NoError(suite.repos.setmeal.Insert(actorCtx(7), combo))

	suite.Equal(int64(11), combo.ID)
	suite.Equal(int64(7), combo.CreatedBy)
	args := suite.db.lastArgs()
	suite.True(decimal.RequireFromString("38.50").Equal(args[2].(decimal.Decimal)))
	suite.Equal(int64(7), args[7])
}

func (suite *RepositoryTestSuite) TestSetmealUpdateForeignKey() {
	suite.db.execErr = &pgconn.PgError{Code: "23503"}

	err := suite.repos.setmeal.Update(actorCtx(9), &domain.Setmeal{ID: 1, CategoryID: 404})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RepositoryTestSuite) TestSetmealFindByID() {
	price := decimal.RequireFromString("19.90")
	suite.db.row = fakeRow{values: []any{
		int64(2), int64(3), "combo-2", price, domain.StatusEnabled, "two dishes", "https://b.oss/x.png",
		suite.now, int64(7), suite.now, int64(9),
	}}

	s, err := suite.repos.setmeal.FindByID(context.Background(), 2)
	suite.Require().NoError(err)
	suite.Equal("combo-2", s.Name)
	suite.True(price.Equal(s.Price))
	suite.Equal(int64(9), s.UpdatedBy)
}

// --- Run Suite ---
func TestRepositories(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
