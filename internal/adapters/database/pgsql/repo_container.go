package pgsql

import (
	"github.com/SscSPs/sky_take_out/internal/autofill"
	portsrepo "github.com/SscSPs/sky_take_out/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every mapper over db. Writes go through interceptor.
func NewRepositoryProvider(db DBTX, interceptor *autofill.Interceptor) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db, Autofill: interceptor}

	return portsrepo.RepositoryProvider{
		EmployeeRepo: newPgxEmployeeRepository(base),
		CategoryRepo: newPgxCategoryRepository(base),
		SetmealRepo:  newPgxSetmealRepository(base),
	}
}
