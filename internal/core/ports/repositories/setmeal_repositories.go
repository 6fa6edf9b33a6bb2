package repositories

import (
	"context"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// SetmealReader defines read operations for setmeal data
type SetmealReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Setmeal, error)
}

// SetmealWriter defines write operations for setmeal data
type SetmealWriter interface {
	Insert(ctx context.Context, setmeal *domain.Setmeal) error
	Update(ctx context.Context, setmeal *domain.Setmeal) error
}

// SetmealRepositoryFacade combines all setmeal-related repository interfaces
type SetmealRepositoryFacade interface {
	SetmealReader
	SetmealWriter
}
