package repositories

import (
	"context"

	"github.com/SscSPs/sky_take_out/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	Insert(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
