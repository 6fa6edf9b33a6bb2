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

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(base BaseRepository) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: base}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return nilEntityError("category")
	}
	return r.write(ctx, "CategoryMapper.Insert", autofill.OperationInsert, category, func(ctx context.Context) error {
		query := `
			INSERT INTO category (type, name, sort, status, create_time, create_user, update_time, update_user)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;
		`
		err := r.DB.QueryRow(ctx, query,
			category.Type,
			category.Name,
			category.Sort,
			category.Status,
			category.CreatedAt,
			category.CreatedBy,
			category.UpdatedAt,
			category.UpdatedBy,
		).Scan(&category.ID)
		if err != nil {
			return mapWriteError(err, "category "+category.Name)
		}
		return nil
	})
}

func (r *PgxCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return nilEntityError("category")
	}
	return r.write(ctx, "CategoryMapper.Update", autofill.OperationUpdate, category, func(ctx context.Context) error {
		query := `
			UPDATE category
			SET type = $2, name = $3, sort = $4, status = $5, update_time = $6, update_user = $7
			WHERE id = $1;
		`
		tag, err := r.DB.Exec(ctx, query,
			category.ID,
			category.Type,
			category.Name,
			category.Sort,
			category.Status,
			category.UpdatedAt,
			category.UpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, fmt.Sprintf("category %d", category.ID))
		}
		return expectOneRow(tag, fmt.Sprintf("category %d", category.ID))
	})
}

func (r *PgxCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, type, name, sort, status, create_time, create_user, update_time, update_user
		FROM category
		WHERE id = $1;
	`
	var c domain.Category
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Type,
		&c.Name,
		&c.Sort,
		&c.Status,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.UpdatedAt,
		&c.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by id %d: %w", id, err)
	}
	return &c, nil
}
