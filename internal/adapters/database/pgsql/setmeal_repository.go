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

type PgxSetmealRepository struct {
	BaseRepository
}

func newPgxSetmealRepository(base BaseRepository) portsrepo.SetmealRepositoryFacade {
	return &PgxSetmealRepository{BaseRepository: base}
}

var _ portsrepo.SetmealRepositoryFacade = (*PgxSetmealRepository)(nil)

func (r *PgxSetmealRepository) Insert(ctx context.Context, setmeal *domain.Setmeal) error {
	if setmeal == nil {
		return nilEntityError("setmeal")
	}
	return r.write(ctx, "SetmealMapper.Insert", autofill.OperationInsert, setmeal, func(ctx context.Context) error {
		query := `
			INSERT INTO setmeal (category_id, name, price, status, description, image,
				create_time, create_user, update_time, update_user)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;
		`
		err := r.DB.QueryRow(ctx, query,
			setmeal.CategoryID,
			setmeal.Name,
			setmeal.Price,
			setmeal.Status,
			setmeal.Description,
			setmeal.Image,
			setmeal.CreatedAt,
			setmeal.CreatedBy,
			setmeal.UpdatedAt,
			setmeal.UpdatedBy,
		).Scan(&setmeal.ID)
		if err != nil {
			return mapWriteError(err, "setmeal "+setmeal.Name)
		}
		return nil
	})
}

func (r *PgxSetmealRepository) Update(ctx context.Context, setmeal *domain.Setmeal) error {
	if setmeal == nil {
		return nilEntityError("setmeal")
	}
	return r.write(ctx, "SetmealMapper.Update", autofill.OperationUpdate, setmeal, func(ctx context.Context) error {
		query := `
			UPDATE setmeal
			SET category_id = $2, name = $3, price = $4, status = $5, description = $6, image = $7,
				update_time = $8, update_user = $9
			WHERE id = $1;
		`
		tag, err := r.DB.Exec(ctx, query,
			setmeal.ID,
			setmeal.CategoryID,
			setmeal.Name,
			setmeal.Price,
			setmeal.Status,
			setmeal.Description,
			setmeal.Image,
			setmeal.UpdatedAt,
			setmeal.UpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, fmt.Sprintf("setmeal %d", setmeal.ID))
		}
		return expectOneRow(tag, fmt.Sprintf("setmeal %d", setmeal.ID))
	})
}

func (r *PgxSetmealRepository) FindByID(ctx context.Context, id int64) (*domain.Setmeal, error) {
	query := `
		SELECT id, category_id, name, price, status, description, image,
			create_time, create_user, update_time, update_user
		FROM setmeal
		WHERE id = $1;
	`
	var s domain.Setmeal
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.CategoryID,
		&s.Name,
		&s.Price,
		&s.Status,
		&s.Description,
		&s.Image,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.UpdatedAt,
		&s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setmeal by id %d: %w", id, err)
	}
	return &s, nil
}
