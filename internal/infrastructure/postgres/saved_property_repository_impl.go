package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

type SavedPropertyRepository struct {
	pool *pgxpool.Pool
}

func NewSavedPropertyRepository(pool *pgxpool.Pool) *SavedPropertyRepository {
	return &SavedPropertyRepository{pool: pool}
}

func (r *SavedPropertyRepository) Create(ctx context.Context, sp *entity.SavedProperty) error {
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO saved_properties (id, user_id, property_id, saved_at)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING saved_at
	`, sp.ID, sp.UserID, sp.PropertyID, nullTime(sp.SavedAt))

	return mapErr(row.Scan(&sp.SavedAt))
}

func (r *SavedPropertyRepository) ListByUser(ctx context.Context, userID string) ([]entity.SavedProperty, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, property_id, saved_at
		FROM saved_properties
		WHERE user_id = $1
		ORDER BY seq
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.SavedProperty, 0)
	for rows.Next() {
		var sp entity.SavedProperty
		if err := rows.Scan(&sp.ID, &sp.UserID, &sp.PropertyID, &sp.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (r *SavedPropertyRepository) Delete(ctx context.Context, userID, propertyID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM saved_properties
		WHERE user_id = $1 AND property_id = $2
	`, userID, propertyID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.SavedPropertyRepository = (*SavedPropertyRepository)(nil)
