package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

const propertyColumns = `id, title, description, price, city, state, address, type,
	bedrooms, bathrooms, area, features, images, posted_by, created_at`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (id, title, description, price, city, state, address, type,
			bedrooms, bathrooms, area, features, images, posted_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, COALESCE($15, now()))
		RETURNING created_at
	`, p.ID, p.Title, p.Description, p.Price, p.Location.City, p.Location.State, p.Location.Address,
		string(p.Type), p.Bedrooms, p.Bathrooms, p.Area, p.Features, p.Images, p.PostedBy, nullTime(p.CreatedAt))

	return mapErr(row.Scan(&p.CreatedAt))
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

// List returns every property in insertion order.
func (r *PropertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProperty(row pgx.Row) (entity.Property, error) {
	var p entity.Property
	var typ string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price,
		&p.Location.City, &p.Location.State, &p.Location.Address, &typ,
		&p.Bedrooms, &p.Bathrooms, &p.Area, &p.Features, &p.Images, &p.PostedBy, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.Type = entity.PropertyType(typ)
	return p.Clone(), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
