package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
)

// Seed inserts the fixtures in one transaction. Rows that already exist are
// left untouched, so running it twice is harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool, f seed.Fixtures) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, u := range f.Users {
			if _, err := tx.Exec(ctx, `
				INSERT INTO users (id, name, email, password_hash, role, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT DO NOTHING
			`, u.ID, u.Name, u.Email, u.Password, string(u.Role), u.CreatedAt); err != nil {
				return err
			}
		}
		for _, p := range f.Properties {
			if _, err := tx.Exec(ctx, `
				INSERT INTO properties (id, title, description, price, city, state, address, type,
					bedrooms, bathrooms, area, features, images, posted_by, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
				ON CONFLICT DO NOTHING
			`, p.ID, p.Title, p.Description, p.Price, p.Location.City, p.Location.State, p.Location.Address,
				string(p.Type), p.Bedrooms, p.Bathrooms, p.Area, p.Features, p.Images, p.PostedBy, p.CreatedAt); err != nil {
				return err
			}
		}
		for _, sp := range f.Saved {
			if _, err := tx.Exec(ctx, `
				INSERT INTO saved_properties (id, user_id, property_id, saved_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT DO NOTHING
			`, sp.ID, sp.UserID, sp.PropertyID, sp.SavedAt); err != nil {
				return err
			}
		}
		return nil
	})
}
