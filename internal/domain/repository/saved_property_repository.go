package repository

import (
	"context"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// SavedPropertyRepository maintains user/property bookmark links.
type SavedPropertyRepository interface {
	// Create inserts the link or returns ErrDuplicate if the pair exists.
	Create(ctx context.Context, sp *entity.SavedProperty) error
	// ListByUser returns links in the order they were saved.
	ListByUser(ctx context.Context, userID string) ([]entity.SavedProperty, error)
	// Delete removes the single link for the pair or returns ErrNotFound.
	Delete(ctx context.Context, userID, propertyID string) error
}
