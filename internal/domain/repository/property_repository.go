package repository

import (
	"context"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// PropertyRepository stores listings. List returns them in insertion order.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context) ([]entity.Property, error)
}
