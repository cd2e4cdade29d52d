package repository

import (
	"context"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related storage operations.
// Create must reject an email that is already stored with ErrDuplicate
// as a single atomic step.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
