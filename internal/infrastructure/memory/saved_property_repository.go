package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

type SavedPropertyRepository struct {
	s *Store
}

// Create checks for an existing pair and inserts under the same write lock,
// so two concurrent saves of one pair cannot both succeed.
func (r *SavedPropertyRepository) Create(_ context.Context, sp *entity.SavedProperty) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.saved {
		if existing.UserID == sp.UserID && existing.PropertyID == sp.PropertyID {
			return repository.ErrDuplicate
		}
	}
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	r.s.saved = append(r.s.saved, *sp)
	return nil
}

func (r *SavedPropertyRepository) ListByUser(_ context.Context, userID string) ([]entity.SavedProperty, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.SavedProperty, 0)
	for _, sp := range r.s.saved {
		if sp.UserID == userID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (r *SavedPropertyRepository) Delete(_ context.Context, userID, propertyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, sp := range r.s.saved {
		if sp.UserID == userID && sp.PropertyID == propertyID {
			r.s.saved = append(r.s.saved[:i], r.s.saved[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.SavedPropertyRepository = (*SavedPropertyRepository)(nil)
