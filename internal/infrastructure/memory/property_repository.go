package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

type PropertyRepository struct {
	s *Store
}

func (r *PropertyRepository) Create(_ context.Context, p *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for _, existing := range r.s.properties {
		if existing.ID == p.ID {
			return repository.ErrDuplicate
		}
	}
	r.s.properties = append(r.s.properties, p.Clone())
	return nil
}

func (r *PropertyRepository) GetByID(_ context.Context, id string) (*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.properties {
		if p.ID == id {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *PropertyRepository) List(_ context.Context) ([]entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entity.Property, len(r.s.properties))
	for i, p := range r.s.properties {
		out[i] = p.Clone()
	}
	return out, nil
}

// Delete removes a listing without touching saved links, leaving them
// orphaned. Used by tests; the API has no delete route.
func (r *PropertyRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, p := range r.s.properties {
		if p.ID == id {
			r.s.properties = append(r.s.properties[:i], r.s.properties[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
