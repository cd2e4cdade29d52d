package memory

import (
	"sync"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

// Store is the process-wide in-memory entity store. It owns the user,
// property and saved-property collections; the repositories returned by
// its accessors are views over the same data and share one lock.
type Store struct {
	mu         sync.RWMutex
	users      []entity.User
	properties []entity.Property
	saved      []entity.SavedProperty
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() repository.UserRepository { return &UserRepository{s: s} }

func (s *Store) Properties() repository.PropertyRepository { return &PropertyRepository{s: s} }

func (s *Store) SavedProperties() repository.SavedPropertyRepository {
	return &SavedPropertyRepository{s: s}
}

// Counts reports collection sizes, used for startup logging.
func (s *Store) Counts() (users, properties, saved int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), len(s.properties), len(s.saved)
}
