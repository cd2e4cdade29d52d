package memory

import (
	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
)

// Load replaces the store contents with f. Intended for process start and
// test setup, before the store is shared.
func (s *Store) Load(f seed.Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]entity.User(nil), f.Users...)
	s.properties = make([]entity.Property, len(f.Properties))
	for i, p := range f.Properties {
		s.properties[i] = p.Clone()
	}
	s.saved = append([]entity.SavedProperty(nil), f.Saved...)
}
