package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/domain/repository"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Load(seed.Demo("hash"))
	return s
}

func TestLoadCounts(t *testing.T) {
	users, props, saved := seeded(t).Counts()
	assert.Equal(t, 2, users)
	assert.Equal(t, 6, props)
	assert.Equal(t, 2, saved)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := seeded(t).Users()

	err := users.Create(ctx, &entity.User{Name: "Copy", Email: "john@example.com", Role: entity.RoleUser})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// exact match only
	u := &entity.User{Name: "Upper", Email: "John@example.com", Role: entity.RoleUser}
	require.NoError(t, users.Create(ctx, u))
	assert.NotEmpty(t, u.ID)

	got, err := users.GetByEmail(ctx, "John@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserRepository_ConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := users.Create(ctx, &entity.User{Email: "race@example.com"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)
}

func TestPropertyRepository_ListOrderAndIsolation(t *testing.T) {
	ctx := context.Background()
	props := seeded(t).Properties()

	list, err := props.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)
	for i, p := range list {
		assert.Equal(t, string(rune('1'+i)), p.ID)
	}

	list[0].Features[0] = "mutated"
	again, err := props.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Swimming Pool", again.Features[0])

	_, err = props.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSavedPropertyRepository(t *testing.T) {
	ctx := context.Background()
	saved := seeded(t).SavedProperties()

	links, err := saved.ListByUser(ctx, "1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "2", links[0].PropertyID)
	assert.Equal(t, "5", links[1].PropertyID)

	err = saved.Create(ctx, &entity.SavedProperty{UserID: "1", PropertyID: "2"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	require.NoError(t, saved.Delete(ctx, "1", "2"))
	assert.ErrorIs(t, saved.Delete(ctx, "1", "2"), repository.ErrNotFound)

	links, err = saved.ListByUser(ctx, "2")
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestSavedPropertyRepository_ConcurrentSaveOneLink(t *testing.T) {
	ctx := context.Background()
	saved := NewStore().SavedProperties()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = saved.Create(ctx, &entity.SavedProperty{UserID: "u", PropertyID: "p"})
		}()
	}
	wg.Wait()

	links, err := saved.ListByUser(ctx, "u")
	require.NoError(t, err)
	assert.Len(t, links, 1)
}
