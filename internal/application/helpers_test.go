package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/memory"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
)

type fixture struct {
	store    *memory.Store
	auth     *AuthService
	props    *PropertyService
	saved    *SavedPropertyService
	notifier *recordingNotifier
	search   *fakeSearcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := helpers.HashPassword(seed.DemoPassword, bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.NewStore()
	store.Load(seed.Demo(hash))

	n := &recordingNotifier{}
	s := &fakeSearcher{}
	logger := helpers.NewDiscardLogger()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return &fixture{
		store:    store,
		auth:     NewAuthService(store.Users(), jwt, bcrypt.MinCost, n, logger),
		props:    NewPropertyService(store.Properties(), store.Users(), s, n, logger),
		saved:    NewSavedPropertyService(store.SavedProperties(), store.Properties(), logger),
		notifier: n,
		search:   s,
	}
}

type recordingNotifier struct {
	mu       sync.Mutex
	welcomes []string
	listings []string
}

func (n *recordingNotifier) Welcome(_ context.Context, u entity.User) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.welcomes = append(n.welcomes, u.Email)
	return nil
}

func (n *recordingNotifier) ListingPublished(_ context.Context, _ entity.User, p entity.Property) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listings = append(n.listings, p.ID)
	return nil
}

type fakeSearcher struct {
	indexed []string
	hits    []string
	err     error
}

func (s *fakeSearcher) Index(_ context.Context, p entity.Property) error {
	s.indexed = append(s.indexed, p.ID)
	return s.err
}

func (s *fakeSearcher) Search(context.Context, string, int) ([]string, error) {
	return s.hits, nil
}
