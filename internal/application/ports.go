package application

import (
	"context"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// Notifier sends user-facing notifications. Implementations must not block
// the request for long; failures are logged by the caller and never fail
// the operation that triggered them.
type Notifier interface {
	Welcome(ctx context.Context, u entity.User) error
	ListingPublished(ctx context.Context, owner entity.User, p entity.Property) error
}

// PropertySearcher is a full-text index over listings.
type PropertySearcher interface {
	Index(ctx context.Context, p entity.Property) error
	// Search returns matching property ids, best match first.
	Search(ctx context.Context, q string, size int) ([]string, error)
}

type nopNotifier struct{}

func (nopNotifier) Welcome(context.Context, entity.User) error { return nil }

func (nopNotifier) ListingPublished(context.Context, entity.User, entity.Property) error { return nil }

// NopNotifier discards every notification.
var NopNotifier Notifier = nopNotifier{}
