// Package notify turns domain events into queued email jobs.
package notify

import (
	"context"
	"time"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/pkg/mailer"
	mailtpl "github.com/oksasatya/ghardekho-api/pkg/mailer/templates"
)

const publishTimeout = 3 * time.Second

// Publisher puts a JSON message on the email queue.
// *helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type EmailNotifier struct {
	Pub   Publisher
	Brand mailtpl.Brand
}

func NewEmailNotifier(pub Publisher, brand mailtpl.Brand) *EmailNotifier {
	return &EmailNotifier{Pub: pub, Brand: brand}
}

func (n *EmailNotifier) Welcome(ctx context.Context, u entity.User) error {
	if !n.enabled() {
		return nil
	}
	data := mailtpl.NewWelcomeData(n.Brand, u.Name, u.Email, mailtpl.WithTime(u.CreatedAt))
	return n.publish(ctx, mailer.EmailJob{To: u.Email, Template: mailtpl.Welcome, Data: data})
}

func (n *EmailNotifier) ListingPublished(ctx context.Context, owner entity.User, p entity.Property) error {
	if !n.enabled() {
		return nil
	}
	data := mailtpl.NewListingPublishedData(n.Brand, owner.Name, owner.Email,
		mailtpl.WithTime(p.CreatedAt),
		mailtpl.WithListing(p.ID, p.Title, p.Location.City, string(p.Type), p.Price),
	)
	return n.publish(ctx, mailer.EmailJob{To: owner.Email, Template: mailtpl.ListingPublished, Data: data})
}

func (n *EmailNotifier) enabled() bool {
	return n != nil && n.Pub != nil
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob) error {
	c, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return n.Pub.PublishJSON(c, job)
}
