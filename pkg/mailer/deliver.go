package mailer

import (
	"context"
	"errors"
	"fmt"

	mailtpl "github.com/oksasatya/ghardekho-api/pkg/mailer/templates"
)

// ErrBadJob marks a job that can never be delivered; the worker drops it
// instead of requeueing.
var ErrBadJob = errors.New("bad email job")

// Deliver renders job (when it names a template) and hands it to s.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	if job.To == "" {
		return fmt.Errorf("%w: missing recipient", ErrBadJob)
	}
	job.EnsureRecipient()

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		sub, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", ErrBadJob, job.Template, err)
		}
		subject, text, html = sub, t, h
	}
	if subject == "" {
		return fmt.Errorf("%w: empty subject", ErrBadJob)
	}
	return s.Send(ctx, job.To, subject, text, html)
}
