package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailtpl "github.com/oksasatya/ghardekho-api/pkg/mailer/templates"
)

type fakeSender struct {
	to, subject, text, html string
	err                     error
}

func (f *fakeSender) Send(_ context.Context, to, subject, text, html string) error {
	f.to, f.subject, f.text, f.html = to, subject, text, html
	return f.err
}

func TestDeliver_Template(t *testing.T) {
	s := &fakeSender{}
	data := mailtpl.NewWelcomeData(mailtpl.Brand{CompanyName: "GharDekho"}, "Ravi", "")
	job := EmailJob{To: "ravi@example.com", Template: mailtpl.Welcome, Data: data}

	require.NoError(t, Deliver(context.Background(), s, job))
	assert.Equal(t, "ravi@example.com", s.to)
	assert.Equal(t, "Welcome to GharDekho, Ravi", s.subject)
	assert.Contains(t, s.text, "ravi@example.com")
	assert.Contains(t, s.html, "ravi@example.com")
}

func TestDeliver_Raw(t *testing.T) {
	s := &fakeSender{}
	job := EmailJob{To: "a@example.com", Subject: "hi", Text: "body"}
	require.NoError(t, Deliver(context.Background(), s, job))
	assert.Equal(t, "hi", s.subject)
	assert.Equal(t, "body", s.text)
}

func TestDeliver_BadJobs(t *testing.T) {
	tests := map[string]EmailJob{
		"no recipient":     {Subject: "hi"},
		"unknown template": {To: "a@example.com", Template: "missing"},
		"no subject":       {To: "a@example.com", Text: "body"},
	}
	for name, job := range tests {
		t.Run(name, func(t *testing.T) {
			s := &fakeSender{}
			err := Deliver(context.Background(), s, job)
			assert.ErrorIs(t, err, ErrBadJob)
			assert.Empty(t, s.to)
		})
	}
}

func TestDeliver_SenderErrorIsRetryable(t *testing.T) {
	s := &fakeSender{err: errors.New("mailgun 503")}
	err := Deliver(context.Background(), s, EmailJob{To: "a@example.com", Subject: "hi"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadJob)
}

func TestEnsureRecipient(t *testing.T) {
	j := EmailJob{To: "a@example.com", Data: map[string]any{"Email": ""}}
	j.EnsureRecipient()
	assert.Equal(t, "a@example.com", j.Data["Email"])
	assert.Equal(t, "a@example.com", j.Data["RecipientEmail"])

	j = EmailJob{To: "a@example.com", Data: map[string]any{"Email": "b@example.com"}}
	j.EnsureRecipient()
	assert.Equal(t, "b@example.com", j.Data["Email"])
}
