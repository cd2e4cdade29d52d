package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
)

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, "Asha", "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Asha", res.User.Name)
	assert.Equal(t, entity.RoleUser, res.User.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	assert.Equal(t, []string{"asha@example.com"}, f.notifier.welcomes)

	id, err := f.auth.Authenticate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)

	stored, err := f.store.Users().GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret1"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Register(context.Background(), "John again", "john@example.com", "whatever")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, f.notifier.welcomes)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.auth.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "2", res.User.ID)
	assert.Equal(t, entity.RoleAgent, res.User.Role)

	_, wrongPwd := f.auth.Login(ctx, "jane@example.com", "nope")
	_, unknown := f.auth.Login(ctx, "ghost@example.com", "password123")
	assert.ErrorIs(t, wrongPwd, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPwd.Error(), unknown.Error())
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Authenticate("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = f.auth.Authenticate("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := helpers.NewJWTManager("other-secret", time.Hour)
	forged, _, err := other.Generate("1")
	require.NoError(t, err)
	_, err = f.auth.Authenticate(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	old, _, err := expired.Generate("1")
	require.NoError(t, err)
	_, err = f.auth.Authenticate(old)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticate_DoesNotCheckStore(t *testing.T) {
	f := newFixture(t)
	token, _, err := f.auth.JWT.Generate("ghost")
	require.NoError(t, err)

	id, err := f.auth.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "ghost", id)

	_, err = f.auth.CurrentUser(context.Background(), id)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCurrentUser(t *testing.T) {
	f := newFixture(t)
	u, err := f.auth.CurrentUser(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, entity.PublicUser{ID: "1", Name: "John Doe", Email: "john@example.com", Role: entity.RoleUser}, u)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Register(context.Background(), "Asha", "asha@example.com", strings.Repeat("p", 80))
	assert.ErrorIs(t, err, ErrInvalidInput)

	users, _, _ := f.store.Counts()
	assert.Equal(t, 2, users)
	assert.Empty(t, f.notifier.welcomes)
}

func TestNewAuthService_DummyHashReady(t *testing.T) {
	f := newFixture(t)
	require.NotEmpty(t, f.auth.dummyHash)
	cost, err := bcrypt.Cost([]byte(f.auth.dummyHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
