package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	repo "github.com/oksasatya/ghardekho-api/internal/domain/repository"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
)

type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	BcryptCost int
	Notifier   Notifier
	Logger     *logrus.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, bcryptCost int, notifier Notifier, logger *logrus.Logger) *AuthService {
	if notifier == nil {
		notifier = NopNotifier
	}
	s := &AuthService{
		Users:      users,
		JWT:        jwt,
		BcryptCost: bcryptCost,
		Notifier:   notifier,
		Logger:     logger,
	}
	s.dummy()
	return s
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"-"`
	User      entity.PublicUser `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
		}
		return nil, err
	}
	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		Role:      entity.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	incr(statRegistrations)

	if err := s.Notifier.Welcome(ctx, *u); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("enqueue welcome email failed")
	}
	return s.issue(u)
}

// Login fails with ErrInvalidCredentials for an unknown email and for a
// wrong password alike. Unknown emails still pay for one bcrypt compare.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		_ = helpers.CompareHashAndPassword(s.dummy(), password)
		incr(statLoginFailures)
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		incr(statLoginFailures)
		return nil, ErrInvalidCredentials
	}
	incr(statLogins)
	return s.issue(u)
}

// Authenticate verifies a bearer token and returns the embedded user id.
// It does not consult the user store.
func (s *AuthService) Authenticate(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.PublicUser{}, ErrUserNotFound
		}
		return entity.PublicUser{}, err
	}
	return u.Public(), nil
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u.Public()}, nil
}

// dummy returns the hash compared against for unknown emails. It is built
// once, in NewAuthService, so no login pays for generating it.
func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = helpers.HashPassword("ghardekho-dummy-password", s.BcryptCost)
	})
	return s.dummyHash
}
