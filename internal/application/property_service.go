package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	repo "github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

// PlaceholderImages are attached to listings created without images.
var PlaceholderImages = []string{
	"https://images.pexels.com/photos/323780/pexels-photo-323780.jpeg",
	"https://images.pexels.com/photos/1396122/pexels-photo-1396122.jpeg",
	"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg",
}

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

type PropertyService struct {
	Properties repo.PropertyRepository
	Users      repo.UserRepository
	Search     PropertySearcher
	Notifier   Notifier
	Logger     *logrus.Logger
}

func NewPropertyService(properties repo.PropertyRepository, users repo.UserRepository, search PropertySearcher, notifier Notifier, logger *logrus.Logger) *PropertyService {
	if notifier == nil {
		notifier = NopNotifier
	}
	return &PropertyService{
		Properties: properties,
		Users:      users,
		Search:     search,
		Notifier:   notifier,
		Logger:     logger,
	}
}

// CanPostListing is the single authorization rule for creating listings.
// Every role may post.
func CanPostListing(u entity.User) bool {
	return u.Role.Valid()
}

// CreatePropertyInput carries caller-supplied fields before coercion.
// Numeric fields hold their textual form, as sent.
type CreatePropertyInput struct {
	Title       string
	Description string
	Price       string
	Type        string
	Bedrooms    string
	Bathrooms   string
	Area        string
	Location    entity.Location
	Features    []string
	Images      []string
}

func (s *PropertyService) List(ctx context.Context, f PropertyFilter) ([]entity.Property, error) {
	all, err := s.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Property, 0, len(all))
	for _, p := range all {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create validates in, then stores a new listing posted by userID.
// Nothing is written unless every field is valid.
func (s *PropertyService) Create(ctx context.Context, userID string, in CreatePropertyInput) (*entity.Property, error) {
	p, err := buildProperty(in)
	if err != nil {
		return nil, err
	}

	owner, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !CanPostListing(*owner) {
		return nil, ErrForbidden
	}

	p.PostedBy = owner.ID
	p.CreatedAt = time.Now().UTC()
	if err := s.Properties.Create(ctx, &p); err != nil {
		return nil, err
	}
	incr(statListingsCreated)

	if s.Search != nil {
		if err := s.Search.Index(ctx, p); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("index property failed")
		}
	}
	if err := s.Notifier.ListingPublished(ctx, *owner, p); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("property_id", p.ID).Warn("enqueue listing email failed")
	}
	return &p, nil
}

// SearchText runs a full-text query. Without a configured index the
// result is empty. Hits whose property no longer exists are skipped.
func (s *PropertyService) SearchText(ctx context.Context, q string, size int) ([]entity.Property, error) {
	out := make([]entity.Property, 0)
	q = strings.TrimSpace(q)
	if s.Search == nil || q == "" {
		return out, nil
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}
	incr(statSearches)

	ids, err := s.Search.Search(ctx, q, size)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		p, err := s.Properties.GetByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// Reindex pushes every stored listing into the search index.
func (s *PropertyService) Reindex(ctx context.Context) (int, error) {
	if s.Search == nil {
		return 0, nil
	}
	all, err := s.Properties.List(ctx)
	if err != nil {
		return 0, err
	}
	for i, p := range all {
		if err := s.Search.Index(ctx, p); err != nil {
			return i, err
		}
	}
	return len(all), nil
}

func buildProperty(in CreatePropertyInput) (entity.Property, error) {
	var p entity.Property

	p.Title = strings.TrimSpace(in.Title)
	p.Description = strings.TrimSpace(in.Description)
	p.Location = entity.Location{
		City:    strings.TrimSpace(in.Location.City),
		State:   strings.TrimSpace(in.Location.State),
		Address: strings.TrimSpace(in.Location.Address),
	}
	required := []struct{ name, value string }{
		{"title", p.Title},
		{"description", p.Description},
		{"location.city", p.Location.City},
		{"location.state", p.Location.State},
		{"location.address", p.Location.Address},
	}
	for _, r := range required {
		if r.value == "" {
			return p, fmt.Errorf("%w: %s is required", ErrInvalidInput, r.name)
		}
	}

	p.Type = entity.PropertyType(strings.TrimSpace(in.Type))
	if !p.Type.Valid() {
		return p, fmt.Errorf("%w: type must be one of Apartment, House, Villa, Plot, Commercial", ErrInvalidInput)
	}

	price, err := parseWhole("price", in.Price)
	if err != nil {
		return p, err
	}
	if price <= 0 {
		return p, fmt.Errorf("%w: price must be greater than 0", ErrInvalidInput)
	}
	p.Price = price

	bedrooms, err := parseWhole("bedrooms", in.Bedrooms)
	if err != nil {
		return p, err
	}
	bathrooms, err := parseWhole("bathrooms", in.Bathrooms)
	if err != nil {
		return p, err
	}
	if bedrooms < 0 || bathrooms < 0 {
		return p, fmt.Errorf("%w: bedrooms and bathrooms must not be negative", ErrInvalidInput)
	}
	if bedrooms > math.MaxInt32 || bathrooms > math.MaxInt32 {
		return p, fmt.Errorf("%w: bedrooms and bathrooms are out of range", ErrInvalidInput)
	}
	p.Bedrooms = int(bedrooms)
	p.Bathrooms = int(bathrooms)

	area, err := parseNumber("area", in.Area)
	if err != nil {
		return p, err
	}
	if area <= 0 {
		return p, fmt.Errorf("%w: area must be greater than 0", ErrInvalidInput)
	}
	p.Area = area

	p.Features = compact(in.Features)
	p.Images = compact(in.Images)
	if len(p.Images) == 0 {
		p.Images = append([]string(nil), PlaceholderImages...)
	}
	return p, nil
}

// parseWhole accepts integers and floats with no fractional part.
func parseWhole(field, raw string) (int64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidInput, field)
	}
	return int64(f), nil
}

func parseNumber(field, raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, field)
	}
	return f, nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
