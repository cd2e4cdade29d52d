package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
	repo "github.com/oksasatya/ghardekho-api/internal/domain/repository"
)

type SavedPropertyService struct {
	Saved      repo.SavedPropertyRepository
	Properties repo.PropertyRepository
	Logger     *logrus.Logger
}

func NewSavedPropertyService(saved repo.SavedPropertyRepository, properties repo.PropertyRepository, logger *logrus.Logger) *SavedPropertyService {
	return &SavedPropertyService{Saved: saved, Properties: properties, Logger: logger}
}

func (s *SavedPropertyService) Save(ctx context.Context, userID, propertyID string) error {
	if _, err := s.Properties.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	link := &entity.SavedProperty{
		UserID:     userID,
		PropertyID: propertyID,
		SavedAt:    time.Now().UTC(),
	}
	if err := s.Saved.Create(ctx, link); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrAlreadySaved
		}
		return err
	}
	incr(statSaves)
	return nil
}

// List returns the user's saved properties in the order they were saved.
// Links whose property no longer exists are left out.
func (s *SavedPropertyService) List(ctx context.Context, userID string) ([]entity.Property, error) {
	links, err := s.Saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Property, 0, len(links))
	for _, l := range links {
		p, err := s.Properties.GetByID(ctx, l.PropertyID)
		if errors.Is(err, repo.ErrNotFound) {
			if s.Logger != nil {
				s.Logger.WithFields(logrus.Fields{"user_id": userID, "property_id": l.PropertyID}).Debug("skipping orphaned saved link")
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *SavedPropertyService) Remove(ctx context.Context, userID, propertyID string) error {
	if err := s.Saved.Delete(ctx, userID, propertyID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSavedNotFound
		}
		return err
	}
	incr(statRemovals)
	return nil
}
