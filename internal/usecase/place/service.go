package place

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
)

type Service struct {
	placeRepo   repository.PlaceRepository
	userRepo    repository.UserRepository
	amenityRepo repository.AmenityRepository
}

func NewService(placeRepo repository.PlaceRepository, userRepo repository.UserRepository, amenityRepo repository.AmenityRepository) *Service {
	return &Service{
		placeRepo:   placeRepo,
		userRepo:    userRepo,
		amenityRepo: amenityRepo,
	}
}

type CreateInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	AmenityIDs  []uuid.UUID
}

// Create registers a place owned by the acting user. Amenity ids that do not
// resolve are skipped without error.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*entity.Place, error) {
	if _, err := s.userRepo.GetByID(ctx, actor.ID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("resolving owner: %w", err)
	}

	place, err := entity.NewPlace(input.Title, input.Description, input.Price, input.Latitude, input.Longitude, actor.ID)
	if err != nil {
		return nil, err
	}

	amenityIDs, err := s.resolveAmenities(ctx, input.AmenityIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range amenityIDs {
		place.AddAmenity(id)
	}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

type UpdateInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	AmenityIDs  *[]uuid.UUID
}

// Update merges the supplied fields. Ownership never changes after creation;
// there is no owner field to update. Only the owner or an admin may modify a
// place.
func (s *Service) Update(ctx context.Context, actor domain.Actor, placeID uuid.UUID, input UpdateInput) (*entity.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && place.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		place.Title = *input.Title
	}
	if input.Description != nil {
		place.Description = *input.Description
	}
	if input.Price != nil {
		place.Price = *input.Price
	}
	if input.Latitude != nil {
		place.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		place.Longitude = *input.Longitude
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	place.Touch()
	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	if input.AmenityIDs != nil {
		amenityIDs, err := s.resolveAmenities(ctx, *input.AmenityIDs)
		if err != nil {
			return nil, err
		}
		if err := s.placeRepo.ReplaceAmenities(ctx, placeID, amenityIDs); err != nil {
			return nil, err
		}
		place.AmenityIDs = amenityIDs
	}

	return place, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, placeID uuid.UUID) error {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin && place.OwnerID != actor.ID {
		return domain.ErrForbidden
	}

	return s.placeRepo.Delete(ctx, placeID)
}

func (s *Service) GetByID(ctx context.Context, placeID uuid.UUID) (*entity.Place, error) {
	return s.placeRepo.GetByID(ctx, placeID)
}

func (s *Service) List(ctx context.Context, page, perPage int) ([]entity.Place, *pagination.Info, error) {
	return s.placeRepo.List(ctx, pagination.NewParams(page, perPage))
}

// resolveAmenities keeps the ids that exist and drops the rest, deduplicated.
func (s *Service) resolveAmenities(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var resolved []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		_, err := s.amenityRepo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrAmenityNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving amenity: %w", err)
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}
