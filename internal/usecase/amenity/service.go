package amenity

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
)

type Service struct {
	amenityRepo repository.AmenityRepository
}

func NewService(amenityRepo repository.AmenityRepository) *Service {
	return &Service{amenityRepo: amenityRepo}
}

// Create adds an amenity. Admin only; the unique index on amenities.name
// rejects duplicates.
func (s *Service) Create(ctx context.Context, actor domain.Actor, name string) (*entity.Amenity, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrAdminRequired
	}

	amenity, err := entity.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		return nil, err
	}

	return amenity, nil
}

type UpdateInput struct {
	Name *string
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, amenityID uuid.UUID, input UpdateInput) (*entity.Amenity, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrAdminRequired
	}

	amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		amenity.Name = *input.Name
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	amenity.Touch()
	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, err
	}

	return amenity, nil
}

func (s *Service) GetByID(ctx context.Context, amenityID uuid.UUID) (*entity.Amenity, error) {
	return s.amenityRepo.GetByID(ctx, amenityID)
}

func (s *Service) List(ctx context.Context) ([]entity.Amenity, error) {
	return s.amenityRepo.List(ctx)
}
