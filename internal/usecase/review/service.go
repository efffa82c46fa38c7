package review

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
	reviewRepo repository.ReviewRepository
	placeRepo  repository.PlaceRepository
	userRepo   repository.UserRepository
}

func NewService(reviewRepo repository.ReviewRepository, placeRepo repository.PlaceRepository, userRepo repository.UserRepository) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		userRepo:   userRepo,
	}
}

type CreateInput struct {
	Text    string
	Rating  int
	PlaceID uuid.UUID
}

// Create posts a review authored by the acting user. Owners cannot review
// their own place, and each user gets one review per place. The lookup
// pre-check is backed by the unique (user_id, place_id) index, which settles
// concurrent duplicates.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*entity.Review, error) {
	place, err := s.placeRepo.GetByID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, actor.ID); err != nil {
		return nil, err
	}

	if place.OwnerID == actor.ID {
		return nil, domain.ErrOwnReviewForbidden
	}

	_, err = s.reviewRepo.GetByUserAndPlace(ctx, actor.ID, input.PlaceID)
	if err == nil {
		return nil, domain.ErrDuplicateReview
	}
	if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, fmt.Errorf("checking existing review: %w", err)
	}

	review, err := entity.NewReview(input.Text, input.Rating, actor.ID, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

type UpdateInput struct {
	Text   *string
	Rating *int
}

// Update merges the supplied fields. Only the review's author may change it.
func (s *Service) Update(ctx context.Context, actor domain.Actor, reviewID uuid.UUID, input UpdateInput) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if review.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	if input.Text != nil {
		review.Text = *input.Text
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	review.Touch()
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, reviewID uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != actor.ID {
		return domain.ErrForbidden
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *Service) GetByID(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	return s.reviewRepo.GetByID(ctx, reviewID)
}

func (s *Service) List(ctx context.Context) ([]entity.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *Service) ListByPlace(ctx context.Context, placeID uuid.UUID, page, perPage int) ([]entity.Review, *pagination.Info, error) {
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, nil, err
	}
	return s.reviewRepo.ListByPlace(ctx, placeID, pagination.NewParams(page, perPage))
}
