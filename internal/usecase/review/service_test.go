package review_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/mocks"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/review"
)

type fixture struct {
	reviewRepo *mocks.MockReviewRepository
	placeRepo  *mocks.MockPlaceRepository
	userRepo   *mocks.MockUserRepository
	svc        *review.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		reviewRepo: mocks.NewMockReviewRepository(ctrl),
		placeRepo:  mocks.NewMockPlaceRepository(ctrl),
		userRepo:   mocks.NewMockUserRepository(ctrl),
	}
	f.svc = review.NewService(f.reviewRepo, f.placeRepo, f.userRepo)
	return f
}

func TestService_Create(t *testing.T) {
	t.Run("creates review", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(&entity.Place{ID: placeID, OwnerID: uuid.New()}, nil)
		f.userRepo.EXPECT().GetByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
		f.reviewRepo.EXPECT().GetByUserAndPlace(ctx, authorID, placeID).Return(nil, domain.ErrReviewNotFound)
		f.reviewRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		r, err := f.svc.Create(ctx, domain.Actor{ID: authorID}, review.CreateInput{
			Text:    "Great stay",
			Rating:  5,
			PlaceID: placeID,
		})

		require.NoError(t, err)
		assert.Equal(t, authorID, r.UserID)
		assert.Equal(t, placeID, r.PlaceID)
		assert.Equal(t, 5, r.Rating)
	})

	t.Run("owner cannot review own place", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		ownerID := uuid.New()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(&entity.Place{ID: placeID, OwnerID: ownerID}, nil)
		f.userRepo.EXPECT().GetByID(ctx, ownerID).Return(&entity.User{ID: ownerID}, nil)

		_, err := f.svc.Create(ctx, domain.Actor{ID: ownerID}, review.CreateInput{
			Text:    "Lovely",
			Rating:  5,
			PlaceID: placeID,
		})

		assert.ErrorIs(t, err, domain.ErrOwnReviewForbidden)
	})

	t.Run("one review per user per place", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(&entity.Place{ID: placeID, OwnerID: uuid.New()}, nil)
		f.userRepo.EXPECT().GetByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
		f.reviewRepo.EXPECT().GetByUserAndPlace(ctx, authorID, placeID).Return(&entity.Review{ID: uuid.New()}, nil)

		_, err := f.svc.Create(ctx, domain.Actor{ID: authorID}, review.CreateInput{
			Text:    "Again",
			Rating:  4,
			PlaceID: placeID,
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
	})

	t.Run("rejects unknown place", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(nil, domain.ErrPlaceNotFound)

		_, err := f.svc.Create(ctx, domain.Actor{ID: uuid.New()}, review.CreateInput{
			Text:    "Nice",
			Rating:  4,
			PlaceID: placeID,
		})

		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("rejects rating out of range", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(&entity.Place{ID: placeID, OwnerID: uuid.New()}, nil)
		f.userRepo.EXPECT().GetByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
		f.reviewRepo.EXPECT().GetByUserAndPlace(ctx, authorID, placeID).Return(nil, domain.ErrReviewNotFound)

		_, err := f.svc.Create(ctx, domain.Actor{ID: authorID}, review.CreateInput{
			Text:    "Bad rating",
			Rating:  6,
			PlaceID: placeID,
		})

		assert.True(t, domain.IsValidationError(err))
	})
}

func TestService_Update(t *testing.T) {
	t.Run("author updates review", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		reviewID := uuid.New()

		stored := &entity.Review{ID: reviewID, UserID: authorID, Text: "Great", Rating: 5, PlaceID: uuid.New()}
		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(stored, nil)
		f.reviewRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		rating := 3
		r, err := f.svc.Update(ctx, domain.Actor{ID: authorID}, reviewID, review.UpdateInput{Rating: &rating})

		require.NoError(t, err)
		assert.Equal(t, 3, r.Rating)
		assert.Equal(t, "Great", r.Text)
	})

	t.Run("non-author forbidden", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		reviewID := uuid.New()

		stored := &entity.Review{ID: reviewID, UserID: uuid.New(), Text: "Great", Rating: 5}
		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(stored, nil)

		rating := 1
		_, err := f.svc.Update(ctx, domain.Actor{ID: uuid.New()}, reviewID, review.UpdateInput{Rating: &rating})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("merged result must still validate", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		reviewID := uuid.New()

		stored := &entity.Review{ID: reviewID, UserID: authorID, PlaceID: uuid.New(), Text: "Great", Rating: 5}
		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(stored, nil)

		rating := 0
		_, err := f.svc.Update(ctx, domain.Actor{ID: authorID}, reviewID, review.UpdateInput{Rating: &rating})

		assert.True(t, domain.IsValidationError(err))
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("author deletes review", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		authorID := uuid.New()
		reviewID := uuid.New()

		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, UserID: authorID}, nil)
		f.reviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

		err := f.svc.Delete(ctx, domain.Actor{ID: authorID}, reviewID)
		require.NoError(t, err)
	})

	t.Run("non-author forbidden", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		reviewID := uuid.New()

		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, UserID: uuid.New()}, nil)

		err := f.svc.Delete(ctx, domain.Actor{ID: uuid.New()}, reviewID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("returns not found for unknown review", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		reviewID := uuid.New()

		f.reviewRepo.EXPECT().GetByID(ctx, reviewID).Return(nil, domain.ErrReviewNotFound)

		err := f.svc.Delete(ctx, domain.Actor{ID: uuid.New()}, reviewID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})
}

func TestService_ListByPlace(t *testing.T) {
	t.Run("lists reviews for a place", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		placeID := uuid.New()

		reviews := []entity.Review{{Text: "Great", Rating: 5, PlaceID: placeID}}
		info := &pagination.Info{Page: 1, PerPage: 20, TotalItems: 1, TotalPages: 1}

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(&entity.Place{ID: placeID}, nil)
		f.reviewRepo.EXPECT().ListByPlace(ctx, placeID, pagination.NewParams(1, 20)).Return(reviews, info, nil)

		result, pageInfo, err := f.svc.ListByPlace(ctx, placeID, 1, 20)
		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 1, pageInfo.TotalItems)
	})

	t.Run("unknown place propagates not found", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		placeID := uuid.New()

		f.placeRepo.EXPECT().GetByID(ctx, placeID).Return(nil, domain.ErrPlaceNotFound)

		_, _, err := f.svc.ListByPlace(ctx, placeID, 1, 20)
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})
}
