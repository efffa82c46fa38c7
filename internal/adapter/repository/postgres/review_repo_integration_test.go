package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
)

func mustNewReview(t *testing.T, userID, placeID uuid.UUID) *entity.Review {
	t.Helper()
	review, err := entity.NewReview("Great stay", 5, userID, placeID)
	require.NoError(t, err)
	return review
}

func TestIntegrationReviewRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewReviewRepo(db.Pool)
	placeRepo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("creates review successfully", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		reviewer := createOwner(t, db, "reviewer@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		review := mustNewReview(t, reviewer.ID, place.ID)
		err := repo.Create(ctx, review)

		require.NoError(t, err)

		found, err := placeRepo.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{review.ID}, found.ReviewIDs)
	})

	t.Run("second review for the same place maps to ErrDuplicateReview", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		reviewer := createOwner(t, db, "reviewer@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		require.NoError(t, repo.Create(ctx, mustNewReview(t, reviewer.ID, place.ID)))

		err := repo.Create(ctx, mustNewReview(t, reviewer.ID, place.ID))

		assert.ErrorIs(t, err, domain.ErrDuplicateReview)
	})
}

func TestIntegrationReviewRepo_GetByUserAndPlace(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewReviewRepo(db.Pool)
	placeRepo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("finds the review pair", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		reviewer := createOwner(t, db, "reviewer@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		review := mustNewReview(t, reviewer.ID, place.ID)
		require.NoError(t, repo.Create(ctx, review))

		found, err := repo.GetByUserAndPlace(ctx, reviewer.ID, place.ID)

		require.NoError(t, err)
		assert.Equal(t, review.ID, found.ID)
	})

	t.Run("returns not found for unknown pair", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		_, err := repo.GetByUserAndPlace(ctx, uuid.New(), uuid.New())

		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})
}

func TestIntegrationReviewRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewReviewRepo(db.Pool)
	placeRepo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("updates review fields", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		reviewer := createOwner(t, db, "reviewer@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		review := mustNewReview(t, reviewer.ID, place.ID)
		require.NoError(t, repo.Create(ctx, review))

		review.Rating = 2
		review.Text = "Changed my mind"
		review.Touch()
		require.NoError(t, repo.Update(ctx, review))

		found, err := repo.GetByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.Rating)
		assert.Equal(t, "Changed my mind", found.Text)
	})
}

func TestIntegrationReviewRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewReviewRepo(db.Pool)
	placeRepo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("deletes review", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		reviewer := createOwner(t, db, "reviewer@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		review := mustNewReview(t, reviewer.ID, place.ID)
		require.NoError(t, repo.Create(ctx, review))

		require.NoError(t, repo.Delete(ctx, review.ID))

		_, err := repo.GetByID(ctx, review.ID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})
}

func TestIntegrationReviewRepo_ListByPlace(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Cleanup(t)

	repo := postgres.NewReviewRepo(db.Pool)
	placeRepo := postgres.NewPlaceRepo(db.Pool)
	ctx := context.Background()

	t.Run("paginates reviews of a place", func(t *testing.T) {
		db.Truncate(t, "users", "places", "reviews")

		owner := createOwner(t, db, "owner@example.com")
		place := mustNewPlace(t, "Cozy Cabin", owner.ID)
		require.NoError(t, placeRepo.Create(ctx, place))

		for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
			reviewer := createOwner(t, db, email)
			review, err := entity.NewReview("Review", i+1, reviewer.ID, place.ID)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, review))
		}

		reviews, info, err := repo.ListByPlace(ctx, place.ID, pagination.NewParams(1, 2))

		require.NoError(t, err)
		assert.Len(t, reviews, 2)
		assert.Equal(t, 3, info.TotalItems)
		assert.True(t, info.HasNext)
	})
}
