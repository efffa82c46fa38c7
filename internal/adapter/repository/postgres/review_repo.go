package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

func (r *ReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID, review.Text, review.Rating, review.UserID, review.PlaceID,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "reviews_user_id_place_id_key") {
			return domain.ErrDuplicateReview
		}
		return fmt.Errorf("inserting review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	return r.scanReview(ctx, query, id)
}

func (r *ReviewRepo) GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND place_id = $2
	`
	return r.scanReview(ctx, query, userID, placeID)
}

func (r *ReviewRepo) scanReview(ctx context.Context, query string, args ...any) (*entity.Review, error) {
	var review entity.Review
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&review.ID, &review.Text, &review.Rating, &review.UserID, &review.PlaceID,
		&review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("querying review: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepo) List(ctx context.Context) ([]entity.Review, error) {
	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()
	return r.collectReviews(rows)
}

func (r *ReviewRepo) ListByPlace(ctx context.Context, placeID uuid.UUID, params pagination.Params) ([]entity.Review, *pagination.Info, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE place_id = $1`, placeID).Scan(&total)
	if err != nil {
		return nil, nil, fmt.Errorf("counting reviews: %w", err)
	}

	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE place_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, placeID, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("listing reviews by place: %w", err)
	}
	defer rows.Close()

	reviews, err := r.collectReviews(rows)
	if err != nil {
		return nil, nil, err
	}
	return reviews, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *ReviewRepo) collectReviews(rows pgx.Rows) ([]entity.Review, error) {
	var reviews []entity.Review
	for rows.Next() {
		var review entity.Review
		if err := rows.Scan(
			&review.ID, &review.Text, &review.Rating, &review.UserID, &review.PlaceID,
			&review.CreatedAt, &review.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET text = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, review.ID, review.Text, review.Rating, review.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
