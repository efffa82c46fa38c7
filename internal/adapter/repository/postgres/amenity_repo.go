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
)

type AmenityRepo struct {
	pool *pgxpool.Pool
}

func NewAmenityRepo(pool *pgxpool.Pool) *AmenityRepo {
	return &AmenityRepo{pool: pool}
}

func (r *AmenityRepo) Create(ctx context.Context, amenity *entity.Amenity) error {
	query := `
		INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		amenity.ID, amenity.Name, amenity.CreatedAt, amenity.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "amenities_name_key") {
			return domain.ErrAmenityNameTaken
		}
		return fmt.Errorf("inserting amenity: %w", err)
	}
	return nil
}

func (r *AmenityRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE id = $1
	`
	var amenity entity.Amenity
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAmenityNotFound
		}
		return nil, fmt.Errorf("querying amenity: %w", err)
	}
	return &amenity, nil
}

func (r *AmenityRepo) List(ctx context.Context) ([]entity.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing amenities: %w", err)
	}
	defer rows.Close()

	var amenities []entity.Amenity
	for rows.Next() {
		var amenity entity.Amenity
		if err := rows.Scan(
			&amenity.ID, &amenity.Name, &amenity.CreatedAt, &amenity.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning amenity: %w", err)
		}
		amenities = append(amenities, amenity)
	}
	return amenities, rows.Err()
}

func (r *AmenityRepo) Update(ctx context.Context, amenity *entity.Amenity) error {
	query := `
		UPDATE amenities
		SET name = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, amenity.ID, amenity.Name, amenity.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "amenities_name_key") {
			return domain.ErrAmenityNameTaken
		}
		return fmt.Errorf("updating amenity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAmenityNotFound
	}
	return nil
}
