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

type PlaceRepo struct {
	pool *pgxpool.Pool
}

func NewPlaceRepo(pool *pgxpool.Pool) *PlaceRepo {
	return &PlaceRepo{pool: pool}
}

func (r *PlaceRepo) Create(ctx context.Context, place *entity.Place) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, query,
		place.ID, place.Title, place.Description, place.Price,
		place.Latitude, place.Longitude, place.OwnerID,
		place.CreatedAt, place.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting place: %w", err)
	}

	for _, amenityID := range place.AmenityIDs {
		_, err = tx.Exec(ctx,
			`INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
			place.ID, amenityID,
		)
		if err != nil {
			return fmt.Errorf("linking amenity: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PlaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	query := `
		SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		FROM places
		WHERE id = $1
	`
	var place entity.Place
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&place.ID, &place.Title, &place.Description, &place.Price,
		&place.Latitude, &place.Longitude, &place.OwnerID,
		&place.CreatedAt, &place.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("querying place: %w", err)
	}

	if err := r.loadLinks(ctx, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepo) List(ctx context.Context, params pagination.Params) ([]entity.Place, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM places`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting places: %w", err)
	}

	query := `
		SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		FROM places
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("listing places: %w", err)
	}
	defer rows.Close()

	var places []entity.Place
	for rows.Next() {
		var place entity.Place
		if err := rows.Scan(
			&place.ID, &place.Title, &place.Description, &place.Price,
			&place.Latitude, &place.Longitude, &place.OwnerID,
			&place.CreatedAt, &place.UpdatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	for i := range places {
		if err := r.loadLinks(ctx, &places[i]); err != nil {
			return nil, nil, err
		}
	}

	return places, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

func (r *PlaceRepo) Update(ctx context.Context, place *entity.Place) error {
	query := `
		UPDATE places
		SET title = $2, description = $3, price = $4, latitude = $5, longitude = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		place.ID, place.Title, place.Description, place.Price,
		place.Latitude, place.Longitude, place.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating place: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// reviews and place_amenities rows go with the place via ON DELETE CASCADE
	result, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting place: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepo) ReplaceAmenities(ctx context.Context, placeID uuid.UUID, amenityIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM place_amenities WHERE place_id = $1`, placeID); err != nil {
		return fmt.Errorf("clearing amenity links: %w", err)
	}

	for _, amenityID := range amenityIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
			placeID, amenityID,
		)
		if err != nil {
			return fmt.Errorf("linking amenity: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PlaceRepo) loadLinks(ctx context.Context, place *entity.Place) error {
	amenityIDs, err := r.queryIDs(ctx,
		`SELECT amenity_id FROM place_amenities WHERE place_id = $1`, place.ID)
	if err != nil {
		return fmt.Errorf("loading amenity links: %w", err)
	}
	place.AmenityIDs = amenityIDs

	reviewIDs, err := r.queryIDs(ctx,
		`SELECT id FROM reviews WHERE place_id = $1 ORDER BY created_at`, place.ID)
	if err != nil {
		return fmt.Errorf("loading review ids: %w", err)
	}
	place.ReviewIDs = reviewIDs

	return nil
}

func (r *PlaceRepo) queryIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
