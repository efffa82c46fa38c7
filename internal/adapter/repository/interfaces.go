package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// ExistsByEmail reports whether email belongs to a user other than
	// excludeID. Pass uuid.Nil to match any user.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, amenity *entity.Amenity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)
	List(ctx context.Context) ([]entity.Amenity, error)
	Update(ctx context.Context, amenity *entity.Amenity) error
}

type PlaceRepository interface {
	Create(ctx context.Context, place *entity.Place) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	List(ctx context.Context, params pagination.Params) ([]entity.Place, *pagination.Info, error)
	Update(ctx context.Context, place *entity.Place) error
	// Delete removes the place; the storage layer cascades its reviews and
	// amenity links.
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceAmenities rewrites the amenity link set for a place.
	ReplaceAmenities(ctx context.Context, placeID uuid.UUID, amenityIDs []uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context) ([]entity.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID, params pagination.Params) ([]entity.Review, *pagination.Info, error)
	GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	RevokeByUserID(ctx context.Context, userID uuid.UUID) error
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
