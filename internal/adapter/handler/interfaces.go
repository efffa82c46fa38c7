package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/amenity"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/place"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/review"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/user"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, *entity.User, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	BootstrapAdmin(ctx context.Context, input auth.BootstrapInput) (*entity.User, error)
}

type UserService interface {
	Create(ctx context.Context, actor domain.Actor, input user.CreateInput) (*entity.User, error)
	Update(ctx context.Context, actor domain.Actor, userID uuid.UUID, input user.UpdateInput) (*entity.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}

type AmenityService interface {
	Create(ctx context.Context, actor domain.Actor, name string) (*entity.Amenity, error)
	Update(ctx context.Context, actor domain.Actor, amenityID uuid.UUID, input amenity.UpdateInput) (*entity.Amenity, error)
	GetByID(ctx context.Context, amenityID uuid.UUID) (*entity.Amenity, error)
	List(ctx context.Context) ([]entity.Amenity, error)
}

type PlaceService interface {
	Create(ctx context.Context, actor domain.Actor, input place.CreateInput) (*entity.Place, error)
	Update(ctx context.Context, actor domain.Actor, placeID uuid.UUID, input place.UpdateInput) (*entity.Place, error)
	Delete(ctx context.Context, actor domain.Actor, placeID uuid.UUID) error
	GetByID(ctx context.Context, placeID uuid.UUID) (*entity.Place, error)
	List(ctx context.Context, page, perPage int) ([]entity.Place, *pagination.Info, error)
}

type ReviewService interface {
	Create(ctx context.Context, actor domain.Actor, input review.CreateInput) (*entity.Review, error)
	Update(ctx context.Context, actor domain.Actor, reviewID uuid.UUID, input review.UpdateInput) (*entity.Review, error)
	Delete(ctx context.Context, actor domain.Actor, reviewID uuid.UUID) error
	GetByID(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	List(ctx context.Context) ([]entity.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID, page, perPage int) ([]entity.Review, *pagination.Info, error)
}
