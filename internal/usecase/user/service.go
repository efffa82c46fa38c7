package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo       repository.UserRepository
	passwordHasher *auth.PasswordHasher
}

func NewService(userRepo repository.UserRepository, passwordHasher *auth.PasswordHasher) *Service {
	return &Service{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// Create registers a new user. Only admins may create users. The email
// pre-check narrows the duplicate window; the unique index on users.email is
// the authoritative guard and turns a lost race into ErrEmailTaken.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*entity.User, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrAdminRequired
	}

	if input.Password == "" {
		return nil, domain.NewValidationError("password", "must not be empty")
	}

	email := entity.NormalizeEmail(input.Email)
	taken, err := s.userRepo.ExistsByEmail(ctx, email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := entity.NewUser(input.FirstName, input.LastName, email, hash, input.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// Update merges the supplied fields over the stored user. Non-admins may only
// update their own name fields; email and password changes are admin-only.
func (s *Service) Update(ctx context.Context, actor domain.Actor, userID uuid.UUID, input UpdateInput) (*entity.User, error) {
	if !actor.IsAdmin && actor.ID != userID {
		return nil, domain.ErrForbidden
	}
	if !actor.IsAdmin && (input.Email != nil || input.Password != nil) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		taken, err := s.userRepo.ExistsByEmail(ctx, email, userID)
		if err != nil {
			return nil, fmt.Errorf("checking email: %w", err)
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = email
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.NewValidationError("password", "must not be empty")
		}
		hash, err := s.passwordHasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.Touch()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.GetByEmail(ctx, entity.NormalizeEmail(email))
}

func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}
