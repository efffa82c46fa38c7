package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSvc           *auth.JWTService
	passwordHasher   *auth.PasswordHasher
	refreshTokenTTL  time.Duration
}

func NewService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtSvc *auth.JWTService,
	passwordHasher *auth.PasswordHasher,
	refreshTokenTTL time.Duration,
) *Service {
	return &Service{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSvc:           jwtSvc,
		passwordHasher:   passwordHasher,
		refreshTokenTTL:  refreshTokenTTL,
	}
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

// Login checks credentials and issues a token pair. Unknown emails, wrong
// passwords and unreadable stored hashes all fail the same way.
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenPair, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if !s.passwordHasher.Verify(input.Password, user.PasswordHash) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return tokens, user, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Revoked and expired tokens are rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rt, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if rt.IsRevoked() {
		return nil, domain.ErrTokenRevoked
	}

	if rt.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	if err := s.refreshTokenRepo.Revoke(ctx, rt.ID); err != nil {
		return nil, fmt.Errorf("revoking old token: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading token user: %w", err)
	}

	return s.generateTokenPair(ctx, user)
}

func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshTokenRepo.RevokeByUserID(ctx, userID); err != nil {
		return fmt.Errorf("revoking tokens: %w", err)
	}
	return nil
}

type BootstrapInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// BootstrapAdmin promotes an existing user to admin, or creates a fresh admin
// account. Development convenience only; the route is registered only when
// the bootstrap flag is on.
func (s *Service) BootstrapAdmin(ctx context.Context, input BootstrapInput) (*entity.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.NewValidationError("credentials", "email and password required")
	}

	email := entity.NormalizeEmail(input.Email)

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		existing.IsAdmin = true
		existing.PasswordHash = hash
		existing.Touch()
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	firstName := input.FirstName
	if firstName == "" {
		firstName = "Admin"
	}
	lastName := input.LastName
	if lastName == "" {
		lastName = "User"
	}

	user, err := entity.NewUser(firstName, lastName, email, hash, true)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) generateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generating access token: %w", err)
	}

	refreshTokenStr, err := s.jwtSvc.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generating refresh token: %w", err)
	}

	rt := entity.NewRefreshToken(user.ID, refreshTokenStr, time.Now().UTC().Add(s.refreshTokenTTL))
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenStr,
		ExpiresAt:    expiresAt,
	}, nil
}
