package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
)

type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail applies the canonical form used for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewUser(firstName, lastName, email, passwordHash string, isAdmin bool) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return domain.NewValidationError("first_name", "must not be empty")
	}
	if strings.TrimSpace(u.LastName) == "" {
		return domain.NewValidationError("last_name", "must not be empty")
	}
	if !strings.Contains(u.Email, "@") {
		return domain.NewValidationError("email", "invalid email format")
	}
	return nil
}

func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}
