package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
)

type Amenity struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewAmenity(name string) (*Amenity, error) {
	now := time.Now().UTC()
	a := &Amenity{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return domain.NewValidationError("name", "must not be empty")
	}
	return nil
}

func (a *Amenity) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
