package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
)

type Place struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID

	// AmenityIDs holds the linked amenities, no duplicates. ReviewIDs is a
	// back-reference loaded from the review store, never written directly.
	AmenityIDs []uuid.UUID
	ReviewIDs  []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	now := time.Now().UTC()
	p := &Place{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks title and owner. Latitude and longitude are stored as
// given, out-of-range coordinates included.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.NewValidationError("title", "must not be empty")
	}
	if p.OwnerID == uuid.Nil {
		return domain.NewValidationError("owner_id", "must be set")
	}
	return nil
}

// AddAmenity links an amenity, ignoring ids already present.
func (p *Place) AddAmenity(id uuid.UUID) {
	for _, existing := range p.AmenityIDs {
		if existing == id {
			return
		}
	}
	p.AmenityIDs = append(p.AmenityIDs, id)
}

func (p *Place) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
