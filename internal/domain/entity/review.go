package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uuid.UUID
	Text      string
	Rating    int
	UserID    uuid.UUID
	PlaceID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	now := time.Now().UTC()
	r := &Review{
		ID:        uuid.New(),
		Text:      strings.TrimSpace(text),
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return domain.NewValidationError("text", "must not be empty")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}
	if r.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "must be set")
	}
	if r.PlaceID == uuid.Nil {
		return domain.NewValidationError("place_id", "must be set")
	}
	return nil
}

func (r *Review) Touch() {
	r.UpdatedAt = time.Now().UTC()
}
