package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
)

type AmenityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AmenityFromEntity(a *entity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func AmenitiesFromEntities(amenities []entity.Amenity) []AmenityResponse {
	result := make([]AmenityResponse, 0, len(amenities))
	for i := range amenities {
		result = append(result, AmenityFromEntity(&amenities[i]))
	}
	return result
}
