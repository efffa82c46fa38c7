package request

import "github.com/google/uuid"

type CreatePlaceRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255"`
	Description string      `json:"description" binding:"max=1024"`
	Price       float64     `json:"price" binding:"required"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	AmenityIDs  []uuid.UUID `json:"amenities"`
}

// UpdatePlaceRequest has no owner field; ownership is fixed at creation.
type UpdatePlaceRequest struct {
	Title       *string      `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string      `json:"description" binding:"omitempty,max=1024"`
	Price       *float64     `json:"price"`
	Latitude    *float64     `json:"latitude"`
	Longitude   *float64     `json:"longitude"`
	AmenityIDs  *[]uuid.UUID `json:"amenities"`
}
