package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain/entity"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/pagination"
)

type PlaceResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenities"`
	ReviewIDs   []uuid.UUID `json:"reviews"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type PlacesListResponse struct {
	Places     []PlaceResponse    `json:"places"`
	Pagination PaginationResponse `json:"pagination"`
}

func PlaceFromEntity(p *entity.Place) PlaceResponse {
	resp := PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		AmenityIDs:  p.AmenityIDs,
		ReviewIDs:   p.ReviewIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.AmenityIDs == nil {
		resp.AmenityIDs = []uuid.UUID{}
	}
	if resp.ReviewIDs == nil {
		resp.ReviewIDs = []uuid.UUID{}
	}
	return resp
}

func PlacesFromEntities(places []entity.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for i := range places {
		result = append(result, PlaceFromEntity(&places[i]))
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
