package request

import "github.com/google/uuid"

type CreateReviewRequest struct {
	Text    string    `json:"text" binding:"required,min=1,max=2048"`
	Rating  int       `json:"rating" binding:"required"`
	PlaceID uuid.UUID `json:"place_id" binding:"required"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text" binding:"omitempty,min=1,max=2048"`
	Rating *int    `json:"rating"`
}
