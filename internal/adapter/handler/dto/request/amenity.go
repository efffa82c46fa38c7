package request

type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}
