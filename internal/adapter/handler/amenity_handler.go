package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/amenity"
)

type AmenityHandler struct {
	amenitySvc AmenityService
}

func NewAmenityHandler(amenitySvc AmenityService) *AmenityHandler {
	return &AmenityHandler{amenitySvc: amenitySvc}
}

// Create godoc
//
//	@Summary		Create an amenity
//	@Description	Admin only; amenity names are unique
//	@Tags			amenities
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateAmenityRequest	true	"Amenity data"
//	@Success		201		{object}	response.AmenityResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"Admin privileges required"
//	@Failure		409		{object}	httputil.ErrorResponse	"Name already exists"
//	@Router			/amenities [post]
func (h *AmenityHandler) Create(c *gin.Context) {
	var req request.CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.amenitySvc.Create(c.Request.Context(), httputil.GetActor(c), req.Name)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.AmenityFromEntity(created))
}

// Update godoc
//
//	@Summary	Update an amenity
//	@Tags		amenities
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Amenity ID"
//	@Param		request	body		request.UpdateAmenityRequest	true	"Fields to update"
//	@Success	200		{object}	response.AmenityResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	403		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/amenities/{id} [put]
func (h *AmenityHandler) Update(c *gin.Context) {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid amenity id")
		return
	}

	var req request.UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	updated, err := h.amenitySvc.Update(c.Request.Context(), httputil.GetActor(c), amenityID, amenity.UpdateInput{
		Name: req.Name,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AmenityFromEntity(updated))
}

// Get godoc
//
//	@Summary	Get an amenity by id
//	@Tags		amenities
//	@Produce	json
//	@Param		id	path		string	true	"Amenity ID"
//	@Success	200	{object}	response.AmenityResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/amenities/{id} [get]
func (h *AmenityHandler) Get(c *gin.Context) {
	amenityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid amenity id")
		return
	}

	found, err := h.amenitySvc.GetByID(c.Request.Context(), amenityID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AmenityFromEntity(found))
}

// List godoc
//
//	@Summary	List all amenities
//	@Tags		amenities
//	@Produce	json
//	@Success	200	{array}	response.AmenityResponse
//	@Router		/amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.amenitySvc.List(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.AmenitiesFromEntities(amenities))
}
