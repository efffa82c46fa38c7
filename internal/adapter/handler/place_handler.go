package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/place"
)

type PlaceHandler struct {
	placeSvc PlaceService
}

func NewPlaceHandler(placeSvc PlaceService) *PlaceHandler {
	return &PlaceHandler{placeSvc: placeSvc}
}

// Create godoc
//
//	@Summary		Create a place
//	@Description	The authenticated caller becomes the owner; unknown amenity ids are skipped
//	@Tags			places
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreatePlaceRequest	true	"Place data"
//	@Success		201		{object}	response.PlaceResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Owner not found"
//	@Router			/places [post]
func (h *PlaceHandler) Create(c *gin.Context) {
	var req request.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.placeSvc.Create(c.Request.Context(), httputil.GetActor(c), place.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.PlaceFromEntity(created))
}

// Update godoc
//
//	@Summary		Update a place
//	@Description	Partial update by the owner or an admin; ownership never changes
//	@Tags			places
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Place ID"
//	@Param			request	body		request.UpdatePlaceRequest	true	"Fields to update"
//	@Success		200		{object}	response.PlaceResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Router			/places/{id} [put]
func (h *PlaceHandler) Update(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid place id")
		return
	}

	var req request.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	updated, err := h.placeSvc.Update(c.Request.Context(), httputil.GetActor(c), placeID, place.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromEntity(updated))
}

// Delete godoc
//
//	@Summary	Delete a place
//	@Tags		places
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Place ID"
//	@Success	204
//	@Failure	403	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/places/{id} [delete]
func (h *PlaceHandler) Delete(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid place id")
		return
	}

	if err := h.placeSvc.Delete(c.Request.Context(), httputil.GetActor(c), placeID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// Get godoc
//
//	@Summary	Get a place by id
//	@Tags		places
//	@Produce	json
//	@Param		id	path		string	true	"Place ID"
//	@Success	200	{object}	response.PlaceResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/places/{id} [get]
func (h *PlaceHandler) Get(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid place id")
		return
	}

	found, err := h.placeSvc.GetByID(c.Request.Context(), placeID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlaceFromEntity(found))
}

// List godoc
//
//	@Summary	List places
//	@Tags		places
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		per_page	query		int	false	"Items per page"
//	@Success	200			{object}	response.PlacesListResponse
//	@Router		/places [get]
func (h *PlaceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	places, info, err := h.placeSvc.List(c.Request.Context(), page, perPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.PlacesListResponse{
		Places:     response.PlacesFromEntities(places),
		Pagination: response.PaginationFromInfo(info),
	})
}
