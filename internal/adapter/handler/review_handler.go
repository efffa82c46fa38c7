package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/review"
)

type ReviewHandler struct {
	reviewSvc ReviewService
}

func NewReviewHandler(reviewSvc ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// Create godoc
//
//	@Summary		Create a review
//	@Description	The authenticated caller is the author; owners cannot review their own place and each user reviews a place once
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateReviewRequest	true	"Review data"
//	@Success		201		{object}	response.ReviewResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"Cannot review own place"
//	@Failure		404		{object}	httputil.ErrorResponse	"Place not found"
//	@Failure		409		{object}	httputil.ErrorResponse	"Already reviewed"
//	@Router			/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.reviewSvc.Create(c.Request.Context(), httputil.GetActor(c), review.CreateInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.ReviewFromEntity(created))
}

// Update godoc
//
//	@Summary	Update a review
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Review ID"
//	@Param		request	body		request.UpdateReviewRequest	true	"Fields to update"
//	@Success	200		{object}	response.ReviewResponse
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	403		{object}	httputil.ErrorResponse	"Not the author"
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid review id")
		return
	}

	var req request.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	updated, err := h.reviewSvc.Update(c.Request.Context(), httputil.GetActor(c), reviewID, review.UpdateInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReviewFromEntity(updated))
}

// Delete godoc
//
//	@Summary	Delete a review
//	@Tags		reviews
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Review ID"
//	@Success	204
//	@Failure	403	{object}	httputil.ErrorResponse	"Not the author"
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid review id")
		return
	}

	if err := h.reviewSvc.Delete(c.Request.Context(), httputil.GetActor(c), reviewID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

// Get godoc
//
//	@Summary	Get a review by id
//	@Tags		reviews
//	@Produce	json
//	@Param		id	path		string	true	"Review ID"
//	@Success	200	{object}	response.ReviewResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid review id")
		return
	}

	found, err := h.reviewSvc.GetByID(c.Request.Context(), reviewID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReviewFromEntity(found))
}

// List godoc
//
//	@Summary	List all reviews
//	@Tags		reviews
//	@Produce	json
//	@Success	200	{array}	response.ReviewResponse
//	@Router		/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewSvc.List(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReviewsFromEntities(reviews))
}

// ListByPlace godoc
//
//	@Summary	List reviews for a place
//	@Tags		reviews
//	@Produce	json
//	@Param		id			path		string	true	"Place ID"
//	@Param		page		query		int		false	"Page number"
//	@Param		per_page	query		int		false	"Items per page"
//	@Success	200			{object}	response.ReviewsListResponse
//	@Failure	404			{object}	httputil.ErrorResponse	"Place not found"
//	@Router		/places/{id}/reviews [get]
func (h *ReviewHandler) ListByPlace(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid place id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	reviews, info, err := h.reviewSvc.ListByPlace(c.Request.Context(), placeID, page, perPage)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.ReviewsListResponse{
		Reviews:    response.ReviewsFromEntities(reviews),
		Pagination: response.PaginationFromInfo(info),
	})
}
