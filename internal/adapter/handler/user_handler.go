package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/user"
)

type UserHandler struct {
	userSvc UserService
}

func NewUserHandler(userSvc UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Create godoc
//
//	@Summary		Create a new user
//	@Description	Admin only; registers a user with a hashed password
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateUserRequest	true	"User data"
//	@Success		201		{object}	response.UserResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse	"Admin privileges required"
//	@Failure		409		{object}	httputil.ErrorResponse	"Email already registered"
//	@Router			/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	created, err := h.userSvc.Create(c.Request.Context(), httputil.GetActor(c), user.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.UserFromEntity(created))
}

// Update godoc
//
//	@Summary		Update a user
//	@Description	Partial update; non-admins may only rename themselves, email and password changes are admin-only
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		request.UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	response.UserResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		403		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse
//	@Failure		409		{object}	httputil.ErrorResponse	"Email already in use"
//	@Router			/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	updated, err := h.userSvc.Update(c.Request.Context(), httputil.GetActor(c), userID, user.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UserFromEntity(updated))
}

// Get godoc
//
//	@Summary	Get a user by id
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	response.UserResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	found, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UserFromEntity(found))
}

// List godoc
//
//	@Summary	List all users
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	response.UserResponse
//	@Router		/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.OK(c, response.UsersFromEntities(users))
}
