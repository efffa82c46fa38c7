package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/hbnb-backend/internal/domain"
	"github.com/marcos-nsantos/hbnb-backend/internal/pkg/apperror"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		RequestID: GetRequestID(c),
	})
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "INTERNAL_ERROR",
		RequestID: GetRequestID(c),
	})
}

// HandleError maps domain errors onto the response taxonomy: validation 400,
// not found 404, conflicts 409, policy failures 403, credential failures 401.
func HandleError(c *gin.Context, err error) {
	if domain.IsValidationError(err) {
		ValidationError(c, err)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOwnerNotFound),
		errors.Is(err, domain.ErrPlaceNotFound),
		errors.Is(err, domain.ErrAmenityNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAmenityNameTaken),
		errors.Is(err, domain.ErrDuplicateReview):
		ErrorWithCode(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrAdminRequired),
		errors.Is(err, domain.ErrOwnReviewForbidden):
		ErrorWithCode(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked):
		ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.StatusCode, ErrorResponse{
				Error:     appErr.Message,
				Code:      appErr.Code,
				RequestID: GetRequestID(c),
			})
			return
		}
		InternalError(c)
	}
}

func GetActor(c *gin.Context) domain.Actor {
	if v, exists := c.Get("actor"); exists {
		return v.(domain.Actor)
	}
	return domain.Actor{}
}

func GetUserID(c *gin.Context) uuid.UUID {
	return GetActor(c).ID
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
