package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrOwnerNotFound      = errors.New("owner not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrAmenityNotFound    = errors.New("amenity not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAmenityNameTaken   = errors.New("amenity name already exists")
	ErrDuplicateReview    = errors.New("place already reviewed by this user")
	ErrOwnReviewForbidden = errors.New("cannot review own place")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenRevoked       = errors.New("token revoked")
)
