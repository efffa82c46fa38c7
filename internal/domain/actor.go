package domain

import "github.com/google/uuid"

// Actor is the identity acting on a request, derived from verified token
// claims by the HTTP layer.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}
