package models

import (
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleAdmin  RoleType = "admin"
	RoleOwner  RoleType = "owner"
	RoleRenter RoleType = "renter"
)

// User is an authenticated identity. The record is immutable after
// registration; there is no profile editing.
//
// JSON field names match the serialized form the web client wrote to its
// local storage, so an exported browser snapshot loads unchanged.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         RoleType  `json:"role"`
	IsApproved   bool      `json:"isApproved,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns a copy safe to hand to clients or persist under the
// session key: the credential hash is stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
