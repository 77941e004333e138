package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID             uuid.UUID
	Email          string
	Username       string
	FirstName      string
	LastName       string
	Country        string
	Role           Role
	SeedPhraseHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Actor is the authenticated identity attached to every request by the
// auth middleware. Services trust it without re-verifying credentials.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
