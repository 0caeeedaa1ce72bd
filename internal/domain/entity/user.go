package entity

import (
	"time"
)

// User represents an account holder addressable by VPA
type User struct {
	ID           string
	Name         string
	Email        string
	VPA          string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the outward-facing projection of a user. The password hash is
// excluded by construction rather than stripped from a copy.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	VPA   string `json:"vpa"`
}

// Public returns the projection safe to serialize in API responses
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		VPA:   u.VPA,
	}
}

// Counterparty identifies the other side of a movement in history listings
type Counterparty struct {
	Name string `json:"name"`
	VPA  string `json:"vpa"`
}
