// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an admin account for the catalog backend. Accounts are created
// only through registration and authenticate with email + password.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialized into responses.
	UpdatedAt    time.Time `json:"updatedAt"`
}
