// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash holds a bcrypt hash; the plaintext secret is never stored
// and the hash is never serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
}
