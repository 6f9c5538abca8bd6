// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It is the full internal record: it carries
// the bcrypt password hash, which must never leave the domain/persistence
// layers. Anything that crosses the serialization boundary goes through the
// sanitized view types in the usecase package instead.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login name; non-blank after trimming.
	PasswordHash string    // bcrypt hash of the user's password. Write-only: no view type exposes it.
	ImageURL     string    // Optional avatar URL.
	Bio          string    // Optional free-form biography.
	Recipes      []*Recipe // Recipes owned by this user. Deleting the user cascades to these rows.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
