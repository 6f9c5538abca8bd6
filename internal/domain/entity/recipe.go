package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinInstructionsLen is the minimum instructions length, counted in runes
// rather than bytes so multi-byte text is measured the way a reader sees it.
const MinInstructionsLen = 50

// Recipe belongs to exactly one User, fixed at creation time.
type Recipe struct {
	ID                uuid.UUID // The unique identifier for the recipe.
	Title             string    // Non-empty display title.
	Instructions      string    // Preparation steps; at least MinInstructionsLen runes.
	MinutesToComplete *int      // Optional preparation time. Nil when the author did not provide one.
	UserID            uuid.UUID // Owning user; immutable after creation.
	User              *User     // Owner, populated by the store on list operations.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
