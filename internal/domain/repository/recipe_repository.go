package repository

import (
	"context"

	"plateful/internal/domain/entity"
)

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// Create persists a new recipe entity owned by an existing user.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// ListAll retrieves every recipe in the store with its owner populated,
	// so callers can build sanitized owner views without extra queries.
	ListAll(ctx context.Context) ([]*entity.Recipe, error)
}
