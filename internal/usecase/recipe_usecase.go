package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe.
// MinutesToComplete is optional.
type CreateRecipeInput struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// RecipeView is the sanitized serialization of a Recipe. The embedded owner
// is a UserView, which cannot re-embed its own recipes.
type RecipeView struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Instructions      string    `json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            uuid.UUID `json:"user_id"`
	User              *UserView `json:"user,omitempty"`
}

// NewRecipeView builds the sanitized view of a recipe entity.
func NewRecipeView(recipe *entity.Recipe) *RecipeView {
	if recipe == nil {
		return nil
	}

	return &RecipeView{
		ID:                recipe.ID,
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
		UserID:            recipe.UserID,
		User:              NewUserView(recipe.User),
	}
}

// RecipeUsecase defines recipe operations. Every call requires an
// authenticated session token.
type RecipeUsecase interface {
	// ListRecipes returns every recipe in the store, each embedding its
	// owner's sanitized view. There is no per-user filtering.
	ListRecipes(ctx context.Context, token string) ([]*RecipeView, error)

	// CreateRecipe creates a recipe owned by the session's user.
	CreateRecipe(ctx context.Context, token string, input *CreateRecipeInput) (*RecipeView, error)
}
