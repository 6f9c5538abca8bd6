package postgres

import (
	"context"
	"strings"
	"unicode/utf8"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe. Field constraints are checked before the
// insert so the database is never touched with an invalid row.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if reasons := validateRecipe(recipe); len(reasons) > 0 {
		return domainerrors.NewValidationError(reasons...)
	}

	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "recipe owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// ListAll retrieves every recipe with its owner preloaded.
func (repo *recipeRepository) ListAll(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at").
		Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

func validateRecipe(recipe *entity.Recipe) []string {
	var reasons []string
	if strings.TrimSpace(recipe.Title) == "" {
		reasons = append(reasons, "Title is required.")
	}
	// Counted in runes, not bytes.
	if utf8.RuneCountInString(recipe.Instructions) < entity.MinInstructionsLen {
		reasons = append(reasons, "Instructions must be at least 50 characters.")
	}

	return reasons
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
		User:              toUserDomain(data.User),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
}
