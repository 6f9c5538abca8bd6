package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	recipeRepo   repository.RecipeRepository
	sessionStore service.SessionStore
	logger       *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RecipeRepo   repository.RecipeRepository
	SessionStore service.SessionStore
	Logger       *slog.Logger
}

// NewRecipeService is the constructor for recipeService. It receives all dependencies as interfaces.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		recipeRepo:   params.RecipeRepo,
		sessionStore: params.SessionStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes returns every recipe in the store, each embedding its owner's
// sanitized view.
func (srv *recipeService) ListRecipes(ctx context.Context, token string) ([]*usecase.RecipeView, error) {
	if _, err := resolveSessionUser(ctx, srv.sessionStore, srv.userRepo, srv.log(ctx), token); err != nil {
		return nil, err
	}

	recipes, err := srv.recipeRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, err
	}

	views := make([]*usecase.RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, usecase.NewRecipeView(recipe))
	}

	return views, nil
}

// CreateRecipe creates a recipe owned by the session's user. Validation
// reasons are collected before the store is touched.
func (srv *recipeService) CreateRecipe(ctx context.Context, token string, input *usecase.CreateRecipeInput) (*usecase.RecipeView, error) {
	owner, err := resolveSessionUser(ctx, srv.sessionStore, srv.userRepo, srv.log(ctx), token)
	if err != nil {
		return nil, err
	}

	var reasons []string
	if strings.TrimSpace(input.Title) == "" {
		reasons = append(reasons, "Title is required.")
	}
	if utf8.RuneCountInString(input.Instructions) < entity.MinInstructionsLen {
		reasons = append(reasons, "Instructions must be at least 50 characters.")
	}
	if len(reasons) > 0 {
		return nil, domainerrors.NewValidationError(reasons...)
	}

	recipe := &entity.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            owner.ID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecipeRepo().Create(ctx, recipe)
	})
	if err != nil {
		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}

		srv.log(ctx).Error("Failed to create recipe", slog.Any("error", err))

		return nil, err
	}

	recipe.User = owner
	srv.log(ctx).Info("Recipe created",
		slog.String("title", recipe.Title),
		slog.String("owner", owner.Username))

	return usecase.NewRecipeView(recipe), nil
}
