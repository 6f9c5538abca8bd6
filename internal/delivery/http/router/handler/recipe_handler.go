package handler

import (
	"log/slog"
	"net/http"

	"plateful/config"
	"plateful/internal/delivery/http/response"
	"plateful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for the recipe endpoints.
type RecipeHandler struct {
	uc      usecase.RecipeUsecase
	session *config.SessionConfig
	logger  *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, cfg *config.Config, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:      uc,
		session: cfg.Session,
		logger:  logger,
	}
}

// List returns every recipe with its owner embedded.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context(), sessionToken(c, h.session))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, recipes)
}

// Create adds a recipe owned by the session's user.
func (h *RecipeHandler) Create(c echo.Context) error {
	var input usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipe payload")
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), sessionToken(c, h.session), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, recipe)
}
