package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plateful/internal/delivery/http/middleware"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecipeUsecase struct {
	list   func(ctx context.Context, token string) ([]*usecase.RecipeView, error)
	create func(ctx context.Context, token string, input *usecase.CreateRecipeInput) (*usecase.RecipeView, error)
}

func (s *stubRecipeUsecase) ListRecipes(ctx context.Context, token string) ([]*usecase.RecipeView, error) {
	return s.list(ctx, token)
}

func (s *stubRecipeUsecase) CreateRecipe(ctx context.Context, token string, input *usecase.CreateRecipeInput) (*usecase.RecipeView, error) {
	return s.create(ctx, token, input)
}

func newRecipeTestServer(uc usecase.RecipeUsecase) *echo.Echo {
	logger := testLogger()
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewRecipeHandler(uc, testConfig(), logger)
	e.GET("/recipes", h.List)
	e.POST("/recipes", h.Create)

	return e
}

func TestRecipeHandler_List(t *testing.T) {
	ownerID := uuid.New()
	e := newRecipeTestServer(&stubRecipeUsecase{
		list: func(_ context.Context, token string) ([]*usecase.RecipeView, error) {
			assert.Equal(t, "tok123", token)

			return []*usecase.RecipeView{
				{
					ID:           uuid.New(),
					Title:        "Soup",
					Instructions: "Simmer everything together until the broth is rich.",
					UserID:       ownerID,
					User:         &usecase.UserView{ID: ownerID, Username: "chef_ada"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	req.AddCookie(&http.Cookie{Name: "plateful_session", Value: "tok123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Soup", body[0]["title"])

	owner, ok := body[0]["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "chef_ada", owner["username"])
}

func TestRecipeHandler_List_Unauthorized(t *testing.T) {
	e := newRecipeTestServer(&stubRecipeUsecase{
		list: func(_ context.Context, token string) ([]*usecase.RecipeView, error) {
			assert.Empty(t, token)

			return nil, domainerrors.ErrUnauthorized.WrapMessage("no session token")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRecipeHandler_Create(t *testing.T) {
	e := newRecipeTestServer(&stubRecipeUsecase{
		create: func(_ context.Context, token string, input *usecase.CreateRecipeInput) (*usecase.RecipeView, error) {
			assert.Equal(t, "tok123", token)
			require.NotNil(t, input.MinutesToComplete)
			assert.Equal(t, 30, *input.MinutesToComplete)

			return &usecase.RecipeView{
				ID:                uuid.New(),
				Title:             input.Title,
				Instructions:      input.Instructions,
				MinutesToComplete: input.MinutesToComplete,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(
		`{"title":"Soup","instructions":"Simmer everything together until the broth is rich and deep.","minutes_to_complete":30}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "plateful_session", Value: "tok123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Soup")
}

func TestRecipeHandler_Create_ValidationErrors(t *testing.T) {
	e := newRecipeTestServer(&stubRecipeUsecase{
		create: func(_ context.Context, _ string, _ *usecase.CreateRecipeInput) (*usecase.RecipeView, error) {
			return nil, domainerrors.NewValidationError(
				"Title is required.",
				"Instructions must be at least 50 characters.",
			)
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/recipes", strings.NewReader(`{"instructions":"short"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "plateful_session", Value: "tok123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Title is required.","Instructions must be at least 50 characters."]}`, rec.Body.String())
}
