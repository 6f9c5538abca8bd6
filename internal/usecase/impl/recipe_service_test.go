package impl

import (
	"context"
	"strings"
	"testing"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/infra/auth"
	"plateful/internal/infra/session"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const validInstructions = "Chop the onions finely, brown them slowly in butter, then deglaze the pan."

type recipeServiceFixture struct {
	recipes usecase.RecipeUsecase
	auth    usecase.AuthUsecase
}

func newRecipeServiceFixture() *recipeServiceFixture {
	userRepo := newFakeUserRepo()
	recipeRepo := newFakeRecipeRepo(userRepo)
	store := session.NewMemoryStore()
	factory := &fakeRepoFactory{userRepo: userRepo, recipeRepo: recipeRepo}
	txManager := &fakeTxManager{factory: factory}
	logger := newDiscardLogger()

	return &recipeServiceFixture{
		recipes: NewRecipeService(RecipeServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			RecipeRepo:   recipeRepo,
			SessionStore: store,
			Logger:       logger,
		}),
		auth: NewAuthService(AuthServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			SessionStore: store,
			Logger:       logger,
		}),
	}
}

func (fx *recipeServiceFixture) signup(t *testing.T, username string) *usecase.AuthOutput {
	t.Helper()

	output, err := fx.auth.Signup(context.Background(), &usecase.SignupInput{
		Username: username,
		Password: "secret",
	})
	require.NoError(t, err)

	return output
}

func TestRecipeService_CreateRecipe_Success(t *testing.T) {
	fx := newRecipeServiceFixture()
	ctx := context.Background()
	owner := fx.signup(t, "chef_ada")

	minutes := 45
	recipe, err := fx.recipes.CreateRecipe(ctx, owner.Token, &usecase.CreateRecipeInput{
		Title:             "French Onion Soup",
		Instructions:      validInstructions,
		MinutesToComplete: &minutes,
	})
	require.NoError(t, err)
	require.NotNil(t, recipe)

	assert.Equal(t, "French Onion Soup", recipe.Title)
	assert.Equal(t, validInstructions, recipe.Instructions)
	require.NotNil(t, recipe.MinutesToComplete)
	assert.Equal(t, 45, *recipe.MinutesToComplete)
	assert.Equal(t, owner.User.ID, recipe.UserID)
	require.NotNil(t, recipe.User)
	assert.Equal(t, "chef_ada", recipe.User.Username)
}

func TestRecipeService_CreateRecipe_MinutesOptional(t *testing.T) {
	fx := newRecipeServiceFixture()
	owner := fx.signup(t, "chef_ada")

	recipe, err := fx.recipes.CreateRecipe(context.Background(), owner.Token, &usecase.CreateRecipeInput{
		Title:        "Toast",
		Instructions: validInstructions,
	})
	require.NoError(t, err)
	assert.Nil(t, recipe.MinutesToComplete)
}

func TestRecipeService_CreateRecipe_CollectsAllReasons(t *testing.T) {
	fx := newRecipeServiceFixture()
	owner := fx.signup(t, "chef_ada")

	_, err := fx.recipes.CreateRecipe(context.Background(), owner.Token, &usecase.CreateRecipeInput{
		Title:        "   ",
		Instructions: "too short",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"Title is required.",
		"Instructions must be at least 50 characters.",
	}, validationErr.Reasons())
}

func TestRecipeService_CreateRecipe_InstructionsBoundary(t *testing.T) {
	fx := newRecipeServiceFixture()
	ctx := context.Background()
	owner := fx.signup(t, "chef_ada")

	tests := []struct {
		name         string
		instructions string
		wantErr      bool
	}{
		{name: "one short of the minimum", instructions: strings.Repeat("a", entity.MinInstructionsLen-1), wantErr: true},
		{name: "exactly the minimum", instructions: strings.Repeat("a", entity.MinInstructionsLen), wantErr: false},
		// Multibyte text counts characters, not bytes.
		{name: "multibyte at the minimum", instructions: strings.Repeat("煮", entity.MinInstructionsLen), wantErr: false},
		{name: "multibyte one short", instructions: strings.Repeat("煮", entity.MinInstructionsLen-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.recipes.CreateRecipe(ctx, owner.Token, &usecase.CreateRecipeInput{
				Title:        "Boundary",
				Instructions: tt.instructions,
			})
			if tt.wantErr {
				var validationErr *domainerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, []string{"Instructions must be at least 50 characters."}, validationErr.Reasons())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRecipeService_CreateRecipe_RequiresAuth(t *testing.T) {
	fx := newRecipeServiceFixture()

	_, err := fx.recipes.CreateRecipe(context.Background(), "", &usecase.CreateRecipeInput{
		Title:        "Soup",
		Instructions: validInstructions,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestRecipeService_ListRecipes(t *testing.T) {
	fx := newRecipeServiceFixture()
	ctx := context.Background()
	ada := fx.signup(t, "chef_ada")
	bob := fx.signup(t, "chef_bob")

	_, err := fx.recipes.CreateRecipe(ctx, ada.Token, &usecase.CreateRecipeInput{
		Title:        "Soup",
		Instructions: validInstructions,
	})
	require.NoError(t, err)
	_, err = fx.recipes.CreateRecipe(ctx, bob.Token, &usecase.CreateRecipeInput{
		Title:        "Stew",
		Instructions: validInstructions,
	})
	require.NoError(t, err)

	// Every user sees every recipe, each with its owner embedded.
	recipes, err := fx.recipes.ListRecipes(ctx, ada.Token)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	owners := map[string]string{}
	for _, recipe := range recipes {
		require.NotNil(t, recipe.User)
		owners[recipe.Title] = recipe.User.Username
	}
	assert.Equal(t, map[string]string{"Soup": "chef_ada", "Stew": "chef_bob"}, owners)
}

func TestRecipeService_ListRecipes_RequiresAuth(t *testing.T) {
	fx := newRecipeServiceFixture()

	_, err := fx.recipes.ListRecipes(context.Background(), "stale-token")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
