package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository honoring the same error
// contract as the postgres implementation.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domainerrors.ErrDuplicateUsername.WrapMessage("failed to create user")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users)
}

// fakeRecipeRepo stores recipes in memory and resolves owners through the
// user repo on list, mirroring the postgres preload.
type fakeRecipeRepo struct {
	mu      sync.Mutex
	recipes []*entity.Recipe
	users   *fakeUserRepo
}

func newFakeRecipeRepo(users *fakeUserRepo) *fakeRecipeRepo {
	return &fakeRecipeRepo{users: users}
}

func (r *fakeRecipeRepo) Create(_ context.Context, recipe *entity.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe.ID = uuid.New()
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt

	copied := *recipe
	r.recipes = append(r.recipes, &copied)

	return nil
}

func (r *fakeRecipeRepo) ListAll(ctx context.Context) ([]*entity.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		copied := *recipe
		if owner, err := r.users.FindByID(ctx, recipe.UserID); err == nil {
			copied.User = owner
		}
		out = append(out, &copied)
	}

	return out, nil
}

// fakeTxManager runs the callback directly against the in-memory repos.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	userRepo   repository.UserRepository
	recipeRepo repository.RecipeRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepoFactory) RecipeRepo() repository.RecipeRepository {
	return f.recipeRepo
}
