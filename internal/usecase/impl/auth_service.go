// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	sessionStore service.SessionStore
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	SessionStore service.SessionStore
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		sessionStore: params.SessionStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and starts a session for it. Every validation
// failure is collected before anything touches the store, so the client sees
// the full list of reasons at once.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)

	var reasons []string
	if username == "" {
		reasons = append(reasons, "Username is required.")
	}
	if input.Password == "" {
		reasons = append(reasons, "Password is required.")
	}
	if len(reasons) > 0 {
		return nil, domainerrors.NewValidationError(reasons...)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		ImageURL:     input.ImageURL,
		Bio:          input.Bio,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUsername) {
			return nil, domainerrors.NewValidationError("Username must be unique.")
		}

		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}

		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, err
	}

	token, err := srv.sessionStore.Issue(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to issue session")
	}

	srv.log(ctx).Info("User signed up", slog.String("username", user.Username))

	return &usecase.AuthOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}

// CheckSession resolves a session token to the sanitized user it belongs to.
func (srv *authService) CheckSession(ctx context.Context, token string) (*usecase.UserView, error) {
	user, err := srv.resolveSession(ctx, token)
	if err != nil {
		return nil, err
	}

	return usecase.NewUserView(user), nil
}

// Login verifies credentials and starts a session. Unknown username and wrong
// password return the same error so the response cannot be used to probe for
// accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown username")
		}

		srv.log(ctx).Error("Failed to find user", slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("password mismatch")
	}

	token, err := srv.sessionStore.Issue(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to issue session")
	}

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))

	return &usecase.AuthOutput{
		Token: token,
		User:  usecase.NewUserView(user),
	}, nil
}

// Logout clears an authenticated session. A caller without a live session is
// rejected rather than silently ignored.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domainerrors.ErrUnauthorized.WrapMessage("no session token")
	}

	if _, err := srv.sessionStore.Get(ctx, token); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return domainerrors.ErrUnauthorized.WrapMessage("stale session token")
		}

		srv.log(ctx).Error("Failed to load session", slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage("failed to load session")
	}

	if err := srv.sessionStore.Clear(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to clear session", slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage("failed to clear session")
	}

	return nil
}

func (srv *authService) resolveSession(ctx context.Context, token string) (*entity.User, error) {
	return resolveSessionUser(ctx, srv.sessionStore, srv.userRepo, srv.log(ctx), token)
}
