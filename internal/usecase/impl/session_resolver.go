package impl

import (
	"context"
	"log/slog"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"

	"github.com/pkg/errors"
)

// resolveSessionUser maps a token onto the user entity it belongs to,
// collapsing every failure mode into ErrUnauthorized. A session whose user no
// longer exists is dropped on the way out.
func resolveSessionUser(
	ctx context.Context,
	store service.SessionStore,
	userRepo repository.UserRepository,
	logger *slog.Logger,
	token string,
) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("no session token")
	}

	userID, err := store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("stale session token")
		}

		logger.Error("Failed to load session", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to load session")
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = store.Clear(ctx, token)

			return nil, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists")
		}

		logger.Error("Failed to find session user", slog.Any("error", err))

		return nil, err
	}

	return user, nil
}
