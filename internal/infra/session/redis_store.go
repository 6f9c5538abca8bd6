package session

import (
	"context"
	"log/slog"
	"time"

	"plateful/config"
	"plateful/internal/domain/lifecycle"
	"plateful/internal/domain/service"
	"plateful/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "session:"

// redisStore implements SessionStore on redis so sessions are shared across
// instances. Each session key carries the configured TTL; that TTL is the
// only expiry mechanism, matching the transport-level expiry contract.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the session store backed by redis when configured, falling back
// to the in-process store otherwise.
func New(params Params) (service.SessionStore, error) {
	if params.Config.Redis == nil {
		params.Logger.Warn("Redis not configured, using in-process session store")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.Wrap(client.Close(), "failed to close redis client")
		},
	})

	return &redisStore{
		client: client,
		ttl:    params.Config.Session.TTL,
	}, nil
}

// Issue generates a fresh token and stores it under the configured TTL.
func (s *redisStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	return token, s.Set(ctx, token, userID)
}

// Set associates a session token with a user id under the configured TTL.
func (s *redisStore) Set(ctx context.Context, token string, userID uuid.UUID) error {
	if err := s.client.Set(ctx, keyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

// Get resolves a session token to a user id.
func (s *redisStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, service.ErrSessionNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "corrupt session value")
	}

	return userID, nil
}

// Clear removes a session token. Deleting a missing key is a no-op.
func (s *redisStore) Clear(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}
