// Package tokenstore implements the refresh-token allowlist on Redis.
package tokenstore

import (
	"context"
	"log/slog"
	"strconv"

	"ledger/config"
	"ledger/internal/domain/lifecycle"
	"ledger/internal/domain/repository"
	"ledger/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisTokenStore implements the domain's RefreshTokenStore interface.
// Keys are the raw refresh tokens themselves; presence of a key means the
// token is still accepted. Entries carry no TTL: a logout deletes the key,
// and the JWT's own expiry claim bounds how long a leftover entry matters.
type redisTokenStore struct {
	client *redis.Client
}

// New creates the Redis client and registers lifecycle hooks that verify
// connectivity on start and close the client on stop.
func New(params Params) (repository.RefreshTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: params.Config.Redis.Host + ":" + strconv.Itoa(params.Config.Redis.Port),
		DB:   params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.LogAttrs(ctx, slog.LevelInfo, "Redis connected",
				slog.String("addr", client.Options().Addr),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisTokenStore{client: client}, nil
}

// Store records a refresh token as valid.
func (s *redisTokenStore) Store(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, token, "1", 0).Err(); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// Contains reports whether a refresh token is still valid.
func (s *redisTokenStore) Contains(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, token).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check refresh token")
	}

	return count > 0, nil
}

// Delete revokes a refresh token. Deleting a token that was never stored
// is not an error.
func (s *redisTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, token).Err(); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}
