package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// IdentityRevoker removes an identity from the identity provider.
type IdentityRevoker interface {
	Revoke(ctx context.Context, userID uuid.UUID) error
}

// Account erases an account: data first, identity last, so that a failure
// never leaves data behind without an identity able to retry.
type Account struct {
	profiles       model.ProfileStore
	accounts       model.AccountStore
	revoker        IdentityRevoker
	chunkSize      int
	revokeAttempts int
	logger         *logger.Logger
	newBackOff     func() backoff.BackOff
}

func NewAccount(
	profiles model.ProfileStore,
	accounts model.AccountStore,
	revoker IdentityRevoker,
	chunkSize int,
	revokeAttempts int,
	logger *logger.Logger,
) *Account {
	return &Account{
		profiles:       profiles,
		accounts:       accounts,
		revoker:        revoker,
		chunkSize:      chunkSize,
		revokeAttempts: revokeAttempts,
		logger:         logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
}

// Erase deletes everything owned by userID and then revokes the identity.
// Calling it again after a partial failure completes the remaining work.
func (a *Account) Erase(ctx context.Context, userID uuid.UUID) (model.EraseResult, error) {
	if userID == uuid.Nil {
		return model.EraseResult{}, model.ErrUnauthenticated
	}

	a.logger.Info("Account service: erasing account",
		"user_id", userID)

	var h string
	profile, err := a.profiles.GetByID(ctx, userID)
	switch {
	case err == nil:
		h = profile.Username
	case errors.Is(err, model.ErrNotFound):
		a.logger.Debug("Account service: no profile to erase",
			"user_id", userID)
	default:
		a.logger.Error("Account service: failed to get profile",
			"user_id", userID,
			"error", err.Error())
		return model.EraseResult{}, fmt.Errorf("failed to get profile: %w", err)
	}

	result, err := a.accounts.Erase(ctx, model.EraseParams{
		UserID:    userID,
		ChunkSize: a.chunkSize,
	})
	if err != nil {
		a.logger.Error("Account service: failed to erase account data",
			"user_id", userID,
			"error", err.Error())
		return model.EraseResult{}, fmt.Errorf("failed to erase account data: %w", err)
	}

	if err := a.revoke(ctx, userID); err != nil {
		a.logger.Error("Account service: failed to revoke identity",
			"user_id", userID,
			"error", err.Error())
		return model.EraseResult{}, fmt.Errorf("failed to revoke identity: %w", err)
	}

	a.logger.Info("Account service: account erased",
		"user_id", userID,
		"handle", h,
		"profile_deleted", result.ProfileDeleted,
		"reservation_deleted", result.ReservationDeleted,
		"scores_deleted", result.ScoresDeleted)

	return result, nil
}

func (a *Account) revoke(ctx context.Context, userID uuid.UUID) error {
	attempts := a.revokeAttempts
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.WithContext(backoff.WithMaxRetries(a.newBackOff(), uint64(attempts-1)), ctx)
	notify := func(err error, next time.Duration) {
		a.logger.Warn("Account service: identity revoke failed, retrying",
			"user_id", userID,
			"retry_in", next,
			"error", err.Error())
	}

	return backoff.RetryNotify(func() error {
		return a.revoker.Revoke(ctx, userID)
	}, b, notify)
}
