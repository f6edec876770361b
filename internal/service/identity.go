package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/spacegame-server/internal/handle"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// Identity is the identity provider: credentials, sessions and revocation.
type Identity struct {
	identities   model.IdentityStore
	profiles     model.ProfileStore
	tokenService *TokenService
	logger       *logger.Logger
	hashCost     int
	now          func() time.Time
}

func NewIdentity(
	identities model.IdentityStore,
	profiles model.ProfileStore,
	tokenService *TokenService,
	logger *logger.Logger,
) *Identity {
	return &Identity{
		identities:   identities,
		profiles:     profiles,
		tokenService: tokenService,
		logger:       logger,
		hashCost:     bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// SignUp creates an identity together with its profile and handle
// reservation. A handle already reserved is rejected before the identity is
// created; a reservation lost to a concurrent sign-up removes the identity.
func (i *Identity) SignUp(ctx context.Context, params model.SignUpParams) (model.Session, error) {
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return model.Session{}, err
	}
	if len(params.Password) < MinPasswordLength {
		return model.Session{}, model.NewValidationError("password", fmt.Sprintf("min %d chars", MinPasswordLength))
	}
	normalized, err := handle.Normalize(params.Handle)
	if err != nil {
		return model.Session{}, err
	}

	taken, err := i.profiles.HandleExists(ctx, normalized)
	if err != nil {
		i.logger.Error("Identity service: failed to check handle",
			"handle", normalized,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to check handle: %w", err)
	}
	if taken {
		i.logger.Info("Identity service: handle already taken",
			"handle", normalized)
		return model.Session{}, model.ErrHandleTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), i.hashCost)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := i.now().UTC()
	identity, err := i.identities.Create(ctx, model.Identity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			i.logger.Info("Identity service: email already registered",
				"email", email)
			return model.Session{}, err
		}
		i.logger.Error("Identity service: failed to create identity",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create identity: %w", err)
	}

	_, err = i.profiles.Create(ctx, model.Profile{
		ID:        identity.ID,
		Username:  normalized,
		Email:     email,
		CreatedAt: now,
	})
	if err != nil {
		i.logger.Warn("Identity service: profile creation failed, removing identity",
			"user_id", identity.ID,
			"handle", normalized,
			"error", err.Error())
		if revokeErr := i.Revoke(ctx, identity.ID); revokeErr != nil {
			i.logger.Error("Identity service: failed to remove orphan identity",
				"user_id", identity.ID,
				"error", revokeErr.Error())
		}
		if errors.Is(err, model.ErrHandleTaken) {
			return model.Session{}, err
		}
		return model.Session{}, fmt.Errorf("failed to create profile: %w", err)
	}

	i.logger.Info("Identity service: user signed up",
		"user_id", identity.ID,
		"handle", normalized)

	return i.issue(ctx, identity.ID)
}

func (i *Identity) SignIn(ctx context.Context, creds model.Credentials) (model.Session, error) {
	identity, err := i.identities.GetByEmail(ctx, strings.TrimSpace(creds.Email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, model.ErrInvalidCredentials
		}
		return model.Session{}, fmt.Errorf("failed to get identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(identity.PasswordHash, []byte(creds.Password)); err != nil {
		i.logger.Info("Identity service: wrong password",
			"user_id", identity.ID)
		return model.Session{}, model.ErrInvalidCredentials
	}

	return i.issue(ctx, identity.ID)
}

func (i *Identity) Refresh(ctx context.Context, refreshToken string) (model.Session, error) {
	userID, _, err := i.tokenService.manager.ParseRefreshToken(refreshToken)
	if err != nil {
		return model.Session{}, model.ErrUnauthenticated
	}
	if err := i.ensureExists(ctx, userID); err != nil {
		return model.Session{}, err
	}

	access, refresh, err := i.tokenService.Refresh(ctx, refreshToken)
	if err != nil {
		if isTokenError(err) {
			return model.Session{}, model.ErrUnauthenticated
		}
		return model.Session{}, err
	}

	return model.Session{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Identity) SignOut(ctx context.Context, refreshToken string) error {
	if err := i.tokenService.RevokeByToken(ctx, refreshToken); err != nil {
		if isTokenError(err) {
			return model.ErrUnauthenticated
		}
		return err
	}
	return nil
}

// Authenticate resolves an access token to a live identity.
func (i *Identity) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	userID, err := i.tokenService.GetUserID(ctx, accessToken)
	if err != nil {
		return uuid.Nil, model.ErrUnauthenticated
	}
	if err := i.ensureExists(ctx, userID); err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// Revoke deletes the identity and invalidates its refresh tokens. Revoking
// an identity that no longer exists succeeds.
func (i *Identity) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := i.tokenService.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	if err := i.identities.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	i.logger.Info("Identity service: identity revoked",
		"user_id", userID)
	return nil
}

func (i *Identity) issue(ctx context.Context, userID uuid.UUID) (model.Session, error) {
	access, refresh, err := i.tokenService.Issue(ctx, userID)
	if err != nil {
		i.logger.Error("Identity service: failed to issue session",
			"user_id", userID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue session: %w", err)
	}

	return model.Session{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Identity) ensureExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := i.identities.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrUnauthenticated
		}
		return fmt.Errorf("failed to get identity: %w", err)
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", model.NewValidationError("email", "required")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", model.NewValidationError("email", "malformed address")
	}
	return trimmed, nil
}

func isTokenError(err error) bool {
	return errors.Is(err, model.ErrTokenRevoked) ||
		errors.Is(err, model.ErrTokenExpired) ||
		errors.Is(err, model.ErrTokenMismatch) ||
		errors.Is(err, model.ErrNotFound)
}
