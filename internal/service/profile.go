package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/spacegame-server/internal/handle"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

// Profiles manages launcher profiles and their handle reservations.
type Profiles struct {
	profiles   model.ProfileStore
	identities model.IdentityStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewProfiles(profiles model.ProfileStore, identities model.IdentityStore, logger *logger.Logger) *Profiles {
	return &Profiles{
		profiles:   profiles,
		identities: identities,
		logger:     logger,
		now:        time.Now,
	}
}

// CheckHandle normalizes raw and reports whether it can be reserved. An
// invalid handle is reported as unavailable with the rule it breaks.
// The answer is advisory: reservation is decided by the write itself.
func (p *Profiles) CheckHandle(ctx context.Context, raw string) (model.HandleCheck, error) {
	normalized, err := handle.Normalize(raw)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return model.HandleCheck{Handle: normalized, Available: false, Reason: ve.Reason}, nil
		}
		return model.HandleCheck{}, err
	}

	exists, err := p.profiles.HandleExists(ctx, normalized)
	if err != nil {
		p.logger.Error("Profile service: failed to check handle",
			"handle", normalized,
			"error", err.Error())
		return model.HandleCheck{}, fmt.Errorf("failed to check handle: %w", err)
	}

	check := model.HandleCheck{Handle: normalized, Available: !exists}
	if exists {
		check.Reason = "taken"
	}
	return check, nil
}

func (p *Profiles) Get(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	if userID == uuid.Nil {
		return model.Profile{}, model.ErrUnauthenticated
	}

	profile, err := p.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, err
		}
		p.logger.Error("Profile service: failed to get profile",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// SetHandle claims raw for the caller. A caller without a profile gets one.
func (p *Profiles) SetHandle(ctx context.Context, userID uuid.UUID, raw string) (model.Profile, error) {
	if userID == uuid.Nil {
		return model.Profile{}, model.ErrUnauthenticated
	}

	normalized, err := handle.Normalize(raw)
	if err != nil {
		return model.Profile{}, err
	}

	profile, err := p.profiles.ChangeHandle(ctx, userID, normalized)
	if err == nil {
		p.logger.Info("Profile service: handle changed",
			"user_id", userID,
			"handle", normalized)
		return profile, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, p.wrapReservationError(userID, normalized, err)
	}

	identity, err := p.identities.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Profile{}, model.ErrUnauthenticated
		}
		return model.Profile{}, fmt.Errorf("failed to get identity: %w", err)
	}

	profile, err = p.profiles.Create(ctx, model.Profile{
		ID:        userID,
		Username:  normalized,
		Email:     identity.Email,
		CreatedAt: p.now().UTC(),
	})
	if err != nil {
		return model.Profile{}, p.wrapReservationError(userID, normalized, err)
	}

	p.logger.Info("Profile service: profile created",
		"user_id", userID,
		"handle", normalized)
	return profile, nil
}

func (p *Profiles) wrapReservationError(userID uuid.UUID, handle string, err error) error {
	if errors.Is(err, model.ErrHandleTaken) || errors.Is(err, model.ErrProfileExists) {
		p.logger.Info("Profile service: handle not reserved",
			"user_id", userID,
			"handle", handle,
			"error", err.Error())
		return err
	}

	p.logger.Error("Profile service: failed to reserve handle",
		"user_id", userID,
		"handle", handle,
		"error", err.Error())
	return fmt.Errorf("failed to reserve handle: %w", err)
}
