package handler

import (
	"context"

	"github.com/dtroode/spacegame-server/internal/api/grpc/launcher"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProfileService reads and updates the caller's profile.
type ProfileService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	SetHandle(ctx context.Context, userID uuid.UUID, raw string) (model.Profile, error)
}

// AccountService erases everything owned by an identity.
type AccountService interface {
	Erase(ctx context.Context, userID uuid.UUID) (model.EraseResult, error)
}

// Account handles the authenticated spacegame.v1.Account procedures.
type Account struct {
	profiles       ProfileService
	accounts       AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ launcher.AccountServer = (*Account)(nil)

// NewAccount creates a new Account handler.
func NewAccount(profiles ProfileService, accounts AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		profiles:       profiles,
		accounts:       accounts,
		contextManager: contextManager,
		logger:         logger,
	}
}

// GetProfile returns the caller's profile.
func (h *Account) GetProfile(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, handleError(model.ErrUnauthenticated)
	}

	profile, err := h.profiles.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("Account handler: failed to get profile",
			"user_id", userID.String(),
			"error", err.Error())
		return nil, handleError(err)
	}

	out, err := structpb.NewStruct(profileFields(profile))
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return out, nil
}

// SetHandle reserves a new handle for the caller, creating the profile when
// the identity does not have one yet.
func (h *Account) SetHandle(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, handleError(model.ErrUnauthenticated)
	}

	profile, err := h.profiles.SetHandle(ctx, userID, req.GetValue())
	if err != nil {
		h.logger.Warn("Account handler: failed to set handle",
			"user_id", userID.String(),
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Account handler: handle set",
		"user_id", userID.String(),
		"handle", profile.Username)

	out, err := structpb.NewStruct(map[string]any{
		"profile": profileFields(profile),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return out, nil
}

// DeleteAccount erases the caller's profile, handle reservation and scores,
// then revokes the identity.
func (h *Account) DeleteAccount(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return nil, handleEraseError(model.ErrUnauthenticated)
	}

	result, err := h.accounts.Erase(ctx, userID)
	if err != nil {
		h.logger.Error("Account handler: account deletion failed",
			"user_id", userID.String(),
			"error", err.Error())
		return nil, handleEraseError(err)
	}

	h.logger.Info("Account handler: account deleted",
		"user_id", userID.String(),
		"scores_deleted", result.ScoresDeleted)

	return structpb.NewStruct(map[string]any{"success": true})
}
