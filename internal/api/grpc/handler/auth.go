package handler

import (
	"context"

	"github.com/dtroode/spacegame-server/internal/api/grpc/launcher"
	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AuthService defines identity registration and session operations.
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.Session, error)
	SignIn(ctx context.Context, creds model.Credentials) (model.Session, error)
	Refresh(ctx context.Context, refreshToken string) (model.Session, error)
	SignOut(ctx context.Context, refreshToken string) error
}

// HandleChecker answers handle availability queries.
type HandleChecker interface {
	CheckHandle(ctx context.Context, raw string) (model.HandleCheck, error)
}

// Auth handles the public spacegame.v1.Auth procedures.
type Auth struct {
	authService AuthService
	handles     HandleChecker
	logger      *logger.Logger
}

var _ launcher.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, handles HandleChecker, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		handles:     handles,
		logger:      logger,
	}
}

// SignUp creates an identity with its profile and returns a session.
func (h *Auth) SignUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var params model.SignUpParams
	var err error
	if params.Email, err = stringField(req, "email"); err != nil {
		return nil, handleError(err)
	}
	if params.Password, err = stringField(req, "password"); err != nil {
		return nil, handleError(err)
	}
	if params.Handle, err = stringField(req, "handle"); err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Auth handler: processing sign-up request",
		"handle", params.Handle)

	session, err := h.authService.SignUp(ctx, params)
	if err != nil {
		h.logger.Error("Auth handler: sign-up failed",
			"handle", params.Handle,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: sign-up completed",
		"user_id", session.UserID.String())

	return h.session(session)
}

// SignIn exchanges credentials for a session.
func (h *Auth) SignIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var creds model.Credentials
	var err error
	if creds.Email, err = stringField(req, "email"); err != nil {
		return nil, handleError(err)
	}
	if creds.Password, err = stringField(req, "password"); err != nil {
		return nil, handleError(err)
	}

	session, err := h.authService.SignIn(ctx, creds)
	if err != nil {
		h.logger.Warn("Auth handler: sign-in failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: sign-in completed",
		"user_id", session.UserID.String())

	return h.session(session)
}

// Refresh rotates a refresh token.
func (h *Auth) Refresh(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	session, err := h.authService.Refresh(ctx, req.GetValue())
	if err != nil {
		h.logger.Warn("Auth handler: refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.session(session)
}

// SignOut revokes a refresh token.
func (h *Auth) SignOut(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.authService.SignOut(ctx, req.GetValue()); err != nil {
		h.logger.Error("Auth handler: sign-out failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// CheckHandle reports whether a handle can still be reserved. The answer is
// advisory; the reservation itself happens at sign-up or SetHandle.
func (h *Auth) CheckHandle(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	check, err := h.handles.CheckHandle(ctx, req.GetValue())
	if err != nil {
		h.logger.Error("Auth handler: handle check failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"handle":    check.Handle,
		"available": check.Available,
		"reason":    check.Reason,
	})
	if err != nil {
		return nil, status.Error(codes.Internal, "internal server error")
	}

	return out, nil
}

func (h *Auth) session(session model.Session) (*structpb.Struct, error) {
	out, err := sessionStruct(session)
	if err != nil {
		h.logger.Error("Auth handler: failed to encode session",
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}
