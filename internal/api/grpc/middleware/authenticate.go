package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// Authenticator resolves the identity behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc parses Authorization header, validates token and returns a context with user ID.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeaders[0], "Bearer "))
		}
	}

	userID, authErr := m.authenticateUser(ctx, tokenString)
	if authErr != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"error", authErr.Error())
		return nil, status.Error(codes.Unauthenticated, model.ErrUnauthenticated.Error())
	}

	return m.contextManager.SetUserIDToContext(ctx, userID), nil
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, errMissingToken
	}

	userID, err := m.authenticator.Authenticate(ctx, tokenString)
	if err != nil {
		return uuid.Nil, errors.Join(errInvalidToken, err)
	}

	if userID == uuid.Nil {
		return uuid.Nil, errInvalidToken
	}

	return userID, nil
}
