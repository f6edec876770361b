package middleware

import (
	"runtime/debug"

	"github.com/dtroode/spacegame-server/internal/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Recovery turns handler panics into Internal errors.
type Recovery struct {
	logger *logger.Logger
}

// NewRecovery creates a new Recovery middleware.
func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// HandlePanic is a recovery.RecoveryHandlerFunc.
func (r *Recovery) HandlePanic(p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p,
		"stack", string(debug.Stack()))

	return status.Error(codes.Internal, "internal server error")
}
