package handler

import (
	"errors"

	"github.com/dtroode/spacegame-server/internal/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const deleteAccountFailedMessage = "Failed to delete account. Please try again later."

func handleError(err error) error {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, model.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, model.ErrUnauthenticated.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrHandleTaken):
		return status.Error(codes.AlreadyExists, model.ErrHandleTaken.Error())
	case errors.Is(err, model.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, model.ErrEmailTaken.Error())
	case errors.Is(err, model.ErrProfileExists):
		return status.Error(codes.AlreadyExists, model.ErrProfileExists.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "profile not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

// handleEraseError keeps the single failure contract of account deletion:
// anything but a missing session is reported as one retryable message.
func handleEraseError(err error) error {
	if errors.Is(err, model.ErrUnauthenticated) {
		return status.Error(codes.Unauthenticated, model.ErrUnauthenticated.Error())
	}
	return status.Error(codes.Internal, deleteAccountFailedMessage)
}
