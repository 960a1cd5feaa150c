package handler

import (
	"context"
	"errors"

	"github.com/ogurasousui/codex-workforce-synth/internal/core/workforce"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, workforce.ErrConfiguration),
		errors.Is(err, workforce.ErrInvalidDate),
		errors.Is(err, workforce.ErrInvalidRecord):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, workforce.ErrInsufficientData),
		errors.Is(err, workforce.ErrNotDerived):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, workforce.ErrCrossCheckMismatch):
		return status.Error(codes.DataLoss, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
