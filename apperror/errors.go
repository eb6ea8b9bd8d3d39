package apperror

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAuthUnavailable = errors.New("auth service unavailable")

	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidFileID     = errors.New("invalid file id format")
	ErrEmptyUploadStream = errors.New("empty upload stream")
	ErrMissingMetadata   = errors.New("first message must contain metadata")
	ErrUploadTooLarge    = errors.New("declared size exceeds maximum allowed size (2GB)")

	ErrFileNotFound    = errors.New("file not found")
	ErrSessionNotFound = errors.New("upload session not found")

	ErrFileLimitReached = errors.New("maximum file limit reached (20 files per user)")
	ErrFileTooLarge     = errors.New("file size exceeds maximum allowed size (2GB)")

	ErrStorage      = errors.New("storage failure")
	ErrNoSuchUpload = errors.New("multipart upload does not exist")
)

// GRPCCode maps an application error onto the gRPC status taxonomy.
// Errors that are not recognized are reported as Internal.
func GRPCCode(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, ErrUnauthenticated):
		return codes.Unauthenticated
	case errors.Is(err, ErrAuthUnavailable):
		return codes.Unavailable
	case errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrInvalidFileID),
		errors.Is(err, ErrEmptyUploadStream),
		errors.Is(err, ErrMissingMetadata),
		errors.Is(err, ErrUploadTooLarge):
		return codes.InvalidArgument
	case errors.Is(err, ErrFileNotFound), errors.Is(err, ErrSessionNotFound):
		return codes.NotFound
	case errors.Is(err, ErrFileLimitReached), errors.Is(err, ErrFileTooLarge):
		return codes.ResourceExhausted
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// GRPCStatus converts err into a status error. Errors that already carry a
// status are returned unchanged.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := GRPCCode(err)
	if code == codes.Internal {
		return status.Error(code, "internal error: "+err.Error())
	}
	return status.Error(code, err.Error())
}

func HTTPStatus(err error) int {
	switch GRPCCode(err) {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.ResourceExhausted:
		return http.StatusRequestEntityTooLarge
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
