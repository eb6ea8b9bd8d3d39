package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const validateTimeout = 5 * time.Second

// Resolver turns an authorization value into the caller's owner id.
type Resolver struct {
	validator TokenValidator
	logger    logger.Logger
}

func NewResolver(validator TokenValidator, l logger.Logger) *Resolver {
	return &Resolver{
		validator: validator,
		logger:    l,
	}
}

// Resolve accepts exactly "Bearer <token>". Transport level failures of the
// auth service map to ErrAuthUnavailable; any other error answer is a
// rejection and maps to ErrUnauthenticated.
func (r *Resolver) Resolve(ctx context.Context, authorization string) (string, error) {
	token, err := bearerToken(authorization)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	resp, err := r.validator.ValidateToken(ctx, token)
	if err != nil {
		switch status.Code(err) {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted:
			r.logger.Error("token validation failed", "error", err)
			return "", fmt.Errorf("%w: %v", apperror.ErrAuthUnavailable, err)
		}
		r.logger.Warn("token rejected", "code", status.Code(err).String(), "error", err)
		return "", fmt.Errorf("%w: %s", apperror.ErrUnauthenticated, status.Convert(err).Message())
	}

	if !resp.GetValid() {
		return "", fmt.Errorf("%w: invalid or expired token", apperror.ErrUnauthenticated)
	}
	ownerID := resp.GetUser().GetId()
	if ownerID == "" {
		return "", fmt.Errorf("%w: token carries no user", apperror.ErrUnauthenticated)
	}

	return ownerID, nil
}

func bearerToken(authorization string) (string, error) {
	if authorization == "" {
		return "", fmt.Errorf("%w: missing authorization header", apperror.ErrUnauthenticated)
	}

	fields := strings.Fields(authorization)
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: invalid authorization header", apperror.ErrUnauthenticated)
	}
	if !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("%w: invalid authorization type", apperror.ErrUnauthenticated)
	}

	return fields[1], nil
}
