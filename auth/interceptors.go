package auth

import (
	"context"
	"strings"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const authorizationKey = "authorization"

// healthPrefix is exempt so probes do not need credentials.
const healthPrefix = "/grpc.health.v1.Health/"

func (r *Resolver) resolveIncoming(ctx context.Context) (context.Context, error) {
	var authorization string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationKey); len(values) > 0 {
			authorization = values[0]
		}
	}

	owner, err := r.Resolve(ctx, authorization)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return WithOwner(ctx, owner), nil
}

func (r *Resolver) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, healthPrefix) {
			return handler(ctx, req)
		}

		ctx, err := r.resolveIncoming(ctx)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

type ownerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *ownerStream) Context() context.Context {
	return s.ctx
}

func (r *Resolver) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if strings.HasPrefix(info.FullMethod, healthPrefix) {
			return handler(srv, ss)
		}

		ctx, err := r.resolveIncoming(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &ownerStream{ServerStream: ss, ctx: ctx})
	}
}
