package handlers

import (
	"github.com/Yulian302/lfusys-services-files/auth"
	"github.com/Yulian302/lfusys-services-files/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

// MaxRecvMsgSize admits a full PartSize UploadPart request plus its framing.
const MaxRecvMsgSize = int(services.PartSize) + 1<<20

// NewGRPCServer returns a server that authenticates every call except
// health probes.
func NewGRPCServer(resolver *auth.Resolver, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(MaxRecvMsgSize),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(resolver.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(resolver.StreamServerInterceptor()),
	}, opts...)

	return grpc.NewServer(opts...)
}
