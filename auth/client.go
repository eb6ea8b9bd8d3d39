package auth

import (
	"context"

	"github.com/Yulian302/lfusys-services-files/api/authv1"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TokenValidator validates bearer tokens against the auth service.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*authv1.ValidateTokenResponse, error)
}

type GRPCAuthClient struct {
	conn   *grpc.ClientConn
	client authv1.AuthServiceClient
}

func NewGRPCAuthClient(addr string, opts ...grpc.DialOption) (*GRPCAuthClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCAuthClient{
		conn:   conn,
		client: authv1.NewAuthServiceClient(conn),
	}, nil
}

func (c *GRPCAuthClient) ValidateToken(ctx context.Context, token string) (*authv1.ValidateTokenResponse, error) {
	return c.client.ValidateToken(ctx, &authv1.ValidateTokenRequest{Token: token})
}

func (c *GRPCAuthClient) Close() error {
	return c.conn.Close()
}
