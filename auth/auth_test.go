package auth

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yulian302/lfusys-services-files/api/authv1"
	"github.com/Yulian302/lfusys-services-files/apperror"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fakeValidator struct {
	resp   *authv1.ValidateTokenResponse
	err    error
	tokens []string
}

func (f *fakeValidator) ValidateToken(_ context.Context, token string) (*authv1.ValidateTokenResponse, error) {
	f.tokens = append(f.tokens, token)
	return f.resp, f.err
}

func validUser(id string) *fakeValidator {
	return &fakeValidator{resp: &authv1.ValidateTokenResponse{
		Valid: true,
		User:  &authv1.User{Id: id, Username: "alice", Role: authv1.Role_ROLE_USER},
	}}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("valid bearer token", func(t *testing.T) {
		v := validUser("u1")
		owner, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
		require.NoError(t, err)
		assert.Equal(t, "u1", owner)
		assert.Equal(t, []string{"tok"}, v.tokens)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		_, err := NewResolver(validUser("u1"), logger.NewNopLogger()).Resolve(ctx, "bearer tok")
		require.NoError(t, err)
	})

	for name, header := range map[string]string{
		"missing":      "",
		"no token":     "Bearer",
		"extra fields": "Bearer a b",
		"basic auth":   "Basic dXNlcjpwYXNz",
	} {
		t.Run("malformed "+name, func(t *testing.T) {
			v := validUser("u1")
			_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, header)
			require.ErrorIs(t, err, apperror.ErrUnauthenticated)
			assert.Empty(t, v.tokens)
		})
	}

	t.Run("token rejected", func(t *testing.T) {
		v := &fakeValidator{resp: &authv1.ValidateTokenResponse{Valid: false}}
		_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
		require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("valid without user", func(t *testing.T) {
		v := &fakeValidator{resp: &authv1.ValidateTokenResponse{Valid: true}}
		_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
		require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	t.Run("validator answers invalid argument", func(t *testing.T) {
		v := &fakeValidator{err: status.Error(codes.InvalidArgument, "token is required")}
		_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
		require.ErrorIs(t, err, apperror.ErrUnauthenticated)
	})

	for _, code := range []codes.Code{codes.Internal, codes.Unknown, codes.NotFound, codes.FailedPrecondition, codes.PermissionDenied} {
		t.Run("validator answers "+code.String(), func(t *testing.T) {
			v := &fakeValidator{err: status.Error(code, "rejected")}
			_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
			require.ErrorIs(t, err, apperror.ErrUnauthenticated)
			assert.Equal(t, codes.Unauthenticated, apperror.GRPCCode(err))
		})
	}

	for _, code := range []codes.Code{codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted} {
		t.Run("validator unreachable "+code.String(), func(t *testing.T) {
			v := &fakeValidator{err: status.Error(code, "connection refused")}
			_, err := NewResolver(v, logger.NewNopLogger()).Resolve(ctx, "Bearer tok")
			require.ErrorIs(t, err, apperror.ErrAuthUnavailable)
			assert.Equal(t, codes.Unavailable, apperror.GRPCCode(err))
		})
	}
}

func TestUnaryServerInterceptor(t *testing.T) {
	r := NewResolver(validUser("u1"), logger.NewNopLogger())
	interceptor := r.UnaryServerInterceptor()

	var seen string
	handler := func(ctx context.Context, req any) (any, error) {
		seen, _ = OwnerFromContext(ctx)
		return "ok", nil
	}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer tok"))
	out, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/file.v1.FileService/GetFile"}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "u1", seen)

	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/file.v1.FileService/GetFile"}, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
	require.NoError(t, err)
}

func TestMiddleware(t *testing.T) {
	r := NewResolver(validUser("u1"), logger.NewNopLogger())
	h := r.Middleware(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		owner, ok := OwnerFromContext(req.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(owner))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/files", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/files", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing authorization header")
}

type stubAuthServer struct {
	authv1.UnimplementedAuthServiceServer
}

func (stubAuthServer) ValidateToken(_ context.Context, req *authv1.ValidateTokenRequest) (*authv1.ValidateTokenResponse, error) {
	switch req.GetToken() {
	case "":
		return nil, status.Error(codes.InvalidArgument, "token is required")
	case "good":
		return &authv1.ValidateTokenResponse{Valid: true, User: &authv1.User{Id: "u42", Role: authv1.Role_ROLE_ADMIN}}, nil
	default:
		return &authv1.ValidateTokenResponse{Valid: false}, nil
	}
}

func TestGRPCAuthClient(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	authv1.RegisterAuthServiceServer(srv, stubAuthServer{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	client, err := NewGRPCAuthClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	resp, err := client.ValidateToken(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, resp.GetValid())
	assert.Equal(t, "u42", resp.GetUser().GetId())
	assert.Equal(t, authv1.Role_ROLE_ADMIN, resp.GetUser().GetRole())

	r := NewResolver(client, logger.NewNopLogger())
	_, err = r.Resolve(context.Background(), "Bearer bad")
	require.ErrorIs(t, err, apperror.ErrUnauthenticated)
}
