package handlers

import (
	"context"
	"testing"

	"github.com/Yulian302/lfusys-services-files/api/authv1"
	"github.com/Yulian302/lfusys-services-files/auth"
	"github.com/Yulian302/lfusys-services-files/caching"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/services"
	"github.com/Yulian302/lfusys-services-files/store/memstore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// tokenValidator accepts the tokens it knows and maps them to user ids.
type tokenValidator map[string]string

func (v tokenValidator) ValidateToken(_ context.Context, token string) (*authv1.ValidateTokenResponse, error) {
	id, ok := v[token]
	if !ok {
		return &authv1.ValidateTokenResponse{Valid: false}, nil
	}
	return &authv1.ValidateTokenResponse{
		Valid: true,
		User:  &authv1.User{Id: id, Username: id, Role: authv1.Role_ROLE_USER},
	}, nil
}

type testDeps struct {
	files    *memstore.FileStore
	sessions *memstore.SessionStore
	objects  *memstore.ObjectStorage

	catalog   services.FileService
	transfer  services.TransferService
	multipart services.MultipartService
	resolver  *auth.Resolver
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/spool", 0o755))

	l := logger.NewNopLogger()
	cache := caching.NewNullCachingService()

	d := &testDeps{
		files:    memstore.NewFileStore(),
		sessions: memstore.NewSessionStore(),
		objects:  memstore.NewObjectStorage(),
		resolver: auth.NewResolver(tokenValidator{
			"alice-token": "alice",
			"bob-token":   "bob",
		}, l),
	}
	d.catalog = services.NewFileServiceImpl(d.files, d.objects, cache, l)
	d.transfer = services.NewTransferServiceImpl(d.files, d.objects, cache, services.SpoolConfig{
		Fs:        fs,
		Dir:       "/spool",
		Threshold: 1 << 10,
	}, l)
	d.multipart = services.NewMultipartServiceImpl(d.sessions, d.files, d.objects, cache, l)
	return d
}
