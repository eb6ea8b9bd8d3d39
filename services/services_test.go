package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Yulian302/lfusys-services-files/caching"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/store/memstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	files    *memstore.FileStore
	sessions *memstore.SessionStore
	objects  *memstore.ObjectStorage
	cache    caching.CachingService
	redis    *miniredis.Miniredis
	fs       afero.Fs

	catalog   *FileServiceImpl
	transfer  *TransferServiceImpl
	multipart *MultipartServiceImpl
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	env := &testEnv{
		files:    memstore.NewFileStore(),
		sessions: memstore.NewSessionStore(),
		objects:  memstore.NewObjectStorage(),
		cache:    caching.NewRedisCachingService(client),
		redis:    mr,
		fs:       afero.NewMemMapFs(),
	}
	if err := env.fs.MkdirAll("/spool", 0o755); err != nil {
		t.Fatalf("create spool dir: %v", err)
	}
	env.sessions.Now = func() time.Time { return fixedNow }
	env.objects.Now = func() time.Time { return fixedNow }

	l := logger.NewNopLogger()
	env.catalog = NewFileServiceImpl(env.files, env.objects, env.cache, l)
	env.catalog.now = func() time.Time { return fixedNow }

	env.transfer = NewTransferServiceImpl(env.files, env.objects, env.cache, SpoolConfig{
		Fs:        env.fs,
		Dir:       "/spool",
		Threshold: 16,
	}, l)
	env.transfer.now = func() time.Time { return fixedNow }

	env.multipart = NewMultipartServiceImpl(env.sessions, env.files, env.objects, env.cache, l)
	env.multipart.now = func() time.Time { return fixedNow }

	return env
}

// sliceStream replays messages and counts how many were read.
type sliceStream struct {
	msgs []*UploadMessage
	err  error
	read int
}

func (s *sliceStream) Recv() (*UploadMessage, error) {
	if s.read < len(s.msgs) {
		m := s.msgs[s.read]
		s.read++
		return m, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, io.EOF
}

func uploadOf(filename, contentType string, chunks ...string) *sliceStream {
	msgs := []*UploadMessage{{Metadata: &UploadMetadata{Filename: filename, ContentType: contentType}}}
	for _, c := range chunks {
		msgs = append(msgs, &UploadMessage{Chunk: []byte(c)})
	}
	return &sliceStream{msgs: msgs}
}

func seedFiles(t *testing.T, env *testEnv, owner string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := env.catalog.CreateFile(context.Background(), owner, CreateFileInput{Filename: "f.txt", Size: 1})
		if err != nil {
			t.Fatalf("seed file: %v", err)
		}
	}
}

// seedCache fills the listing cache for owner and returns its key.
func seedCache(t *testing.T, env *testEnv, owner string) string {
	t.Helper()
	if _, err := env.catalog.ListFiles(context.Background(), owner); err != nil {
		t.Fatalf("list files: %v", err)
	}
	key := filesCacheKey(owner)
	if !env.redis.Exists(key) {
		t.Fatalf("expected %s to be cached", key)
	}
	return key
}
