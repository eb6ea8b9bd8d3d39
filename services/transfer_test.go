package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spoolFiles(t *testing.T, env *testEnv) []string {
	t.Helper()
	entries, err := afero.ReadDir(env.fs, "/spool")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	stream := uploadOf("report.pdf", "application/pdf", "first chunk of data ", "second chunk of data")
	f, err := env.transfer.Upload(ctx, "alice", stream)
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", f.Name)
	assert.Equal(t, "application/pdf", f.ContentType)
	assert.Equal(t, uint64(40), f.Size)
	assert.Equal(t, fixedNow.Unix(), f.CreatedAt)
	assert.Equal(t, "users/alice/"+f.FileId+"/report.pdf", f.StorageKey)

	data, ok := env.objects.Object(f.StorageKey)
	require.True(t, ok)
	assert.Equal(t, "first chunk of data second chunk of data", string(data))
	assert.Empty(t, spoolFiles(t, env), "spool file must be removed")

	got, err := env.catalog.GetFile(ctx, "alice", f.FileId)
	require.NoError(t, err)
	assert.Equal(t, *f, *got)
}

func TestUploadIgnoresRepeatedMetadata(t *testing.T) {
	env := newTestEnv(t)
	stream := uploadOf("a.txt", "", "ab")
	stream.msgs = append(stream.msgs,
		&UploadMessage{Metadata: &UploadMetadata{Filename: "other.txt"}},
		&UploadMessage{Chunk: []byte("cd")},
	)

	f, err := env.transfer.Upload(context.Background(), "alice", stream)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", f.Name)
	assert.Equal(t, uint64(4), f.Size)
	assert.Equal(t, "application/octet-stream", f.ContentType)
}

func TestUploadFileLimitCheckedBeforeReading(t *testing.T) {
	env := newTestEnv(t)
	seedFiles(t, env, "alice", MaxFilesPerUser)

	stream := uploadOf("a.txt", "", "data")
	_, err := env.transfer.Upload(context.Background(), "alice", stream)
	require.ErrorIs(t, err, apperror.ErrFileLimitReached)
	assert.Equal(t, 0, stream.read)

	// other owners are unaffected
	_, err = env.transfer.Upload(context.Background(), "bob", uploadOf("a.txt", "", "data"))
	require.NoError(t, err)
}

func TestUploadEmptyStream(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.transfer.Upload(context.Background(), "alice", &sliceStream{})
	require.ErrorIs(t, err, apperror.ErrEmptyUploadStream)
	assert.Equal(t, 0, env.objects.Objects())
}

func TestUploadFirstMessageWithoutMetadata(t *testing.T) {
	env := newTestEnv(t)

	stream := &sliceStream{msgs: []*UploadMessage{{Chunk: []byte("data")}}}
	_, err := env.transfer.Upload(context.Background(), "alice", stream)
	require.ErrorIs(t, err, apperror.ErrMissingMetadata)
}

func TestUploadSizeCap(t *testing.T) {
	ctx := context.Background()

	t.Run("exactly at the cap succeeds", func(t *testing.T) {
		env := newTestEnv(t)
		env.transfer.maxFileSize = 10

		f, err := env.transfer.Upload(ctx, "alice", uploadOf("a", "", "12345", "67890"))
		require.NoError(t, err)
		assert.Equal(t, uint64(10), f.Size)
	})

	t.Run("one byte over fails without side effects", func(t *testing.T) {
		env := newTestEnv(t)
		env.transfer.maxFileSize = 10

		stream := uploadOf("a", "", "12345", "67890", "x", "never read")
		_, err := env.transfer.Upload(ctx, "alice", stream)
		require.ErrorIs(t, err, apperror.ErrFileTooLarge)
		assert.Equal(t, 4, stream.read, "reading stops at the chunk that crosses the cap")

		assert.Equal(t, 0, env.objects.Objects())
		n, _ := env.files.Count(ctx, "alice")
		assert.Zero(t, n)
		assert.Empty(t, spoolFiles(t, env))
	})

	t.Run("default cap is 2 GiB inclusive", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, uint64(2147483648), env.transfer.maxFileSize)
	})
}

func TestUploadStreamError(t *testing.T) {
	env := newTestEnv(t)
	stream := uploadOf("a", "", "partial")
	stream.err = context.Canceled

	_, err := env.transfer.Upload(context.Background(), "alice", stream)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, env.objects.Objects())
}

func TestUploadPutFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.objects.PutErr = errors.New("bucket unavailable")

	_, err := env.transfer.Upload(ctx, "alice", uploadOf("a", "", "a long enough chunk to spill"))
	require.ErrorIs(t, err, apperror.ErrStorage)

	n, _ := env.files.Count(ctx, "alice")
	assert.Zero(t, n, "no record without stored bytes")
	assert.Empty(t, spoolFiles(t, env))
}

func TestUploadRecordFailureRemovesObject(t *testing.T) {
	env := newTestEnv(t)
	env.files.CreateErr = errors.New("conditional check failed")

	_, err := env.transfer.Upload(context.Background(), "alice", uploadOf("a", "", "data"))
	require.Error(t, err)
	assert.Equal(t, 0, env.objects.Objects())
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payload := bytes.Repeat([]byte("0123456789abcdef"), (2*DownloadChunkSize+1000)/16)
	stream := uploadOf("big.bin", "application/x-bin")
	for off := 0; off < len(payload); off += 7000 {
		end := min(off+7000, len(payload))
		stream.msgs = append(stream.msgs, &UploadMessage{Chunk: payload[off:end]})
	}
	f, err := env.transfer.Upload(ctx, "alice", stream)
	require.NoError(t, err)

	dl, err := env.transfer.Download(ctx, "alice", f.FileId)
	require.NoError(t, err)
	assert.Equal(t, "big.bin", dl.File.Name)
	assert.Equal(t, uint64(len(payload)), dl.File.Size)

	var (
		got   []byte
		sizes []int
	)
	for {
		chunk, err := dl.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		sizes = append(sizes, len(chunk))
		got = append(got, chunk...)
	}

	assert.Equal(t, payload, got)
	assert.Equal(t, []int{DownloadChunkSize, DownloadChunkSize, len(payload) - 2*DownloadChunkSize}, sizes)
	assert.Zero(t, env.objects.OpenReaders)
	require.NoError(t, dl.Close())
}

func TestDownloadEmptyFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	f, err := env.transfer.Upload(ctx, "alice", uploadOf("empty", ""))
	require.NoError(t, err)

	dl, err := env.transfer.Download(ctx, "alice", f.FileId)
	require.NoError(t, err)
	_, err = dl.Next()
	require.ErrorIs(t, err, io.EOF)
	assert.Zero(t, env.objects.OpenReaders)
}

func TestDownloadReadFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	f, err := env.transfer.Upload(ctx, "alice", uploadOf("a", "", "some bytes"))
	require.NoError(t, err)

	env.objects.ReadErr = errors.New("connection reset")
	dl, err := env.transfer.Download(ctx, "alice", f.FileId)
	require.NoError(t, err)

	_, err = dl.Next()
	require.ErrorIs(t, err, apperror.ErrStorage)
	assert.Zero(t, env.objects.OpenReaders)
}

func TestDownloadCancelledEarly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	f, err := env.transfer.Upload(ctx, "alice", uploadOf("a", "", string(make([]byte, 3*DownloadChunkSize))))
	require.NoError(t, err)

	dl, err := env.transfer.Download(ctx, "alice", f.FileId)
	require.NoError(t, err)
	_, err = dl.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, env.objects.OpenReaders)

	require.NoError(t, dl.Close())
	require.NoError(t, dl.Close())
	assert.Zero(t, env.objects.OpenReaders)
}

func TestDownloadErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.transfer.Download(ctx, "alice", "123")
	require.ErrorIs(t, err, apperror.ErrInvalidFileID)

	_, err = env.transfer.Download(ctx, "alice", uuid.NewString())
	require.ErrorIs(t, err, apperror.ErrFileNotFound)

	// registered without bytes
	f, err := env.catalog.CreateFile(ctx, "alice", CreateFileInput{Filename: "ghost"})
	require.NoError(t, err)
	_, err = env.transfer.Download(ctx, "alice", f.FileId)
	require.ErrorIs(t, err, apperror.ErrStorage)
}
