package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	created, err := env.catalog.CreateFile(ctx, "alice", CreateFileInput{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        42,
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Unix(), created.CreatedAt)
	assert.Equal(t, "users/alice/"+created.FileId+"/notes.txt", created.StorageKey)

	got, err := env.catalog.GetFile(ctx, "alice", created.FileId)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", got.Name)
	assert.Equal(t, uint64(42), got.Size)
	assert.Equal(t, "text/plain", got.ContentType)
	assert.Equal(t, "alice", got.OwnerId)
}

func TestCreateFileDefaults(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.CreateFile(context.Background(), "alice", CreateFileInput{})
	require.ErrorIs(t, err, apperror.ErrInvalidArgument)

	f, err := env.catalog.CreateFile(context.Background(), "alice", CreateFileInput{Filename: "blob"})
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", f.ContentType)
}

func TestOwnerIsolation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	f, err := env.transfer.Upload(ctx, "alice", uploadOf("secret.txt", "text/plain", "top secret"))
	require.NoError(t, err)

	_, err = env.catalog.GetFile(ctx, "mallory", f.FileId)
	require.ErrorIs(t, err, apperror.ErrFileNotFound)

	_, err = env.transfer.Download(ctx, "mallory", f.FileId)
	require.ErrorIs(t, err, apperror.ErrFileNotFound)

	err = env.catalog.DeleteFile(ctx, "mallory", f.FileId)
	require.ErrorIs(t, err, apperror.ErrFileNotFound)

	_, ok := env.objects.Object(f.StorageKey)
	assert.True(t, ok, "foreign delete must not touch the object")

	list, err := env.catalog.ListFiles(ctx, "mallory")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetFileInvalidID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.GetFile(context.Background(), "alice", "not-a-uuid")
	require.ErrorIs(t, err, apperror.ErrInvalidFileID)

	err = env.catalog.DeleteFile(context.Background(), "alice", "../etc")
	require.ErrorIs(t, err, apperror.ErrInvalidFileID)
}

func TestDeleteFile(t *testing.T) {
	ctx := context.Background()

	t.Run("missing record is not found", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.catalog.DeleteFile(ctx, "alice", uuid.NewString())
		require.ErrorIs(t, err, apperror.ErrFileNotFound)
	})

	t.Run("removes object and record", func(t *testing.T) {
		env := newTestEnv(t)
		f, err := env.transfer.Upload(ctx, "alice", uploadOf("a.bin", "", "abc"))
		require.NoError(t, err)

		require.NoError(t, env.catalog.DeleteFile(ctx, "alice", f.FileId))

		_, ok := env.objects.Object(f.StorageKey)
		assert.False(t, ok)
		_, err = env.catalog.GetFile(ctx, "alice", f.FileId)
		require.ErrorIs(t, err, apperror.ErrFileNotFound)
	})

	t.Run("object failure does not block record removal", func(t *testing.T) {
		env := newTestEnv(t)
		f, err := env.transfer.Upload(ctx, "alice", uploadOf("a.bin", "", "abc"))
		require.NoError(t, err)

		env.objects.DeleteErr = errors.New("s3 down")
		require.NoError(t, env.catalog.DeleteFile(ctx, "alice", f.FileId))

		_, err = env.catalog.GetFile(ctx, "alice", f.FileId)
		require.ErrorIs(t, err, apperror.ErrFileNotFound)
	})

	t.Run("record failure is surfaced", func(t *testing.T) {
		env := newTestEnv(t)
		f, err := env.catalog.CreateFile(ctx, "alice", CreateFileInput{Filename: "a"})
		require.NoError(t, err)

		env.files.DeleteErr = errors.New("throttled")
		err = env.catalog.DeleteFile(ctx, "alice", f.FileId)
		require.Error(t, err)
	})
}

func TestListFilesCache(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	seedFiles(t, env, "alice", 2)

	list, err := env.catalog.ListFiles(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, env.redis.Exists("user:files:alice"))

	// served from cache: a record written behind the service is not visible
	cached, _ := env.redis.Get("user:files:alice")
	behind := list[0]
	behind.FileId = uuid.NewString()
	require.NoError(t, env.files.Create(ctx, behind))
	again, err := env.catalog.ListFiles(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, again, 2)
	assert.True(t, strings.HasPrefix(cached, "["))

	// mutations through the service invalidate
	_, err = env.catalog.CreateFile(ctx, "alice", CreateFileInput{Filename: "new"})
	require.NoError(t, err)
	assert.False(t, env.redis.Exists("user:files:alice"))

	fresh, err := env.catalog.ListFiles(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, fresh, 4)
}

func TestListFilesCacheOutage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	seedFiles(t, env, "alice", 1)

	env.redis.Close()

	list, err := env.catalog.ListFiles(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = env.catalog.CreateFile(ctx, "alice", CreateFileInput{Filename: "b"})
	require.NoError(t, err)
}
