package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initiate(t *testing.T, env *testEnv, owner string, size uint64) *InitiateResult {
	t.Helper()
	res, err := env.multipart.Initiate(context.Background(), owner, InitiateInput{
		Filename:    "movie.mkv",
		ContentType: "video/x-matroska",
		TotalSize:   size,
	})
	require.NoError(t, err)
	return res
}

func TestInitiate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res := initiate(t, env, "alice", 25<<20)
	assert.NotEmpty(t, res.UploadID)
	assert.Equal(t, uint64(PartSize), res.PartSize)
	assert.Equal(t, int32(3), res.TotalParts)

	session, err := env.sessions.GetSession(ctx, "alice", res.UploadID)
	require.NoError(t, err)
	assert.Equal(t, "movie.mkv", session.FileName)
	assert.Equal(t, models.StatusInProgress.String(), session.Status)
	assert.Equal(t, fixedNow.Add(SessionRetention).Unix(), session.ExpiresAt)
	assert.Equal(t, "users/alice/"+session.FileId+"/movie.mkv", session.StorageKey)
	assert.Empty(t, session.Parts)
	assert.Equal(t, 1, env.objects.Uploads())
}

func TestInitiateSizeLimits(t *testing.T) {
	env := newTestEnv(t)

	res := initiate(t, env, "alice", MaxFileSize)
	assert.Equal(t, int32(205), res.TotalParts)

	_, err := env.multipart.Initiate(context.Background(), "alice", InitiateInput{Filename: "x", TotalSize: MaxFileSize + 1})
	require.ErrorIs(t, err, apperror.ErrUploadTooLarge)
	assert.Equal(t, 1, env.objects.Uploads())
}

func TestInitiateSessionFailureAbortsRemote(t *testing.T) {
	env := newTestEnv(t)
	env.sessions.CreateErr = errors.New("throughput exceeded")

	_, err := env.multipart.Initiate(context.Background(), "alice", InitiateInput{Filename: "x", TotalSize: 10})
	require.Error(t, err)
	assert.Zero(t, env.objects.Uploads())
	assert.Zero(t, env.sessions.Len())
}

func TestInitiateRemoteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.objects.CreateErr = errors.New("access denied")

	_, err := env.multipart.Initiate(context.Background(), "alice", InitiateInput{Filename: "x", TotalSize: 10})
	require.ErrorIs(t, err, apperror.ErrStorage)
	assert.Zero(t, env.sessions.Len())
}

func TestUploadPart(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 30)

	first, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.PartNumber)
	assert.NotEmpty(t, first.ETag)

	t.Run("same part again replaces the etag", func(t *testing.T) {
		again, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("replaced"))
		require.NoError(t, err)
		assert.NotEqual(t, first.ETag, again.ETag)

		session, err := env.sessions.GetSession(ctx, "alice", res.UploadID)
		require.NoError(t, err)
		assert.Equal(t, []models.Part{*again}, session.PartList())
	})

	t.Run("part number out of range", func(t *testing.T) {
		for _, n := range []int32{0, -1, MaxPartNumber + 1} {
			_, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, n, []byte("x"))
			require.ErrorIs(t, err, apperror.ErrInvalidArgument, "part %d", n)
		}
		_, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, MaxPartNumber, []byte("x"))
		require.NoError(t, err)
	})

	t.Run("foreign session is not found", func(t *testing.T) {
		_, err := env.multipart.UploadPart(ctx, "bob", res.UploadID, 2, []byte("x"))
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("remote failure leaves the session untouched", func(t *testing.T) {
		env.objects.UploadPartErr = errors.New("slow down")
		defer func() { env.objects.UploadPartErr = nil }()

		_, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 3, []byte("x"))
		require.ErrorIs(t, err, apperror.ErrStorage)

		session, err := env.sessions.GetSession(ctx, "alice", res.UploadID)
		require.NoError(t, err)
		_, recorded := session.Parts[models.PartKey(3)]
		assert.False(t, recorded)
	})
}

func TestUploadPartExpiredSession(t *testing.T) {
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 30)

	env.sessions.Now = func() time.Time { return fixedNow.Add(SessionRetention + time.Second) }
	_, err := env.multipart.UploadPart(context.Background(), "alice", res.UploadID, 1, []byte("x"))
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 15)

	// parts arrive out of order
	p3, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 3, []byte("ccccc"))
	require.NoError(t, err)
	p1, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("aaaaa"))
	require.NoError(t, err)
	p2, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 2, []byte("bbbbb"))
	require.NoError(t, err)

	cached := seedCache(t, env, "alice")

	file, err := env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p2, *p3, *p1})
	require.NoError(t, err)

	assert.Equal(t, "movie.mkv", file.Name)
	assert.Equal(t, "video/x-matroska", file.ContentType)
	assert.Equal(t, uint64(15), file.Size)
	assert.Equal(t, fixedNow.Unix(), file.CreatedAt)

	require.Len(t, env.objects.CompletedParts, 1)
	assert.Equal(t, []models.Part{*p1, *p2, *p3}, env.objects.CompletedParts[0])

	data, ok := env.objects.Object(file.StorageKey)
	require.True(t, ok)
	assert.Equal(t, "aaaaabbbbbccccc", string(data))

	got, err := env.catalog.GetFile(ctx, "alice", file.FileId)
	require.NoError(t, err)
	assert.Equal(t, *file, *got)

	assert.Zero(t, env.sessions.Len(), "session is removed after completion")
	assert.False(t, env.redis.Exists(cached), "listing cache is invalidated")

	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestCompleteDuplicatePartsLastWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 4)

	p1, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("ab"))
	require.NoError(t, err)
	p2, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 2, []byte("cd"))
	require.NoError(t, err)

	stale := models.Part{PartNumber: 1, ETag: `"stale"`}
	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{stale, *p2, *p1})
	require.NoError(t, err)
	assert.Equal(t, []models.Part{*p1, *p2}, env.objects.CompletedParts[0])
}

func TestCompleteRejectsBadParts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 4)

	_, err := env.multipart.Complete(ctx, "alice", res.UploadID, nil)
	require.ErrorIs(t, err, apperror.ErrInvalidArgument)

	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{{PartNumber: 0, ETag: "x"}})
	require.ErrorIs(t, err, apperror.ErrInvalidArgument)

	assert.Equal(t, 1, env.sessions.Len())
}

func TestCompleteRemoteFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 2)

	p1, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("ab"))
	require.NoError(t, err)

	env.objects.CompleteErr = errors.New("internal error")
	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.ErrorIs(t, err, apperror.ErrStorage)

	n, _ := env.files.Count(ctx, "alice")
	assert.Zero(t, n)
	assert.Equal(t, 1, env.sessions.Len())

	// the caller can retry once the store recovers
	env.objects.CompleteErr = nil
	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.NoError(t, err)
}

func TestCompleteRecordFailureIsRetriable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 4)

	p1, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("abcd"))
	require.NoError(t, err)

	env.files.CreateErr = errors.New("throughput exceeded")
	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.Error(t, err)
	assert.Equal(t, 1, env.sessions.Len())
	assert.Equal(t, 1, env.objects.Objects())

	env.files.CreateErr = nil
	file, err := env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), file.Size)
	assert.Len(t, env.objects.CompletedParts, 1, "object is assembled once")
	assert.Zero(t, env.sessions.Len())

	got, err := env.catalog.GetFile(ctx, "alice", file.FileId)
	require.NoError(t, err)
	assert.Equal(t, file.StorageKey, got.StorageKey)
}

func TestCompleteUnknownRemoteUploadWithoutObject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 4)

	p1, err := env.multipart.UploadPart(ctx, "alice", res.UploadID, 1, []byte("abcd"))
	require.NoError(t, err)

	// the remote upload disappears without an object being assembled
	require.NoError(t, env.objects.AbortMultipartUpload(ctx, "", res.UploadID))

	_, err = env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{*p1})
	require.ErrorIs(t, err, apperror.ErrNoSuchUpload)
	assert.Equal(t, 1, env.sessions.Len())
	n, _ := env.files.Count(ctx, "alice")
	assert.Zero(t, n)
}

func TestCompleteWithUnknownEtag(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 2)

	_, err := env.multipart.Complete(ctx, "alice", res.UploadID, []models.Part{{PartNumber: 1, ETag: `"nope"`}})
	require.ErrorIs(t, err, apperror.ErrStorage)
	assert.Equal(t, 1, env.sessions.Len())
}

func TestAbort(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 2)

	_, err := env.multipart.Abort(ctx, "bob", res.UploadID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	assert.Equal(t, 1, env.sessions.Len())

	deleted, err := env.multipart.Abort(ctx, "alice", res.UploadID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Zero(t, env.sessions.Len())
	assert.Zero(t, env.objects.Uploads())

	_, err = env.multipart.Abort(ctx, "alice", res.UploadID)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
}

func TestAbortRemoteFailureStillDeletesSession(t *testing.T) {
	env := newTestEnv(t)
	res := initiate(t, env, "alice", 2)
	env.objects.AbortErr = errors.New("unavailable")

	deleted, err := env.multipart.Abort(context.Background(), "alice", res.UploadID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Zero(t, env.sessions.Len())
}

func TestTotalParts(t *testing.T) {
	cases := []struct {
		size uint64
		want int32
	}{
		{0, 0},
		{1, 1},
		{PartSize, 1},
		{PartSize + 1, 2},
		{25 << 20, 3},
		{MaxFileSize, 205},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalParts(tc.size), "size %d", tc.size)
	}
}
