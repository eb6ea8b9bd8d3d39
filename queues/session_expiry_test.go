package queues

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store/memstore"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	mu       sync.Mutex
	pending  []types.Message
	deleted  []string
	failNext int
}

func (f *fakeSQS) push(handle, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, types.Message{
		MessageId:     aws.String("msg-" + handle),
		ReceiptHandle: aws.String(handle),
		Body:          aws.String(body),
	})
}

func (f *fakeSQS) ReceiveMessage(ctx context.Context, in *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if f.failNext > 0 {
		f.failNext--
		f.mu.Unlock()
		return nil, errors.New("queue unavailable")
	}
	msgs := f.pending
	f.pending = nil
	f.mu.Unlock()

	if len(msgs) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return &sqs.ReceiveMessageOutput{Messages: msgs}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, in *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, aws.ToString(in.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.deleted...)
}

func expiredEvent(t *testing.T, uploadID, key string) string {
	t.Helper()
	body, err := json.Marshal(models.SessionExpiredEvent{UploadId: uploadID, OwnerId: "alice", StorageKey: key})
	require.NoError(t, err)
	return string(body)
}

func newSession(t *testing.T, sessions *memstore.SessionStore, objects *memstore.ObjectStorage) models.UploadSession {
	t.Helper()
	ctx := context.Background()
	key := "users/alice/f1/a.bin"
	uploadID, err := objects.CreateMultipartUpload(ctx, key, "application/octet-stream")
	require.NoError(t, err)

	session := models.UploadSession{
		UploadId:   uploadID,
		OwnerId:    "alice",
		FileId:     "f1",
		FileName:   "a.bin",
		StorageKey: key,
		Parts:      map[string]string{},
		ExpiresAt:  time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, sessions.CreateSession(ctx, session))
	return session
}

func TestHandleExpiredSession(t *testing.T) {
	ctx := context.Background()
	sessions := memstore.NewSessionStore()
	objects := memstore.NewObjectStorage()
	client := &fakeSQS{}
	r := NewSessionExpiryReceiverImpl(ctx, client, sessions, objects, "queue", logger.NewNopLogger())

	session := newSession(t, sessions, objects)
	r.handleMessage(ctx, types.Message{
		ReceiptHandle: aws.String("h1"),
		Body:          aws.String(expiredEvent(t, session.UploadId, session.StorageKey)),
	})

	assert.Zero(t, objects.Uploads())
	assert.Zero(t, sessions.Len())
	assert.Equal(t, []string{"h1"}, client.Deleted())
}

func TestHandleMalformedEvents(t *testing.T) {
	ctx := context.Background()
	client := &fakeSQS{}
	r := NewSessionExpiryReceiverImpl(ctx, client, memstore.NewSessionStore(), memstore.NewObjectStorage(), "queue", logger.NewNopLogger())

	r.handleMessage(ctx, types.Message{ReceiptHandle: aws.String("nil-body")})
	r.handleMessage(ctx, types.Message{ReceiptHandle: aws.String("not-json"), Body: aws.String("{")})
	r.handleMessage(ctx, types.Message{ReceiptHandle: aws.String("no-id"), Body: aws.String(`{"owner_id":"alice"}`)})

	assert.Equal(t, []string{"nil-body", "not-json", "no-id"}, client.Deleted())
}

func TestHandleAbortFailureKeepsMessage(t *testing.T) {
	ctx := context.Background()
	sessions := memstore.NewSessionStore()
	objects := memstore.NewObjectStorage()
	client := &fakeSQS{}
	r := NewSessionExpiryReceiverImpl(ctx, client, sessions, objects, "queue", logger.NewNopLogger())

	session := newSession(t, sessions, objects)
	objects.AbortErr = errors.New("throttled")
	r.handleMessage(ctx, types.Message{
		ReceiptHandle: aws.String("h1"),
		Body:          aws.String(expiredEvent(t, session.UploadId, session.StorageKey)),
	})

	assert.Empty(t, client.Deleted())
	assert.Equal(t, 1, sessions.Len())
}

func TestReceiverLoop(t *testing.T) {
	sessions := memstore.NewSessionStore()
	objects := memstore.NewObjectStorage()
	client := &fakeSQS{failNext: 1}

	r := NewSessionExpiryReceiverImpl(context.Background(), client, sessions, objects, "queue", logger.NewNopLogger())
	r.retryDelay = time.Millisecond

	session := newSession(t, sessions, objects)
	client.push("h1", expiredEvent(t, session.UploadId, session.StorageKey))

	r.Start()
	require.Eventually(t, func() bool {
		return len(client.Deleted()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, sessions.Len())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))
}
