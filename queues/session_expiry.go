package queues

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the part of the SQS client the receiver uses.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SessionExpiryReceiver interface {
	Start()
	Shutdown(ctx context.Context) error
}

// SessionExpiryReceiverImpl consumes events emitted when the session TTL
// removes an unfinished upload and aborts the matching remote multipart
// upload. A message is left on the queue when handling fails so that it is
// redelivered.
type SessionExpiryReceiverImpl struct {
	client       SQSAPI
	sessionStore store.SessionStore
	fileStorage  store.ObjectStorage
	queueUrl     string
	retryDelay   time.Duration

	logger logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSessionExpiryReceiverImpl(
	parent context.Context,
	client SQSAPI,
	sessionStore store.SessionStore,
	fileStorage store.ObjectStorage,
	queueUrl string,
	l logger.Logger,
) *SessionExpiryReceiverImpl {
	ctx, cancel := context.WithCancel(parent)

	return &SessionExpiryReceiverImpl{
		client:       client,
		sessionStore: sessionStore,
		fileStorage:  fileStorage,
		queueUrl:     queueUrl,
		retryDelay:   time.Second,
		logger:       l,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (r *SessionExpiryReceiverImpl) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		_ = r.pollLoop()
	}()
}

func (r *SessionExpiryReceiverImpl) pollLoop() error {
	for {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		out, err := r.client.ReceiveMessage(r.ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(r.queueUrl),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20, // long poll
			VisibilityTimeout:   60,
		})
		if err != nil {
			if r.ctx.Err() != nil {
				return r.ctx.Err()
			}
			r.logger.Warn("receive session expiry events failed", "error", err)
			select {
			case <-r.ctx.Done():
			case <-time.After(r.retryDelay):
			}
			continue
		}

		for _, msg := range out.Messages {
			r.handleMessage(r.ctx, msg)
		}
	}
}

func (r *SessionExpiryReceiverImpl) deleteMessage(ctx context.Context, msg types.Message) {
	_, err := r.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(r.queueUrl),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		r.logger.Warn("failed to delete message", "message_id", aws.ToString(msg.MessageId), "error", err)
	}
}

func (r *SessionExpiryReceiverImpl) handleMessage(ctx context.Context, msg types.Message) {
	if msg.Body == nil {
		r.deleteMessage(ctx, msg)
		return
	}

	var evt models.SessionExpiredEvent
	if err := json.Unmarshal([]byte(*msg.Body), &evt); err != nil || evt.UploadId == "" || evt.StorageKey == "" {
		// poison message
		r.logger.Warn("dropping malformed session expiry event", "message_id", aws.ToString(msg.MessageId))
		r.deleteMessage(ctx, msg)
		return
	}

	if err := r.fileStorage.AbortMultipartUpload(ctx, evt.StorageKey, evt.UploadId); err != nil {
		r.logger.Error("failed to abort expired upload", "upload_id", evt.UploadId, "error", err)
		return // retry
	}

	if err := r.sessionStore.Purge(ctx, evt.UploadId); err != nil {
		r.logger.Error("failed to purge expired session", "upload_id", evt.UploadId, "error", err)
		return // retry
	}

	r.logger.Info("expired upload reclaimed", "upload_id", evt.UploadId, "owner_id", evt.OwnerId)
	r.deleteMessage(ctx, msg)
}

func (r *SessionExpiryReceiverImpl) Shutdown(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
