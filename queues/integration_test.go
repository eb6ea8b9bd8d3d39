//go:build integration

package queues

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const awsEndpoint = "http://localhost:4566"

type TestEnv struct {
	Dynamo   *dynamodb.Client
	S3       *s3.Client
	Sqs      *sqs.Client
	QueueURL string
}

func setupTestEnv(t *testing.T) *TestEnv {
	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	require.NoError(t, err)

	db := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(awsEndpoint)
	})
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(awsEndpoint)
		o.UsePathStyle = true
	})
	sqsClient := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		o.BaseEndpoint = aws.String(awsEndpoint)
	})

	_, err = db.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String("expiry-sessions"),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("upload_id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("upload_id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var exists *types.ResourceInUseException
	if err != nil && !errors.As(err, &exists) {
		require.NoError(t, err)
	}

	_, _ = s3Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String("expiry-files")})

	q, err := sqsClient.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName: aws.String("session-expiry"),
	})
	require.NoError(t, err)

	return &TestEnv{
		Dynamo:   db,
		S3:       s3Client,
		Sqs:      sqsClient,
		QueueURL: *q.QueueUrl,
	}
}

func TestSessionExpired_AbortsUploadAndPurgesSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	env := setupTestEnv(t)
	l := logger.NewNopLogger()

	sessionStore := store.NewDynamoDbSessionStoreImpl(env.Dynamo, "expiry-sessions")
	storage := store.NewS3FileStorageImpl(env.S3, "expiry-files", l)

	receiver := NewSessionExpiryReceiverImpl(ctx, env.Sqs, sessionStore, storage, env.QueueURL, l)
	receiver.Start()
	t.Cleanup(func() { _ = receiver.Shutdown(context.Background()) })

	owner := uuid.NewString()
	key := models.StorageKey(owner, uuid.NewString(), "big.bin")
	uploadID, err := storage.CreateMultipartUpload(ctx, key, "application/octet-stream")
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, sessionStore.CreateSession(ctx, models.UploadSession{
		UploadId:   uploadID,
		OwnerId:    owner,
		FileId:     uuid.NewString(),
		FileName:   "big.bin",
		StorageKey: key,
		CreatedAt:  now.Unix(),
		ExpiresAt:  now.Add(time.Hour).Unix(),
		Status:     models.StatusInProgress.String(),
	}))

	body, _ := json.Marshal(models.SessionExpiredEvent{
		UploadId:   uploadID,
		OwnerId:    owner,
		StorageKey: key,
	})
	_, err = env.Sqs.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(env.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, err := sessionStore.GetSession(ctx, owner, uploadID)
		if !errors.Is(err, apperror.ErrSessionNotFound) {
			return false
		}

		out, err := env.S3.ListMultipartUploads(ctx, &s3.ListMultipartUploadsInput{
			Bucket: aws.String("expiry-files"),
			Prefix: aws.String(key),
		})
		return err == nil && len(out.Uploads) == 0
	}, 30*time.Second, 200*time.Millisecond)
}
