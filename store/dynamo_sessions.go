package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/retries"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoDbSessionStoreImpl struct {
	client    *dynamodb.Client
	tableName string

	now func() time.Time
}

func NewDynamoDbSessionStoreImpl(client *dynamodb.Client, tableName string) *DynamoDbSessionStoreImpl {
	return &DynamoDbSessionStoreImpl{
		client:    client,
		tableName: tableName,
		now:       time.Now,
	}
}

func (s *DynamoDbSessionStoreImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	return retries.Retry(
		ctx,
		retries.HealthAttempts,
		retries.HealthBaseDelay,
		func() error {
			_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
				TableName: aws.String(s.tableName),
			})

			return err
		},
		retries.IsRetriableDbError,
	)
}

func (s *DynamoDbSessionStoreImpl) Name() string {
	return "SessionStore[" + s.tableName + "]"
}

func (s *DynamoDbSessionStoreImpl) CreateSession(ctx context.Context, session models.UploadSession) error {
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		return err
	}
	// parts must exist as a map for PutPart's nested SET to succeed
	if len(session.Parts) == 0 {
		item["parts"] = &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}
	}

	return retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
				TableName:           aws.String(s.tableName),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(upload_id)"),
			})
			return err
		},
		retries.IsRetriableDbError,
	)
}

func (s *DynamoDbSessionStoreImpl) GetSession(ctx context.Context, ownerID, uploadID string) (*models.UploadSession, error) {
	var session models.UploadSession

	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"upload_id": &types.AttributeValueMemberS{
						Value: uploadID,
					},
				},
				ConsistentRead: aws.Bool(true),
			})
			if err != nil {
				return err
			}

			if out.Item == nil {
				return apperror.ErrSessionNotFound
			}

			return attributevalue.UnmarshalMap(out.Item, &session)
		},
		retries.IsRetriableDbError,
	)
	if err != nil {
		return nil, err
	}

	// TTL deletion lags behind expires_at, sometimes by days
	if session.OwnerId != ownerID || session.Expired(s.now()) {
		return nil, apperror.ErrSessionNotFound
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *DynamoDbSessionStoreImpl) PutPart(ctx context.Context, ownerID, uploadID string, part models.Part) error {
	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"upload_id": &types.AttributeValueMemberS{Value: uploadID},
				},
				UpdateExpression:    aws.String("SET parts.#pn = :etag"),
				ConditionExpression: aws.String("owner_id = :o AND expires_at > :now"),
				ExpressionAttributeNames: map[string]string{
					"#pn": models.PartKey(part.PartNumber),
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":etag": &types.AttributeValueMemberS{Value: part.ETag},
					":o":    &types.AttributeValueMemberS{Value: ownerID},
					":now":  &types.AttributeValueMemberN{Value: strconv.FormatInt(s.now().Unix(), 10)},
				},
			})
			return err
		},
		retries.IsRetriableDbError,
	)

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return apperror.ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("record part %d of %s: %w", part.PartNumber, uploadID, err)
	}
	return nil
}

func (s *DynamoDbSessionStoreImpl) Delete(ctx context.Context, ownerID, uploadID string) (bool, error) {
	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"upload_id": &types.AttributeValueMemberS{Value: uploadID},
				},
				ConditionExpression: aws.String("owner_id = :o"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":o": &types.AttributeValueMemberS{Value: ownerID},
				},
			})
			return err
		},
		retries.IsRetriableDbError,
	)

	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DynamoDbSessionStoreImpl) Purge(ctx context.Context, uploadID string) error {
	return retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"upload_id": &types.AttributeValueMemberS{Value: uploadID},
				},
			})
			return err
		},
		retries.IsRetriableDbError,
	)
}
