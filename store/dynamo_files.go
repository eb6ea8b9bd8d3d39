package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/retries"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// OwnerIndexName is the global secondary index on owner_id of the files table.
const OwnerIndexName = "owner_id-index"

type DynamoDbFileStoreImpl struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoDbFileStoreImpl(client *dynamodb.Client, tableName string) *DynamoDbFileStoreImpl {
	return &DynamoDbFileStoreImpl{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoDbFileStoreImpl) IsReady(ctx context.Context) error {
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

func (s *DynamoDbFileStoreImpl) Name() string {
	return "FileStore[" + s.tableName + "]"
}

func (s *DynamoDbFileStoreImpl) Create(ctx context.Context, file models.File) error {
	fileItem, err := attributevalue.MarshalMap(file)
	if err != nil {
		return err
	}

	return retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
				TableName:           aws.String(s.tableName),
				Item:                fileItem,
				ConditionExpression: aws.String("attribute_not_exists(file_id)"),
			})
			return err
		},
		retries.IsRetriableDbError,
	)
}

func (s *DynamoDbFileStoreImpl) Get(ctx context.Context, ownerID, fileID string) (*models.File, error) {
	var item map[string]types.AttributeValue

	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"file_id": &types.AttributeValueMemberS{Value: fileID},
				},
			})
			if err != nil {
				return err
			}
			item = out.Item
			return nil
		},
		retries.IsRetriableDbError,
	)
	if err != nil {
		return nil, err
	}

	if item == nil {
		return nil, apperror.ErrFileNotFound
	}

	var file models.File
	if err = attributevalue.UnmarshalMap(item, &file); err != nil {
		return nil, fmt.Errorf("decode file %s: %w", fileID, err)
	}
	if file.OwnerId != ownerID {
		return nil, apperror.ErrFileNotFound
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}

	return &file, nil
}

func (s *DynamoDbFileStoreImpl) List(ctx context.Context, ownerID string) ([]models.File, error) {
	paginator := dynamodb.NewQueryPaginator(s.client, s.ownerQuery(ownerID, types.SelectAllAttributes))

	files := []models.File{}
	for paginator.HasMorePages() {
		var page *dynamodb.QueryOutput
		err := retries.Retry(
			ctx,
			retries.DefaultAttempts,
			retries.DefaultBaseDelay,
			func() (err error) {
				page, err = paginator.NextPage(ctx)
				return err
			},
			retries.IsRetriableDbError,
		)
		if err != nil {
			return nil, err
		}

		var batch []models.File
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		files = append(files, batch...)
	}

	sort.SliceStable(files, func(i, j int) bool { return files[i].CreatedAt < files[j].CreatedAt })
	return files, nil
}

func (s *DynamoDbFileStoreImpl) Count(ctx context.Context, ownerID string) (int, error) {
	paginator := dynamodb.NewQueryPaginator(s.client, s.ownerQuery(ownerID, types.SelectCount))

	total := 0
	for paginator.HasMorePages() {
		var page *dynamodb.QueryOutput
		err := retries.Retry(
			ctx,
			retries.DefaultAttempts,
			retries.DefaultBaseDelay,
			func() (err error) {
				page, err = paginator.NextPage(ctx)
				return err
			},
			retries.IsRetriableDbError,
		)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}

	return total, nil
}

func (s *DynamoDbFileStoreImpl) Delete(ctx context.Context, ownerID, fileID string) (bool, error) {
	err := retries.Retry(
		ctx,
		retries.DefaultAttempts,
		retries.DefaultBaseDelay,
		func() error {
			_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(s.tableName),
				Key: map[string]types.AttributeValue{
					"file_id": &types.AttributeValueMemberS{Value: fileID},
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

func (s *DynamoDbFileStoreImpl) ownerQuery(ownerID string, sel types.Select) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(OwnerIndexName),
		KeyConditionExpression: aws.String("owner_id = :o"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":o": &types.AttributeValueMemberS{Value: ownerID},
		},
		Select: sel,
	}
}
