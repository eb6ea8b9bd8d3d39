package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type S3FileStorageImpl struct {
	client     *s3.Client
	uploader   *manager.Uploader
	bucketName string

	logger logger.Logger
}

func NewS3FileStorageImpl(client *s3.Client, bucketName string, l logger.Logger) *S3FileStorageImpl {
	return &S3FileStorageImpl{
		client:     client,
		uploader:   manager.NewUploader(client),
		bucketName: bucketName,
		logger:     l,
	}
}

func (s *S3FileStorageImpl) IsReady(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	})
	return err
}

func (s *S3FileStorageImpl) Name() string {
	return "ObjectStorage[" + s.bucketName + "]"
}

// Put uploads body under key. Bodies above the uploader part size are sent
// as a managed multipart upload.
func (s *S3FileStorageImpl) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(models.ContentTypeOrDefault(contentType)),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		s.logger.Error("failed to put object", "key", key, "size", size, "error", err)
		return fmt.Errorf("%w: put object %s: %v", apperror.ErrStorage, key, err)
	}

	s.logger.Debug("object stored", "key", key, "size", size)
	return nil
}

func (s *S3FileStorageImpl) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: object %s is missing", apperror.ErrStorage, key)
		}
		s.logger.Error("failed to get object", "key", key, "error", err)
		return nil, fmt.Errorf("%w: get object %s: %v", apperror.ErrStorage, key, err)
	}
	return out.Body, nil
}

func (s *S3FileStorageImpl) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete object %s: %v", apperror.ErrStorage, key, err)
	}
	return nil
}

func (s *S3FileStorageImpl) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: head object %s: %v", apperror.ErrStorage, key, err)
	}
	return true, nil
}

func (s *S3FileStorageImpl) CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error) {
	out, err := s.client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		ContentType: aws.String(models.ContentTypeOrDefault(contentType)),
	})
	if err != nil {
		s.logger.Error("failed to create multipart upload", "key", key, "error", err)
		return "", fmt.Errorf("%w: create multipart upload: %v", apperror.ErrStorage, err)
	}

	uploadID := aws.ToString(out.UploadId)
	s.logger.Debug("created multipart upload", "upload_id", uploadID, "key", key)
	return uploadID, nil
}

func (s *S3FileStorageImpl) UploadPart(ctx context.Context, key, uploadID string, partNumber int32, body []byte) (string, error) {
	out, err := s.client.UploadPart(ctx, &s3.UploadPartInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(key),
		UploadId:      aws.String(uploadID),
		PartNumber:    aws.Int32(partNumber),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		s.logger.Error("failed to upload part", "upload_id", uploadID, "part_number", partNumber, "error", err)
		return "", fmt.Errorf("%w: upload part %d: %v", apperror.ErrStorage, partNumber, err)
	}
	return aws.ToString(out.ETag), nil
}

// CompleteMultipartUpload expects parts in ascending part number order.
func (s *S3FileStorageImpl) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []models.Part) error {
	completed := make([]types.CompletedPart, len(parts))
	for i, p := range parts {
		completed[i] = types.CompletedPart{
			ETag:       aws.String(p.ETag),
			PartNumber: aws.Int32(p.PartNumber),
		}
	}

	_, err := s.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   aws.String(s.bucketName),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completed,
		},
	})
	if err != nil {
		if isNoSuchUpload(err) {
			return fmt.Errorf("%w: %w %s", apperror.ErrStorage, apperror.ErrNoSuchUpload, uploadID)
		}
		s.logger.Error("failed to complete multipart upload", "upload_id", uploadID, "key", key, "error", err)
		return fmt.Errorf("%w: complete multipart upload: %v", apperror.ErrStorage, err)
	}

	s.logger.Info("completed multipart upload", "upload_id", uploadID, "key", key, "parts", len(parts))
	return nil
}

func (s *S3FileStorageImpl) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	_, err := s.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(s.bucketName),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil {
		if isNoSuchUpload(err) {
			return nil
		}
		return fmt.Errorf("%w: abort multipart upload: %v", apperror.ErrStorage, err)
	}
	return nil
}

func isNoSuchUpload(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchUpload"
}

func (s *S3FileStorageImpl) AbortStaleMultipartUploads(ctx context.Context, olderThan time.Time) ([]StaleUpload, error) {
	s.logger.Info("aborting stale multipart uploads", "older_than", olderThan)

	var (
		aborted        []StaleUpload
		keyMarker      *string
		uploadIDMarker *string
	)

	for {
		select {
		case <-ctx.Done():
			return aborted, ctx.Err()
		default:
		}

		out, err := s.client.ListMultipartUploads(ctx, &s3.ListMultipartUploadsInput{
			Bucket:         aws.String(s.bucketName),
			Prefix:         aws.String("users/"),
			KeyMarker:      keyMarker,
			UploadIdMarker: uploadIDMarker,
		})
		if err != nil {
			s.logger.Error("failed to list multipart uploads", "error", err)
			return aborted, fmt.Errorf("failed to list multipart uploads: %w", err)
		}

		for _, upload := range out.Uploads {
			initiated := aws.ToTime(upload.Initiated)
			if !initiated.Before(olderThan) {
				continue
			}

			stale := StaleUpload{
				UploadID:  aws.ToString(upload.UploadId),
				Key:       aws.ToString(upload.Key),
				Initiated: initiated,
			}
			if err := s.AbortMultipartUpload(ctx, stale.Key, stale.UploadID); err != nil {
				s.logger.Error("failed to abort multipart upload", "upload_id", stale.UploadID, "key", stale.Key, "error", err)
				// Continue with other uploads
				continue
			}
			aborted = append(aborted, stale)
		}

		if !aws.ToBool(out.IsTruncated) {
			break
		}
		keyMarker = out.NextKeyMarker
		uploadIDMarker = out.NextUploadIdMarker
	}

	s.logger.Info("aborted stale multipart uploads", "aborted_count", len(aborted))
	return aborted, nil
}
