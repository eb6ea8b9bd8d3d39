package store

import (
	"context"
	"io"
	"time"

	"github.com/Yulian302/lfusys-services-files/health"
	"github.com/Yulian302/lfusys-services-files/models"
)

// FileStore persists file records. Every read and delete is scoped by owner:
// a record owned by someone else behaves exactly like a missing one.
type FileStore interface {
	Create(ctx context.Context, file models.File) error
	Get(ctx context.Context, ownerID, fileID string) (*models.File, error)
	List(ctx context.Context, ownerID string) ([]models.File, error)
	Count(ctx context.Context, ownerID string) (int, error)
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, ownerID, fileID string) (bool, error)

	health.ReadinessCheck
}

// SessionStore persists multipart upload sessions.
type SessionStore interface {
	CreateSession(ctx context.Context, session models.UploadSession) error
	// GetSession returns ErrSessionNotFound for missing, foreign and expired
	// sessions.
	GetSession(ctx context.Context, ownerID, uploadID string) (*models.UploadSession, error)
	// PutPart records the etag of a part, replacing any earlier entry for the
	// same part number.
	PutPart(ctx context.Context, ownerID, uploadID string, part models.Part) error
	Delete(ctx context.Context, ownerID, uploadID string) (bool, error)
	// Purge removes a session regardless of its owner. Used by expiry
	// reconciliation only.
	Purge(ctx context.Context, uploadID string) error

	health.ReadinessCheck
}

// StaleUpload is an unfinished remote multipart upload.
type StaleUpload struct {
	UploadID  string
	Key       string
	Initiated time.Time
}

// ObjectStorage is the object store holding file bytes.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error)
	UploadPart(ctx context.Context, key, uploadID string, partNumber int32, body []byte) (string, error)
	// CompleteMultipartUpload returns ErrNoSuchUpload when the upload id is
	// unknown, including uploads that were already completed.
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []models.Part) error
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
	// AbortStaleMultipartUploads aborts remote uploads initiated before
	// olderThan and returns the ones it aborted.
	AbortStaleMultipartUploads(ctx context.Context, olderThan time.Time) ([]StaleUpload, error)

	health.ReadinessCheck
}
