package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/caching"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

type UploadMetadata struct {
	Filename    string
	ContentType string
}

// UploadMessage is one message of an upload stream: metadata or a chunk.
type UploadMessage struct {
	Metadata *UploadMetadata
	Chunk    []byte
}

// UploadStream yields upload messages until io.EOF.
type UploadStream interface {
	Recv() (*UploadMessage, error)
}

type TransferService interface {
	Upload(ctx context.Context, ownerID string, stream UploadStream) (*models.File, error)
	Download(ctx context.Context, ownerID, fileID string) (*FileDownload, error)
}

type SpoolConfig struct {
	Fs        afero.Fs
	Dir       string
	Threshold int64
}

type TransferServiceImpl struct {
	fileStore   store.FileStore
	fileStorage store.ObjectStorage
	cachingSvc  caching.CachingService
	spool       SpoolConfig
	maxFileSize uint64

	logger logger.Logger
	now    func() time.Time
}

func NewTransferServiceImpl(
	fileStore store.FileStore,
	fileStorage store.ObjectStorage,
	cachingSvc caching.CachingService,
	spool SpoolConfig,
	l logger.Logger,
) *TransferServiceImpl {
	if spool.Fs == nil {
		spool.Fs = afero.NewOsFs()
	}
	return &TransferServiceImpl{
		fileStore:   fileStore,
		fileStorage: fileStorage,
		cachingSvc:  cachingSvc,
		spool:       spool,
		maxFileSize: MaxFileSize,
		logger:      l,
		now:         time.Now,
	}
}

// Upload stores a whole file sent as a metadata message followed by chunks.
// The per-user file cap is checked before the first message is read and the
// size cap is enforced while chunks arrive; nothing is stored when either
// trips.
func (svc *TransferServiceImpl) Upload(ctx context.Context, ownerID string, stream UploadStream) (*models.File, error) {
	count, err := svc.fileStore.Count(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= MaxFilesPerUser {
		return nil, apperror.ErrFileLimitReached
	}

	first, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil, apperror.ErrEmptyUploadStream
	}
	if err != nil {
		return nil, err
	}
	if first.Metadata == nil {
		return nil, apperror.ErrMissingMetadata
	}
	meta := *first.Metadata

	buf := NewSpoolBuffer(svc.spool.Fs, svc.spool.Dir, svc.spool.Threshold)
	defer func() {
		if err := buf.Close(); err != nil {
			svc.logger.Warn("failed to release upload spool", "owner_id", ownerID, "error", err)
		}
	}()

	var total uint64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(msg.Chunk) == 0 {
			// repeated metadata and empty chunks carry nothing
			continue
		}

		total += uint64(len(msg.Chunk))
		if total > svc.maxFileSize {
			svc.logger.Warn("upload exceeds size cap", "owner_id", ownerID, "received", total)
			return nil, apperror.ErrFileTooLarge
		}
		if _, err := buf.Write(msg.Chunk); err != nil {
			return nil, fmt.Errorf("spool upload: %w", err)
		}
	}

	fileID := uuid.NewString()
	key := models.StorageKey(ownerID, fileID, meta.Filename)
	contentType := models.ContentTypeOrDefault(meta.ContentType)

	body, err := buf.Reader()
	if err != nil {
		return nil, fmt.Errorf("rewind upload spool: %w", err)
	}
	if err := svc.fileStorage.Put(ctx, key, contentType, body, buf.Size()); err != nil {
		return nil, err
	}

	file := models.File{
		FileId:      fileID,
		OwnerId:     ownerID,
		Name:        meta.Filename,
		ContentType: contentType,
		Size:        total,
		StorageKey:  key,
		CreatedAt:   svc.now().Unix(),
	}
	if err := svc.fileStore.Create(ctx, file); err != nil {
		svc.logger.Error("failed to create file record, removing object", "file_id", fileID, "error", err)
		if delErr := svc.fileStorage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			svc.logger.Error("failed to remove orphaned object", "key", key, "error", delErr)
		}
		return nil, err
	}

	invalidateFiles(ctx, svc.cachingSvc, svc.logger, ownerID)
	svc.logger.Info("file uploaded", "file_id", fileID, "owner_id", ownerID, "size", total, "spilled", buf.Spilled())
	return &file, nil
}

// Download opens the object of an owned file. The caller must Close the
// returned download unless Next has already reported an error or io.EOF.
func (svc *TransferServiceImpl) Download(ctx context.Context, ownerID, fileID string) (*FileDownload, error) {
	if err := validateFileID(fileID); err != nil {
		return nil, err
	}

	file, err := svc.fileStore.Get(ctx, ownerID, fileID)
	if err != nil {
		return nil, err
	}
	if file.StorageKey == "" {
		return nil, fmt.Errorf("%w: file %s has no storage key", apperror.ErrStorage, fileID)
	}

	body, err := svc.fileStorage.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, err
	}

	return newFileDownload(*file, body, DownloadChunkSize), nil
}

// FileDownload is a pull based, single pass reader over a stored file.
type FileDownload struct {
	File models.File

	body io.ReadCloser
	buf  []byte
	once sync.Once
}

func newFileDownload(file models.File, body io.ReadCloser, chunkSize int) *FileDownload {
	return &FileDownload{
		File: file,
		body: body,
		buf:  make([]byte, chunkSize),
	}
}

// Next returns the next chunk, at most the chunk size long. The slice is
// only valid until the following call. At the end it returns io.EOF; read
// failures wrap ErrStorage. Both release the object.
func (d *FileDownload) Next() ([]byte, error) {
	n, err := io.ReadFull(d.body, d.buf)
	switch {
	case err == nil, errors.Is(err, io.ErrUnexpectedEOF):
		return d.buf[:n], nil
	case errors.Is(err, io.EOF):
		d.Close()
		return nil, io.EOF
	default:
		d.Close()
		return nil, fmt.Errorf("%w: read object: %v", apperror.ErrStorage, err)
	}
}

func (d *FileDownload) Close() error {
	var err error
	d.once.Do(func() {
		err = d.body.Close()
	})
	return err
}
