package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/caching"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/google/uuid"
)

type CreateFileInput struct {
	Filename    string
	ContentType string
	Size        uint64
}

// FileService is the owner scoped file catalog.
type FileService interface {
	CreateFile(ctx context.Context, ownerID string, in CreateFileInput) (*models.File, error)
	ListFiles(ctx context.Context, ownerID string) ([]models.File, error)
	GetFile(ctx context.Context, ownerID, fileID string) (*models.File, error)
	DeleteFile(ctx context.Context, ownerID, fileID string) error
}

type FileServiceImpl struct {
	fileStore   store.FileStore
	fileStorage store.ObjectStorage
	cachingSvc  caching.CachingService

	logger logger.Logger
	now    func() time.Time
}

func NewFileServiceImpl(
	fileStore store.FileStore,
	fileStorage store.ObjectStorage,
	cachingSvc caching.CachingService,
	l logger.Logger,
) *FileServiceImpl {
	return &FileServiceImpl{
		fileStore:   fileStore,
		fileStorage: fileStorage,
		cachingSvc:  cachingSvc,
		logger:      l,
		now:         time.Now,
	}
}

// CreateFile registers metadata for content uploaded out of band.
func (svc *FileServiceImpl) CreateFile(ctx context.Context, ownerID string, in CreateFileInput) (*models.File, error) {
	if in.Filename == "" {
		return nil, fmt.Errorf("%w: filename is required", apperror.ErrInvalidArgument)
	}

	fileID := uuid.NewString()
	file := models.File{
		FileId:      fileID,
		OwnerId:     ownerID,
		Name:        in.Filename,
		ContentType: models.ContentTypeOrDefault(in.ContentType),
		Size:        in.Size,
		StorageKey:  models.StorageKey(ownerID, fileID, in.Filename),
		CreatedAt:   svc.now().Unix(),
	}

	if err := svc.fileStore.Create(ctx, file); err != nil {
		svc.logger.Error("failed to create file record", "owner_id", ownerID, "error", err)
		return nil, err
	}

	invalidateFiles(ctx, svc.cachingSvc, svc.logger, ownerID)
	svc.logger.Info("file registered", "file_id", fileID, "owner_id", ownerID)
	return &file, nil
}

func (svc *FileServiceImpl) ListFiles(ctx context.Context, ownerID string) ([]models.File, error) {
	key := filesCacheKey(ownerID)

	cached, err := svc.cachingSvc.Get(ctx, key)
	switch {
	case err == nil:
		var files []models.File
		if err := json.Unmarshal(cached, &files); err == nil {
			return files, nil
		}
		svc.logger.Warn("dropping undecodable cached files", "owner_id", ownerID)
	case !errors.Is(err, caching.ErrCacheMiss):
		svc.logger.Warn("files cache read failed", "owner_id", ownerID, "error", err)
	}

	files, err := svc.fileStore.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(files); err == nil {
		if err := svc.cachingSvc.Set(ctx, key, data, filesCacheTTL); err != nil {
			svc.logger.Warn("files cache write failed", "owner_id", ownerID, "error", err)
		}
	}

	return files, nil
}

func (svc *FileServiceImpl) GetFile(ctx context.Context, ownerID, fileID string) (*models.File, error) {
	if err := validateFileID(fileID); err != nil {
		return nil, err
	}
	return svc.fileStore.Get(ctx, ownerID, fileID)
}

// DeleteFile removes the object best-effort and then the record. A missing
// or foreign record is reported as ErrFileNotFound.
func (svc *FileServiceImpl) DeleteFile(ctx context.Context, ownerID, fileID string) error {
	file, err := svc.GetFile(ctx, ownerID, fileID)
	if err != nil {
		return err
	}

	if file.StorageKey != "" {
		if err := svc.fileStorage.Delete(ctx, file.StorageKey); err != nil {
			svc.logger.Warn("object deletion failed, removing record anyway", "file_id", fileID, "key", file.StorageKey, "error", err)
		}
	}

	deleted, err := svc.fileStore.Delete(ctx, ownerID, fileID)
	if err != nil {
		svc.logger.Error("failed to delete file record", "file_id", fileID, "error", err)
		return err
	}
	if !deleted {
		// lost a race with a concurrent delete
		return apperror.ErrFileNotFound
	}

	invalidateFiles(ctx, svc.cachingSvc, svc.logger, ownerID)
	svc.logger.Info("file deleted", "file_id", fileID, "owner_id", ownerID)
	return nil
}

func validateFileID(fileID string) error {
	if _, err := uuid.Parse(fileID); err != nil {
		return apperror.ErrInvalidFileID
	}
	return nil
}

func filesCacheKey(ownerID string) string {
	return fmt.Sprintf("user:files:%s", ownerID)
}

// invalidateFiles drops the cached listing of an owner. Failures are logged
// only.
func invalidateFiles(ctx context.Context, c caching.CachingService, l logger.Logger, ownerID string) {
	if err := c.Delete(ctx, filesCacheKey(ownerID)); err != nil {
		l.Error("cached files invalidation failed", "owner_id", ownerID, "error", err)
	}
}
