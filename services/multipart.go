package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/caching"
	logger "github.com/Yulian302/lfusys-services-files/logging"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
	"github.com/google/uuid"
)

type InitiateInput struct {
	Filename    string
	ContentType string
	TotalSize   uint64
}

type InitiateResult struct {
	UploadID   string
	PartSize   uint64
	TotalParts int32
}

// MultipartService drives client side chunked uploads through a persisted
// session: Initiate, then UploadPart any number of times in any order, then
// Complete or Abort.
type MultipartService interface {
	Initiate(ctx context.Context, ownerID string, in InitiateInput) (*InitiateResult, error)
	UploadPart(ctx context.Context, ownerID, uploadID string, partNumber int32, chunk []byte) (*models.Part, error)
	Complete(ctx context.Context, ownerID, uploadID string, parts []models.Part) (*models.File, error)
	Abort(ctx context.Context, ownerID, uploadID string) (bool, error)
}

type MultipartServiceImpl struct {
	sessionStore store.SessionStore
	fileStore    store.FileStore
	fileStorage  store.ObjectStorage
	cachingSvc   caching.CachingService

	logger logger.Logger
	now    func() time.Time
}

func NewMultipartServiceImpl(
	sessionStore store.SessionStore,
	fileStore store.FileStore,
	fileStorage store.ObjectStorage,
	cachingSvc caching.CachingService,
	l logger.Logger,
) *MultipartServiceImpl {
	return &MultipartServiceImpl{
		sessionStore: sessionStore,
		fileStore:    fileStore,
		fileStorage:  fileStorage,
		cachingSvc:   cachingSvc,
		logger:       l,
		now:          time.Now,
	}
}

func (svc *MultipartServiceImpl) Initiate(ctx context.Context, ownerID string, in InitiateInput) (*InitiateResult, error) {
	if in.TotalSize > MaxFileSize {
		return nil, apperror.ErrUploadTooLarge
	}

	fileID := uuid.NewString()
	key := models.StorageKey(ownerID, fileID, in.Filename)
	contentType := models.ContentTypeOrDefault(in.ContentType)

	uploadID, err := svc.fileStorage.CreateMultipartUpload(ctx, key, contentType)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	session := models.UploadSession{
		UploadId:    uploadID,
		OwnerId:     ownerID,
		FileId:      fileID,
		FileName:    in.Filename,
		ContentType: contentType,
		TotalSize:   in.TotalSize,
		PartSize:    PartSize,
		TotalParts:  TotalParts(in.TotalSize),
		StorageKey:  key,
		Parts:       map[string]string{},
		CreatedAt:   now.Unix(),
		ExpiresAt:   now.Add(SessionRetention).Unix(),
		Status:      models.StatusInProgress.String(),
	}

	if err := svc.sessionStore.CreateSession(ctx, session); err != nil {
		svc.logger.Error("failed to persist upload session, aborting remote upload", "upload_id", uploadID, "error", err)
		if abortErr := svc.fileStorage.AbortMultipartUpload(context.WithoutCancel(ctx), key, uploadID); abortErr != nil {
			svc.logger.Error("failed to abort multipart upload", "upload_id", uploadID, "error", abortErr)
		}
		return nil, err
	}

	svc.logger.Info("multipart upload initiated",
		"upload_id", uploadID,
		"owner_id", ownerID,
		"file_id", fileID,
		"total_size", in.TotalSize,
		"total_parts", session.TotalParts,
	)

	return &InitiateResult{
		UploadID:   uploadID,
		PartSize:   PartSize,
		TotalParts: session.TotalParts,
	}, nil
}

// UploadPart stores one part and records its etag. Uploading the same part
// number again replaces the earlier etag. A failed remote upload leaves the
// session untouched so the part can be retried.
func (svc *MultipartServiceImpl) UploadPart(ctx context.Context, ownerID, uploadID string, partNumber int32, chunk []byte) (*models.Part, error) {
	if err := validatePartNumber(partNumber); err != nil {
		return nil, err
	}

	session, err := svc.sessionStore.GetSession(ctx, ownerID, uploadID)
	if err != nil {
		return nil, err
	}

	etag, err := svc.fileStorage.UploadPart(ctx, session.StorageKey, uploadID, partNumber, chunk)
	if err != nil {
		return nil, err
	}

	part := models.Part{PartNumber: partNumber, ETag: etag}
	if err := svc.sessionStore.PutPart(ctx, ownerID, uploadID, part); err != nil {
		svc.logger.Error("failed to record part", "upload_id", uploadID, "part_number", partNumber, "error", err)
		return nil, err
	}

	svc.logger.Debug("part uploaded", "upload_id", uploadID, "part_number", partNumber, "size", len(chunk))
	return &part, nil
}

// Complete finalizes the remote upload with the caller's parts in ascending
// order and turns the session into a file record. On any failure the
// session is kept so the caller may retry or abort; a retry after the record
// insert failed finds the object already assembled and only records it.
func (svc *MultipartServiceImpl) Complete(ctx context.Context, ownerID, uploadID string, parts []models.Part) (*models.File, error) {
	session, err := svc.sessionStore.GetSession(ctx, ownerID, uploadID)
	if err != nil {
		return nil, err
	}

	ordered, err := orderParts(parts)
	if err != nil {
		return nil, err
	}

	if err := svc.fileStorage.CompleteMultipartUpload(ctx, session.StorageKey, uploadID, ordered); err != nil {
		if !errors.Is(err, apperror.ErrNoSuchUpload) {
			return nil, err
		}
		// an earlier Complete assembled the object but failed to record it
		exists, existsErr := svc.fileStorage.Exists(ctx, session.StorageKey)
		if existsErr != nil {
			return nil, existsErr
		}
		if !exists {
			return nil, err
		}
		svc.logger.Warn("remote upload already completed, recording file", "upload_id", uploadID, "key", session.StorageKey)
	}

	file := models.File{
		FileId:      session.FileId,
		OwnerId:     ownerID,
		Name:        session.FileName,
		ContentType: session.ContentType,
		Size:        session.TotalSize,
		StorageKey:  session.StorageKey,
		CreatedAt:   svc.now().Unix(),
	}
	if err := svc.fileStore.Create(ctx, file); err != nil {
		svc.logger.Error("failed to create file record", "upload_id", uploadID, "file_id", file.FileId, "error", err)
		return nil, err
	}

	if _, err := svc.sessionStore.Delete(ctx, ownerID, uploadID); err != nil {
		svc.logger.Error("upload session deletion failed", "upload_id", uploadID, "error", err)
		// not returning error here as file is already created
	}

	invalidateFiles(ctx, svc.cachingSvc, svc.logger, ownerID)

	svc.logger.Info("multipart upload completed", "upload_id", uploadID, "file_id", file.FileId, "parts", len(ordered))
	return &file, nil
}

// Abort cancels the remote upload best-effort and always removes the
// session. It reports whether a session record was deleted.
func (svc *MultipartServiceImpl) Abort(ctx context.Context, ownerID, uploadID string) (bool, error) {
	session, err := svc.sessionStore.GetSession(ctx, ownerID, uploadID)
	if err != nil {
		return false, err
	}

	if err := svc.fileStorage.AbortMultipartUpload(ctx, session.StorageKey, uploadID); err != nil {
		svc.logger.Warn("remote abort failed, deleting session anyway", "upload_id", uploadID, "error", err)
	}

	deleted, err := svc.sessionStore.Delete(ctx, ownerID, uploadID)
	if err != nil {
		return false, err
	}

	svc.logger.Info("multipart upload aborted", "upload_id", uploadID, "deleted", deleted)
	return deleted, nil
}

func validatePartNumber(n int32) error {
	if n < MinPartNumber || n > MaxPartNumber {
		return fmt.Errorf("%w: part number %d outside [%d, %d]", apperror.ErrInvalidArgument, n, MinPartNumber, MaxPartNumber)
	}
	return nil
}

// orderParts sorts parts by part number. When a part number repeats the
// last entry wins.
func orderParts(parts []models.Part) ([]models.Part, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no parts to complete", apperror.ErrInvalidArgument)
	}

	byNumber := make(map[int32]string, len(parts))
	for _, p := range parts {
		if err := validatePartNumber(p.PartNumber); err != nil {
			return nil, err
		}
		byNumber[p.PartNumber] = p.ETag
	}

	ordered := make([]models.Part, 0, len(byNumber))
	for n, etag := range byNumber {
		ordered = append(ordered, models.Part{PartNumber: n, ETag: etag})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PartNumber < ordered[j].PartNumber })

	return ordered, nil
}
