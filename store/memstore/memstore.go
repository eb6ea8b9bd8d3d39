// Package memstore keeps files, sessions and objects in process memory. It
// backs METADATA_BACKEND=memory for local runs and the package tests. The
// exported *Err fields inject failures into the matching operation.
package memstore

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/Yulian302/lfusys-services-files/apperror"
	"github.com/Yulian302/lfusys-services-files/models"
	"github.com/Yulian302/lfusys-services-files/store"
)

type FileStore struct {
	mu    sync.Mutex
	files map[string]models.File

	CreateErr error
	CountErr  error
	DeleteErr error
}

func NewFileStore() *FileStore {
	return &FileStore{files: map[string]models.File{}}
}

func (s *FileStore) IsReady(context.Context) error { return nil }
func (s *FileStore) Name() string                  { return "FileStore[memory]" }

func (s *FileStore) Create(_ context.Context, file models.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	if _, ok := s.files[file.FileId]; ok {
		return fmt.Errorf("file %s already exists", file.FileId)
	}
	s.files[file.FileId] = file
	return nil
}

func (s *FileStore) Get(_ context.Context, ownerID, fileID string) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[fileID]
	if !ok || file.OwnerId != ownerID {
		return nil, apperror.ErrFileNotFound
	}
	return &file, nil
}

func (s *FileStore) List(_ context.Context, ownerID string) ([]models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := []models.File{}
	for _, f := range s.files {
		if f.OwnerId == ownerID {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].CreatedAt != files[j].CreatedAt {
			return files[i].CreatedAt < files[j].CreatedAt
		}
		return files[i].FileId < files[j].FileId
	})
	return files, nil
}

func (s *FileStore) Count(ctx context.Context, ownerID string) (int, error) {
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	files, err := s.List(ctx, ownerID)
	return len(files), err
}

func (s *FileStore) Delete(_ context.Context, ownerID, fileID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return false, s.DeleteErr
	}
	file, ok := s.files[fileID]
	if !ok || file.OwnerId != ownerID {
		return false, nil
	}
	delete(s.files, fileID)
	return true, nil
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.UploadSession

	// Now is the clock used for expiry checks.
	Now func() time.Time

	CreateErr  error
	PutPartErr error
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]models.UploadSession{},
		Now:      time.Now,
	}
}

func (s *SessionStore) IsReady(context.Context) error { return nil }
func (s *SessionStore) Name() string                  { return "SessionStore[memory]" }

func (s *SessionStore) CreateSession(_ context.Context, session models.UploadSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	if _, ok := s.sessions[session.UploadId]; ok {
		return fmt.Errorf("session %s already exists", session.UploadId)
	}
	session.Parts = copyParts(session.Parts)
	s.sessions[session.UploadId] = session
	return nil
}

func (s *SessionStore) live(ownerID, uploadID string) (models.UploadSession, bool) {
	session, ok := s.sessions[uploadID]
	if !ok || session.OwnerId != ownerID || session.Expired(s.Now()) {
		return models.UploadSession{}, false
	}
	return session, true
}

func (s *SessionStore) GetSession(_ context.Context, ownerID, uploadID string) (*models.UploadSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.live(ownerID, uploadID)
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}
	session.Parts = copyParts(session.Parts)
	return &session, nil
}

func (s *SessionStore) PutPart(_ context.Context, ownerID, uploadID string, part models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PutPartErr != nil {
		return s.PutPartErr
	}
	session, ok := s.live(ownerID, uploadID)
	if !ok {
		return apperror.ErrSessionNotFound
	}
	session.Parts[models.PartKey(part.PartNumber)] = part.ETag
	return nil
}

func (s *SessionStore) Delete(_ context.Context, ownerID, uploadID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[uploadID]
	if !ok || session.OwnerId != ownerID {
		return false, nil
	}
	delete(s.sessions, uploadID)
	return true, nil
}

func (s *SessionStore) Purge(_ context.Context, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, uploadID)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func copyParts(parts map[string]string) map[string]string {
	out := make(map[string]string, len(parts))
	for k, v := range parts {
		out[k] = v
	}
	return out
}

type multipartUpload struct {
	key       string
	parts     map[int32][]byte
	initiated time.Time
}

type ObjectStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	uploads map[string]*multipartUpload
	nextID  int

	Now func() time.Time

	PutErr         error
	GetErr         error
	DeleteErr      error
	CreateErr      error
	UploadPartErr  error
	CompleteErr    error
	ExistsErr      error
	AbortErr       error
	ReadErr        error // returned by object readers after the first byte
	OpenReaders    int   // readers handed out and not yet closed
	CompletedParts [][]models.Part
}

func NewObjectStorage() *ObjectStorage {
	return &ObjectStorage{
		objects: map[string][]byte{},
		uploads: map[string]*multipartUpload{},
		Now:     time.Now,
	}
}

func (s *ObjectStorage) IsReady(context.Context) error { return nil }
func (s *ObjectStorage) Name() string                  { return "ObjectStorage[memory]" }

func (s *ObjectStorage) Put(_ context.Context, key, _ string, body io.Reader, size int64) error {
	if s.PutErr != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStorage, s.PutErr)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if int64(len(data)) != size {
		return fmt.Errorf("put %s: read %d bytes, declared %d", key, len(data), size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

// Object returns the stored bytes of key.
func (s *ObjectStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

func (s *ObjectStorage) Objects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

type reader struct {
	*bytes.Reader
	storage *ObjectStorage
	readErr error
	read    bool
	closed  bool
}

func (r *reader) Read(p []byte) (int, error) {
	if r.readErr != nil && r.read {
		return 0, r.readErr
	}
	r.read = true
	if r.readErr != nil && len(p) > 1 {
		p = p[:1]
	}
	return r.Reader.Read(p)
}

func (r *reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.storage.mu.Lock()
	r.storage.OpenReaders--
	r.storage.mu.Unlock()
	return nil
}

func (s *ObjectStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GetErr != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, s.GetErr)
	}
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: object %s is missing", apperror.ErrStorage, key)
	}
	s.OpenReaders++
	return &reader{Reader: bytes.NewReader(data), storage: s, readErr: s.ReadErr}, nil
}

func (s *ObjectStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStorage, s.DeleteErr)
	}
	delete(s.objects, key)
	return nil
}

func (s *ObjectStorage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ExistsErr != nil {
		return false, fmt.Errorf("%w: %v", apperror.ErrStorage, s.ExistsErr)
	}
	_, ok := s.objects[key]
	return ok, nil
}

func (s *ObjectStorage) CreateMultipartUpload(_ context.Context, key, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrStorage, s.CreateErr)
	}
	s.nextID++
	id := fmt.Sprintf("mpu-%d", s.nextID)
	s.uploads[id] = &multipartUpload{key: key, parts: map[int32][]byte{}, initiated: s.Now()}
	return id, nil
}

// Uploads returns the number of unfinished multipart uploads.
func (s *ObjectStorage) Uploads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads)
}

func etag(data []byte) string {
	sum := md5.Sum(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func (s *ObjectStorage) UploadPart(_ context.Context, key, uploadID string, partNumber int32, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UploadPartErr != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrStorage, s.UploadPartErr)
	}
	upload, ok := s.uploads[uploadID]
	if !ok || upload.key != key {
		return "", fmt.Errorf("%w: NoSuchUpload %s", apperror.ErrStorage, uploadID)
	}
	upload.parts[partNumber] = append([]byte{}, body...)
	return etag(body), nil
}

func (s *ObjectStorage) CompleteMultipartUpload(_ context.Context, key, uploadID string, parts []models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CompleteErr != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStorage, s.CompleteErr)
	}
	upload, ok := s.uploads[uploadID]
	if !ok || upload.key != key {
		return fmt.Errorf("%w: %w %s", apperror.ErrStorage, apperror.ErrNoSuchUpload, uploadID)
	}

	var buf bytes.Buffer
	for i, p := range parts {
		if i > 0 && p.PartNumber <= parts[i-1].PartNumber {
			return fmt.Errorf("%w: InvalidPartOrder", apperror.ErrStorage)
		}
		data, ok := upload.parts[p.PartNumber]
		if !ok || etag(data) != p.ETag {
			return fmt.Errorf("%w: InvalidPart %d", apperror.ErrStorage, p.PartNumber)
		}
		buf.Write(data)
	}

	s.objects[key] = buf.Bytes()
	delete(s.uploads, uploadID)
	s.CompletedParts = append(s.CompletedParts, append([]models.Part{}, parts...))
	return nil
}

func (s *ObjectStorage) AbortMultipartUpload(_ context.Context, _ string, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.AbortErr != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStorage, s.AbortErr)
	}
	delete(s.uploads, uploadID)
	return nil
}

func (s *ObjectStorage) AbortStaleMultipartUploads(_ context.Context, olderThan time.Time) ([]store.StaleUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var aborted []store.StaleUpload
	for id, upload := range s.uploads {
		if !upload.initiated.Before(olderThan) {
			continue
		}
		aborted = append(aborted, store.StaleUpload{UploadID: id, Key: upload.key, Initiated: upload.initiated})
		delete(s.uploads, id)
	}
	sort.Slice(aborted, func(i, j int) bool { return aborted[i].UploadID < aborted[j].UploadID })
	return aborted, nil
}

var (
	_ store.FileStore     = (*FileStore)(nil)
	_ store.SessionStore  = (*SessionStore)(nil)
	_ store.ObjectStorage = (*ObjectStorage)(nil)
)
