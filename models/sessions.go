package models

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"
)

type UploadStatus int

const (
	StatusInitiated UploadStatus = iota
	StatusInProgress
	StatusCompleted
	StatusAborted
	StatusExpired
)

var statusNames = map[UploadStatus]string{
	StatusInitiated:  "initiated",
	StatusInProgress: "in_progress",
	StatusCompleted:  "completed",
	StatusAborted:    "aborted",
	StatusExpired:    "expired",
}

func (s UploadStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s UploadStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAborted || s == StatusExpired
}

func ParseUploadStatus(s string) (UploadStatus, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown upload status %q", s)
}

// Part is one uploaded chunk of a multipart upload.
type Part struct {
	PartNumber int32
	ETag       string
}

// UploadSession tracks an in-flight multipart upload. Only sessions in
// progress are persisted; completion, abort and expiry remove the record.
type UploadSession struct {
	UploadId    string `dynamodbav:"upload_id"`    // Assigned by the object store
	OwnerId     string `dynamodbav:"owner_id"`     // Owning user id
	FileId      string `dynamodbav:"file_id"`      // Pre-assigned id of the resulting file
	FileName    string `dynamodbav:"filename"`     //
	ContentType string `dynamodbav:"content_type"` //
	TotalSize   uint64 `dynamodbav:"total_size"`   // Declared size in bytes
	PartSize    uint64 `dynamodbav:"part_size"`    //
	TotalParts  int32  `dynamodbav:"total_parts"`  //
	StorageKey  string `dynamodbav:"storage_key"`  //

	// Parts maps the decimal part number to its etag, so a re-uploaded part
	// replaces its previous entry.
	Parts map[string]string `dynamodbav:"parts"`

	CreatedAt int64  `dynamodbav:"created_at"` // Epoch seconds
	ExpiresAt int64  `dynamodbav:"expires_at"` // Epoch seconds, table TTL attribute
	Status    string `dynamodbav:"status"`
}

func (s UploadSession) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}

// PartList returns the recorded parts ordered by part number.
func (s UploadSession) PartList() []Part {
	parts := make([]Part, 0, len(s.Parts))
	for k, etag := range s.Parts {
		n, err := strconv.ParseInt(k, 10, 32)
		if err != nil {
			continue
		}
		parts = append(parts, Part{PartNumber: int32(n), ETag: etag})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].PartNumber < parts[j].PartNumber })
	return parts
}

func (s UploadSession) Validate() error {
	if s.UploadId == "" || s.OwnerId == "" || s.StorageKey == "" {
		return errors.New("invalid upload session: missing upload_id, owner_id or storage_key")
	}
	if _, err := ParseUploadStatus(s.Status); err != nil {
		return fmt.Errorf("invalid upload session %q: %w", s.UploadId, err)
	}
	return nil
}

// PartKey is the map key under which a part's etag is stored.
func PartKey(partNumber int32) string {
	return strconv.FormatInt(int64(partNumber), 10)
}

// SessionExpiredEvent is published when the session table TTL removes a
// session that was never completed or aborted.
type SessionExpiredEvent struct {
	UploadId   string `json:"upload_id"`
	OwnerId    string `json:"owner_id"`
	StorageKey string `json:"storage_key"`
}
