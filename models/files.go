package models

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const DefaultContentType = "application/octet-stream"

// File is the metadata record of a stored object. It is never mutated after
// creation.
type File struct {
	FileId      string `dynamodbav:"file_id"`      // Unique file identifier (uuid v4)
	OwnerId     string `dynamodbav:"owner_id"`     // Owning user id
	Name        string `dynamodbav:"filename"`     // User supplied, not unique
	ContentType string `dynamodbav:"content_type"` // Declared MIME type
	Size        uint64 `dynamodbav:"file_size"`    // Size in bytes
	StorageKey  string `dynamodbav:"storage_key"`  // Object key in the bucket
	CreatedAt   int64  `dynamodbav:"created_at"`   // Epoch seconds, server clock
}

// Validate checks the fields a stored record must carry before it is served.
func (f File) Validate() error {
	var errs []error
	if f.FileId == "" {
		errs = append(errs, errors.New("missing file_id"))
	}
	if f.OwnerId == "" {
		errs = append(errs, errors.New("missing owner_id"))
	}
	if f.StorageKey == "" {
		errs = append(errs, errors.New("missing storage_key"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid file record %q: %w", f.FileId, errors.Join(errs...))
	}
	return nil
}

// StorageKey derives the object key of a file. Only the base name of the
// user supplied filename is kept so it cannot escape the owner prefix.
func StorageKey(ownerID, fileID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "file"
	}
	return fmt.Sprintf("users/%s/%s/%s", ownerID, fileID, name)
}

func ContentTypeOrDefault(contentType string) string {
	if contentType == "" {
		return DefaultContentType
	}
	return contentType
}
