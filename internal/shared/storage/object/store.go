package object

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/Shivamsahlot17/AI-Resume-and-Cover-letter-generator/internal/shared/util"
)

// ErrInvalidKey is returned for storage keys that escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// ObjectStore saves and retrieves generated documents by storage key.
type ObjectStore interface {
	Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}

// DocumentKey builds the storage key for a generated document. The user ID is
// hashed so keys never leak identities.
func DocumentKey(userID, kind, documentID string) string {
	return path.Join(util.OwnerPrefix(userID), kind, documentID+".pdf")
}

// CleanKey normalizes a storage key and rejects traversal or absolute keys.
func CleanKey(storageKey string) (string, error) {
	trimmed := strings.TrimSpace(storageKey)
	if trimmed == "" {
		return "", ErrInvalidKey
	}
	clean := path.Clean(strings.ReplaceAll(trimmed, "\\", "/"))
	if clean == "." || strings.HasPrefix(clean, "/") || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", ErrInvalidKey
	}
	return clean, nil
}
