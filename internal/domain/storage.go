package domain

import (
	"context"
	"io"
	"time"
)

// Binary content store (S3/MinIO)
type BlobPutResult struct {
	StorageKey string
	Size       int64
	SHA256     []byte
}

type BlobStorage interface {
	// Put stores a new file under a fresh time-prefixed key
	// (returns key/size/hash). The key never collides with earlier uploads.
	Put(ctx context.Context, r io.Reader, origName string, mime string) (BlobPutResult, error)
	// Fetch reads the complete byte stream back by storage key.
	// This is the verification read path: bytes always come from here,
	// never from the client.
	Fetch(ctx context.Context, storageKey string) ([]byte, error)
	// PresignGet issues a time-limited download URL for a verified file.
	PresignGet(ctx context.Context, storageKey, downloadName string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, storageKey string) error
	Ping(ctx context.Context) error
}
