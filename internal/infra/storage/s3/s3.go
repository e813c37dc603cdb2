package s3

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
}

type Storage struct {
	cl     *minio.Client
	bucket string
	logger *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Storage, error) {
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	return &Storage{cl: cl, bucket: cfg.Bucket, logger: logger}, nil
}

var _ domain.BlobStorage = (*Storage)(nil)

// Put streams the file into the bucket under a fresh time-prefixed key
// "files/<unix-nano>-<uuid>/<name>" and returns key/size/hash. The prefix
// keeps uploads collision-free even for identical names and bytes.
func (s *Storage) Put(ctx context.Context, r io.Reader, origName string, mime string) (domain.BlobPutResult, error) {
	h := sha256.New()
	pr, pw := io.Pipe()
	mw := io.MultiWriter(h, pw)

	// copy into the pipe and hash in parallel
	go func() {
		_, copyErr := io.Copy(mw, r)
		pw.CloseWithError(copyErr)
	}()

	key := fmt.Sprintf("files/%d-%s/%s", time.Now().UnixNano(), uuid.NewString(), sanitize(origName))
	info, err := s.cl.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{
		ContentType: mime,
	})
	if err != nil {
		s.logger.Printf("PUT %q failed: %v", key, err)
		return domain.BlobPutResult{}, err
	}

	s.logger.Printf("PUT %q ok (%d bytes)", key, info.Size)
	return domain.BlobPutResult{StorageKey: key, Size: info.Size, SHA256: h.Sum(nil)}, nil
}

// Fetch reads the full object back into memory. Used by the verifier only:
// signature checks always run over these server-fetched bytes.
func (s *Storage) Fetch(ctx context.Context, storageKey string) ([]byte, error) {
	obj, err := s.cl.GetObject(ctx, s.bucket, storageKey, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Printf("GET %q failed: %v", storageKey, err)
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Printf("GET %q read failed: %v", storageKey, err)
		return nil, err
	}
	s.logger.Printf("GET %q ok (%d bytes)", storageKey, len(data))
	return data, nil
}

// PresignGet issues a time-limited download URL with a sensible filename.
func (s *Storage) PresignGet(ctx context.Context, storageKey, downloadName string, ttl time.Duration) (string, error) {
	params := make(url.Values)
	if downloadName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}
	u, err := s.cl.PresignedGetObject(ctx, s.bucket, storageKey, ttl, params)
	if err != nil {
		s.logger.Printf("PRESIGN %q failed: %v", storageKey, err)
		return "", err
	}
	s.logger.Printf("PRESIGN %q ok (ttl=%s)", storageKey, ttl)
	return u.String(), nil
}

func (s *Storage) Delete(ctx context.Context, storageKey string) error {
	return s.cl.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{})
}

// Ping checks the bucket is reachable (used by readiness).
func (s *Storage) Ping(ctx context.Context) error {
	ok, err := s.cl.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

func sanitize(name string) string {
	u := url.PathEscape(name)
	return strings.ReplaceAll(u, "%2F", "_")
}
