// Package storage uploads resolution evidence photos to object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	sharedconfig "beyazmasa/internal/shared/config"
)

// EvidenceStore persists uploaded evidence and returns a public URL for it.
type EvidenceStore interface {
	Upload(ctx context.Context, ticketID uint, filename, contentType string, size int64, r io.Reader) (string, error)
}

type MinioEvidenceStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ EvidenceStore = (*MinioEvidenceStore)(nil)

// NewMinioEvidenceStore builds the store. An empty endpoint returns nil,
// which the caller treats as evidence upload disabled.
func NewMinioEvidenceStore(cfg sharedconfig.StorageConfig) (*MinioEvidenceStore, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioEvidenceStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// EnsureBucket creates the evidence bucket if it does not exist yet.
func (s *MinioEvidenceStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *MinioEvidenceStore) Upload(ctx context.Context, ticketID uint, filename, contentType string, size int64, r io.Reader) (string, error) {
	// Never trust the uploaded filename; keep only its extension.
	objectName := fmt.Sprintf("evidence/%d/%d-%s%s",
		ticketID, time.Now().Unix(), uuid.New().String()[:8], strings.ToLower(path.Ext(filename)))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload evidence: %w", err)
	}

	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectName), nil
}
