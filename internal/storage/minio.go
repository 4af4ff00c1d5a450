package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KromaEnergia/api-contracts/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"
)

// ObjectStore is the external object-store collaborator: upload, tag, move
// and stat. The file handlers only correlate objects via their keys.
type ObjectStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, objectTags map[string]string) error
	Move(ctx context.Context, src, dst string) error
	SetTags(ctx context.Context, key string, objectTags map[string]string) error
	Stat(ctx context.Context, key string) (int64, error)
}

type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinioStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string, objectTags map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserTags:    objectTags,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Move copies the object to its new key and removes the old one. The two
// steps are not atomic at the store.
func (s *MinioStore) Move(ctx context.Context, src, dst string) error {
	_, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: s.bucket, Object: dst},
		minio.CopySrcOptions{Bucket: s.bucket, Object: src},
	)
	if err != nil {
		return fmt.Errorf("failed to copy object: %w", err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, src, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove source object: %w", err)
	}
	return nil
}

func (s *MinioStore) SetTags(ctx context.Context, key string, objectTags map[string]string) error {
	t, err := tags.NewTags(objectTags, true)
	if err != nil {
		return fmt.Errorf("failed to build tags: %w", err)
	}
	if err := s.client.PutObjectTagging(ctx, s.bucket, key, t, minio.PutObjectTaggingOptions{}); err != nil {
		return fmt.Errorf("failed to tag object: %w", err)
	}
	return nil
}

func (s *MinioStore) Stat(ctx context.Context, key string) (int64, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// IsNotExist reports whether err means the object is absent from the store.
func IsNotExist(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey"
	}
	return false
}
