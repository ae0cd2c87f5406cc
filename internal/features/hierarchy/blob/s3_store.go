package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"collabriq-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store keeps blobs in an S3-compatible bucket through the MinIO client.
type S3Store struct {
	client *minio.Client
	bucket string
}

func NewS3Store() (*S3Store, error) {
	env := config.GetEnv()

	client, err := minio.New(env.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(env.S3AccessKey, env.S3SecretKey, ""),
		Secure: env.S3UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &S3Store{client: client, bucket: env.S3Bucket}, nil
}

func (s *S3Store) Save(ctx context.Context, key string, content []byte) error {
	_, err := s.client.PutObject(
		ctx, s.bucket, key,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) Read(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob %s: %w", key, err)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}

	return content, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}

	return nil
}
