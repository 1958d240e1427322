package flightlog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/groundlink-io/groundlink/pkg/options"
)

// Archiver uploads finished flight logs to S3-compatible object
// storage so a ground-station laptop is not the only copy.
type Archiver struct {
	client *minio.Client
	bucket string
	region string
}

func NewArchiver(opts *options.S3Options) (*Archiver, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}
	return &Archiver{client: client, bucket: opts.BucketName, region: opts.Region}, nil
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
		return fmt.Errorf("create bucket %q: %w", a.bucket, err)
	}
	return nil
}

// Upload stores one flight log under flights/<name> and returns the
// object key.
func (a *Archiver) Upload(ctx context.Context, path string) (string, error) {
	key := "flights/" + filepath.Base(path)
	_, err := a.client.FPutObject(ctx, a.bucket, key, path, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", fmt.Errorf("upload %q: %w", path, err)
	}
	return key, nil
}
