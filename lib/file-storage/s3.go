package filestorage

import (
	"bytes"
	"context"
	"io"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type s3Impl struct {
	client *minio.Client
	bucket string
}

// NewS3Handler stores files in an S3 bucket instead of the local disk.
func NewS3Handler(client *minio.Client, bucket string) Provider {
	Instance = &s3Impl{client: client, bucket: bucket}
	return Instance
}

func (i s3Impl) Store(ctx context.Context, fileName string, file []byte) error {
	name := filepath.Base(fileName)
	_, err := i.client.PutObject(ctx, i.bucket, name,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return errors.Wrap(err, "failed to upload file to s3")
	}
	return nil
}

func (i s3Impl) Retrieve(ctx context.Context, fileName string) ([]byte, error) {
	name := filepath.Base(fileName)
	obj, err := i.client.GetObject(ctx, i.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to request file from s3")
	}
	defer obj.Close()
	content, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to read file from s3")
	}
	return content, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: "us-east-1"})
}
