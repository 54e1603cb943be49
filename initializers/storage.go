package initializers

import (
	"context"

	"kridavista-backend/config"
	filestorage "kridavista-backend/lib/file-storage"
	s3client "kridavista-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// InitFileStorage picks the upload backend: local disk by default, S3 when
// enabled. A failed S3 init falls back to disk so intake keeps working.
func InitFileStorage(ctx context.Context) {
	if config.Conf.S3.Enabled == nil || !*config.Conf.S3.Enabled {
		filestorage.NewLocalHandler(config.Conf.Store.UploadsDir)
		return
	}

	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client, falling back to local storage")
		filestorage.NewLocalHandler(config.Conf.Store.UploadsDir)
		return
	}
	if err = filestorage.EnsureBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket, falling back to local storage")
		filestorage.NewLocalHandler(config.Conf.Store.UploadsDir)
		return
	}
	s3client.Client = minioClient
	filestorage.NewS3Handler(minioClient, config.Conf.S3.BucketName)
	log.Info("S3 file storage initialized")
}
