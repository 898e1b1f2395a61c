package storage

import (
	"context"
	"io"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, objectKey string, content io.Reader, size int64, contentType string) error {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectKey, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioPutObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) GetObject(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	content, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return content, nil
}

func (m *minioStorage) CopyObject(ctx context.Context, sourceKey, destinationKey string) error {
	_, err := m.MinioClient.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.BucketName, Object: destinationKey},
		minio.CopySrcOptions{Bucket: m.BucketName, Object: sourceKey},
	)
	if err != nil {
		return exceptions.ErrMinioCopyObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) RemoveObject(ctx context.Context, objectKey string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presigned, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectKey, expiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresign(err, m.BucketName)
	}
	return presigned.String(), nil
}

// ListObjects walks every object under prefix, recursively.
func (m *minioStorage) ListObjects(ctx context.Context, prefix string) ([]models.StoredObject, error) {
	var objects []models.StoredObject
	for info := range m.MinioClient.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, exceptions.ErrMinioListObjects(info.Err, m.BucketName)
		}
		objects = append(objects, models.StoredObject{Key: info.Key, LastModified: info.LastModified})
	}
	return objects, nil
}
