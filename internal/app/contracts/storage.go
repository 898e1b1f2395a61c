package contracts

import (
	"context"
	"io"
	"medintake-service/internal/app/models"
	"time"
)

// Storage keeps raw document bytes in a single bucket keyed by object name.
type Storage interface {
	PutObject(ctx context.Context, objectKey string, content io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, objectKey string) ([]byte, error)
	CopyObject(ctx context.Context, sourceKey, destinationKey string) error
	RemoveObject(ctx context.Context, objectKey string) error
	PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	ListObjects(ctx context.Context, prefix string) ([]models.StoredObject, error)
}
