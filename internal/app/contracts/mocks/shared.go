package mocks

import (
	"context"
	"io"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishDocumentSaved(ctx context.Context, event *requests.DocumentEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockWorkbookExporter struct {
	mock.Mock
}

func (m *MockWorkbookExporter) BulletinWorkbook(record *models.BulletinRecord) ([]byte, error) {
	args := m.Called(record)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockWorkbookExporter) PrescriptionWorkbook(record *models.PrescriptionRecord) ([]byte, error) {
	args := m.Called(record)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type MockResourceLimiter struct {
	mock.Mock
}

func (m *MockResourceLimiter) ApplyResourceLimiter(ctx context.Context, request *requests.ApplyResourceLimiter) (*responses.ResourceLimit, error) {
	args := m.Called(ctx, request)
	limit, _ := args.Get(0).(*responses.ResourceLimit)
	return limit, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, objectKey string, content io.Reader, size int64, contentType string) error {
	return m.Called(ctx, objectKey, content, size, contentType).Error(0)
}

func (m *MockStorage) GetObject(ctx context.Context, objectKey string) ([]byte, error) {
	args := m.Called(ctx, objectKey)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockStorage) CopyObject(ctx context.Context, sourceKey, destinationKey string) error {
	return m.Called(ctx, sourceKey, destinationKey).Error(0)
}

func (m *MockStorage) RemoveObject(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}

func (m *MockStorage) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) ListObjects(ctx context.Context, prefix string) ([]models.StoredObject, error) {
	args := m.Called(ctx, prefix)
	objects, _ := args.Get(0).([]models.StoredObject)
	return objects, args.Error(1)
}
