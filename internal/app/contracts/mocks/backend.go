package mocks

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type MockDocumentParserClient struct {
	mock.Mock
}

func (m *MockDocumentParserClient) Parse(ctx context.Context, kind models.DocumentKind, part *requests.UploadPart) ([]byte, error) {
	args := m.Called(ctx, kind, part)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

type MockRecordBackendClient struct {
	mock.Mock
}

func (m *MockRecordBackendClient) Create(ctx context.Context, payload any) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordBackendClient) Update(ctx context.Context, id int64, payload any) (int64, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordBackendClient) FindByID(ctx context.Context, id int64) (map[string]any, error) {
	args := m.Called(ctx, id)
	fields, _ := args.Get(0).(map[string]any)
	return fields, args.Error(1)
}

func (m *MockRecordBackendClient) UploadFiles(ctx context.Context, parts []requests.UploadPart) error {
	return m.Called(ctx, parts).Error(0)
}

func (m *MockRecordBackendClient) ListUploaded(ctx context.Context) ([]models.UploadedDocument, error) {
	args := m.Called(ctx)
	documents, _ := args.Get(0).([]models.UploadedDocument)
	return documents, args.Error(1)
}

func (m *MockRecordBackendClient) LatestUploaded(ctx context.Context) (*models.LatestDocument, error) {
	args := m.Called(ctx)
	latest, _ := args.Get(0).(*models.LatestDocument)
	return latest, args.Error(1)
}

func (m *MockRecordBackendClient) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPrescriptionBackendClient struct {
	mock.Mock
}

func (m *MockPrescriptionBackendClient) Create(ctx context.Context, payload *requests.PrescriptionPayload) (int64, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPrescriptionBackendClient) FindByID(ctx context.Context, id int64) (map[string]any, error) {
	args := m.Called(ctx, id)
	fields, _ := args.Get(0).(map[string]any)
	return fields, args.Error(1)
}

type MockCourierBackendClient struct {
	mock.Mock
}

func (m *MockCourierBackendClient) List(ctx context.Context) ([]models.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]models.Courier)
	return couriers, args.Error(1)
}

func (m *MockCourierBackendClient) FindByID(ctx context.Context, id int64) (*models.Courier, error) {
	args := m.Called(ctx, id)
	courier, _ := args.Get(0).(*models.Courier)
	return courier, args.Error(1)
}

func (m *MockCourierBackendClient) Create(ctx context.Context, request *requests.CourierCreate) (*models.Courier, error) {
	args := m.Called(ctx, request)
	courier, _ := args.Get(0).(*models.Courier)
	return courier, args.Error(1)
}

func (m *MockCourierBackendClient) AppendFiles(ctx context.Context, courierID int64, parts []requests.UploadPart, types []string) (*models.Courier, error) {
	args := m.Called(ctx, courierID, parts, types)
	courier, _ := args.Get(0).(*models.Courier)
	return courier, args.Error(1)
}

type MockFileBackendClient struct {
	mock.Mock
}

func (m *MockFileBackendClient) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockUserBackendClient struct {
	mock.Mock
}

func (m *MockUserBackendClient) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockUserBackendClient) Create(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserBackendClient) Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error) {
	args := m.Called(ctx, id, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserBackendClient) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuthBackendClient struct {
	mock.Mock
}

func (m *MockAuthBackendClient) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
