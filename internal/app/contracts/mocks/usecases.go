package mocks

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockUploadUsecase struct {
	mock.Mock
}

func (m *MockUploadUsecase) CreateSession(ctx context.Context, request *requests.CreateUploadSession) (*models.UploadSession, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.UploadSession)
	return result, args.Error(1)
}

func (m *MockUploadUsecase) GetSession(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*models.UploadSession)
	return result, args.Error(1)
}

func (m *MockUploadUsecase) CloseSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockUploadUsecase) ResetSession(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*models.UploadSession)
	return result, args.Error(1)
}

func (m *MockUploadUsecase) AddFiles(ctx context.Context, sessionID string, files []requests.SelectedFile) (*responses.AddFiles, error) {
	args := m.Called(ctx, sessionID, files)
	result, _ := args.Get(0).(*responses.AddFiles)
	return result, args.Error(1)
}

func (m *MockUploadUsecase) RemoveFile(ctx context.Context, sessionID, fileID string) (*models.UploadSession, error) {
	args := m.Called(ctx, sessionID, fileID)
	result, _ := args.Get(0).(*models.UploadSession)
	return result, args.Error(1)
}

func (m *MockUploadUsecase) Submit(ctx context.Context, sessionID string) (*responses.UploadOutcome, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*responses.UploadOutcome)
	return result, args.Error(1)
}

type MockBulletinEditorUsecase struct {
	mock.Mock
}

func (m *MockBulletinEditorUsecase) Open(ctx context.Context, request *requests.OpenEditor) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) OpenRecord(ctx context.Context, record *models.BulletinRecord) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, record)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) Get(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) EnterEditMode(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) UpdateFields(ctx context.Context, editorID string, request *requests.UpdateBulletinFields) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) SetPatientRelation(ctx context.Context, editorID string, request *requests.SetPatientRelation) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) SetInsuranceScheme(ctx context.Context, editorID string, request *requests.SetInsuranceScheme) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) SetIdentifierBox(ctx context.Context, editorID string, request *requests.SetIdentifierBox) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) ReplaceSection(ctx context.Context, editorID string, request *requests.ReplaceSection) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) Save(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) Submit(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.BulletinEditor)
	return result, args.Error(1)
}

func (m *MockBulletinEditorUsecase) Export(ctx context.Context, editorID string) (*responses.Workbook, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.Workbook)
	return result, args.Error(1)
}

type MockPrescriptionEditorUsecase struct {
	mock.Mock
}

func (m *MockPrescriptionEditorUsecase) Open(ctx context.Context, request *requests.OpenEditor) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) OpenRecord(ctx context.Context, record *models.PrescriptionRecord) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, record)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) Get(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) EnterEditMode(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) UpdateFields(ctx context.Context, editorID string, request *requests.UpdatePrescriptionFields) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) AddItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) UpdateItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID, request)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) RemoveItem(ctx context.Context, editorID string, index int) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID, index)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) Save(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.PrescriptionEditor)
	return result, args.Error(1)
}

func (m *MockPrescriptionEditorUsecase) Export(ctx context.Context, editorID string) (*responses.Workbook, error) {
	args := m.Called(ctx, editorID)
	result, _ := args.Get(0).(*responses.Workbook)
	return result, args.Error(1)
}

type MockCourierUsecase struct {
	mock.Mock
}

func (m *MockCourierUsecase) List(ctx context.Context) ([]models.Courier, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]models.Courier)
	return result, args.Error(1)
}

func (m *MockCourierUsecase) Review(ctx context.Context, courierID int64) (*responses.CourierReview, error) {
	args := m.Called(ctx, courierID)
	result, _ := args.Get(0).(*responses.CourierReview)
	return result, args.Error(1)
}

func (m *MockCourierUsecase) Create(ctx context.Context, request *requests.CreateCourier) (*models.Courier, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Courier)
	return result, args.Error(1)
}

func (m *MockCourierUsecase) AppendFiles(ctx context.Context, request *requests.AppendCourierFiles) (*models.Courier, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Courier)
	return result, args.Error(1)
}

type MockDocumentUsecase struct {
	mock.Mock
}

func (m *MockDocumentUsecase) Parse(ctx context.Context, request *requests.ParseDocument) (*responses.ParsedDocument, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.ParsedDocument)
	return result, args.Error(1)
}

func (m *MockDocumentUsecase) ListUploaded(ctx context.Context, kind models.DocumentKind) ([]models.UploadedDocument, error) {
	args := m.Called(ctx, kind)
	result, _ := args.Get(0).([]models.UploadedDocument)
	return result, args.Error(1)
}

func (m *MockDocumentUsecase) LatestUploaded(ctx context.Context, kind models.DocumentKind) (*models.LatestDocument, error) {
	args := m.Called(ctx, kind)
	result, _ := args.Get(0).(*models.LatestDocument)
	return result, args.Error(1)
}

func (m *MockDocumentUsecase) DeleteRecord(ctx context.Context, kind models.DocumentKind, id int64) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockDocumentUsecase) DeleteFile(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentUsecase) CreatePrescription(ctx context.Context, payload map[string]any) (*responses.SavedPrescription, error) {
	args := m.Called(ctx, payload)
	result, _ := args.Get(0).(*responses.SavedPrescription)
	return result, args.Error(1)
}

func (m *MockDocumentUsecase) FindPrescription(ctx context.Context, id int64) (*models.PrescriptionRecord, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*models.PrescriptionRecord)
	return result, args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.LoginUser)
	return result, args.Error(1)
}

func (m *MockAuthUsecase) Me(ctx context.Context) (*responses.CurrentUser, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.CurrentUser)
	return result, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]models.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) Create(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error) {
	args := m.Called(ctx, id, request)
	result, _ := args.Get(0).(*models.User)
	return result, args.Error(1)
}

func (m *MockUserUsecase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
