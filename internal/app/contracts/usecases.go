package contracts

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
)

type UploadUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateUploadSession) (*models.UploadSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.UploadSession, error)
	CloseSession(ctx context.Context, sessionID string) error
	ResetSession(ctx context.Context, sessionID string) (*models.UploadSession, error)
	AddFiles(ctx context.Context, sessionID string, files []requests.SelectedFile) (*responses.AddFiles, error)
	RemoveFile(ctx context.Context, sessionID, fileID string) (*models.UploadSession, error)
	Submit(ctx context.Context, sessionID string) (*responses.UploadOutcome, error)
}

type BulletinEditorUsecase interface {
	Open(ctx context.Context, request *requests.OpenEditor) (*responses.BulletinEditor, error)
	OpenRecord(ctx context.Context, record *models.BulletinRecord) (*responses.BulletinEditor, error)
	Get(ctx context.Context, editorID string) (*responses.BulletinEditor, error)
	EnterEditMode(ctx context.Context, editorID string) (*responses.BulletinEditor, error)
	UpdateFields(ctx context.Context, editorID string, request *requests.UpdateBulletinFields) (*responses.BulletinEditor, error)
	SetPatientRelation(ctx context.Context, editorID string, request *requests.SetPatientRelation) (*responses.BulletinEditor, error)
	SetInsuranceScheme(ctx context.Context, editorID string, request *requests.SetInsuranceScheme) (*responses.BulletinEditor, error)
	SetIdentifierBox(ctx context.Context, editorID string, request *requests.SetIdentifierBox) (*responses.BulletinEditor, error)
	ReplaceSection(ctx context.Context, editorID string, request *requests.ReplaceSection) (*responses.BulletinEditor, error)
	Save(ctx context.Context, editorID string) (*responses.BulletinEditor, error)
	Submit(ctx context.Context, editorID string) (*responses.BulletinEditor, error)
	Export(ctx context.Context, editorID string) (*responses.Workbook, error)
}

type PrescriptionEditorUsecase interface {
	Open(ctx context.Context, request *requests.OpenEditor) (*responses.PrescriptionEditor, error)
	OpenRecord(ctx context.Context, record *models.PrescriptionRecord) (*responses.PrescriptionEditor, error)
	Get(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error)
	EnterEditMode(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error)
	UpdateFields(ctx context.Context, editorID string, request *requests.UpdatePrescriptionFields) (*responses.PrescriptionEditor, error)
	AddItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error)
	UpdateItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error)
	RemoveItem(ctx context.Context, editorID string, index int) (*responses.PrescriptionEditor, error)
	Save(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error)
	Export(ctx context.Context, editorID string) (*responses.Workbook, error)
}

type CourierUsecase interface {
	List(ctx context.Context) ([]models.Courier, error)
	Review(ctx context.Context, courierID int64) (*responses.CourierReview, error)
	Create(ctx context.Context, request *requests.CreateCourier) (*models.Courier, error)
	AppendFiles(ctx context.Context, request *requests.AppendCourierFiles) (*models.Courier, error)
}

type DocumentUsecase interface {
	Parse(ctx context.Context, request *requests.ParseDocument) (*responses.ParsedDocument, error)
	ListUploaded(ctx context.Context, kind models.DocumentKind) ([]models.UploadedDocument, error)
	LatestUploaded(ctx context.Context, kind models.DocumentKind) (*models.LatestDocument, error)
	DeleteRecord(ctx context.Context, kind models.DocumentKind, id int64) error
	DeleteFile(ctx context.Context, id int64) error
	CreatePrescription(ctx context.Context, payload map[string]any) (*responses.SavedPrescription, error)
	FindPrescription(ctx context.Context, id int64) (*models.PrescriptionRecord, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error)
	Me(ctx context.Context) (*responses.CurrentUser, error)
}

type UserUsecase interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
