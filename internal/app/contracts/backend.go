package contracts

import (
	"context"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
)

// DocumentParserClient sends one file to the OCR backend. An empty kind
// lets the backend detect the document type.
type DocumentParserClient interface {
	Parse(ctx context.Context, kind models.DocumentKind, part *requests.UploadPart) ([]byte, error)
}

// RecordBackendClient persists one family of records (bulletins or
// ordonnances) and lists the raw files uploaded for it.
type RecordBackendClient interface {
	Create(ctx context.Context, payload any) (int64, error)
	Update(ctx context.Context, id int64, payload any) (int64, error)
	FindByID(ctx context.Context, id int64) (map[string]any, error)
	UploadFiles(ctx context.Context, parts []requests.UploadPart) error
	ListUploaded(ctx context.Context) ([]models.UploadedDocument, error)
	LatestUploaded(ctx context.Context) (*models.LatestDocument, error)
	Delete(ctx context.Context, id int64) error
}

type PrescriptionBackendClient interface {
	Create(ctx context.Context, payload *requests.PrescriptionPayload) (int64, error)
	FindByID(ctx context.Context, id int64) (map[string]any, error)
}

type CourierBackendClient interface {
	List(ctx context.Context) ([]models.Courier, error)
	FindByID(ctx context.Context, id int64) (*models.Courier, error)
	Create(ctx context.Context, request *requests.CourierCreate) (*models.Courier, error)
	AppendFiles(ctx context.Context, courierID int64, parts []requests.UploadPart, types []string) (*models.Courier, error)
}

type FileBackendClient interface {
	Delete(ctx context.Context, id int64) error
}

// UserBackendClient manages backend accounts. The backend checks the
// forwarded token itself.
type UserBackendClient interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type AuthBackendClient interface {
	Login(ctx context.Context, username, password string) (string, error)
}
