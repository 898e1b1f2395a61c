package contracts

import "medintake-service/internal/app/models"

type WorkbookExporter interface {
	BulletinWorkbook(record *models.BulletinRecord) ([]byte, error)
	PrescriptionWorkbook(record *models.PrescriptionRecord) ([]byte, error)
}
