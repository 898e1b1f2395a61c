package responses

import "medintake-service/internal/app/models"

type ParsedDocument struct {
	Kind     models.DocumentKind       `json:"kind,omitempty"`
	Document *models.ExtractedDocument `json:"document"`
}

type SavedPrescription struct {
	ID int64 `json:"id"`
}
