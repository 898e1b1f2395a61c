package models

type Courier struct {
	ID              int64         `json:"id"`
	Matricule       string        `json:"matricule"`
	NomAdherent     string        `json:"nom_adherent"`
	NomBeneficiaire string        `json:"nom_beneficiaire"`
	Files           []CourierFile `json:"files"`
	UploadedAt      string        `json:"uploaded_at,omitempty"`
}

type CourierFile struct {
	ID           int64  `json:"id"`
	Type         string `json:"type"`
	Path         string `json:"path"`
	Filename     string `json:"filename,omitempty"`
	OriginalName string `json:"original_name,omitempty"`
}

// UploadedDocument is one entry of a dashboard listing.
type UploadedDocument struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	UploadedAt   string `json:"uploaded_at,omitempty"`
}

type LatestDocument struct {
	Exists bool `json:"exists"`
	UploadedDocument
	Message string `json:"message,omitempty"`
}
