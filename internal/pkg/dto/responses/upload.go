package responses

import "medintake-service/internal/app/models"

// FileError is a non-fatal problem tied to one file.
type FileError struct {
	FileID   string `json:"file_id,omitempty"`
	FileName string `json:"file_name"`
	Message  string `json:"message"`
}

type AddFiles struct {
	Session  *models.UploadSession `json:"session"`
	Rejected []FileError           `json:"rejected,omitempty"`
}

// ReviewRecord is one extracted document ready for review. Exactly one of
// Bulletin and Prescription is set, matching Kind.
type ReviewRecord struct {
	Kind         models.DocumentKind        `json:"kind"`
	FileName     string                     `json:"file_name,omitempty"`
	EditorID     string                     `json:"editor_id,omitempty"`
	Bulletin     *models.BulletinRecord     `json:"bulletin,omitempty"`
	Prescription *models.PrescriptionRecord `json:"prescription,omitempty"`
}

// RecordID is the backend id of the reviewed record, 0 while unsaved.
func (r ReviewRecord) RecordID() int64 {
	var id int64
	switch {
	case r.Bulletin != nil:
		id, _ = r.Bulletin.Persistence.RecordID()
	case r.Prescription != nil:
		id, _ = r.Prescription.Persistence.RecordID()
	}
	return id
}

type Navigation struct {
	Target        string `json:"target"`
	SelectedIndex int    `json:"selected_index"`
}

// UploadOutcome is the result of a submit. Embedded sessions get Emitted
// instead of Navigation.
type UploadOutcome struct {
	Session       *models.UploadSession `json:"session"`
	Records       []ReviewRecord        `json:"records"`
	SelectedIndex int                   `json:"selected_index"`
	Navigation    *Navigation           `json:"navigation,omitempty"`
	Emitted       []ReviewRecord        `json:"emitted,omitempty"`
	Errors        []FileError           `json:"errors,omitempty"`
}

// SelectReviewIndex prefers the first prescription, then the first bulletin.
// It returns -1 when records is empty.
func SelectReviewIndex(records []ReviewRecord) int {
	for i, record := range records {
		if record.Kind == models.DocumentKindPrescription {
			return i
		}
	}
	for i, record := range records {
		if record.Kind == models.DocumentKindBulletin {
			return i
		}
	}
	return -1
}
