package responses

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/mapper"
	"time"
)

type BulletinEditor struct {
	ID               string                             `json:"id"`
	EditMode         bool                               `json:"edit_mode"`
	ShowStatusAlert  bool                               `json:"show_status_alert"`
	StatusAlertUntil *time.Time                         `json:"status_alert_until,omitempty"`
	IdentifierBoxes  [constvars.IdentifierLength]string `json:"identifier_boxes"`
	Record           *models.BulletinRecord             `json:"record"`
}

type PrescriptionEditor struct {
	ID               string                     `json:"id"`
	EditMode         bool                       `json:"edit_mode"`
	ShowStatusAlert  bool                       `json:"show_status_alert"`
	StatusAlertUntil *time.Time                 `json:"status_alert_until,omitempty"`
	Record           *models.PrescriptionRecord `json:"record"`
}

func NewBulletinEditor(editor *models.BulletinEditor, now time.Time) *BulletinEditor {
	return &BulletinEditor{
		ID:               editor.ID,
		EditMode:         editor.EditMode,
		ShowStatusAlert:  models.ShowStatusAlert(editor.StatusAlertUntil, now),
		StatusAlertUntil: editor.StatusAlertUntil,
		IdentifierBoxes:  mapper.IdentifierBoxes(editor.Record.IdentifiantUnique),
		Record:           editor.Record,
	}
}

func NewPrescriptionEditor(editor *models.PrescriptionEditor, now time.Time) *PrescriptionEditor {
	return &PrescriptionEditor{
		ID:               editor.ID,
		EditMode:         editor.EditMode,
		ShowStatusAlert:  models.ShowStatusAlert(editor.StatusAlertUntil, now),
		StatusAlertUntil: editor.StatusAlertUntil,
		Record:           editor.Record,
	}
}

// Workbook is an exported editor rendered as a spreadsheet.
type Workbook struct {
	FileName string
	Content  []byte
}
