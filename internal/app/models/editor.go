package models

import "time"

type BulletinEditor struct {
	ID               string          `json:"id"`
	Record           *BulletinRecord `json:"record"`
	EditMode         bool            `json:"edit_mode"`
	StatusAlertUntil *time.Time      `json:"status_alert_until,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PrescriptionEditor struct {
	ID               string              `json:"id"`
	Record           *PrescriptionRecord `json:"record"`
	EditMode         bool                `json:"edit_mode"`
	StatusAlertUntil *time.Time          `json:"status_alert_until,omitempty"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ShowStatusAlert reports whether the save confirmation is still visible at now.
func ShowStatusAlert(until *time.Time, now time.Time) bool {
	return until != nil && now.Before(*until)
}
