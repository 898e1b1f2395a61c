package responses

import "medintake-service/internal/app/models"

// CourierReview opens every file of a courier as a review record. Files that
// could not be fetched are listed in Errors.
type CourierReview struct {
	Courier       *models.Courier `json:"courier"`
	Records       []ReviewRecord  `json:"records"`
	SelectedIndex int             `json:"selected_index"`
	Errors        []FileError     `json:"errors,omitempty"`
}
