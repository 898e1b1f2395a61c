package requests

import "medintake-service/internal/app/models"

// BulletinPayload is the body of POST /bulletin/ and PUT /bulletin/{id}.
type BulletinPayload struct {
	ID *int64 `json:"id,omitempty"`

	Prenom            string `json:"prenom"`
	Nom               string `json:"nom"`
	Adresse           string `json:"adresse"`
	CodePostal        string `json:"codePostal"`
	RefDossier        string `json:"refDossier"`
	IdentifiantUnique string `json:"identifiantUnique"`
	Cnss              bool   `json:"cnss"`
	Cnrps             bool   `json:"cnrps"`
	Convbi            bool   `json:"convbi"`

	PrenomMalade    string `json:"prenomMalade"`
	NomMalade       string `json:"nomMalade"`
	NomPrenomMalade string `json:"nomPrenomMalade"`
	DateNaissance   string `json:"dateNaissance"`
	NumTel          string `json:"numTel"`
	AssureSocial    bool   `json:"assureSocial"`
	Conjoint        bool   `json:"conjoint"`
	Enfant          bool   `json:"enfant"`
	Ascendant       bool   `json:"ascendant"`
	PatientType     string `json:"patientType"`

	DatePrevu            string `json:"datePrevu"`
	APCI                 bool   `json:"apci"`
	MO                   bool   `json:"mo"`
	HospitalisationCheck bool   `json:"hospitalisationCheck"`
	SuiviGrossesseCheck  bool   `json:"suiviGrossesseCheck"`

	ConsultationsDentaires []models.Row `json:"consultationsDentaires"`
	ProthesesDentaires     []models.Row `json:"prothesesDentaires"`
	ConsultationsVisites   []models.Row `json:"consultationsVisites"`
	ActesMedicaux          []models.Row `json:"actesMedicaux"`
	ActesParamed           []models.Row `json:"actesParamed"`
	Biologie               []models.Row `json:"biologie"`
	Hospitalisation        []models.Row `json:"hospitalisation"`
	Pharmacie              []models.Row `json:"pharmacie"`
}

// PrescriptionPayload is the body of the prescription and ordonnance saves.
type PrescriptionPayload struct {
	ID *int64 `json:"id,omitempty"`

	PharmacyName      string                    `json:"pharmacyName"`
	PharmacyAddress   string                    `json:"pharmacyAddress,omitempty"`
	PharmacyContact   string                    `json:"pharmacyContact,omitempty"`
	PharmacyFiscalID  string                    `json:"pharmacyFiscalId,omitempty"`
	BeneficiaryID     string                    `json:"beneficiaryId,omitempty"`
	PatientIdentity   string                    `json:"patientIdentity"`
	PrescriberCode    string                    `json:"prescriberCode,omitempty"`
	PrescriptionDate  string                    `json:"prescriptionDate,omitempty"`
	Regimen           string                    `json:"regimen,omitempty"`
	DispensationDate  string                    `json:"dispensationDate,omitempty"`
	Executor          string                    `json:"executor,omitempty"`
	PharmacistCnamRef string                    `json:"pharmacistCnamRef,omitempty"`
	Items             []models.PrescriptionItem `json:"items"`
	Total             string                    `json:"total,omitempty"`
	TotalInWords      string                    `json:"totalInWords,omitempty"`
	MtPercu           string                    `json:"mtPercu,omitempty"`
	MtRes             string                    `json:"mtRes,omitempty"`
	FooterName        string                    `json:"footerName,omitempty"`
	FooterAddress     string                    `json:"footerAddress,omitempty"`
	FooterContact     string                    `json:"footerContact,omitempty"`
	FooterFiscalID    string                    `json:"footerFiscalId,omitempty"`
}

// UploadPart is one file of a multipart request sent to the backend.
type UploadPart struct {
	FileName    string
	ContentType string
	Content     []byte
}

// CourierCreate is the multipart body of /api/courrier/upload.
type CourierCreate struct {
	Matricule       string
	NomAdherent     string
	NomBeneficiaire string
	Files           []UploadPart
	Types           []string
}
