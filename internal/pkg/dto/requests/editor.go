package requests

// OpenEditor starts an editor either from an OCR payload or from a record the
// backend already stores. With EditorID set the existing editor is
// repopulated in place.
type OpenEditor struct {
	Payload  map[string]any `json:"payload" validate:"required_without=RecordID"`
	RecordID int64          `json:"record_id" validate:"gte=0"`
	FileName string         `json:"file_name"`
	EditorID string         `json:"editor_id" validate:"omitempty,uuid"`
}

// UpdateBulletinFields carries the scalar fields to change; nil leaves a
// field untouched.
type UpdateBulletinFields struct {
	Prenom               *string `json:"prenom"`
	Nom                  *string `json:"nom"`
	Adresse              *string `json:"adresse"`
	CodePostal           *string `json:"codePostal"`
	RefDossier           *string `json:"refDossier"`
	IdentifiantUnique    *string `json:"identifiantUnique"`
	PrenomMalade         *string `json:"prenomMalade"`
	NomMalade            *string `json:"nomMalade"`
	NomPrenomMalade      *string `json:"nomPrenomMalade"`
	DateNaissance        *string `json:"dateNaissance"`
	NumTel               *string `json:"numTel"`
	DatePrevu            *string `json:"datePrevu"`
	APCI                 *bool   `json:"apci"`
	MO                   *bool   `json:"mo"`
	HospitalisationCheck *bool   `json:"hospitalisationCheck"`
	SuiviGrossesseCheck  *bool   `json:"suiviGrossesseCheck"`
}

type SetPatientRelation struct {
	PatientRelation string `json:"patient_relation" validate:"required,patient_relation"`
}

type SetInsuranceScheme struct {
	InsuranceScheme string `json:"insurance_scheme" validate:"required,insurance_scheme"`
}

type SetIdentifierBox struct {
	Index int    `json:"-" validate:"gte=0,lte=11"`
	Value string `json:"value" validate:"max=1"`
}

type ReplaceSection struct {
	Section string           `json:"-" validate:"required"`
	Rows    []map[string]any `json:"rows"`
}

type UpdatePrescriptionFields struct {
	PharmacyName      *string `json:"pharmacyName"`
	PharmacyAddress   *string `json:"pharmacyAddress"`
	PharmacyContact   *string `json:"pharmacyContact"`
	PharmacyFiscalID  *string `json:"pharmacyFiscalId"`
	BeneficiaryID     *string `json:"beneficiaryId"`
	PatientIdentity   *string `json:"patientIdentity"`
	PrescriberCode    *string `json:"prescriberCode"`
	PrescriptionDate  *string `json:"prescriptionDate"`
	Regimen           *string `json:"regimen"`
	DispensationDate  *string `json:"dispensationDate"`
	Executor          *string `json:"executor"`
	PharmacistCnamRef *string `json:"pharmacistCnamRef"`
	Total             *string `json:"total"`
	FooterName        *string `json:"footerName"`
	FooterAddress     *string `json:"footerAddress"`
	FooterContact     *string `json:"footerContact"`
	FooterFiscalID    *string `json:"footerFiscalId"`
}

type PrescriptionItem struct {
	Index        int    `json:"-" validate:"gte=0"`
	CodePCT      string `json:"codePCT"`
	Produit      string `json:"produit"`
	Forme        string `json:"forme"`
	Qte          string `json:"qte"`
	Puv          string `json:"puv"`
	MontantRes   string `json:"montantRes"`
	MontantPercu string `json:"montantPercu"`
	Nio          string `json:"nio"`
	PrLot        string `json:"prLot"`
}
