package models

type PrescriptionItem struct {
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

type PrescriptionRecord struct {
	Persistence Persistence `json:"persistence"`
	FileName    string      `json:"fileName,omitempty"`

	PharmacyName     string `json:"pharmacyName"`
	PharmacyAddress  string `json:"pharmacyAddress"`
	PharmacyContact  string `json:"pharmacyContact"`
	PharmacyFiscalID string `json:"pharmacyFiscalId"`

	BeneficiaryID     string `json:"beneficiaryId"`
	PatientIdentity   string `json:"patientIdentity"`
	PrescriberCode    string `json:"prescriberCode"`
	PrescriptionDate  string `json:"prescriptionDate"`
	Regimen           string `json:"regimen"`
	DispensationDate  string `json:"dispensationDate"`
	Executor          string `json:"executor"`
	PharmacistCnamRef string `json:"pharmacistCnamRef"`

	Items []PrescriptionItem `json:"items"`

	Total        string `json:"total"`
	TotalInWords string `json:"totalInWords"`
	MtPercu      string `json:"mtPercu"`
	MtRes        string `json:"mtRes"`

	FooterName        string `json:"footerName"`
	FooterAddress     string `json:"footerAddress"`
	FooterContact     string `json:"footerContact"`
	FooterFiscalID    string `json:"footerFiscalId"`
	SignatureCropFile string `json:"signatureCropFile,omitempty"`
}
