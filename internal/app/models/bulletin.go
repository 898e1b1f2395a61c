package models

type PatientRelation string

const (
	PatientRelationSelf      PatientRelation = "self"
	PatientRelationSpouse    PatientRelation = "spouse"
	PatientRelationChild     PatientRelation = "child"
	PatientRelationAscendant PatientRelation = "ascendant"
)

func (r PatientRelation) Valid() bool {
	switch r {
	case PatientRelationSelf, PatientRelationSpouse, PatientRelationChild, PatientRelationAscendant:
		return true
	}
	return false
}

// BackendLabel is the patientType value the backend stores.
func (r PatientRelation) BackendLabel() string {
	switch r {
	case PatientRelationSpouse:
		return "conjoint"
	case PatientRelationChild:
		return "enfant"
	case PatientRelationAscendant:
		return "ascendant"
	default:
		return "self"
	}
}

type InsuranceScheme string

const (
	InsuranceSchemeCNSS         InsuranceScheme = "cnss"
	InsuranceSchemeCNRPS        InsuranceScheme = "cnrps"
	InsuranceSchemeConventionBI InsuranceScheme = "convbi"
	InsuranceSchemeNone         InsuranceScheme = "none"
)

func (s InsuranceScheme) Valid() bool {
	switch s {
	case InsuranceSchemeCNSS, InsuranceSchemeCNRPS, InsuranceSchemeConventionBI, InsuranceSchemeNone:
		return true
	}
	return false
}

// Row is one table line keyed by the table's column keys.
type Row map[string]string

type BulletinRecord struct {
	Persistence Persistence `json:"persistence"`
	FileName    string      `json:"fileName,omitempty"`

	Prenom            string          `json:"prenom"`
	Nom               string          `json:"nom"`
	Adresse           string          `json:"adresse"`
	CodePostal        string          `json:"codePostal"`
	RefDossier        string          `json:"refDossier"`
	IdentifiantUnique string          `json:"identifiantUnique"`
	InsuranceScheme   InsuranceScheme `json:"insuranceScheme"`

	PrenomMalade    string          `json:"prenomMalade"`
	NomMalade       string          `json:"nomMalade"`
	NomPrenomMalade string          `json:"nomPrenomMalade"`
	DateNaissance   string          `json:"dateNaissance"`
	NumTel          string          `json:"numTel"`
	PatientRelation PatientRelation `json:"patientRelation"`

	DatePrevu            string `json:"datePrevu"`
	APCI                 bool   `json:"apci"`
	MO                   bool   `json:"mo"`
	HospitalisationCheck bool   `json:"hospitalisationCheck"`
	SuiviGrossesseCheck  bool   `json:"suiviGrossesseCheck"`

	Sections map[string][]Row `json:"sections"`
}
