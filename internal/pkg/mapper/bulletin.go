package mapper

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/normalizer"
	"strings"
)

// PopulateBulletin builds an editable bulletin from doc. A relation already
// chosen on previous survives repopulation.
func (m *Mapper) PopulateBulletin(doc *models.ExtractedDocument, previous *models.BulletinRecord) *models.BulletinRecord {
	record := &models.BulletinRecord{
		Persistence: models.Unsaved(),
		FileName:    doc.FileName,

		Prenom:            firstString(doc, "prenom", "prenom_assure"),
		Nom:               firstString(doc, "nom", "nom_assure"),
		Adresse:           firstString(doc, "adresse", "adresse_assure"),
		CodePostal:        firstString(doc, "codePostal", "code_postal"),
		RefDossier:        firstString(doc, "refDossier", "header.dossierId"),
		IdentifiantUnique: CanonicalIdentifier(firstString(doc, "identifiantUnique", "id_unique")),
		InsuranceScheme:   insuranceSchemeOf(doc),

		PrenomMalade:    firstString(doc, "prenomMalade", "prenom_malade"),
		NomMalade:       firstString(doc, "nomMalade", "nom_malade"),
		NomPrenomMalade: firstString(doc, "nomPrenomMalade", "nom_prenom_malade"),
		DateNaissance:   firstString(doc, "dateNaissance", "date_naissance_malade"),
		NumTel:          firstString(doc, "numTel", "telephone"),
		PatientRelation: patientRelationOf(doc),

		DatePrevu:            firstString(doc, "datePrevu", "date_prevu"),
		APCI:                 doc.Bool("apci"),
		MO:                   doc.Bool("mo"),
		HospitalisationCheck: doc.Bool("hospitalisationCheck"),
		SuiviGrossesseCheck:  doc.Bool("suiviGrossesseCheck"),

		Sections: make(map[string][]models.Row, len(m.bulletinTables)),
	}

	if record.FileName == "" {
		record.FileName = doc.String("fileName")
	}
	if previous != nil && previous.PatientRelation.Valid() {
		record.PatientRelation = previous.PatientRelation
	}
	for _, spec := range m.bulletinTables {
		record.Sections[spec.Name] = mapTable(doc.List(spec.Name), spec)
	}
	return record
}

// FlattenBulletin is the inverse of PopulateBulletin: enums expand back to
// the backend's boolean flags and the identifier is rebuilt from its boxes.
// Empty boxes inside the identifier stay as placeholders.
func FlattenBulletin(record *models.BulletinRecord) *requests.BulletinPayload {
	payload := &requests.BulletinPayload{
		Prenom:            record.Prenom,
		Nom:               record.Nom,
		Adresse:           record.Adresse,
		CodePostal:        record.CodePostal,
		RefDossier:        record.RefDossier,
		IdentifiantUnique: joinIdentifierBoxes(IdentifierBoxes(record.IdentifiantUnique)),
		Cnss:              record.InsuranceScheme == models.InsuranceSchemeCNSS,
		Cnrps:             record.InsuranceScheme == models.InsuranceSchemeCNRPS,
		Convbi:            record.InsuranceScheme == models.InsuranceSchemeConventionBI,

		PrenomMalade:    record.PrenomMalade,
		NomMalade:       record.NomMalade,
		NomPrenomMalade: record.NomPrenomMalade,
		DateNaissance:   record.DateNaissance,
		NumTel:          record.NumTel,
		AssureSocial:    record.PatientRelation == models.PatientRelationSelf,
		Conjoint:        record.PatientRelation == models.PatientRelationSpouse,
		Enfant:          record.PatientRelation == models.PatientRelationChild,
		Ascendant:       record.PatientRelation == models.PatientRelationAscendant,
		PatientType:     record.PatientRelation.BackendLabel(),

		DatePrevu:            record.DatePrevu,
		APCI:                 record.APCI,
		MO:                   record.MO,
		HospitalisationCheck: record.HospitalisationCheck,
		SuiviGrossesseCheck:  record.SuiviGrossesseCheck,

		ConsultationsDentaires: sectionRows(record, SectionConsultationsDentaires),
		ProthesesDentaires:     sectionRows(record, SectionProthesesDentaires),
		ConsultationsVisites:   sectionRows(record, SectionConsultationsVisites),
		ActesMedicaux:          sectionRows(record, SectionActesMedicaux),
		ActesParamed:           sectionRows(record, SectionActesParamed),
		Biologie:               sectionRows(record, SectionBiologie),
		Hospitalisation:        sectionRows(record, SectionHospitalisation),
		Pharmacie:              sectionRows(record, SectionPharmacie),
	}

	if id, saved := record.Persistence.RecordID(); saved {
		payload.ID = &id
	}
	return payload
}

// ReplaceSection swaps the rows of one bulletin table. Rows are reshaped to
// the table's keys; user supplied rows never lose a header line.
func (m *Mapper) ReplaceSection(record *models.BulletinRecord, section string, rows []map[string]any) error {
	spec, ok := m.bulletinTable(section)
	if !ok {
		return exceptions.ErrUnknownSection(nil, section)
	}

	rawRows := make([]any, len(rows))
	for i, row := range rows {
		rawRows[i] = row
	}
	if record.Sections == nil {
		record.Sections = make(map[string][]models.Row, len(m.bulletinTables))
	}
	record.Sections[spec.Name] = MapRows(rawRows, spec.Keys)
	return nil
}

func sectionRows(record *models.BulletinRecord, section string) []models.Row {
	rows := record.Sections[section]
	if rows == nil {
		return []models.Row{}
	}
	return rows
}

// CanonicalIdentifier keeps the alphanumerics of raw, at most 12 of them.
func CanonicalIdentifier(raw string) string {
	canonical := []rune(normalizer.CanonicalIdentifier(raw))
	if len(canonical) > constvars.IdentifierLength {
		canonical = canonical[:constvars.IdentifierLength]
	}
	return string(canonical)
}

func insuranceSchemeOf(doc *models.ExtractedDocument) models.InsuranceScheme {
	if scheme := models.InsuranceScheme(strings.ToLower(doc.String("insuranceScheme"))); scheme.Valid() {
		return scheme
	}
	switch {
	case doc.Bool("cnss"):
		return models.InsuranceSchemeCNSS
	case doc.Bool("cnrps"):
		return models.InsuranceSchemeCNRPS
	case doc.Bool("convbi"):
		return models.InsuranceSchemeConventionBI
	default:
		return models.InsuranceSchemeNone
	}
}

func patientRelationOf(doc *models.ExtractedDocument) models.PatientRelation {
	switch strings.ToLower(doc.String("patientType")) {
	case "self", "assuresocial":
		return models.PatientRelationSelf
	case "conjoint", "spouse":
		return models.PatientRelationSpouse
	case "enfant", "child":
		return models.PatientRelationChild
	case "ascendant":
		return models.PatientRelationAscendant
	}

	switch {
	case doc.Bool("conjoint"):
		return models.PatientRelationSpouse
	case doc.Bool("enfant"):
		return models.PatientRelationChild
	case doc.Bool("ascendant"):
		return models.PatientRelationAscendant
	default:
		return models.PatientRelationSelf
	}
}

// firstString walks keys in order and returns the first non-empty value.
// A key of the form "header.x" reads from the header object.
func firstString(doc *models.ExtractedDocument, keys ...string) string {
	for _, key := range keys {
		var value string
		if headerKey, ok := strings.CutPrefix(key, "header."); ok {
			value = doc.HeaderString(headerKey)
		} else {
			value = doc.String(key)
		}
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
