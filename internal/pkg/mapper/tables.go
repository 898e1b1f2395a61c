package mapper

import (
	"medintake-service/internal/app/models"
)

// TableSpec names an OCR table and the column keys each of its rows carries.
// TrimHeader drops the first row when the backend leaves its header line in.
type TableSpec struct {
	Name       string
	Keys       []string
	TrimHeader bool
}

const (
	SectionConsultationsDentaires = "consultationsDentaires"
	SectionProthesesDentaires     = "prothesesDentaires"
	SectionConsultationsVisites   = "consultationsVisites"
	SectionActesMedicaux          = "actesMedicaux"
	SectionActesParamed           = "actesParamed"
	SectionBiologie               = "biologie"
	SectionHospitalisation        = "hospitalisation"
	SectionPharmacie              = "pharmacie"

	TablePrescriptionItems = "items"
)

// BulletinTables lists the eight care bulletin sections in form order.
var BulletinTables = []TableSpec{
	{Name: SectionConsultationsDentaires, Keys: []string{"date", "dent", "codeActe", "cotation", "honoraires", "codePs", "signature"}},
	{Name: SectionProthesesDentaires, Keys: []string{"date", "dents", "codeActe", "cotation", "honoraires", "codePs", "signature"}},
	{Name: SectionConsultationsVisites, Keys: []string{"date", "designation", "honoraires", "codePs", "signature"}},
	{Name: SectionActesMedicaux, Keys: []string{"date", "designation", "honoraires", "codePs", "signature"}},
	{Name: SectionActesParamed, Keys: []string{"date", "designation", "honoraires", "codePs", "signature"}},
	{Name: SectionBiologie, Keys: []string{"date", "montant", "codePs", "signature"}},
	{Name: SectionHospitalisation, Keys: []string{"date", "codeHosp", "forfait", "codeClinique", "signature"}},
	{Name: SectionPharmacie, Keys: []string{"date", "montant", "codePs", "signature"}},
}

var PrescriptionItemsTable = TableSpec{
	Name: TablePrescriptionItems,
	Keys: []string{"codePCT", "produit", "forme", "qte", "puv", "montantRes", "montantPercu", "nio", "prLot"},
}

// MapRows returns one row per raw row holding exactly keys. Present values
// are stringified, absent ones are empty. Rows that are not objects map to an
// all-empty row so positions stay aligned with the source table.
func MapRows(rawRows []any, keys []string) []models.Row {
	rows := make([]models.Row, 0, len(rawRows))
	for _, rawRow := range rawRows {
		object, _ := rawRow.(map[string]any)
		row := make(models.Row, len(keys))
		for _, key := range keys {
			row[key] = models.Stringify(object[key])
		}
		rows = append(rows, row)
	}
	return rows
}

func mapTable(rawRows []any, spec TableSpec) []models.Row {
	if spec.TrimHeader && len(rawRows) > 0 {
		rawRows = rawRows[1:]
	}
	return MapRows(rawRows, spec.Keys)
}
