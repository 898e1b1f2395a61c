package exporter

import (
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	sheetBulletin     = "Bulletin"
	sheetPrescription = "Ordonnance"
	sheetItems        = "Articles"
)

type field struct {
	label string
	value string
}

type excelExporter struct {
	Log *zap.Logger
}

func NewExcelExporter(logger *zap.Logger) contracts.WorkbookExporter {
	return &excelExporter{Log: logger}
}

// BulletinWorkbook writes the scalar fields on the first sheet and one sheet
// per non-empty care section.
func (e *excelExporter) BulletinWorkbook(record *models.BulletinRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetBulletin); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}

	fields := []field{
		{"Prénom", record.Prenom},
		{"Nom", record.Nom},
		{"Adresse", record.Adresse},
		{"Code postal", record.CodePostal},
		{"Référence dossier", record.RefDossier},
		{"Identifiant unique", record.IdentifiantUnique},
		{"Régime", string(record.InsuranceScheme)},
		{"Prénom malade", record.PrenomMalade},
		{"Nom malade", record.NomMalade},
		{"Nom et prénom malade", record.NomPrenomMalade},
		{"Date de naissance", record.DateNaissance},
		{"Téléphone", record.NumTel},
		{"Qualité du malade", record.PatientRelation.BackendLabel()},
		{"Date prévue", record.DatePrevu},
		{"APCI", yesNo(record.APCI)},
		{"MO", yesNo(record.MO)},
		{"Hospitalisation", yesNo(record.HospitalisationCheck)},
		{"Suivi grossesse", yesNo(record.SuiviGrossesseCheck)},
	}
	if err := writeFields(f, sheetBulletin, fields); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}

	for _, spec := range mapper.BulletinTables {
		rows := record.Sections[spec.Name]
		if len(rows) == 0 {
			continue
		}
		if _, err := f.NewSheet(spec.Name); err != nil {
			return nil, exceptions.ErrExportWorkbook(err)
		}
		if err := writeTable(f, spec.Name, spec.Keys, rows); err != nil {
			return nil, exceptions.ErrExportWorkbook(err)
		}
	}

	return e.finish(f)
}

func (e *excelExporter) PrescriptionWorkbook(record *models.PrescriptionRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetPrescription); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}

	fields := []field{
		{"Pharmacie", record.PharmacyName},
		{"Adresse pharmacie", record.PharmacyAddress},
		{"Contact pharmacie", record.PharmacyContact},
		{"Matricule fiscal", record.PharmacyFiscalID},
		{"Identifiant bénéficiaire", record.BeneficiaryID},
		{"Identité du patient", record.PatientIdentity},
		{"Code prescripteur", record.PrescriberCode},
		{"Date de prescription", record.PrescriptionDate},
		{"Régime", record.Regimen},
		{"Date de dispensation", record.DispensationDate},
		{"Exécuteur", record.Executor},
		{"Référence CNAM pharmacien", record.PharmacistCnamRef},
		{"Total", record.Total},
		{"Total en lettres", record.TotalInWords},
		{"Montant perçu", record.MtPercu},
		{"Reste à payer", record.MtRes},
	}
	if err := writeFields(f, sheetPrescription, fields); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}

	rows := make([]models.Row, 0, len(record.Items))
	for _, item := range record.Items {
		rows = append(rows, models.Row{
			"codePCT":      item.CodePCT,
			"produit":      item.Produit,
			"forme":        item.Forme,
			"qte":          item.Qte,
			"puv":          item.Puv,
			"montantRes":   item.MontantRes,
			"montantPercu": item.MontantPercu,
			"nio":          item.Nio,
			"prLot":        item.PrLot,
		})
	}
	if _, err := f.NewSheet(sheetItems); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}
	if err := writeTable(f, sheetItems, mapper.PrescriptionItemsTable.Keys, rows); err != nil {
		return nil, exceptions.ErrExportWorkbook(err)
	}

	return e.finish(f)
}

func (e *excelExporter) finish(f *excelize.File) ([]byte, error) {
	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		e.Log.Error("excelExporter.finish error writing workbook", zap.Error(err))
		return nil, exceptions.ErrExportWorkbook(err)
	}
	return buf.Bytes(), nil
}

func writeFields(f *excelize.File, sheet string, fields []field) error {
	for i, fd := range fields {
		row := strconv.Itoa(i + 1)
		if err := f.SetCellValue(sheet, "A"+row, fd.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, "B"+row, fd.value); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "B", 28)
}

// writeTable puts keys on the header line and one row per record line.
func writeTable(f *excelize.File, sheet string, keys []string, rows []models.Row) error {
	header := make([]interface{}, len(keys))
	for i, key := range keys {
		header[i] = key
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		values := make([]interface{}, len(keys))
		for j, key := range keys {
			values[j] = row[key]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(value bool) string {
	if value {
		return "oui"
	}
	return "non"
}
