package mapper

import (
	"math"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/normalizer"
)

// PopulatePrescription maps an extracted prescription into an editable record
// with its totals already computed.
func (m *Mapper) PopulatePrescription(doc *models.ExtractedDocument) *models.PrescriptionRecord {
	record := &models.PrescriptionRecord{
		Persistence: models.Unsaved(),
		FileName:    doc.FileName,

		PharmacyName:     firstString(doc, "pharmacyName"),
		PharmacyAddress:  firstString(doc, "pharmacyAddress"),
		PharmacyContact:  firstString(doc, "pharmacyContact"),
		PharmacyFiscalID: firstString(doc, "pharmacyFiscalId"),

		BeneficiaryID:     firstString(doc, "beneficiaryId"),
		PatientIdentity:   firstString(doc, "patientIdentity"),
		PrescriberCode:    firstString(doc, "prescriberCode", "code_cnam"),
		PrescriptionDate:  normalizer.NormalizeDate(firstString(doc, "prescriptionDate")),
		Regimen:           firstString(doc, "regimen"),
		DispensationDate:  normalizer.NormalizeDate(firstString(doc, "dispensationDate")),
		Executor:          firstString(doc, "executor", "executeur"),
		PharmacistCnamRef: firstString(doc, "pharmacistCnamRef", "ref_cnam"),

		Items: itemsFromRows(mapTable(doc.List(m.itemsTable.Name), m.itemsTable)),
		Total: firstString(doc, "total", "total_ttc"),

		FooterName:        firstString(doc, "footerName"),
		FooterAddress:     firstString(doc, "footerAddress"),
		FooterContact:     firstString(doc, "footerContact"),
		FooterFiscalID:    firstString(doc, "footerFiscalId"),
		SignatureCropFile: firstString(doc, "signatureCropFile"),
	}

	if record.FileName == "" {
		record.FileName = doc.String("fileName")
	}
	CalculateTotals(record)
	return record
}

// CalculateTotals recomputes the collected sum, the remaining balance and the
// total in words. It must run after any change to the total or to an item.
func CalculateTotals(record *models.PrescriptionRecord) {
	total := normalizer.ParseAmountLenient(record.Total)

	var collected float64
	for _, item := range record.Items {
		collected += normalizer.ParseFrenchAmount(item.MontantPercu)
	}

	record.MtPercu = normalizer.FormatAmount(collected)
	record.MtRes = normalizer.FormatAmount(math.Max(0, total-collected))
	record.TotalInWords = normalizer.AmountValueToWords(total)
}

func FlattenPrescription(record *models.PrescriptionRecord) *requests.PrescriptionPayload {
	items := record.Items
	if items == nil {
		items = []models.PrescriptionItem{}
	}

	payload := &requests.PrescriptionPayload{
		PharmacyName:      record.PharmacyName,
		PharmacyAddress:   record.PharmacyAddress,
		PharmacyContact:   record.PharmacyContact,
		PharmacyFiscalID:  record.PharmacyFiscalID,
		BeneficiaryID:     record.BeneficiaryID,
		PatientIdentity:   record.PatientIdentity,
		PrescriberCode:    record.PrescriberCode,
		PrescriptionDate:  record.PrescriptionDate,
		Regimen:           record.Regimen,
		DispensationDate:  record.DispensationDate,
		Executor:          record.Executor,
		PharmacistCnamRef: record.PharmacistCnamRef,
		Items:             items,
		Total:             record.Total,
		TotalInWords:      record.TotalInWords,
		MtPercu:           record.MtPercu,
		MtRes:             record.MtRes,
		FooterName:        record.FooterName,
		FooterAddress:     record.FooterAddress,
		FooterContact:     record.FooterContact,
		FooterFiscalID:    record.FooterFiscalID,
	}

	if id, saved := record.Persistence.RecordID(); saved {
		payload.ID = &id
	}
	return payload
}

func itemsFromRows(rows []models.Row) []models.PrescriptionItem {
	items := make([]models.PrescriptionItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PrescriptionItem{
			CodePCT:      row["codePCT"],
			Produit:      row["produit"],
			Forme:        row["forme"],
			Qte:          row["qte"],
			Puv:          row["puv"],
			MontantRes:   row["montantRes"],
			MontantPercu: row["montantPercu"],
			Nio:          row["nio"],
			PrLot:        row["prLot"],
		})
	}
	return items
}
