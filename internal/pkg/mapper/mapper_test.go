package mapper

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/normalizer"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatBulletinPayload = `{
	"header": {"documentType": "bulletin_de_soin", "dossierId": "D-77"},
	"prenom": "Amine",
	"nom": "Ben Salah",
	"identifiantUnique": "12-34 56/78 90AB99",
	"cnrps": true,
	"convbi": "true",
	"enfant": true,
	"consultationsVisites": [
		{"date": "01/02/2024", "designation": "Consultation", "honoraires": 45, "extra": "dropped"},
		"not a row"
	]
}`

const nestedBulletinPayload = `{
	"header": {"documentType": "bulletin_de_soin", "dossierId": "N-1"},
	"insured": {"firstName": "Sana", "lastName": "Trabelsi", "uniqueId": "ABCDEF123456", "cnssChecked": true},
	"patient": {"firstName": "Yassine", "isSpouse": true, "phone": "98 000 111"}
}`

func TestMapRows(t *testing.T) {
	t.Run("Keeps Exactly The Table Keys", func(t *testing.T) {
		rows := MapRows([]any{
			map[string]any{"date": "01/01/2024", "montant": 12.5, "unknown": "x"},
		}, []string{"date", "montant", "codePs"})

		require.Len(t, rows, 1)
		assert.Equal(t, models.Row{"date": "01/01/2024", "montant": "12.5", "codePs": ""}, rows[0])
	})

	t.Run("Non Object Rows Stay In Place", func(t *testing.T) {
		rows := MapRows([]any{"junk", map[string]any{"date": "x"}}, []string{"date"})

		require.Len(t, rows, 2)
		assert.Equal(t, "", rows[0]["date"])
		assert.Equal(t, "x", rows[1]["date"])
	})

	t.Run("Header Row Is Trimmed Only When Configured", func(t *testing.T) {
		raw := []any{map[string]any{"date": "Date"}, map[string]any{"date": "02/02/2024"}}

		trimmed := New([]string{SectionBiologie})
		spec, ok := trimmed.bulletinTable(SectionBiologie)
		require.True(t, ok)
		assert.Len(t, mapTable(raw, spec), 1)

		untouched := New(nil)
		spec, ok = untouched.bulletinTable(SectionBiologie)
		require.True(t, ok)
		assert.Len(t, mapTable(raw, spec), 2)
	})
}

func TestIngest(t *testing.T) {
	t.Run("Flat Payload", func(t *testing.T) {
		doc, err := Ingest([]byte(flatBulletinPayload), "scan.pdf")

		require.NoError(t, err)
		assert.Equal(t, models.PayloadShapeFlat, doc.Shape)
		assert.Equal(t, "Amine", doc.String("prenom"))
		assert.Equal(t, "scan.pdf", doc.FileName)
	})

	t.Run("Nested Payload Is Adapted", func(t *testing.T) {
		doc, err := Ingest([]byte(nestedBulletinPayload), "nested.png")

		require.NoError(t, err)
		assert.Equal(t, models.PayloadShapeNested, doc.Shape)
		assert.Equal(t, "Sana", doc.String("prenom"))
		assert.Equal(t, "Yassine", doc.String("prenomMalade"))
		assert.True(t, doc.Bool("cnss"))
		assert.Equal(t, "N-1", doc.HeaderString("dossierId"))
	})

	t.Run("Array Payload Is Rejected", func(t *testing.T) {
		_, err := Ingest([]byte(`[1, 2]`), "bad.pdf")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, exceptions.StatusCodeOf(err))
	})

	t.Run("Wrong Container Type Is Rejected", func(t *testing.T) {
		_, err := Ingest([]byte(`{"items": "nope"}`), "bad.pdf")

		assert.Error(t, err)
	})
}

func TestPopulateBulletin(t *testing.T) {
	m := New(nil)

	t.Run("Flat Payload With Fallbacks", func(t *testing.T) {
		doc, err := Ingest([]byte(flatBulletinPayload), "scan.pdf")
		require.NoError(t, err)

		record := m.PopulateBulletin(doc, nil)

		assert.Equal(t, "D-77", record.RefDossier)
		assert.Equal(t, "1234567890AB", record.IdentifiantUnique)
		assert.Equal(t, models.InsuranceSchemeCNRPS, record.InsuranceScheme)
		assert.Equal(t, models.PatientRelationChild, record.PatientRelation)
		assert.False(t, record.Persistence.Saved)
		assert.Len(t, record.Sections, len(BulletinTables))
		require.Len(t, record.Sections[SectionConsultationsVisites], 2)
		assert.Equal(t, "45", record.Sections[SectionConsultationsVisites][0]["honoraires"])
		assert.Empty(t, record.Sections[SectionPharmacie])
	})

	t.Run("Nested Payload", func(t *testing.T) {
		doc, err := Ingest([]byte(nestedBulletinPayload), "nested.png")
		require.NoError(t, err)

		record := m.PopulateBulletin(doc, nil)

		assert.Equal(t, "Trabelsi", record.Nom)
		assert.Equal(t, "N-1", record.RefDossier)
		assert.Equal(t, models.InsuranceSchemeCNSS, record.InsuranceScheme)
		assert.Equal(t, models.PatientRelationSpouse, record.PatientRelation)
	})

	t.Run("Previous Relation Survives", func(t *testing.T) {
		doc, err := Ingest([]byte(flatBulletinPayload), "scan.pdf")
		require.NoError(t, err)

		previous := &models.BulletinRecord{PatientRelation: models.PatientRelationAscendant}
		record := m.PopulateBulletin(doc, previous)

		assert.Equal(t, models.PatientRelationAscendant, record.PatientRelation)
	})

	t.Run("No Flags Means Self And No Scheme", func(t *testing.T) {
		doc, err := Ingest([]byte(`{"prenom": "X"}`), "")
		require.NoError(t, err)

		record := m.PopulateBulletin(doc, nil)

		assert.Equal(t, models.PatientRelationSelf, record.PatientRelation)
		assert.Equal(t, models.InsuranceSchemeNone, record.InsuranceScheme)
		assert.Equal(t, "", record.RefDossier)
	})
}

func TestFlattenBulletin(t *testing.T) {
	m := New(nil)
	doc, err := Ingest([]byte(flatBulletinPayload), "scan.pdf")
	require.NoError(t, err)
	record := m.PopulateBulletin(doc, nil)

	t.Run("Identifier Is The Join Of The Boxes", func(t *testing.T) {
		boxes := IdentifierBoxes(record.IdentifiantUnique)
		payload := FlattenBulletin(record)

		assert.Equal(t, strings.Join(boxes[:], ""), payload.IdentifiantUnique)
	})

	t.Run("Identifier Gaps Keep Box Positions", func(t *testing.T) {
		gapped := *record
		gapped.IdentifiantUnique = "AB X"

		payload := FlattenBulletin(&gapped)

		assert.Equal(t, "AB X", payload.IdentifiantUnique)
	})

	t.Run("Enums Expand To Flags", func(t *testing.T) {
		payload := FlattenBulletin(record)

		assert.True(t, payload.Cnrps)
		assert.False(t, payload.Cnss)
		assert.False(t, payload.Convbi)
		assert.True(t, payload.Enfant)
		assert.False(t, payload.AssureSocial)
		assert.Equal(t, "enfant", payload.PatientType)
		assert.NotNil(t, payload.Pharmacie)
	})

	t.Run("Id Only When Saved", func(t *testing.T) {
		assert.Nil(t, FlattenBulletin(record).ID)

		saved := *record
		saved.Persistence = models.SavedAs(42)
		payload := FlattenBulletin(&saved)

		require.NotNil(t, payload.ID)
		assert.Equal(t, int64(42), *payload.ID)
	})
}

func TestReplaceSection(t *testing.T) {
	m := New([]string{SectionBiologie})
	record := &models.BulletinRecord{}

	t.Run("Known Section", func(t *testing.T) {
		err := m.ReplaceSection(record, SectionBiologie, []map[string]any{
			{"date": "03/03/2024", "montant": "10,000"},
		})

		require.NoError(t, err)
		require.Len(t, record.Sections[SectionBiologie], 1)
		assert.Equal(t, "10,000", record.Sections[SectionBiologie][0]["montant"])
		assert.Equal(t, "", record.Sections[SectionBiologie][0]["codePs"])
	})

	t.Run("Unknown Section", func(t *testing.T) {
		err := m.ReplaceSection(record, "radiologie", nil)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}

func TestIdentifierBoxes(t *testing.T) {
	t.Run("Short Identifier Pads With Empty Boxes", func(t *testing.T) {
		boxes := IdentifierBoxes("AB1")

		assert.Equal(t, "A", boxes[0])
		assert.Equal(t, "1", boxes[2])
		assert.Equal(t, "", boxes[11])
	})

	t.Run("Set Box Substitutes By Index", func(t *testing.T) {
		updated, err := SetIdentifierBox("ABCDEFGHIJKL", 3, "z")

		require.NoError(t, err)
		assert.Equal(t, "ABCzEFGHIJKL", updated)
	})

	t.Run("Set Box Keeps One Character", func(t *testing.T) {
		updated, err := SetIdentifierBox("AB", 2, "xyz")

		require.NoError(t, err)
		assert.Equal(t, "ABx", updated)
	})

	t.Run("Clearing A Middle Box Keeps Later Positions", func(t *testing.T) {
		updated, err := SetIdentifierBox("ABCDEF", 1, "")

		require.NoError(t, err)
		boxes := IdentifierBoxes(updated)
		assert.Equal(t, "", boxes[1])
		assert.Equal(t, "C", boxes[2])
		assert.Equal(t, "F", boxes[5])
	})

	t.Run("Writing Past The End Lands In That Box", func(t *testing.T) {
		updated, err := SetIdentifierBox("AB", 5, "X")

		require.NoError(t, err)
		boxes := IdentifierBoxes(updated)
		assert.Equal(t, "", boxes[2])
		assert.Equal(t, "", boxes[4])
		assert.Equal(t, "X", boxes[5])
	})

	t.Run("Clearing The Last Box Trims The Placeholders", func(t *testing.T) {
		updated, err := SetIdentifierBox("AB   X", 5, "")

		require.NoError(t, err)
		assert.Equal(t, "AB", updated)
	})

	t.Run("Index Out Of Range", func(t *testing.T) {
		updated, err := SetIdentifierBox("AB", 12, "x")

		require.Error(t, err)
		assert.Equal(t, "AB", updated)
	})
}

func TestPopulatePrescription(t *testing.T) {
	m := New(nil)
	payload := `{
		"header": {"documentType": "prescription"},
		"pharmacyName": "Pharmacie Centrale",
		"code_cnam": "PR-9",
		"ref_cnam": "PH-1",
		"executeur": "Dr Kacem",
		"prescriptionDate": "1/2/2024",
		"total": "Total : 20,500",
		"items": [
			{"codePCT": "111", "produit": "Doliprane", "montantPercu": "5,500"},
			{"codePCT": "222", "produit": "Augmentin", "montantPercu": "10"}
		]
	}`

	doc, err := Ingest([]byte(payload), "rx.pdf")
	require.NoError(t, err)
	record := m.PopulatePrescription(doc)

	t.Run("Scalar Fallbacks", func(t *testing.T) {
		assert.Equal(t, "PR-9", record.PrescriberCode)
		assert.Equal(t, "PH-1", record.PharmacistCnamRef)
		assert.Equal(t, "Dr Kacem", record.Executor)
		assert.Equal(t, "01/02/2024", record.PrescriptionDate)
	})

	t.Run("Items And Totals", func(t *testing.T) {
		require.Len(t, record.Items, 2)
		assert.Equal(t, "Augmentin", record.Items[1].Produit)
		assert.InDelta(t, 15.5, normalizer.ParseFrenchAmount(record.MtPercu), 0.0001)
		assert.InDelta(t, 5.0, normalizer.ParseFrenchAmount(record.MtRes), 0.0001)
		assert.Contains(t, record.TotalInWords, "vingt")
	})
}

func TestCalculateTotals(t *testing.T) {
	t.Run("Remaining Never Goes Negative", func(t *testing.T) {
		record := &models.PrescriptionRecord{
			Total: "10",
			Items: []models.PrescriptionItem{{MontantPercu: "8"}, {MontantPercu: "7,250"}},
		}

		CalculateTotals(record)

		assert.InDelta(t, 0.0, normalizer.ParseFrenchAmount(record.MtRes), 0.0001)
		assert.InDelta(t, 15.25, normalizer.ParseFrenchAmount(record.MtPercu), 0.0001)
	})

	t.Run("Words Follow The Total", func(t *testing.T) {
		record := &models.PrescriptionRecord{Total: "2"}
		CalculateTotals(record)
		first := record.TotalInWords

		record.Total = "3"
		CalculateTotals(record)

		assert.NotEqual(t, first, record.TotalInWords)
		assert.Contains(t, record.TotalInWords, "trois")
	})

	t.Run("Flatten Carries Totals And Id", func(t *testing.T) {
		record := &models.PrescriptionRecord{Persistence: models.SavedAs(5), Total: "4"}
		CalculateTotals(record)

		payload := FlattenPrescription(record)

		require.NotNil(t, payload.ID)
		assert.Equal(t, int64(5), *payload.ID)
		assert.Equal(t, record.MtRes, payload.MtRes)
		assert.NotNil(t, payload.Items)
	})
}
