package mapper

import (
	"fmt"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const payloadSchemaURL = "ocr_payload.json"

// payloadSchema only pins down the containers the adapters walk into.
const payloadSchema = `{
	"type": "object",
	"properties": {
		"header":  {"type": ["object", "null"]},
		"insured": {"type": ["object", "null"]},
		"patient": {"type": ["object", "null"]},
		"items":   {"type": ["array", "null"]},
		"consultationsDentaires": {"type": ["array", "null"]},
		"prothesesDentaires":     {"type": ["array", "null"]},
		"consultationsVisites":   {"type": ["array", "null"]},
		"actesMedicaux":          {"type": ["array", "null"]},
		"actesParamed":           {"type": ["array", "null"]},
		"biologie":               {"type": ["array", "null"]},
		"hospitalisation":        {"type": ["array", "null"]},
		"pharmacie":              {"type": ["array", "null"]}
	}
}`

var (
	compiledPayloadSchema *jsonschema.Schema
	payloadSchemaErr      error
	oncePayloadSchema     sync.Once
)

func loadPayloadSchema() (*jsonschema.Schema, error) {
	oncePayloadSchema.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(payloadSchemaURL, strings.NewReader(payloadSchema)); err != nil {
			payloadSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledPayloadSchema, payloadSchemaErr = compiler.Compile(payloadSchemaURL)
	})
	return compiledPayloadSchema, payloadSchemaErr
}

// Ingest decodes a raw OCR response, checks its layout and adapts it to the
// flat canonical shape.
func Ingest(raw []byte, fileName string) (*models.ExtractedDocument, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, exceptions.ErrInvalidPayload(err)
	}
	return IngestFields(fields, fileName)
}

// IngestFields is Ingest for a payload that is already decoded.
func IngestFields(fields map[string]any, fileName string) (*models.ExtractedDocument, error) {
	if fields == nil {
		return nil, exceptions.ErrInvalidPayload(fmt.Errorf("payload is not an object"))
	}

	schema, err := loadPayloadSchema()
	if err != nil {
		return nil, exceptions.ErrInvalidPayload(err)
	}
	if err := schema.Validate(any(fields)); err != nil {
		return nil, exceptions.ErrInvalidPayload(err)
	}

	shape := detectShape(fields)
	adapter := shapeAdapters[shape]
	return &models.ExtractedDocument{
		FileName: fileName,
		Shape:    shape,
		Fields:   adapter(fields),
	}, nil
}

func detectShape(fields map[string]any) models.PayloadShape {
	_, hasInsured := fields["insured"].(map[string]any)
	_, hasPatient := fields["patient"].(map[string]any)
	if hasInsured || hasPatient {
		return models.PayloadShapeNested
	}
	return models.PayloadShapeFlat
}

var shapeAdapters = map[models.PayloadShape]func(map[string]any) map[string]any{
	models.PayloadShapeFlat:   adaptFlat,
	models.PayloadShapeNested: adaptNested,
}

func adaptFlat(fields map[string]any) map[string]any {
	canonical := make(map[string]any, len(fields))
	for key, value := range fields {
		canonical[key] = value
	}
	return canonical
}

// nestedFieldPaths maps canonical keys to their location in the nested layout.
var nestedFieldPaths = map[string][2]string{
	"prenom":            {"insured", "firstName"},
	"nom":               {"insured", "lastName"},
	"adresse":           {"insured", "address"},
	"codePostal":        {"insured", "postalCode"},
	"identifiantUnique": {"insured", "uniqueId"},
	"cnss":              {"insured", "cnssChecked"},
	"cnrps":             {"insured", "cnrpsChecked"},
	"convbi":            {"insured", "conventionChecked"},
	"prenomMalade":      {"patient", "firstName"},
	"nomMalade":         {"patient", "lastName"},
	"dateNaissance":     {"patient", "birthDate"},
	"numTel":            {"patient", "phone"},
	"enfant":            {"patient", "isChild"},
	"conjoint":          {"patient", "isSpouse"},
	"ascendant":         {"patient", "isAscendant"},
}

func adaptNested(fields map[string]any) map[string]any {
	canonical := make(map[string]any, len(fields)+len(nestedFieldPaths))
	for key, value := range fields {
		if key == "insured" || key == "patient" {
			continue
		}
		canonical[key] = value
	}

	for key, path := range nestedFieldPaths {
		if _, exists := canonical[key]; exists {
			continue
		}
		group, _ := fields[path[0]].(map[string]any)
		if value, ok := group[path[1]]; ok && value != nil {
			canonical[key] = value
		}
	}
	return canonical
}
