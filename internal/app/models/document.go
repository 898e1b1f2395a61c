package models

import (
	"fmt"
	"strconv"
)

type DocumentKind string

const (
	DocumentKindBulletin     DocumentKind = "bulletin"
	DocumentKindPrescription DocumentKind = "prescription"
)

// PayloadShape tags which OCR response layout a document arrived in.
type PayloadShape string

const (
	// PayloadShapeFlat carries top-level fields (prenom, refDossier, tables...)
	// next to a header object.
	PayloadShapeFlat PayloadShape = "flat"
	// PayloadShapeNested groups fields under header, insured and patient.
	PayloadShapeNested PayloadShape = "nested"
)

// ExtractedDocument is an OCR result after shape adaptation. Fields always
// holds the flat canonical layout regardless of the shape it came in.
type ExtractedDocument struct {
	FileName string         `json:"file_name,omitempty"`
	Shape    PayloadShape   `json:"shape"`
	Fields   map[string]any `json:"fields"`
}

func (d *ExtractedDocument) Value(key string) (any, bool) {
	if d == nil || d.Fields == nil {
		return nil, false
	}
	value, ok := d.Fields[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// String returns the field as text. Numbers are rendered without exponent.
func (d *ExtractedDocument) String(key string) string {
	value, ok := d.Value(key)
	if !ok {
		return ""
	}
	return Stringify(value)
}

func (d *ExtractedDocument) Bool(key string) bool {
	value, ok := d.Value(key)
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(v)
		return err == nil && parsed
	default:
		return false
	}
}

func (d *ExtractedDocument) Object(key string) map[string]any {
	value, ok := d.Value(key)
	if !ok {
		return nil
	}
	object, _ := value.(map[string]any)
	return object
}

func (d *ExtractedDocument) List(key string) []any {
	value, ok := d.Value(key)
	if !ok {
		return nil
	}
	list, _ := value.([]any)
	return list
}

// HeaderString reads a key from the header sub-object.
func (d *ExtractedDocument) HeaderString(key string) string {
	header := d.Object("header")
	if header == nil {
		return ""
	}
	value, ok := header[key]
	if !ok || value == nil {
		return ""
	}
	return Stringify(value)
}

// Stringify renders a decoded JSON value the way it should appear in a form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
