package utils

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("patient_relation", validatePatientRelation)
	validate.RegisterValidation("insurance_scheme", validateInsuranceScheme)
	validate.RegisterValidation("document_type", validateDocumentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePatientRelation(fl validator.FieldLevel) bool {
	return models.PatientRelation(fl.Field().String()).Valid()
}

func validateInsuranceScheme(fl validator.FieldLevel) bool {
	return models.InsuranceScheme(fl.Field().String()).Valid()
}

func validateDocumentType(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case constvars.CourierFileTypeBulletin, constvars.CourierFileTypeOrdonnance,
		constvars.DocumentTypeBulletin, constvars.DocumentTypePrescription:
		return true
	}
	return false
}
