package constvars

const (
	URLParamSessionID      = "session_id"
	URLParamFileID         = "file_id"
	URLParamEditorID       = "editor_id"
	URLParamIndex          = "index"
	URLParamSection        = "section"
	URLParamID             = "id"
	URLParamCourierID      = "courier_id"
	URLParamPrescriptionID = "prescription_id"
	URLParamUserID         = "user_id"
)

const (
	URLQueryParamType = "type"
)

const (
	FormFieldFile        = "file"
	FormFieldFiles       = "files"
	FormFieldType        = "type"
	FormFieldTypes       = "types"
	FormFieldMatricule   = "matricule"
	FormFieldAdherent    = "nom_adherent"
	FormFieldBeneficiary = "nom_beneficiaire"
	FormFieldUsername    = "username"
	FormFieldPassword    = "password"
)
