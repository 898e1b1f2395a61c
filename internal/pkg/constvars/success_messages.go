package constvars

const (
	ResponseUnknown = "unknown"

	HealthyMessage   = "service is healthy"
	UnhealthyMessage = "service is degraded"

	LoginSuccessMessage = "successfully login"
	MeSuccessMessage    = "get session successfully"

	CreateUploadSessionSuccessMessage = "upload session created successfully"
	GetUploadSessionSuccessMessage    = "get upload session successfully"
	CloseUploadSessionSuccessMessage  = "upload session closed successfully"
	ResetUploadSessionSuccessMessage  = "upload session reset successfully"
	AddUploadFilesSuccessMessage      = "files added successfully"
	RemoveUploadFileSuccessMessage    = "file removed successfully"
	SubmitUploadSuccessMessage        = "documents processed successfully"

	OpenEditorSuccessMessage       = "editor opened successfully"
	GetEditorSuccessMessage        = "get editor successfully"
	EnterEditModeSuccessMessage    = "edit mode enabled"
	UpdateEditorSuccessMessage     = "document updated successfully"
	SaveEditorSuccessMessage       = "changes saved"
	SubmitEditorSuccessMessage     = "document submitted successfully"
	CreatePrescriptionSuccessMsg   = "prescription created successfully"
	FindPrescriptionSuccessMessage = "get prescription successfully"

	ParseDocumentSuccessMessage  = "document parsed successfully"
	ListDocumentsSuccessMessage  = "get documents successfully"
	LatestDocumentSuccessMessage = "get latest document successfully"
	DeleteDocumentSuccessMessage = "document deleted successfully"

	ListCouriersSuccessMessage       = "get couriers successfully"
	ReviewCourierSuccessMessage      = "get courier successfully"
	CreateCourierSuccessMessage      = "courier created successfully"
	AppendCourierFilesSuccessMessage = "files appended successfully"

	ListUsersSuccessMessage  = "get users successfully"
	CreateUserSuccessMessage = "user created successfully"
	UpdateUserSuccessMessage = "user updated successfully"
	DeleteUserSuccessMessage = "user deleted successfully"
)
