package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_BEARER_TOKEN_KEY         ContextKey = "bearer_token"
	CONTEXT_TOKEN_CLAIMS_KEY         ContextKey = "token_claims"
)

const (
	REQUEST_ID_PREFIX = "MDINTK_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 20
)

const (
	DocumentTypeBulletin     = "bulletin_de_soin"
	DocumentTypePrescription = "prescription"
)

const (
	CourierFileTypeBulletin   = "bulletin"
	CourierFileTypeOrdonnance = "ordonnance"
)

const (
	UploadDirectoryBulletins   = "bulletins"
	UploadDirectoryOrdonnances = "ordonnances"
	UploadDirectoryStaging     = "staging"
)

const (
	ReviewNavigationTarget       = "/extracted"
	BulletinNavigationTarget     = "/bulletin"
	PrescriptionNavigationTarget = "/prescription"
)

const (
	PreviewIconPDF   = "icon:pdf"
	PreviewIconImage = "icon:image"
)

const (
	IdentifierLength   = 12
	IdentifierEmptyBox = " "
)

// ContentSniffLength is how many leading bytes content detection considers.
const ContentSniffLength = 512

const (
	CurrencyUnit    = "dinar"
	CurrencySubunit = "millime"
)

const (
	EventDocumentSaved = "document.saved"

	EventSourceEditor   = "editor"
	EventSourceUpload   = "upload"
	EventSourceDocument = "document"
)
