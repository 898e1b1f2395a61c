package constvars

// Paths on the OCR backend, relative to its base URL.
const (
	BackendPathLogin             = "/login"
	BackendPathDocumentsParse    = "/documents/parse"
	BackendPathBulletinParse     = "/bulletin/parse"
	BackendPathPrescriptionParse = "/prescription/parse"

	BackendPathBulletin             = "/bulletin/"
	BackendPathBulletinByID         = "/bulletin/%d"
	BackendPathBulletinUpload       = "/bulletin/upload"
	BackendPathBulletinUploadedAll  = "/bulletin/uploaded/all"
	BackendPathBulletinUploadedLast = "/bulletin/uploaded/latest"

	BackendPathOrdonnance             = "/ordonnance/"
	BackendPathOrdonnanceByID         = "/ordonnance/%d"
	BackendPathOrdonnanceUpload       = "/ordonnance/upload"
	BackendPathOrdonnanceUploadedAll  = "/ordonnance/uploaded/all"
	BackendPathOrdonnanceUploadedLast = "/ordonnance/uploaded/latest"

	BackendPathPrescription     = "/prescription/"
	BackendPathPrescriptionByID = "/prescription/%d"

	BackendPathCourierUploadedAll = "/api/courrier/uploaded/all"
	BackendPathCourierByID        = "/api/courrier/%d"
	BackendPathCourierUpload      = "/api/courrier/upload"
	BackendPathCourierAppend      = "/courriers/%d/upload/"

	BackendPathFileByID = "/api/files/%d"

	BackendPathUsers    = "/api/users"
	BackendPathUserByID = "/api/users/%d"
)

const (
	ResourceBulletin     = "bulletin"
	ResourceOrdonnance   = "ordonnance"
	ResourcePrescription = "prescription"
	ResourceCourier      = "courier"
	ResourceFile         = "file"
	ResourceDocument     = "document"
	ResourceLogin        = "login"
	ResourceUser         = "user"
)
