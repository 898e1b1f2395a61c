package classifier

import (
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"strings"
)

// Route is everything that depends on a document's kind once it is known.
type Route struct {
	Kind             models.DocumentKind
	Resource         string
	SavePath         string
	SaveByIDPath     string
	UploadPath       string
	UploadDirectory  string
	NavigationTarget string
	DocumentType     string
}

var routes = map[models.DocumentKind]Route{
	models.DocumentKindBulletin: {
		Kind:             models.DocumentKindBulletin,
		Resource:         constvars.ResourceBulletin,
		SavePath:         constvars.BackendPathBulletin,
		SaveByIDPath:     constvars.BackendPathBulletinByID,
		UploadPath:       constvars.BackendPathBulletinUpload,
		UploadDirectory:  constvars.UploadDirectoryBulletins,
		NavigationTarget: constvars.BulletinNavigationTarget,
		DocumentType:     constvars.DocumentTypeBulletin,
	},
	models.DocumentKindPrescription: {
		Kind:             models.DocumentKindPrescription,
		Resource:         constvars.ResourceOrdonnance,
		SavePath:         constvars.BackendPathOrdonnance,
		SaveByIDPath:     constvars.BackendPathOrdonnanceByID,
		UploadPath:       constvars.BackendPathOrdonnanceUpload,
		UploadDirectory:  constvars.UploadDirectoryOrdonnances,
		NavigationTarget: constvars.PrescriptionNavigationTarget,
		DocumentType:     constvars.DocumentTypePrescription,
	},
}

// Classify reads the document type tag. Prescription wins when a tag
// mentions both.
func Classify(doc *models.ExtractedDocument) (models.DocumentKind, error) {
	tag := DocumentTypeTag(doc)
	normalized := strings.ToLower(tag)

	switch {
	case strings.Contains(normalized, "ordonnance"), strings.Contains(normalized, "prescription"):
		return models.DocumentKindPrescription, nil
	case strings.Contains(normalized, "bulletin"):
		return models.DocumentKindBulletin, nil
	default:
		return "", exceptions.ErrUnclassifiable(nil, tag)
	}
}

// DocumentTypeTag returns the first discriminator present:
// header.documentType, then documentType, then type.
func DocumentTypeTag(doc *models.ExtractedDocument) string {
	if tag := strings.TrimSpace(doc.HeaderString("documentType")); tag != "" {
		return tag
	}
	if tag := strings.TrimSpace(doc.String("documentType")); tag != "" {
		return tag
	}
	return strings.TrimSpace(doc.String("type"))
}

func RouteFor(kind models.DocumentKind) (Route, bool) {
	route, ok := routes[kind]
	return route, ok
}

// RouteForCourierFile maps a courier file type (bulletin, ordonnance) to its
// route.
func RouteForCourierFile(fileType string) (Route, bool) {
	switch strings.ToLower(fileType) {
	case constvars.CourierFileTypeBulletin:
		return RouteFor(models.DocumentKindBulletin)
	case constvars.CourierFileTypeOrdonnance:
		return RouteFor(models.DocumentKindPrescription)
	default:
		return Route{}, false
	}
}
