package routers

import (
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *controllers.DocumentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/parse", documentController.Parse)

	for path, kind := range map[string]models.DocumentKind{
		"/bulletins":   models.DocumentKindBulletin,
		"/ordonnances": models.DocumentKindPrescription,
	} {
		router.Route(path, func(r chi.Router) {
			r.Get("/", documentController.ListUploaded(kind))
			r.Get("/latest", documentController.LatestUploaded(kind))
			r.Delete("/{id}", documentController.DeleteRecord(kind))
		})
	}

	router.With(middlewares.RequireSuperuser).Delete("/files/{id}", documentController.DeleteFile)
}

func attachCourierRoutes(router chi.Router, middlewares *middlewares.Middlewares, courierController *controllers.CourierController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", courierController.List)
	router.Post("/", courierController.Create)
	router.Get("/{courier_id}", courierController.Review)
	router.Post("/{courier_id}/files", courierController.AppendFiles)
}
