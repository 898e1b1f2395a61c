package routers

import (
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBulletinRoutes(router chi.Router, middlewares *middlewares.Middlewares, bulletinEditorController *controllers.BulletinEditorController) {
	router.Use(middlewares.Authenticate)

	router.Post("/editors", bulletinEditorController.Open)
	router.Route("/editors/{editor_id}", func(r chi.Router) {
		r.Get("/", bulletinEditorController.Get)
		r.Post("/edit", bulletinEditorController.EnterEditMode)
		r.Patch("/fields", bulletinEditorController.UpdateFields)
		r.Put("/patient-relation", bulletinEditorController.SetPatientRelation)
		r.Put("/insurance-scheme", bulletinEditorController.SetInsuranceScheme)
		r.Put("/identifier/{index}", bulletinEditorController.SetIdentifierBox)
		r.Put("/sections/{section}", bulletinEditorController.ReplaceSection)
		r.Post("/save", bulletinEditorController.Save)
		r.Post("/submit", bulletinEditorController.Submit)
		r.Get("/export", bulletinEditorController.Export)
	})
}

func attachPrescriptionRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	prescriptionEditorController *controllers.PrescriptionEditorController,
	documentController *controllers.DocumentController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", documentController.CreatePrescription)
	router.Get("/{prescription_id}", documentController.FindPrescription)

	router.Post("/editors", prescriptionEditorController.Open)
	router.Route("/editors/{editor_id}", func(r chi.Router) {
		r.Get("/", prescriptionEditorController.Get)
		r.Post("/edit", prescriptionEditorController.EnterEditMode)
		r.Patch("/fields", prescriptionEditorController.UpdateFields)
		r.Post("/items", prescriptionEditorController.AddItem)
		r.Put("/items/{index}", prescriptionEditorController.UpdateItem)
		r.Delete("/items/{index}", prescriptionEditorController.RemoveItem)
		r.Post("/save", prescriptionEditorController.Save)
		r.Get("/export", prescriptionEditorController.Export)
	})
}
