package routers

import (
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUploadRoutes(router chi.Router, middlewares *middlewares.Middlewares, uploadController *controllers.UploadController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", uploadController.CreateSession)
	router.Route("/{session_id}", func(r chi.Router) {
		r.Get("/", uploadController.GetSession)
		r.Delete("/", uploadController.CloseSession)
		r.Post("/files", uploadController.AddFiles)
		r.Delete("/files/{file_id}", uploadController.RemoveFile)
		r.Post("/submit", uploadController.Submit)
		r.Post("/reset", uploadController.ResetSession)
	})
}
