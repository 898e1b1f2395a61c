package routers

import (
	"fmt"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth               *controllers.AuthController
	Upload             *controllers.UploadController
	BulletinEditor     *controllers.BulletinEditorController
	PrescriptionEditor *controllers.PrescriptionEditorController
	Courier            *controllers.CourierController
	Document           *controllers.DocumentController
	User               *controllers.UserController
	Health             *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderContentDisposition, constvars.HeaderRetryAfter, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get("/health", ctrls.Health.Check)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Route("/uploads", func(r chi.Router) {
				attachUploadRoutes(r, middlewares, ctrls.Upload)
			})

			r.Route("/bulletins", func(r chi.Router) {
				attachBulletinRoutes(r, middlewares, ctrls.BulletinEditor)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, ctrls.PrescriptionEditor, ctrls.Document)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, middlewares, ctrls.Document)
			})

			r.Route("/couriers", func(r chi.Router) {
				attachCourierRoutes(r, middlewares, ctrls.Courier)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, ctrls.User)
			})
		})
	})
}
