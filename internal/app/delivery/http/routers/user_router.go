package routers

import (
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.Authenticate, middlewares.RequireSuperuser)

	router.Get("/", userController.List)
	router.Post("/", userController.Create)
	router.Patch("/{user_id}", userController.Update)
	router.Delete("/{user_id}", userController.Delete)
}
