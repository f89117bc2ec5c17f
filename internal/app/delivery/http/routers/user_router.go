package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, mw *middlewares.Middlewares, userController *users.UserController) {
	router.With(mw.Authentication, mw.RequireAdmin).Get("/", userController.ListUsers)
	router.With(mw.Authentication).Get("/profile", userController.GetProfile)
	router.With(mw.Authentication).Put("/profile", userController.UpdateProfile)
	router.With(mw.Authentication).Put("/password", userController.ChangePassword)
}
