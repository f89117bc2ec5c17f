package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.RegisterUser)
	router.Post("/login", authController.LoginUser)
	router.With(mw.Authentication).Post("/logout", authController.LogoutUser)
}
