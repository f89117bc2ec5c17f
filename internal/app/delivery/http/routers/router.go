package routers

import (
	"net/http"
	"time"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/appointments"
	"care4u-service/internal/app/services/core/auth"
	"care4u-service/internal/app/services/core/doctors"
	"care4u-service/internal/app/services/core/medicalrecords"
	"care4u-service/internal/app/services/core/schedules"
	"care4u-service/internal/app/services/core/triage"
	"care4u-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth          *auth.AuthController
	User          *users.UserController
	Doctor        *doctors.DoctorController
	Schedule      *schedules.ScheduleController
	Appointment   *appointments.AppointmentController
	MedicalRecord *medicalrecords.MedicalRecordController
	Triage        *triage.TriageController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	logger *zap.Logger,
	requestLog *logrus.Logger,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(requestBodyLimit(internalConfig.App.RequestBodyLimitInMegabyte))
	router.Use(mw.ErrorHandler)
	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging(logger))
	router.Use(mw.RequestLogger(internalConfig.App, requestLog))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, mw, controllers.Auth)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, mw, controllers.User)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, mw, controllers.Doctor, controllers.Appointment)
		})

		r.Route("/schedule", func(r chi.Router) {
			attachScheduleRoutes(r, mw, controllers.Schedule)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, mw, controllers.Appointment)
		})

		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, mw, controllers.MedicalRecord)
		})

		r.Route("/triage", func(r chi.Router) {
			attachTriageRoutes(r, controllers.Triage)
		})
	})
}

func requestBodyLimit(limitInMegabyte int) func(http.Handler) http.Handler {
	limit := int64(limitInMegabyte) * 1024 * 1024
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
