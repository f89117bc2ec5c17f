package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, mw *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(mw.Authentication, mw.RequirePatient).Post("/", appointmentController.BookAppointment)
	router.With(mw.Authentication).Get("/", appointmentController.ListAppointments)
	router.With(mw.Authentication, mw.RequireDoctor).Get("/stats", appointmentController.Stats)
	router.With(mw.Authentication, mw.RequireDoctorOrAdmin).Put("/{appointmentID}/status", appointmentController.UpdateStatus)
	router.With(mw.Authentication, mw.RequirePatient).Post("/{appointmentID}/cancel", appointmentController.CancelAppointment)
}
