package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/appointments"
	"care4u-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
) {
	router.With(mw.Authentication, mw.RequireAdmin).Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.ListDoctors)
	router.Get("/specializations", doctorController.ListSpecializations)
	router.Get("/{doctorID}", doctorController.GetDoctorByID)
	router.With(mw.Authentication).Get("/{doctorID}/slots", appointmentController.AvailableSlots)
}
