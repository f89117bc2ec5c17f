package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/schedules"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, mw *middlewares.Middlewares, scheduleController *schedules.ScheduleController) {
	router.With(mw.Authentication, mw.RequireDoctor).Get("/", scheduleController.GetSchedule)
	router.With(mw.Authentication, mw.RequireDoctor).Put("/", scheduleController.UpdateSchedule)
}
