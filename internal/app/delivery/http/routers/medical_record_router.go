package routers

import (
	"care4u-service/internal/app/delivery/http/middlewares"
	"care4u-service/internal/app/services/core/medicalrecords"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, mw *middlewares.Middlewares, medicalRecordController *medicalrecords.MedicalRecordController) {
	router.With(mw.Authentication, mw.RequirePatient).Post("/", medicalRecordController.UploadRecord)
	router.With(mw.Authentication).Get("/", medicalRecordController.ListRecords)
	router.With(mw.Authentication).Get("/{recordID}/download", medicalRecordController.DownloadRecord)
}
