package medicalrecords

import (
	"context"
	"io"
	"net/http"
	"time"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	MaxMultipartMemory   int64
	Log                  *zap.Logger
}

func NewMedicalRecordController(medicalRecordUsecase contracts.MedicalRecordUsecase, maxMultipartMemory int64, logger *zap.Logger) *MedicalRecordController {
	return &MedicalRecordController{
		MedicalRecordUsecase: medicalRecordUsecase,
		MaxMultipartMemory:   maxMultipartMemory,
		Log:                  logger,
	}
}

func (ctrl *MedicalRecordController) UploadRecord(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(ctrl.MaxMultipartMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileRead(err))
		return
	}

	request := &requests.UploadMedicalRecord{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		DoctorID:    r.FormValue("doctor_id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		SizeBytes:   fileHeader.Size,
		Content:     content,
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.UploadRecord(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicalRecordUploadSuccess, response)
}

func (ctrl *MedicalRecordController) ListRecords(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := utils.ParseQueryParams(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, total, err := ctrl.MedicalRecordUsecase.ListRecords(ctx, session, query)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccess, records, pagination)
}

func (ctrl *MedicalRecordController) DownloadRecord(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID := chi.URLParam(r, "recordID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.DownloadRecord(ctx, session, recordID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalRecordDownloadSuccess, response)
}
