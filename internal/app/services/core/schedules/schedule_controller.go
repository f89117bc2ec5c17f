package schedules

import (
	"context"
	"errors"
	"net/http"
	"time"

	"care4u-service/internal/app/contracts"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/dto/requests"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleController struct {
	ScheduleUsecase contracts.ScheduleUsecase
	Log             *zap.Logger
}

func NewScheduleController(scheduleUsecase contracts.ScheduleUsecase, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{
		ScheduleUsecase: scheduleUsecase,
		Log:             logger,
	}
}

// UpdateSchedule lets the signed-in doctor replace availability and fee in
// one request. Field-level rejections come back as 200 with success=false;
// only auth and storage problems use error status codes.
func (ctrl *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateSchedule)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateScheduleRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.UpdateSchedule(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusBadRequest {
			utils.BuildRejectionResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateScheduleSuccess, response)
}

func (ctrl *ScheduleController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScheduleUsecase.GetSchedule(ctx, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccess, response)
}
