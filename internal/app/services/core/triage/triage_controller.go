package triage

import (
	"context"
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

type TriageController struct {
	TriageUsecase contracts.TriageUsecase
	Log           *zap.Logger
}

func NewTriageController(triageUsecase contracts.TriageUsecase, logger *zap.Logger) *TriageController {
	return &TriageController{
		TriageUsecase: triageUsecase,
		Log:           logger,
	}
}

func (ctrl *TriageController) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AnalyzeSymptoms)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeTriageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TriageUsecase.AnalyzeSymptoms(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TriageAnalysisSuccess, response)
}
