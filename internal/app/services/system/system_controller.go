package system

import (
	"context"
	"net/http"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type SystemController struct {
	Log           *zap.Logger
	SystemUsecase SystemUsecase
}

func NewSystemController(logger *zap.Logger, systemUsecase SystemUsecase) *SystemController {
	return &SystemController{
		Log:           logger,
		SystemUsecase: systemUsecase,
	}
}

func (ctrl *SystemController) SecurityStatus(w http.ResponseWriter, r *http.Request) {
	response := ctrl.SystemUsecase.GetSecurityStatus(r.Context(), r.TLS != nil)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SecurityStatusSuccess, response)
}

func (ctrl *SystemController) PerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SystemUsecase.GetPerformanceMetrics(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PerformanceMetricsSuccess, response)
}
