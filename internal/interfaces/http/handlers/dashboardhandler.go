package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/dashboard/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC usecases.GetDashboardExecutor, log logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         log,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	query := usecases.GetDashboardQuery{Actor: middleware.ActorFromContext(c)}

	result, err := h.getDashboardUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
