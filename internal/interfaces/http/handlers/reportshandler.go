package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/reports/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type ReportsHandler struct {
	getReportsUC usecases.GetReportsExecutor
	getHeatmapUC usecases.GetHeatmapExecutor
	logger       logger.Interface
}

func NewReportsHandler(
	getReportsUC usecases.GetReportsExecutor,
	getHeatmapUC usecases.GetHeatmapExecutor,
	log logger.Interface,
) *ReportsHandler {
	return &ReportsHandler{
		getReportsUC: getReportsUC,
		getHeatmapUC: getHeatmapUC,
		logger:       log,
	}
}

// GetReports handles GET /reports
func (h *ReportsHandler) GetReports(c *gin.Context) {
	query := usecases.GetReportsQuery{Actor: middleware.ActorFromContext(c)}

	result, err := h.getReportsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetHeatmap handles GET /reports/heatmap
func (h *ReportsHandler) GetHeatmap(c *gin.Context) {
	query := usecases.GetHeatmapQuery{Actor: middleware.ActorFromContext(c)}

	cells, err := h.getHeatmapUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", cells)
}
