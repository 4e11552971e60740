package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beyazmasa/internal/application/staff/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type CreateStaffRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FullName     string `json:"full_name" binding:"required,max=200"`
	Role         string `json:"role" binding:"required,oneof=admin staff"`
	DepartmentID *int   `json:"department_id"`
}

type StaffHandler struct {
	createStaffUC  usecases.CreateStaffExecutor
	deleteStaffUC  usecases.DeleteStaffExecutor
	listStaffUC    usecases.ListStaffExecutor
	profileStatsUC usecases.ProfileStatsExecutor
	logger         logger.Interface
}

func NewStaffHandler(
	createStaffUC usecases.CreateStaffExecutor,
	deleteStaffUC usecases.DeleteStaffExecutor,
	listStaffUC usecases.ListStaffExecutor,
	profileStatsUC usecases.ProfileStatsExecutor,
	log logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC:  createStaffUC,
		deleteStaffUC:  deleteStaffUC,
		listStaffUC:    listStaffUC,
		profileStatsUC: profileStatsUC,
		logger:         log,
	}
}

// ListStaff handles GET /staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	query := usecases.ListStaffQuery{Actor: middleware.ActorFromContext(c)}

	result, err := h.listStaffUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateStaff handles POST /staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Zorunlu alanlar eksik.")
		return
	}

	cmd := usecases.CreateStaffCommand{
		Actor:        middleware.ActorFromContext(c),
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Personel kaydı oluşturuldu")
}

// DeleteStaff handles DELETE /staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz personel kimliği")
		return
	}

	cmd := usecases.DeleteStaffCommand{
		Actor:   middleware.ActorFromContext(c),
		StaffID: staffID,
	}

	if err := h.deleteStaffUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Personel kaydı silindi", nil)
}

// ProfileStats handles GET /staff/me/stats
func (h *StaffHandler) ProfileStats(c *gin.Context) {
	query := usecases.ProfileStatsQuery{Actor: middleware.ActorFromContext(c)}

	result, err := h.profileStatsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
