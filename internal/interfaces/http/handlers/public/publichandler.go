// Package public exposes the unauthenticated citizen endpoints: complaint
// submission and status tracking.
package public

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type SubmitTicketRequest struct {
	CitizenName       string   `json:"citizen_name" binding:"required,max=200"`
	CitizenPhone      string   `json:"citizen_phone" binding:"required,max=32"`
	CitizenNationalID string   `json:"citizen_national_id" binding:"max=20"`
	TicketType        string   `json:"ticket_type" binding:"required,max=50"`
	Summary           string   `json:"summary" binding:"required,max=200"`
	Description       string   `json:"description" binding:"max=5000"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	MediaURL          string   `json:"media_url" binding:"omitempty,url"`
}

type PublicHandler struct {
	submitUC usecases.SubmitPublicTicketExecutor
	trackUC  usecases.TrackPublicTicketExecutor
	logger   logger.Interface
}

func NewPublicHandler(
	submitUC usecases.SubmitPublicTicketExecutor,
	trackUC usecases.TrackPublicTicketExecutor,
	log logger.Interface,
) *PublicHandler {
	return &PublicHandler{
		submitUC: submitUC,
		trackUC:  trackUC,
		logger:   log,
	}
}

// SubmitTicket handles POST /public/tickets
func (h *PublicHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid public submission", "error", err, "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusBadRequest, "Zorunlu alanlar eksik.")
		return
	}

	cmd := usecases.SubmitPublicTicketCommand{
		CitizenName:       req.CitizenName,
		CitizenPhone:      req.CitizenPhone,
		CitizenNationalID: req.CitizenNationalID,
		TicketType:        req.TicketType,
		Summary:           req.Summary,
		Description:       req.Description,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		MediaURL:          req.MediaURL,
	}

	result, err := h.submitUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Talebiniz alınmıştır")
}

// TrackTicket handles GET /public/tickets/:id?phone=...
func (h *PublicHandler) TrackTicket(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Kayıt bulunamadı veya bilgiler hatalı.")
		return
	}

	query := usecases.TrackPublicTicketQuery{
		TicketID: uint(id),
		Phone:    c.Query("phone"),
	}

	result, err := h.trackUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
