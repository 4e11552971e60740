package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/infrastructure/storage"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

// 10 MB is plenty for a phone photo.
const maxEvidenceSize = 10 << 20

// EvidenceHandler receives resolution photos and stores them in object
// storage. The returned URL is what gets attached to the ticket.
type EvidenceHandler struct {
	store  storage.EvidenceStore
	logger logger.Interface
}

func NewEvidenceHandler(store storage.EvidenceStore, log logger.Interface) *EvidenceHandler {
	return &EvidenceHandler{
		store:  store,
		logger: log,
	}
}

// Upload handles POST /tickets/:id/evidence/upload
func (h *EvidenceHandler) Upload(c *gin.Context) {
	if h.store == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "dosya yükleme yapılandırılmamış")
		return
	}

	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || ticketID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz talep numarası")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dosya gereklidir")
		return
	}
	if fileHeader.Size > maxEvidenceSize {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "dosya çok büyük")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.ErrorResponse(c, http.StatusBadRequest, "sadece görsel dosyalar kabul edilir")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dosya okunamadı")
		return
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request.Context(), uint(ticketID), fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		h.logger.Errorw("failed to upload evidence", "error", err, "ticket_id", ticketID)
		utils.ErrorResponse(c, http.StatusInternalServerError, "dosya yüklenemedi")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"url": url})
}
