package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/note/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type AddNoteRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type NoteHandler struct {
	listNotesUC  usecases.ListNotesExecutor
	addNoteUC    usecases.AddNoteExecutor
	deleteNoteUC usecases.DeleteNoteExecutor
	logger       logger.Interface
}

func NewNoteHandler(
	listNotesUC usecases.ListNotesExecutor,
	addNoteUC usecases.AddNoteExecutor,
	deleteNoteUC usecases.DeleteNoteExecutor,
	log logger.Interface,
) *NoteHandler {
	return &NoteHandler{
		listNotesUC:  listNotesUC,
		addNoteUC:    addNoteUC,
		deleteNoteUC: deleteNoteUC,
		logger:       log,
	}
}

// ListNotes handles GET /notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	query := usecases.ListNotesQuery{Actor: middleware.ActorFromContext(c)}

	notes, err := h.listNotesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", notes)
}

// AddNote handles POST /notes
func (h *NoteHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "not içeriği gereklidir")
		return
	}

	cmd := usecases.AddNoteCommand{
		Actor:   middleware.ActorFromContext(c),
		Content: req.Content,
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Not eklendi")
}

// DeleteNote handles DELETE /notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz not numarası")
		return
	}

	cmd := usecases.DeleteNoteCommand{
		Actor:  middleware.ActorFromContext(c),
		NoteID: uint(id),
	}

	if err := h.deleteNoteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Not silindi", nil)
}
