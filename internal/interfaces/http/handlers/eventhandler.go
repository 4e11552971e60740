package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/event/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type EventRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=5000"`
	Location    string     `json:"location" binding:"max=200"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
}

type EventHandler struct {
	listEventsUC  usecases.ListEventsExecutor
	addEventUC    usecases.AddEventExecutor
	updateEventUC usecases.UpdateEventExecutor
	toggleEventUC usecases.ToggleEventExecutor
	logger        logger.Interface
}

func NewEventHandler(
	listEventsUC usecases.ListEventsExecutor,
	addEventUC usecases.AddEventExecutor,
	updateEventUC usecases.UpdateEventExecutor,
	toggleEventUC usecases.ToggleEventExecutor,
	log logger.Interface,
) *EventHandler {
	return &EventHandler{
		listEventsUC:  listEventsUC,
		addEventUC:    addEventUC,
		updateEventUC: updateEventUC,
		toggleEventUC: toggleEventUC,
		logger:        log,
	}
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	query := usecases.ListEventsQuery{
		Actor:  middleware.ActorFromContext(c),
		Search: c.Query("search"),
	}

	events, err := h.listEventsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", events)
}

// AddEvent handles POST /events
func (h *EventHandler) AddEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add event", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Zorunlu alanlar eksik.")
		return
	}

	cmd := usecases.AddEventCommand{
		Actor:       middleware.ActorFromContext(c),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	result, err := h.addEventUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Etkinlik oluşturuldu")
}

// UpdateEvent handles PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Zorunlu alanlar eksik.")
		return
	}

	cmd := usecases.UpdateEventCommand{
		Actor:       middleware.ActorFromContext(c),
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	result, err := h.updateEventUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Etkinlik güncellendi", result)
}

// ToggleEvent handles POST /events/:id/toggle
func (h *EventHandler) ToggleEvent(c *gin.Context) {
	eventID, err := parseEventID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ToggleEventCommand{
		Actor:   middleware.ActorFromContext(c),
		EventID: eventID,
	}

	result, err := h.toggleEventUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Etkinlik durumu değiştirildi", result)
}

func parseEventID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("geçersiz etkinlik numarası")
	}
	return uint(id), nil
}
