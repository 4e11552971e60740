// Package ticket exposes the authenticated ticket endpoints.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	createTicketUC   usecases.CreateTicketExecutor
	startTicketUC    usecases.StartTicketExecutor
	resolveTicketUC  usecases.ResolveTicketExecutor
	attachEvidenceUC usecases.AttachEvidenceExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	cancelTicketUC   usecases.CancelTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	listAssignedUC   usecases.ListAssignedExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	createTicketUC usecases.CreateTicketExecutor,
	startTicketUC usecases.StartTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	attachEvidenceUC usecases.AttachEvidenceExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	cancelTicketUC usecases.CancelTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	listAssignedUC usecases.ListAssignedExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:    listTicketsUC,
		getTicketUC:      getTicketUC,
		createTicketUC:   createTicketUC,
		startTicketUC:    startTicketUC,
		resolveTicketUC:  resolveTicketUC,
		attachEvidenceUC: attachEvidenceUC,
		assignTicketUC:   assignTicketUC,
		cancelTicketUC:   cancelTicketUC,
		deleteTicketUC:   deleteTicketUC,
		listAssignedUC:   listAssignedUC,
		logger:           log,
	}
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req := parseListTicketsRequest(c)
	query := req.ToQuery(middleware.ActorFromContext(c))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Zorunlu alanlar eksik.")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(middleware.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Talep oluşturuldu")
}

// StartTicket handles POST /tickets/:id/start
func (h *TicketHandler) StartTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.StartTicketCommand{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.startTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Talep işleme alındı", result)
}

// ResolveTicket handles POST /tickets/:id/resolve
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; resolving without evidence is allowed.
	var req ResolveTicketRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz istek gövdesi")
			return
		}
	}

	cmd := usecases.ResolveTicketCommand{
		Actor:       middleware.ActorFromContext(c),
		TicketID:    ticketID,
		EvidenceURL: req.EvidenceURL,
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Talep çözüldü", result)
}

// AttachEvidence handles POST /tickets/:id/evidence
func (h *TicketHandler) AttachEvidence(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AttachEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz kanıt adresi")
		return
	}

	cmd := usecases.AttachEvidenceCommand{
		Actor:       middleware.ActorFromContext(c),
		TicketID:    ticketID,
		EvidenceURL: req.EvidenceURL,
	}

	result, err := h.attachEvidenceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Kanıt eklendi", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz personel kimliği")
		return
	}

	assigneeID, err := uuid.Parse(req.AssigneeID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz personel kimliği")
		return
	}

	cmd := usecases.AssignTicketCommand{
		Actor:      middleware.ActorFromContext(c),
		TicketID:   ticketID,
		AssigneeID: assigneeID,
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Talep atandı", result)
}

// CancelTicket handles POST /tickets/:id/cancel
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelTicketRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "geçersiz istek gövdesi")
			return
		}
	}

	cmd := usecases.CancelTicketCommand{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
		Reason:   req.Reason,
	}

	result, err := h.cancelTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Talep iptal edildi", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		Actor:    middleware.ActorFromContext(c),
		TicketID: ticketID,
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Talep silindi", nil)
}

// ListAssigned handles GET /tickets/assigned
func (h *TicketHandler) ListAssigned(c *gin.Context) {
	query := usecases.ListAssignedQuery{
		Actor: middleware.ActorFromContext(c),
	}

	tickets, err := h.listAssignedUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tickets)
}
