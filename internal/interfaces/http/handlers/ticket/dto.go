package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/errors"
)

type CreateTicketRequest struct {
	CitizenName  string `json:"citizen_name" binding:"required,max=200"`
	CitizenPhone string `json:"citizen_phone" binding:"required,max=32"`
	TicketType   string `json:"ticket_type" binding:"required,max=50"`
	Summary      string `json:"summary" binding:"required,max=200"`
	Description  string `json:"description" binding:"max=5000"`
	Priority     string `json:"priority"`
	DepartmentID *int   `json:"department_id"`
}

func (r *CreateTicketRequest) ToCommand(actor staff.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:        actor,
		CitizenName:  r.CitizenName,
		CitizenPhone: r.CitizenPhone,
		TicketType:   r.TicketType,
		Summary:      r.Summary,
		Description:  r.Description,
		Priority:     r.Priority,
		DepartmentID: r.DepartmentID,
	}
}

type AssignTicketRequest struct {
	AssigneeID string `json:"assignee_id" binding:"required,uuid"`
}

type ResolveTicketRequest struct {
	EvidenceURL string `json:"evidence_url"`
}

type AttachEvidenceRequest struct {
	EvidenceURL string `json:"evidence_url" binding:"required,url"`
}

type CancelTicketRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListTicketsRequest struct {
	Search    string
	Status    string
	SortBy    string
	SortOrder string
	Page      int
}

func (r *ListTicketsRequest) ToQuery(actor staff.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:        actor,
		Search:       r.Search,
		StatusFilter: r.Status,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
		Page:         r.Page,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	return &ListTicketsRequest{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
	}
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("geçersiz talep numarası")
	}
	return uint(id), nil
}
