package dto

import (
	"time"

	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/ticket"
)

type TicketDTO struct {
	ID                uint     `json:"id"`
	CitizenName       string   `json:"citizen_name"`
	CitizenPhone      string   `json:"citizen_phone"`
	CitizenNationalID *string  `json:"citizen_national_id,omitempty"`
	TicketType        string   `json:"ticket_type"`
	Summary           string   `json:"summary"`
	Description       string   `json:"description"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	DepartmentID      *int     `json:"department_id"`
	AssignedTo        *string  `json:"assigned_to"`
	MediaURL          *string  `json:"media_url,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Location          *string  `json:"location,omitempty"`
	Source            string   `json:"source"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	d := &TicketDTO{
		ID:                t.ID(),
		CitizenName:       t.CitizenName(),
		CitizenPhone:      t.CitizenPhone(),
		CitizenNationalID: t.CitizenNationalID(),
		TicketType:        t.TicketType(),
		Summary:           t.Summary(),
		Description:       t.Description(),
		Priority:          t.Priority().String(),
		Status:            t.Status().String(),
		DepartmentID:      t.DepartmentID(),
		MediaURL:          t.MediaURL(),
		Latitude:          t.Latitude(),
		Longitude:         t.Longitude(),
		Location:          t.Location(),
		Source:            t.Source(),
		CreatedAt:         t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:         t.UpdatedAt().Format(time.RFC3339),
	}
	if t.AssignedTo() != nil {
		s := t.AssignedTo().String()
		d.AssignedTo = &s
	}
	return d
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, len(tickets))
	for i, t := range tickets {
		dtos[i] = FromTicket(t)
	}
	return dtos
}

// AuditEntryDTO is an audit record enriched with the actor's display name,
// resolved at read time.
type AuditEntryDTO struct {
	ID          uint   `json:"id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	ActionType  string `json:"action_type"`
	TicketID    *uint  `json:"ticket_id,omitempty"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func FromAuditEntry(e *audit.Entry, userName string) *AuditEntryDTO {
	return &AuditEntryDTO{
		ID:          e.ID(),
		UserID:      e.UserID().String(),
		UserName:    userName,
		ActionType:  e.ActionType().String(),
		TicketID:    e.TicketID(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt().Format(time.RFC3339),
	}
}

// TicketDetailDTO is the single-ticket view: the ticket plus its audit trail.
type TicketDetailDTO struct {
	Ticket *TicketDTO       `json:"ticket"`
	Logs   []*AuditEntryDTO `json:"logs"`
}

// PublicStatusDTO is the citizen-facing tracking view. It deliberately
// exposes only what the tracking page renders.
type PublicStatusDTO struct {
	ID        uint   `json:"id"`
	Status    string `json:"status"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

func ToPublicStatus(t *ticket.Ticket) *PublicStatusDTO {
	return &PublicStatusDTO{
		ID:        t.ID(),
		Status:    t.Status().String(),
		Summary:   t.Summary(),
		CreatedAt: t.CreatedAt().Format(time.RFC3339),
	}
}
