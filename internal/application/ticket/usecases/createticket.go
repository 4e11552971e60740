package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// CreateTicketCommand represents the input for staff-entered ticket creation,
// typically a complaint taken over the phone or at the counter.
type CreateTicketCommand struct {
	Actor        staff.Actor
	CitizenName  string
	CitizenPhone string
	TicketType   string
	Summary      string
	Description  string
	Priority     string
	DepartmentID *int
}

// CreateTicketResult represents the output of creating a ticket.
type CreateTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	feed       TicketFeed
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	feed TicketFeed,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		feed:       feed,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// Non-admin staff can only file into their own department.
	departmentID := cmd.DepartmentID
	if !cmd.Actor.IsAdmin() {
		if !cmd.Actor.HasDepartment() {
			return nil, errors.NewForbiddenError("talep oluşturma yetkiniz yok")
		}
		departmentID = cmd.Actor.DepartmentID
	}

	t, err := ticket.NewTicket(
		cmd.CitizenName,
		cmd.CitizenPhone,
		cmd.TicketType,
		cmd.Summary,
		cmd.Description,
		ticket.ParsePriority(cmd.Priority),
		departmentID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.appendAudit(ctx, cmd.Actor, t)
	if uc.feed != nil {
		uc.feed.TicketCreated(dto.FromTicket(t))
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"user_id", cmd.Actor.UserID,
		"department_id", departmentID,
	)
	return &CreateTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CitizenName == "" {
		return errors.NewValidationError("citizen name is required")
	}
	if cmd.CitizenPhone == "" {
		return errors.NewValidationError("citizen phone is required")
	}
	if cmd.TicketType == "" {
		return errors.NewValidationError("ticket type is required")
	}
	return nil
}

func (uc *CreateTicketUseCase) appendAudit(ctx context.Context, actor staff.Actor, t *ticket.Ticket) {
	entry, err := audit.NewTicketEntry(actor.UserID, audit.ActionTicketCreate, t.ID(), createAuditDescription(t.ID()))
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "error", err, "ticket_id", t.ID())
		return
	}
	entry.WithMetadata("source", t.Source())
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "error", err, "ticket_id", t.ID())
	}
}
