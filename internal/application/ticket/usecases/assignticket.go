package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// AssignTicketCommand represents the input for assigning a ticket to a staff
// member. Admin only.
type AssignTicketCommand struct {
	Actor      staff.Actor
	TicketID   uint
	AssigneeID uuid.UUID
}

// AssignTicketResult represents the output of assigning a ticket.
type AssignTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// AssignTicketUseCase points a ticket at a staff member. The assignee's display
// name is snapshotted into the audit description at assignment time, so the
// trail stays meaningful even after the account is deleted.
type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	staffRepo  staff.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	staffRepo staff.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		staffRepo:  staffRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == uuid.Nil {
		return nil, errors.NewValidationError("assignee ID is required")
	}

	if !uc.policy.CanAssign(cmd.Actor) {
		uc.logger.Warnw("ticket assignment denied",
			"user_id", cmd.Actor.UserID,
			"ticket_id", cmd.TicketID,
		)
		return nil, errors.NewForbiddenError("talep atama yetkiniz yok")
	}

	assignee, err := uc.staffRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("atanacak personel bulunamadı")
		}
		uc.logger.Errorw("failed to get assignee profile", "error", err, "assignee_id", cmd.AssigneeID)
		return nil, fmt.Errorf("failed to get assignee profile: %w", err)
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.appendAudit(ctx, cmd.Actor, t, assignee.FullName())

	uc.logger.Infow("ticket assigned",
		"ticket_id", t.ID(),
		"assignee_id", cmd.AssigneeID,
		"user_id", cmd.Actor.UserID,
	)
	return &AssignTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *AssignTicketUseCase) appendAudit(ctx context.Context, actor staff.Actor, t *ticket.Ticket, assigneeName string) {
	entry, err := audit.NewTicketEntry(
		actor.UserID,
		audit.ActionTicketAssign,
		t.ID(),
		assignAuditDescription(t.ID(), assigneeName),
	)
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "error", err, "ticket_id", t.ID())
		return
	}
	entry.WithMetadata("assignee_id", t.AssignedTo().String())
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "error", err, "ticket_id", t.ID())
	}
}
