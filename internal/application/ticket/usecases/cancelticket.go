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

// CancelTicketCommand represents the input for cancelling a ticket. Admin only;
// cancellation is terminal and carries no citizen notification.
type CancelTicketCommand struct {
	Actor    staff.Actor
	TicketID uint
	Reason   string
}

// CancelTicketResult represents the output of cancelling a ticket.
type CancelTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

type CancelTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewCancelTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !uc.policy.CanCancel(cmd.Actor) {
		uc.logger.Warnw("ticket cancellation denied",
			"user_id", cmd.Actor.UserID,
			"ticket_id", cmd.TicketID,
		)
		return nil, errors.NewForbiddenError("talep iptal yetkiniz yok")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if err := t.ChangeStatus(ticket.StatusCancelled); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	entry, err := audit.NewTicketEntry(
		cmd.Actor.UserID,
		audit.ActionTicketUpdate,
		t.ID(),
		statusAuditDescription(t.ID(), t.Status().String()),
	)
	if err == nil {
		if cmd.Reason != "" {
			entry.WithMetadata("reason", cmd.Reason)
		}
		if appendErr := uc.auditRepo.Append(ctx, entry); appendErr != nil {
			uc.logger.Errorw("failed to append audit entry", "error", appendErr, "ticket_id", t.ID())
		}
	}

	uc.logger.Infow("ticket cancelled",
		"ticket_id", t.ID(),
		"user_id", cmd.Actor.UserID,
	)
	return &CancelTicketResult{Ticket: dto.FromTicket(t)}, nil
}
