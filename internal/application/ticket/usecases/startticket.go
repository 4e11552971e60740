package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/goroutine"
	"beyazmasa/internal/shared/logger"
)

// StartTicketCommand represents the input for taking a ticket into work.
type StartTicketCommand struct {
	Actor    staff.Actor
	TicketID uint
}

// StartTicketResult represents the output of starting work on a ticket.
type StartTicketResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

// StartTicketUseCase moves an open ticket to in_progress, appends the audit
// entry and notifies the citizen. Notification is fire and forget: a webhook
// failure never rolls back the status change.
type StartTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	notifier   CitizenNotifier
	logger     logger.Interface
}

func NewStartTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	notifier CitizenNotifier,
	logger logger.Interface,
) *StartTicketUseCase {
	return &StartTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *StartTicketUseCase) Execute(ctx context.Context, cmd StartTicketCommand) (*StartTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !uc.policy.CanMutate(cmd.Actor, t) {
		uc.logger.Warnw("ticket mutation denied",
			"user_id", cmd.Actor.UserID,
			"ticket_id", cmd.TicketID,
		)
		return nil, errors.NewForbiddenError("bu talep üzerinde işlem yetkiniz yok")
	}

	if err := t.ChangeStatus(ticket.StatusInProgress); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.appendAudit(ctx, cmd.Actor, t)
	uc.notifyCitizen(t.CitizenPhone(), inProgressMessage(t.Summary()), t.ID())

	uc.logger.Infow("ticket started",
		"ticket_id", t.ID(),
		"user_id", cmd.Actor.UserID,
	)
	return &StartTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *StartTicketUseCase) appendAudit(ctx context.Context, actor staff.Actor, t *ticket.Ticket) {
	entry, err := audit.NewTicketEntry(
		actor.UserID,
		audit.ActionTicketUpdate,
		t.ID(),
		statusAuditDescription(t.ID(), t.Status().String()),
	)
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "error", err, "ticket_id", t.ID())
		return
	}
	entry.WithMetadata("status", t.Status().String())
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "error", err, "ticket_id", t.ID())
	}
}

func (uc *StartTicketUseCase) notifyCitizen(phone, message string, ticketID uint) {
	goroutine.SafeGo(uc.logger, "notify-citizen", func() {
		if err := uc.notifier.Notify(context.Background(), phone, message); err != nil {
			uc.logger.Warnw("citizen notification failed", "error", err, "ticket_id", ticketID)
		}
	})
}
