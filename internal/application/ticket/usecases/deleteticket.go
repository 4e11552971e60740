package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// DeleteTicketCommand represents the input for permanently deleting a ticket.
// Admin only.
type DeleteTicketCommand struct {
	Actor    staff.Actor
	TicketID uint
}

// DeleteTicketUseCase removes a ticket row. The audit entry is written without
// a ticket reference since the row no longer exists; the description keeps the
// old id for grepping.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if !uc.policy.CanDelete(cmd.Actor) {
		uc.logger.Warnw("ticket deletion denied",
			"user_id", cmd.Actor.UserID,
			"ticket_id", cmd.TicketID,
		)
		return errors.NewForbiddenError("talep silme yetkiniz yok")
	}

	// Existence check first so a missing id returns not found, not success.
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", cmd.TicketID)
		return fmt.Errorf("failed to get ticket: %w", err)
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	entry, err := audit.NewEntry(cmd.Actor.UserID, audit.ActionTicketUpdate, deleteAuditDescription(cmd.TicketID))
	if err == nil {
		entry.WithMetadata("deleted_ticket_id", cmd.TicketID)
		if appendErr := uc.auditRepo.Append(ctx, entry); appendErr != nil {
			uc.logger.Errorw("failed to append audit entry", "error", appendErr, "ticket_id", cmd.TicketID)
		}
	}

	uc.logger.Infow("ticket deleted",
		"ticket_id", cmd.TicketID,
		"user_id", cmd.Actor.UserID,
	)
	return nil
}
