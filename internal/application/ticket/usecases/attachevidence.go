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

// AttachEvidenceCommand represents the input for attaching a proof photo to a
// ticket outside the resolve flow, e.g. a field photo uploaded mid-work.
type AttachEvidenceCommand struct {
	Actor       staff.Actor
	TicketID    uint
	EvidenceURL string
}

// AttachEvidenceResult represents the output of attaching evidence.
type AttachEvidenceResult struct {
	Ticket *dto.TicketDTO `json:"ticket"`
}

type AttachEvidenceUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewAttachEvidenceUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *AttachEvidenceUseCase {
	return &AttachEvidenceUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *AttachEvidenceUseCase) Execute(ctx context.Context, cmd AttachEvidenceCommand) (*AttachEvidenceResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.EvidenceURL == "" {
		return nil, errors.NewValidationError("evidence URL is required")
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
		return nil, errors.NewForbiddenError("bu talep üzerinde işlem yetkiniz yok")
	}

	if err := t.AttachEvidence(cmd.EvidenceURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	entry, err := audit.NewTicketEntry(cmd.Actor.UserID, audit.ActionTicketUpdate, t.ID(), evidenceAuditDescription(t.ID()))
	if err == nil {
		if appendErr := uc.auditRepo.Append(ctx, entry); appendErr != nil {
			uc.logger.Errorw("failed to append audit entry", "error", appendErr, "ticket_id", t.ID())
		}
	}

	uc.logger.Infow("evidence attached", "ticket_id", t.ID(), "user_id", cmd.Actor.UserID)
	return &AttachEvidenceResult{Ticket: dto.FromTicket(t)}, nil
}
