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

// WarningEvidenceMissing is returned on the result when a ticket is resolved
// without a proof photo. Resolution still succeeds; the caller decides how
// loudly to surface it.
const WarningEvidenceMissing = "evidence_missing"

// ResolveTicketCommand represents the input for closing a ticket as resolved.
// EvidenceURL is optional; when set it is attached before the status change.
type ResolveTicketCommand struct {
	Actor       staff.Actor
	TicketID    uint
	EvidenceURL string
}

// ResolveTicketResult represents the output of resolving a ticket.
type ResolveTicketResult struct {
	Ticket  *dto.TicketDTO `json:"ticket"`
	Warning string         `json:"warning,omitempty"`
}

type ResolveTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	policy     ticket.AccessPolicy
	notifier   CitizenNotifier
	logger     logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	policy ticket.AccessPolicy,
	notifier CitizenNotifier,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error) {
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

	if cmd.EvidenceURL != "" {
		if err := t.AttachEvidence(cmd.EvidenceURL); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := t.ChangeStatus(ticket.StatusResolved); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.appendAudit(ctx, cmd.Actor, t)
	uc.notifyCitizen(t.CitizenPhone(), resolvedMessage(t.Summary(), t.CreatedAt()), t.ID())

	result := &ResolveTicketResult{Ticket: dto.FromTicket(t)}
	if !t.HasEvidence() {
		result.Warning = WarningEvidenceMissing
		uc.logger.Warnw("ticket resolved without evidence",
			"ticket_id", t.ID(),
			"user_id", cmd.Actor.UserID,
		)
	}

	uc.logger.Infow("ticket resolved",
		"ticket_id", t.ID(),
		"user_id", cmd.Actor.UserID,
		"has_evidence", t.HasEvidence(),
	)
	return result, nil
}

func (uc *ResolveTicketUseCase) appendAudit(ctx context.Context, actor staff.Actor, t *ticket.Ticket) {
	entry, err := audit.NewTicketEntry(
		actor.UserID,
		audit.ActionTicketResolve,
		t.ID(),
		resolveAuditDescription(t.ID(), t.HasEvidence()),
	)
	if err != nil {
		uc.logger.Errorw("failed to build audit entry", "error", err, "ticket_id", t.ID())
		return
	}
	entry.WithMetadata("has_evidence", t.HasEvidence())
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append audit entry", "error", err, "ticket_id", t.ID())
	}
}

func (uc *ResolveTicketUseCase) notifyCitizen(phone, message string, ticketID uint) {
	goroutine.SafeGo(uc.logger, "notify-citizen", func() {
		if err := uc.notifier.Notify(context.Background(), phone, message); err != nil {
			uc.logger.Warnw("citizen notification failed", "error", err, "ticket_id", ticketID)
		}
	})
}
