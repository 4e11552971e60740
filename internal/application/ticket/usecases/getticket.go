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

// GetTicketQuery represents the input for the ticket detail view.
type GetTicketQuery struct {
	Actor    staff.Actor
	TicketID uint
}

// GetTicketUseCase loads a single ticket together with its audit trail. Actor
// display names on the trail are resolved at read time; a deleted staff account
// shows up as its raw id rather than breaking the view.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	staffRepo  staff.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	staffRepo staff.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		staffRepo:  staffRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", query.TicketID)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !uc.policy.CanView(query.Actor, t) {
		uc.logger.Warnw("ticket view denied",
			"user_id", query.Actor.UserID,
			"ticket_id", query.TicketID,
		)
		return nil, errors.NewForbiddenError("bu talebi görüntüleme yetkiniz yok")
	}

	entries, err := uc.auditRepo.ListByTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load audit trail", "error", err, "ticket_id", query.TicketID)
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}

	names, err := uc.resolveActorNames(ctx, entries)
	if err != nil {
		// Name resolution is cosmetic; the trail itself is the record.
		uc.logger.Warnw("failed to resolve audit actor names", "error", err, "ticket_id", query.TicketID)
		names = map[uuid.UUID]string{}
	}

	logs := make([]*dto.AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, dto.FromAuditEntry(e, assigneeDisplayName(names, e.UserID())))
	}

	return &dto.TicketDetailDTO{
		Ticket: dto.FromTicket(t),
		Logs:   logs,
	}, nil
}

func (uc *GetTicketUseCase) resolveActorNames(ctx context.Context, entries []*audit.Entry) (map[uuid.UUID]string, error) {
	if len(entries) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	seen := make(map[uuid.UUID]bool, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if !seen[e.UserID()] {
			seen[e.UserID()] = true
			ids = append(ids, e.UserID())
		}
	}
	return uc.staffRepo.NamesByIDs(ctx, ids)
}
