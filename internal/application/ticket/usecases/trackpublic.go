package usecases

import (
	"context"
	"strings"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// TrackPublicTicketQuery represents a citizen's status lookup. Both the ticket
// id and the phone used at submission must match.
type TrackPublicTicketQuery struct {
	TicketID uint
	Phone    string
}

// TrackPublicTicketUseCase serves the anonymous status check. Any mismatch,
// wrong id, wrong phone, or no such ticket, yields the same answer so the
// endpoint cannot be used to probe which ids exist.
type TrackPublicTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewTrackPublicTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *TrackPublicTicketUseCase {
	return &TrackPublicTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *TrackPublicTicketUseCase) Execute(ctx context.Context, query TrackPublicTicketQuery) (*dto.PublicStatusDTO, error) {
	phone := strings.TrimSpace(query.Phone)
	if query.TicketID == 0 || phone == "" {
		return nil, errors.NewNotFoundError("Kayıt bulunamadı veya bilgiler hatalı.")
	}

	t, err := uc.ticketRepo.GetByIDAndPhone(ctx, query.TicketID, phone)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to look up public ticket", "error", err, "ticket_id", query.TicketID)
		}
		return nil, errors.NewNotFoundError("Kayıt bulunamadı veya bilgiler hatalı.")
	}

	return dto.ToPublicStatus(t), nil
}
