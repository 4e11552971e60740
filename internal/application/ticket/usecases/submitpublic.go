package usecases

import (
	"context"
	"fmt"
	"strings"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// SubmitPublicTicketCommand represents a citizen's intake form. There is no
// actor: the caller is anonymous and the use case runs with elevated store
// access on the citizen's behalf.
type SubmitPublicTicketCommand struct {
	CitizenName       string
	CitizenPhone      string
	CitizenNationalID string
	TicketType        string
	Summary           string
	Description       string
	Latitude          *float64
	Longitude         *float64
	MediaURL          string
}

// SubmitPublicTicketResult represents the output of a public submission. The
// ticket id is returned so the citizen can track status later.
type SubmitPublicTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

// SubmitPublicTicketUseCase is the single write path reachable without a
// session. Status, priority and source are fixed by the domain constructor;
// free-text fields are sanitized before they are stored.
type SubmitPublicTicketUseCase struct {
	ticketRepo ticket.Repository
	sanitizer  Sanitizer
	feed       TicketFeed
	logger     logger.Interface
}

func NewSubmitPublicTicketUseCase(
	ticketRepo ticket.Repository,
	sanitizer Sanitizer,
	feed TicketFeed,
	logger logger.Interface,
) *SubmitPublicTicketUseCase {
	return &SubmitPublicTicketUseCase{
		ticketRepo: ticketRepo,
		sanitizer:  sanitizer,
		feed:       feed,
		logger:     logger,
	}
}

func (uc *SubmitPublicTicketUseCase) Execute(ctx context.Context, cmd SubmitPublicTicketCommand) (*SubmitPublicTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	var nationalID *string
	if id := strings.TrimSpace(cmd.CitizenNationalID); id != "" {
		nationalID = &id
	}
	var mediaURL *string
	if cmd.MediaURL != "" {
		mediaURL = &cmd.MediaURL
	}

	t, err := ticket.NewPublicTicket(
		uc.clean(cmd.CitizenName),
		strings.TrimSpace(cmd.CitizenPhone),
		nationalID,
		uc.clean(cmd.TicketType),
		uc.clean(cmd.Summary),
		uc.clean(cmd.Description),
		cmd.Latitude,
		cmd.Longitude,
		mediaURL,
	)
	if err != nil {
		return nil, errors.NewValidationError("Zorunlu alanlar eksik.")
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		return nil, uc.mapStoreError(err)
	}

	if uc.feed != nil {
		uc.feed.TicketCreated(dto.FromTicket(t))
	}

	uc.logger.Infow("public ticket submitted",
		"ticket_id", t.ID(),
		"ticket_type", t.TicketType(),
	)
	return &SubmitPublicTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

func (uc *SubmitPublicTicketUseCase) validateCommand(cmd SubmitPublicTicketCommand) error {
	if strings.TrimSpace(cmd.CitizenName) == "" ||
		strings.TrimSpace(cmd.CitizenPhone) == "" ||
		strings.TrimSpace(cmd.TicketType) == "" {
		return errors.NewValidationError("Zorunlu alanlar eksik.")
	}
	return nil
}

func (uc *SubmitPublicTicketUseCase) clean(s string) string {
	return strings.TrimSpace(uc.sanitizer.Sanitize(s))
}

// mapStoreError translates constraint violations into the citizen-facing
// messages; everything else stays internal.
func (uc *SubmitPublicTicketUseCase) mapStoreError(err error) error {
	switch {
	case errors.IsMissingRequiredError(err):
		return errors.NewValidationError("Zorunlu alanlar eksik.")
	case errors.IsDuplicateError(err):
		return errors.NewConflictError("Mükerrer kayıt.")
	default:
		uc.logger.Errorw("failed to save public ticket", "error", err)
		return fmt.Errorf("failed to save public ticket: %w", err)
	}
}
