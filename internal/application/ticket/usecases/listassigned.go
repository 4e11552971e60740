package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/logger"
)

// ListAssignedQuery represents the input for the actor's own task list.
type ListAssignedQuery struct {
	Actor staff.Actor
}

// ListAssignedUseCase returns the actor's active assignments ordered urgent
// first, oldest first. No policy check is needed: the query is keyed to the
// actor's own id.
type ListAssignedUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListAssignedUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListAssignedUseCase {
	return &ListAssignedUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListAssignedUseCase) Execute(ctx context.Context, query ListAssignedQuery) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListAssigned(ctx, query.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list assigned tickets", "error", err, "user_id", query.Actor.UserID)
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}
	return dto.FromTickets(tickets), nil
}
