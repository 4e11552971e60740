package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/staff/dto"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/logger"
)

// ProfileStatsQuery represents the input for an actor's own workload summary.
type ProfileStatsQuery struct {
	Actor staff.Actor
}

// ProfileStatsUseCase counts the actor's active and resolved assignments for
// the profile page.
type ProfileStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewProfileStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ProfileStatsUseCase {
	return &ProfileStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ProfileStatsUseCase) Execute(ctx context.Context, query ProfileStatsQuery) (*dto.ProfileStatsDTO, error) {
	active, err := uc.ticketRepo.CountAssigned(ctx, query.Actor.UserID, []ticket.Status{ticket.StatusOpen, ticket.StatusInProgress})
	if err != nil {
		uc.logger.Errorw("failed to count active assignments", "error", err, "user_id", query.Actor.UserID)
		return nil, fmt.Errorf("failed to count active assignments: %w", err)
	}

	resolved, err := uc.ticketRepo.CountAssigned(ctx, query.Actor.UserID, []ticket.Status{ticket.StatusResolved})
	if err != nil {
		uc.logger.Errorw("failed to count resolved assignments", "error", err, "user_id", query.Actor.UserID)
		return nil, fmt.Errorf("failed to count resolved assignments: %w", err)
	}

	return &dto.ProfileStatsDTO{ActiveCount: active, ResolvedCount: resolved}, nil
}
