package usecases

import (
	"context"
	"fmt"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

// sortableColumns is the only set of columns a caller may order by. Anything
// else falls back to the default ordering instead of reaching the database.
var sortableColumns = map[string]bool{
	"created_at":   true,
	"status":       true,
	"priority":     true,
	"ticket_type":  true,
	"citizen_name": true,
}

const (
	defaultSortBy    = "created_at"
	defaultSortOrder = "desc"
)

// ListTicketsQuery represents the input for the scoped ticket listing.
type ListTicketsQuery struct {
	Actor        staff.Actor
	Search       string
	StatusFilter string
	SortBy       string
	SortOrder    string
	Page         int
}

// ListTicketsResult represents one page of the listing.
type ListTicketsResult struct {
	Tickets    []*dto.TicketDTO `json:"tickets"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ListTicketsUseCase serves the main ticket table. The actor's view scope is
// derived here and handed to the repository so filtering happens inside the
// scoped subset.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	policy     ticket.AccessPolicy
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	scope := uc.policy.ViewScopeFor(query.Actor)
	if scope.Scope == ticket.ScopeNone {
		uc.logger.Debugw("actor has no view scope, returning empty page",
			"user_id", query.Actor.UserID,
		)
		return &ListTicketsResult{
			Tickets:    []*dto.TicketDTO{},
			Page:       utils.DefaultPage,
			PageSize:   utils.TicketPageSize,
			TotalPages: 1,
		}, nil
	}

	filter, err := uc.buildFilter(scope, query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Tickets:    dto.FromTickets(tickets),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: utils.TotalPages(total, filter.PageSize),
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(scope ticket.ViewScope, query ListTicketsQuery) (ticket.Filter, error) {
	sortBy := query.SortBy
	if !sortableColumns[sortBy] {
		sortBy = defaultSortBy
	}
	sortOrder := query.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultSortOrder
	}

	filter := ticket.Filter{
		Scope:     scope,
		Search:    query.Search,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}

	if query.StatusFilter != "" && query.StatusFilter != "all" {
		status, err := ticket.NormalizeStatus(query.StatusFilter)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError(fmt.Sprintf("invalid status filter: %s", query.StatusFilter))
		}
		filter.Status = &status
	}

	pagination := utils.ValidatePagination(query.Page, utils.TicketPageSize, utils.TicketPageSize)
	filter.Page = pagination.Page
	filter.PageSize = pagination.PageSize
	return filter, nil
}
