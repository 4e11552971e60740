// Package usecases assembles the staff dashboard: scoped ticket counters, the
// 30 day intake series, upcoming events, and for admins the recent audit feed.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	eventdto "beyazmasa/internal/application/event/dto"
	ticketdto "beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/logger"
)

const (
	seriesDays     = 30
	recentLogLimit = 10
	upcomingLimit  = 5
)

// GetDashboardQuery represents the input for the dashboard view.
type GetDashboardQuery struct {
	Actor staff.Actor
}

// TicketCounts are the scoped status counters.
type TicketCounts struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Assigned   int64 `json:"assigned"`
}

// DayCount is one bucket of the intake series.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardDTO is the assembled dashboard payload. RecentLogs is only filled
// for admins; the audit feed is not scoped and would leak other departments.
type DashboardDTO struct {
	Counts         TicketCounts               `json:"counts"`
	Series         []DayCount                 `json:"series"`
	UpcomingEvents []*eventdto.EventDTO       `json:"upcoming_events"`
	RecentLogs     []*ticketdto.AuditEntryDTO `json:"recent_logs,omitempty"`
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*DashboardDTO, error)
}

type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	auditRepo  audit.Repository
	eventRepo  event.Repository
	staffRepo  staff.Repository
	policy     ticket.AccessPolicy
	now        func() time.Time
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	ticketRepo ticket.Repository,
	auditRepo audit.Repository,
	eventRepo event.Repository,
	staffRepo staff.Repository,
	policy ticket.AccessPolicy,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		auditRepo:  auditRepo,
		eventRepo:  eventRepo,
		staffRepo:  staffRepo,
		policy:     policy,
		now:        time.Now,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardDTO, error) {
	scope := uc.policy.ViewScopeFor(query.Actor)

	counts, err := uc.loadCounts(ctx, scope, query.Actor)
	if err != nil {
		return nil, err
	}

	series, err := uc.loadSeries(ctx, scope)
	if err != nil {
		return nil, err
	}

	upcoming, err := uc.eventRepo.ListUpcoming(ctx, uc.now(), upcomingLimit)
	if err != nil {
		uc.logger.Errorw("failed to list upcoming events", "error", err)
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	result := &DashboardDTO{
		Counts:         counts,
		Series:         series,
		UpcomingEvents: eventdto.FromEvents(upcoming),
	}

	if query.Actor.IsAdmin() {
		logs, err := uc.loadRecentLogs(ctx)
		if err != nil {
			return nil, err
		}
		result.RecentLogs = logs
	}
	return result, nil
}

func (uc *GetDashboardUseCase) loadCounts(ctx context.Context, scope ticket.ViewScope, actor staff.Actor) (TicketCounts, error) {
	var counts TicketCounts
	var err error

	if counts.Open, err = uc.ticketRepo.CountScoped(ctx, scope, []ticket.Status{ticket.StatusOpen}); err != nil {
		uc.logger.Errorw("failed to count open tickets", "error", err)
		return counts, fmt.Errorf("failed to count open tickets: %w", err)
	}
	if counts.InProgress, err = uc.ticketRepo.CountScoped(ctx, scope, []ticket.Status{ticket.StatusInProgress}); err != nil {
		uc.logger.Errorw("failed to count in-progress tickets", "error", err)
		return counts, fmt.Errorf("failed to count in-progress tickets: %w", err)
	}
	if counts.Resolved, err = uc.ticketRepo.CountScoped(ctx, scope, []ticket.Status{ticket.StatusResolved}); err != nil {
		uc.logger.Errorw("failed to count resolved tickets", "error", err)
		return counts, fmt.Errorf("failed to count resolved tickets: %w", err)
	}
	if counts.Assigned, err = uc.ticketRepo.CountAssigned(ctx, actor.UserID, []ticket.Status{ticket.StatusOpen, ticket.StatusInProgress}); err != nil {
		uc.logger.Errorw("failed to count assigned tickets", "error", err)
		return counts, fmt.Errorf("failed to count assigned tickets: %w", err)
	}
	return counts, nil
}

// loadSeries buckets the last 30 days of intake by calendar day. Days without
// tickets still appear with a zero count so charts render a continuous axis.
func (uc *GetDashboardUseCase) loadSeries(ctx context.Context, scope ticket.ViewScope) ([]DayCount, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	since := today.AddDate(0, 0, -seriesDays+1)

	tickets, err := uc.ticketRepo.ListCreatedSince(ctx, scope, since)
	if err != nil {
		uc.logger.Errorw("failed to load intake series", "error", err)
		return nil, fmt.Errorf("failed to load intake series: %w", err)
	}

	byDay := make(map[string]int64, seriesDays)
	for _, t := range tickets {
		byDay[t.CreatedAt().Format("2006-01-02")]++
	}

	series := make([]DayCount, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := since.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, DayCount{Date: day, Count: byDay[day]})
	}
	return series, nil
}

func (uc *GetDashboardUseCase) loadRecentLogs(ctx context.Context) ([]*ticketdto.AuditEntryDTO, error) {
	entries, err := uc.auditRepo.ListRecent(ctx, recentLogLimit)
	if err != nil {
		uc.logger.Errorw("failed to load recent audit entries", "error", err)
		return nil, fmt.Errorf("failed to load recent audit entries: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if !seen[e.UserID()] {
			seen[e.UserID()] = true
			ids = append(ids, e.UserID())
		}
	}
	names, err := uc.staffRepo.NamesByIDs(ctx, ids)
	if err != nil {
		uc.logger.Warnw("failed to resolve audit actor names", "error", err)
		names = map[uuid.UUID]string{}
	}

	logs := make([]*ticketdto.AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		name := names[e.UserID()]
		if name == "" {
			name = e.UserID().String()
		}
		logs = append(logs, ticketdto.FromAuditEntry(e, name))
	}
	return logs, nil
}
