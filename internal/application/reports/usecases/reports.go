// Package usecases builds the admin reporting views: per-department resolution
// performance over the last 90 days and the geolocated complaint heatmap.
package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uber/h3-go/v4"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

const (
	reportWindowDays = 90
	// heatmapResolution 8 gives cells of roughly half a square kilometer,
	// fine enough to separate neighborhoods without isolating single homes.
	heatmapResolution = 8
	heatmapSampleSize = 1000
)

// GetReportsQuery represents the input for the performance report. Admin only.
type GetReportsQuery struct {
	Actor staff.Actor
}

// GetHeatmapQuery represents the input for the complaint heatmap. Admin only.
type GetHeatmapQuery struct {
	Actor staff.Actor
}

// DepartmentPerformanceDTO is one department's 90 day summary.
type DepartmentPerformanceDTO struct {
	DepartmentID     int     `json:"department_id"`
	TotalTickets     int     `json:"total_tickets"`
	ResolvedTickets  int     `json:"resolved_tickets"`
	AvgResolutionHrs float64 `json:"avg_resolution_hours"`
	EfficiencyPct    float64 `json:"efficiency_pct"`
}

// ReportsDTO is the assembled performance report.
type ReportsDTO struct {
	WindowDays  int                         `json:"window_days"`
	Departments []*DepartmentPerformanceDTO `json:"departments"`
}

// HeatmapCellDTO is one hexagonal bucket of geolocated complaints.
type HeatmapCellDTO struct {
	Cell  string  `json:"cell"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Count int     `json:"count"`
}

type GetReportsExecutor interface {
	Execute(ctx context.Context, query GetReportsQuery) (*ReportsDTO, error)
}

type GetHeatmapExecutor interface {
	Execute(ctx context.Context, query GetHeatmapQuery) ([]*HeatmapCellDTO, error)
}

type GetReportsUseCase struct {
	ticketRepo ticket.Repository
	now        func() time.Time
	logger     logger.Interface
}

func NewGetReportsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetReportsUseCase {
	return &GetReportsUseCase{ticketRepo: ticketRepo, now: time.Now, logger: logger}
}

func (uc *GetReportsUseCase) Execute(ctx context.Context, query GetReportsQuery) (*ReportsDTO, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("raporlara erişim yetkiniz yok")
	}

	since := uc.now().AddDate(0, 0, -reportWindowDays)
	scope := ticket.ViewScope{Scope: ticket.ScopeAll}

	tickets, err := uc.ticketRepo.ListCreatedSince(ctx, scope, since)
	if err != nil {
		uc.logger.Errorw("failed to load report window", "error", err)
		return nil, fmt.Errorf("failed to load report window: %w", err)
	}

	type deptAcc struct {
		total         int
		resolved      int
		resolutionSum time.Duration
	}
	byDept := map[int]*deptAcc{}
	for _, t := range tickets {
		if t.DepartmentID() == nil {
			continue
		}
		acc := byDept[*t.DepartmentID()]
		if acc == nil {
			acc = &deptAcc{}
			byDept[*t.DepartmentID()] = acc
		}
		acc.total++
		if t.Status().IsResolved() {
			acc.resolved++
			// UpdatedAt is the last touch; for a resolved ticket that is the
			// resolution moment since terminal tickets take no further writes.
			acc.resolutionSum += t.UpdatedAt().Sub(t.CreatedAt())
		}
	}

	departments := make([]*DepartmentPerformanceDTO, 0, len(byDept))
	for id, acc := range byDept {
		d := &DepartmentPerformanceDTO{
			DepartmentID:    id,
			TotalTickets:    acc.total,
			ResolvedTickets: acc.resolved,
		}
		if acc.resolved > 0 {
			d.AvgResolutionHrs = acc.resolutionSum.Hours() / float64(acc.resolved)
		}
		if acc.total > 0 {
			d.EfficiencyPct = float64(acc.resolved) / float64(acc.total) * 100
		}
		departments = append(departments, d)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].DepartmentID < departments[j].DepartmentID
	})

	return &ReportsDTO{WindowDays: reportWindowDays, Departments: departments}, nil
}

// GetHeatmapUseCase buckets geolocated complaints into H3 hexagons so the map
// view renders density instead of thousands of individual pins.
type GetHeatmapUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetHeatmapUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetHeatmapUseCase) Execute(ctx context.Context, query GetHeatmapQuery) ([]*HeatmapCellDTO, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("raporlara erişim yetkiniz yok")
	}

	tickets, err := uc.ticketRepo.ListGeolocated(ctx, heatmapSampleSize)
	if err != nil {
		uc.logger.Errorw("failed to load geolocated tickets", "error", err)
		return nil, fmt.Errorf("failed to load geolocated tickets: %w", err)
	}

	counts := map[h3.Cell]int{}
	for _, t := range tickets {
		cell, err := h3.LatLngToCell(h3.NewLatLng(*t.Latitude(), *t.Longitude()), heatmapResolution)
		if err != nil {
			uc.logger.Warnw("skipping ticket with unindexable coordinates",
				"error", err,
				"ticket_id", t.ID(),
			)
			continue
		}
		counts[cell]++
	}

	cells := make([]*HeatmapCellDTO, 0, len(counts))
	for cell, count := range counts {
		center, err := h3.CellToLatLng(cell)
		if err != nil {
			continue
		}
		cells = append(cells, &HeatmapCellDTO{
			Cell:  cell.String(),
			Lat:   center.Lat,
			Lng:   center.Lng,
			Count: count,
		})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Count > cells[j].Count })
	return cells, nil
}
