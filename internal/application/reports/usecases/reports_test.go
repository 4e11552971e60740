package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/application/ticket/testutil"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/errors"
)

func intPtr(v int) *int { return &v }

func adminActor() staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleAdmin}
}

func TestGetReports_AdminOnly(t *testing.T) {
	uc := NewGetReportsUseCase(testutil.NewMockTicketRepository(), testutil.NewNopLogger())

	dept := 2
	_, err := uc.Execute(context.Background(), GetReportsQuery{
		Actor: staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &dept},
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetReports_DepartmentAggregation(t *testing.T) {
	repo := testutil.NewMockTicketRepository()

	open, err := ticket.NewTicket("A", "+905550000001", "road", "", "", ticket.PriorityNormal, intPtr(2))
	require.NoError(t, err)
	require.NoError(t, open.SetID(1))
	repo.AddTicket(open)

	resolved, err := ticket.NewTicket("B", "+905550000002", "road", "", "", ticket.PriorityNormal, intPtr(2))
	require.NoError(t, err)
	require.NoError(t, resolved.SetID(2))
	require.NoError(t, resolved.ChangeStatus(ticket.StatusInProgress))
	require.NoError(t, resolved.ChangeStatus(ticket.StatusResolved))
	repo.AddTicket(resolved)

	orphan, err := ticket.NewTicket("C", "+905550000003", "road", "", "", ticket.PriorityNormal, nil)
	require.NoError(t, err)
	require.NoError(t, orphan.SetID(3))
	repo.AddTicket(orphan)

	uc := NewGetReportsUseCase(repo, testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), GetReportsQuery{Actor: adminActor()})

	require.NoError(t, err)
	assert.Equal(t, 90, result.WindowDays)
	require.Len(t, result.Departments, 1)

	dept := result.Departments[0]
	assert.Equal(t, 2, dept.DepartmentID)
	assert.Equal(t, 2, dept.TotalTickets)
	assert.Equal(t, 1, dept.ResolvedTickets)
	assert.InDelta(t, 50.0, dept.EfficiencyPct, 0.01)
}

func TestGetHeatmap_BucketsNearbyComplaints(t *testing.T) {
	repo := testutil.NewMockTicketRepository()

	lat, lng := 41.0082, 28.9784
	for i := uint(1); i <= 3; i++ {
		jitter := float64(i) * 0.0001
		la, ln := lat+jitter, lng+jitter
		tk, err := ticket.NewPublicTicket("V", "+905550000004", nil, "garbage", "", "", &la, &ln, nil)
		require.NoError(t, err)
		require.NoError(t, tk.SetID(i))
		repo.AddTicket(tk)
	}

	farLat, farLng := 39.9334, 32.8597
	far, err := ticket.NewPublicTicket("V", "+905550000005", nil, "garbage", "", "", &farLat, &farLng, nil)
	require.NoError(t, err)
	require.NoError(t, far.SetID(4))
	repo.AddTicket(far)

	uc := NewGetHeatmapUseCase(repo, testutil.NewNopLogger())
	cells, err := uc.Execute(context.Background(), GetHeatmapQuery{Actor: adminActor()})

	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, 3, cells[0].Count)
	assert.Equal(t, 1, cells[1].Count)
	assert.InDelta(t, lat, cells[0].Lat, 0.01)
}

func TestGetHeatmap_AdminOnly(t *testing.T) {
	uc := NewGetHeatmapUseCase(testutil.NewMockTicketRepository(), testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), GetHeatmapQuery{Actor: staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff}})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
