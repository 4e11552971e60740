package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/application/ticket/testutil"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/authorization"
)

type stubEventRepository struct {
	upcoming []*event.Event
}

func (s *stubEventRepository) Save(ctx context.Context, e *event.Event) error   { return nil }
func (s *stubEventRepository) Update(ctx context.Context, e *event.Event) error { return nil }
func (s *stubEventRepository) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	return nil, nil
}
func (s *stubEventRepository) List(ctx context.Context, search string) ([]*event.Event, error) {
	return s.upcoming, nil
}
func (s *stubEventRepository) ArchivePast(ctx context.Context, now time.Time) error { return nil }
func (s *stubEventRepository) Count(ctx context.Context) (int64, error)             { return 0, nil }
func (s *stubEventRepository) CountActive(ctx context.Context) (int64, error)       { return 0, nil }
func (s *stubEventRepository) CountPast(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
func (s *stubEventRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*event.Event, error) {
	return s.upcoming, nil
}

func intPtr(v int) *int { return &v }

func seedTicket(t *testing.T, repo *testutil.MockTicketRepository, id uint, dept int, status ticket.Status) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Vatandaş", "+905550000000", "other", "", "", ticket.PriorityNormal, intPtr(dept))
	require.NoError(t, err)
	require.NoError(t, tk.SetID(id))
	if status != ticket.StatusOpen {
		require.NoError(t, tk.ChangeStatus(ticket.StatusInProgress))
		if status == ticket.StatusResolved {
			require.NoError(t, tk.ChangeStatus(ticket.StatusResolved))
		}
	}
	repo.AddTicket(tk)
	return tk
}

func TestDashboard_StaffCountsScopedToDepartment(t *testing.T) {
	ticketRepo := testutil.NewMockTicketRepository()
	seedTicket(t, ticketRepo, 1, 2, ticket.StatusOpen)
	seedTicket(t, ticketRepo, 2, 2, ticket.StatusInProgress)
	seedTicket(t, ticketRepo, 3, 5, ticket.StatusOpen)

	actor := staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: intPtr(2)}

	uc := NewGetDashboardUseCase(ticketRepo, testutil.NewMockAuditRepository(), &stubEventRepository{}, testutil.NewMockStaffRepository(), ticket.NewAccessPolicy(), testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), GetDashboardQuery{Actor: actor})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Counts.Open)
	assert.Equal(t, int64(1), result.Counts.InProgress)
	assert.Equal(t, int64(0), result.Counts.Resolved)
	assert.Empty(t, result.RecentLogs)
	assert.Len(t, result.Series, 30)
}

func TestDashboard_AdminGetsRecentLogsWithNames(t *testing.T) {
	ticketRepo := testutil.NewMockTicketRepository()
	auditRepo := testutil.NewMockAuditRepository()
	staffRepo := testutil.NewMockStaffRepository()

	actorID := uuid.New()
	profile, err := staff.NewProfile(actorID, "Mehmet Demir", authorization.RoleAdmin, nil)
	require.NoError(t, err)
	staffRepo.AddProfile(profile)

	entry, err := audit.NewEntry(actorID, audit.ActionTicketUpdate, "Talep #1 durumu \"in_progress\" olarak güncellendi.")
	require.NoError(t, err)
	require.NoError(t, auditRepo.Append(context.Background(), entry))

	admin := staff.Actor{UserID: actorID, Role: authorization.RoleAdmin}

	uc := NewGetDashboardUseCase(ticketRepo, auditRepo, &stubEventRepository{}, staffRepo, ticket.NewAccessPolicy(), testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), GetDashboardQuery{Actor: admin})

	require.NoError(t, err)
	require.Len(t, result.RecentLogs, 1)
	assert.Equal(t, "Mehmet Demir", result.RecentLogs[0].UserName)
}

func TestDashboard_SeriesCoversEveryDay(t *testing.T) {
	ticketRepo := testutil.NewMockTicketRepository()
	seedTicket(t, ticketRepo, 1, 2, ticket.StatusOpen)

	admin := staff.Actor{UserID: uuid.New(), Role: authorization.RoleAdmin}

	uc := NewGetDashboardUseCase(ticketRepo, testutil.NewMockAuditRepository(), &stubEventRepository{}, testutil.NewMockStaffRepository(), ticket.NewAccessPolicy(), testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), GetDashboardQuery{Actor: admin})

	require.NoError(t, err)
	require.Len(t, result.Series, 30)

	var total int64
	for _, day := range result.Series {
		total += day.Count
	}
	assert.Equal(t, int64(1), total)
	assert.Equal(t, time.Now().Format("2006-01-02"), result.Series[29].Date)
}
