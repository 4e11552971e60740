package usecases

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/application/ticket/testutil"
	"beyazmasa/internal/domain/event"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/errors"
)

type mockEventRepository struct {
	mu     sync.RWMutex
	events map[uint]*event.Event
	nextID uint

	archiveCalls int
}

func newMockEventRepository() *mockEventRepository {
	return &mockEventRepository{events: make(map[uint]*event.Event)}
}

func (m *mockEventRepository) Save(ctx context.Context, e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID() == 0 {
		m.nextID++
		if err := e.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.events[e.ID()] = e
	return nil
}

func (m *mockEventRepository) Update(ctx context.Context, e *event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[e.ID()]; !ok {
		return errors.NewNotFoundError("event not found")
	}
	m.events[e.ID()] = e
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.events[id]
	if !ok {
		return nil, errors.NewNotFoundError("event not found")
	}
	return e, nil
}

func (m *mockEventRepository) List(ctx context.Context, search string) ([]*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*event.Event
	for _, e := range m.events {
		if search == "" || strings.Contains(strings.ToLower(e.Title()), strings.ToLower(search)) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *mockEventRepository) ArchivePast(ctx context.Context, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.archiveCalls++
	for _, e := range m.events {
		if e.IsActive() && e.IsPast(now) {
			e.Toggle()
		}
	}
	return nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.events)), nil
}

func (m *mockEventRepository) CountActive(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, e := range m.events {
		if e.IsActive() {
			n++
		}
	}
	return n, nil
}

func (m *mockEventRepository) CountPast(ctx context.Context, now time.Time) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, e := range m.events {
		if e.IsPast(now) {
			n++
		}
	}
	return n, nil
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*event.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*event.Event
	for _, e := range m.events {
		if e.IsActive() && e.StartTime().After(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime().Before(out[j].StartTime()) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cultureActor() staff.Actor {
	dept := staff.CultureDepartmentID
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &dept}
}

func otherDeptActor() staff.Actor {
	dept := 3
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &dept}
}

func TestAddEvent_CultureDepartmentAllowed(t *testing.T) {
	repo := newMockEventRepository()
	uc := NewAddEventUseCase(repo, testutil.NewNopLogger())

	result, err := uc.Execute(context.Background(), AddEventCommand{
		Actor:     cultureActor(),
		Title:     "Yaz Konseri",
		Location:  "Kent Meydanı",
		StartTime: time.Now().Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "Yaz Konseri", result.Title)
	assert.True(t, result.IsActive)
}

func TestAddEvent_OtherDepartmentDenied(t *testing.T) {
	uc := NewAddEventUseCase(newMockEventRepository(), testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddEventCommand{
		Actor:     otherDeptActor(),
		Title:     "Yaz Konseri",
		StartTime: time.Now(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAddEvent_EndBeforeStartRejected(t *testing.T) {
	uc := NewAddEventUseCase(newMockEventRepository(), testutil.NewNopLogger())

	start := time.Now().Add(48 * time.Hour)
	end := start.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), AddEventCommand{
		Actor:     cultureActor(),
		Title:     "Yaz Konseri",
		StartTime: start,
		EndTime:   &end,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestListEvents_ArchivesPastBeforeListing(t *testing.T) {
	repo := newMockEventRepository()

	past := time.Now().Add(-48 * time.Hour)
	pastEnd := time.Now().Add(-24 * time.Hour)
	ended, err := event.NewEvent("Biten Etkinlik", "", "", past, &pastEnd)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), ended))

	uc := NewListEventsUseCase(repo, testutil.NewNopLogger())
	events, err := uc.Execute(context.Background(), ListEventsQuery{Actor: cultureActor()})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].IsActive)
	assert.Equal(t, 1, repo.archiveCalls)
}

func TestToggleEvent_FlipsActiveFlag(t *testing.T) {
	repo := newMockEventRepository()
	e, err := event.NewEvent("Sergi", "", "Kültür Merkezi", time.Now().Add(time.Hour), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), e))

	uc := NewToggleEventUseCase(repo, testutil.NewNopLogger())
	result, err := uc.Execute(context.Background(), ToggleEventCommand{Actor: cultureActor(), EventID: e.ID()})

	require.NoError(t, err)
	assert.False(t, result.IsActive)

	result, err = uc.Execute(context.Background(), ToggleEventCommand{Actor: cultureActor(), EventID: e.ID()})
	require.NoError(t, err)
	assert.True(t, result.IsActive)
}

func TestUpdateEvent_UnknownIDNotFound(t *testing.T) {
	uc := NewUpdateEventUseCase(newMockEventRepository(), testutil.NewNopLogger())

	_, err := uc.Execute(context.Background(), UpdateEventCommand{
		Actor:     cultureActor(),
		EventID:   99,
		Title:     "Sergi",
		StartTime: time.Now(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
