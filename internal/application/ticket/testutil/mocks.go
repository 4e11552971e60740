// Package testutil provides mock implementations for testing the ticket application layer.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/domain/audit"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/domain/ticket"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// MockTicketRepository is an in-memory implementation of ticket.Repository.
type MockTicketRepository struct {
	mu      sync.RWMutex
	tickets map[uint]*ticket.Ticket
	nextID  uint

	// Error injection for testing
	SaveError   error
	UpdateError error
	GetError    error
	DeleteError error
	ListError   error
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{tickets: make(map[uint]*ticket.Ticket)}
}

// AddTicket seeds the repository with an existing ticket.
func (m *MockTicketRepository) AddTicket(t *ticket.Ticket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[t.ID()] = t
	if t.ID() > m.nextID {
		m.nextID = t.ID()
	}
}

func (m *MockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	if t.ID() == 0 {
		m.nextID++
		if err := t.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.tickets[id]; !ok {
		return errors.NewNotFoundError("ticket not found")
	}
	delete(m.tickets, id)
	return nil
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	t, ok := m.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *MockTicketRepository) GetByIDAndPhone(ctx context.Context, id uint, phone string) (*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	t, ok := m.tickets[id]
	if !ok || t.CitizenPhone() != phone {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *MockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	var matched []*ticket.Ticket
	for _, t := range m.tickets {
		if !m.inScope(t, filter.Scope) {
			continue
		}
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(t.CitizenName()), needle) &&
				!strings.Contains(strings.ToLower(t.Summary()), needle) {
				continue
			}
		}
		matched = append(matched, t)
	}

	sort.Slice(matched, func(i, j int) bool {
		if filter.SortOrder == "asc" {
			return matched[i].CreatedAt().Before(matched[j].CreatedAt())
		}
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []*ticket.Ticket{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *MockTicketRepository) inScope(t *ticket.Ticket, scope ticket.ViewScope) bool {
	switch scope.Scope {
	case ticket.ScopeAll:
		return true
	case ticket.ScopeDepartment:
		return t.DepartmentID() != nil && *t.DepartmentID() == scope.DepartmentID
	default:
		return false
	}
}

func (m *MockTicketRepository) ListAssigned(ctx context.Context, assigneeID uuid.UUID) ([]*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []*ticket.Ticket
	for _, t := range m.tickets {
		if t.AssignedTo() != nil && *t.AssignedTo() == assigneeID && t.Status().IsActive() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Priority(), out[j].Priority()
		if pi != pj {
			return pi == ticket.PriorityCritical || (pi == ticket.PriorityHigh && pj == ticket.PriorityNormal)
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

func (m *MockTicketRepository) CountAssigned(ctx context.Context, assigneeID uuid.UUID, statuses []ticket.Status) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, t := range m.tickets {
		if t.AssignedTo() == nil || *t.AssignedTo() != assigneeID {
			continue
		}
		for _, s := range statuses {
			if t.Status() == s {
				count++
				break
			}
		}
	}
	return count, nil
}

func (m *MockTicketRepository) CountScoped(ctx context.Context, scope ticket.ViewScope, statuses []ticket.Status) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, t := range m.tickets {
		if !m.inScope(t, scope) {
			continue
		}
		if len(statuses) == 0 {
			count++
			continue
		}
		for _, s := range statuses {
			if t.Status() == s {
				count++
				break
			}
		}
	}
	return count, nil
}

func (m *MockTicketRepository) ListCreatedSince(ctx context.Context, scope ticket.ViewScope, since time.Time) ([]*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*ticket.Ticket
	for _, t := range m.tickets {
		if m.inScope(t, scope) && !t.CreatedAt().Before(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MockTicketRepository) ListResolvedSince(ctx context.Context, since time.Time) ([]*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*ticket.Ticket
	for _, t := range m.tickets {
		if t.Status().IsResolved() && !t.UpdatedAt().Before(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MockTicketRepository) ListGeolocated(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*ticket.Ticket
	for _, t := range m.tickets {
		if t.HasCoordinates() {
			out = append(out, t)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MockAuditRepository is an in-memory implementation of audit.Repository.
type MockAuditRepository struct {
	mu      sync.RWMutex
	entries []*audit.Entry
	nextID  uint

	AppendError error
	ListError   error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendError != nil {
		return m.AppendError
	}
	if entry.ID() == 0 {
		m.nextID++
		if err := entry.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockAuditRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*audit.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []*audit.Entry
	for _, e := range m.entries {
		if e.TicketID() != nil && *e.TicketID() == ticketID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]*audit.Entry, len(m.entries))
	copy(out, m.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Entries returns a snapshot of everything appended so far.
func (m *MockAuditRepository) Entries() []*audit.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*audit.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// MockStaffRepository is an in-memory implementation of staff.Repository.
type MockStaffRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*staff.Profile

	GetError  error
	SaveError error
}

func NewMockStaffRepository() *MockStaffRepository {
	return &MockStaffRepository{profiles: make(map[uuid.UUID]*staff.Profile)}
}

func (m *MockStaffRepository) AddProfile(p *staff.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID()] = p
}

func (m *MockStaffRepository) Save(ctx context.Context, p *staff.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.profiles[p.ID()] = p
	return nil
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return errors.NewNotFoundError("profile not found")
	}
	delete(m.profiles, id)
	return nil
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*staff.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, errors.NewNotFoundError("profile not found")
	}
	return p, nil
}

func (m *MockStaffRepository) List(ctx context.Context) ([]*staff.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*staff.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })
	return out, nil
}

func (m *MockStaffRepository) NamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	names := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if p, ok := m.profiles[id]; ok {
			names[id] = p.FullName()
		}
	}
	return names, nil
}

// MockNotifier records citizen notifications.
type MockNotifier struct {
	mu    sync.Mutex
	calls []NotifyCall

	NotifyError error
}

type NotifyCall struct {
	Phone   string
	Message string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(ctx context.Context, phone, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, NotifyCall{Phone: phone, Message: message})
	return m.NotifyError
}

func (m *MockNotifier) Calls() []NotifyCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]NotifyCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// WaitForCalls polls until n notifications arrived or the timeout expires.
// Notifications run on detached goroutines, so tests need to wait.
func (m *MockNotifier) WaitForCalls(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		m.mu.Lock()
		count := len(m.calls)
		m.mu.Unlock()
		if count >= n {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}

// PassthroughSanitizer returns input unchanged, for tests that do not care
// about markup stripping.
type PassthroughSanitizer struct{}

func (PassthroughSanitizer) Sanitize(s string) string { return s }

// MockFeed records tickets pushed to the realtime feed.
type MockFeed struct {
	mu      sync.Mutex
	tickets []*dto.TicketDTO
}

func NewMockFeed() *MockFeed {
	return &MockFeed{}
}

func (m *MockFeed) TicketCreated(t *dto.TicketDTO) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets = append(m.tickets, t)
}

func (m *MockFeed) Created() []*dto.TicketDTO {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*dto.TicketDTO, len(m.tickets))
	copy(out, m.tickets)
	return out
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() logger.Interface {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) With(args ...any) logger.Interface               { return nopLogger{} }
func (nopLogger) Named(name string) logger.Interface              { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
