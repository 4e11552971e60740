package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/interfaces/http/handlers/testutil"
	"beyazmasa/internal/shared/errors"
)

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
	query  usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.query = query
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDetailDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDetailDTO, error) {
	return m.result, m.err
}

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	cmd    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockStartTicketUC struct {
	result *usecases.StartTicketResult
	err    error
}

func (m *mockStartTicketUC) Execute(_ context.Context, _ usecases.StartTicketCommand) (*usecases.StartTicketResult, error) {
	return m.result, m.err
}

type mockResolveTicketUC struct {
	result *usecases.ResolveTicketResult
	err    error
	cmd    usecases.ResolveTicketCommand
}

func (m *mockResolveTicketUC) Execute(_ context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAttachEvidenceUC struct {
	result *usecases.AttachEvidenceResult
	err    error
}

func (m *mockAttachEvidenceUC) Execute(_ context.Context, _ usecases.AttachEvidenceCommand) (*usecases.AttachEvidenceResult, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *usecases.AssignTicketResult
	err    error
	cmd    usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*usecases.AssignTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockCancelTicketUC struct {
	result *usecases.CancelTicketResult
	err    error
}

func (m *mockCancelTicketUC) Execute(_ context.Context, _ usecases.CancelTicketCommand) (*usecases.CancelTicketResult, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) error {
	return m.err
}

type mockListAssignedUC struct {
	result []*ticketdto.TicketDTO
	err    error
}

func (m *mockListAssignedUC) Execute(_ context.Context, _ usecases.ListAssignedQuery) ([]*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type testDeps struct {
	listTicketsUC    usecases.ListTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	createTicketUC   usecases.CreateTicketExecutor
	startTicketUC    usecases.StartTicketExecutor
	resolveTicketUC  usecases.ResolveTicketExecutor
	attachEvidenceUC usecases.AttachEvidenceExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	cancelTicketUC   usecases.CancelTicketExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	listAssignedUC   usecases.ListAssignedExecutor
}

func newTestHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.listTicketsUC,
		deps.getTicketUC,
		deps.createTicketUC,
		deps.startTicketUC,
		deps.resolveTicketUC,
		deps.attachEvidenceUC,
		deps.assignTicketUC,
		deps.cancelTicketUC,
		deps.deleteTicketUC,
		deps.listAssignedUC,
		testutil.NewMockLogger(),
	)
}

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets:    []*ticketdto.TicketDTO{{ID: 1, Summary: "çukur"}},
			Total:      1,
			Page:       1,
			PageSize:   20,
			TotalPages: 1,
		},
	}
	handler := newTestHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{
		"search":     "çukur",
		"status":     "open",
		"sort_by":    "created_at",
		"sort_order": "desc",
		"page":       "2",
	})
	testutil.SetActor(c, testutil.AdminActor())

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "çukur", mockUC.query.Search)
	assert.Equal(t, "open", mockUC.query.StatusFilter)
	assert.Equal(t, 2, mockUC.query.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestTicketHandler_ListTickets_UseCaseError(t *testing.T) {
	mockUC := &mockListTicketsUC{err: errors.NewInternalError("db down")}
	handler := newTestHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetActor(c, testutil.AdminActor())

	handler.ListTickets(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	mockUC := &mockGetTicketUC{
		result: &ticketdto.TicketDetailDTO{
			Ticket: &ticketdto.TicketDTO{ID: 5, Summary: "lamba"},
		},
	}
	handler := newTestHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/5", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, testutil.AdminActor())

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetActor(c, testutil.AdminActor())

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{err: errors.NewNotFoundError("talep bulunamadı")}
	handler := newTestHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/999", nil)
	testutil.SetURLParam(c, "id", "999")
	testutil.SetActor(c, testutil.AdminActor())

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			Ticket: &ticketdto.TicketDTO{ID: 1, Status: "open"},
		},
	}
	handler := newTestHandler(testDeps{createTicketUC: mockUC})
	actor := testutil.StaffActor(3)

	reqBody := CreateTicketRequest{
		CitizenName:  "Ayşe Yılmaz",
		CitizenPhone: "05321234567",
		TicketType:   "cevre",
		Summary:      "çöp toplanmadı",
		Priority:     "high",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetActor(c, actor)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, actor.UserID, mockUC.cmd.Actor.UserID)
	assert.Equal(t, "çöp toplanmadı", mockUC.cmd.Summary)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"citizen_name": "sadece isim"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetActor(c, testutil.AdminActor())

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestTicketHandler_ResolveTicket_WithoutBody(t *testing.T) {
	mockUC := &mockResolveTicketUC{
		result: &usecases.ResolveTicketResult{
			Ticket:  &ticketdto.TicketDTO{ID: 5, Status: "resolved"},
			Warning: "kanıt fotoğrafı eksik",
		},
	}
	handler := newTestHandler(testDeps{resolveTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/5/resolve", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, testutil.StaffActor(3))

	handler.ResolveTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.cmd.EvidenceURL)
}

func TestTicketHandler_ResolveTicket_WithEvidence(t *testing.T) {
	mockUC := &mockResolveTicketUC{
		result: &usecases.ResolveTicketResult{
			Ticket: &ticketdto.TicketDTO{ID: 5, Status: "resolved"},
		},
	}
	handler := newTestHandler(testDeps{resolveTicketUC: mockUC})

	reqBody := ResolveTicketRequest{EvidenceURL: "https://cdn.example.com/e.jpg"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/5/resolve", reqBody)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, testutil.StaffActor(3))

	handler.ResolveTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://cdn.example.com/e.jpg", mockUC.cmd.EvidenceURL)
}

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	assignee := uuid.New()
	mockUC := &mockAssignTicketUC{
		result: &usecases.AssignTicketResult{
			Ticket: &ticketdto.TicketDTO{ID: 7},
		},
	}
	handler := newTestHandler(testDeps{assignTicketUC: mockUC})

	reqBody := AssignTicketRequest{AssigneeID: assignee.String()}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/7/assign", reqBody)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetActor(c, testutil.AdminActor())

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assignee, mockUC.cmd.AssigneeID)
}

func TestTicketHandler_AssignTicket_InvalidAssignee(t *testing.T) {
	handler := newTestHandler(testDeps{})

	reqBody := map[string]string{"assignee_id": "not-a-uuid"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/7/assign", reqBody)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetActor(c, testutil.AdminActor())

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_StartTicket_ForbiddenError(t *testing.T) {
	mockUC := &mockStartTicketUC{err: errors.NewForbiddenError("bu talebi işleme yetkiniz yok")}
	handler := newTestHandler(testDeps{startTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/5/start", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, testutil.StaffActor(2))

	handler.StartTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTicketHandler_DeleteTicket_Success(t *testing.T) {
	handler := newTestHandler(testDeps{deleteTicketUC: &mockDeleteTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/9", nil)
	testutil.SetURLParam(c, "id", "9")
	testutil.SetActor(c, testutil.AdminActor())

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_ListAssigned_Success(t *testing.T) {
	mockUC := &mockListAssignedUC{
		result: []*ticketdto.TicketDTO{{ID: 3}, {ID: 4}},
	}
	handler := newTestHandler(testDeps{listAssignedUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/assigned", nil)
	testutil.SetActor(c, testutil.StaffActor(3))

	handler.ListAssigned(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
