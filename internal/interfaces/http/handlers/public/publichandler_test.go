package public

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "beyazmasa/internal/application/ticket/dto"
	"beyazmasa/internal/application/ticket/usecases"
	"beyazmasa/internal/interfaces/http/handlers/testutil"
	"beyazmasa/internal/shared/errors"
)

type mockSubmitUC struct {
	result *usecases.SubmitPublicTicketResult
	err    error
	cmd    usecases.SubmitPublicTicketCommand
}

func (m *mockSubmitUC) Execute(_ context.Context, cmd usecases.SubmitPublicTicketCommand) (*usecases.SubmitPublicTicketResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockTrackUC struct {
	result *ticketdto.PublicStatusDTO
	err    error
	query  usecases.TrackPublicTicketQuery
}

func (m *mockTrackUC) Execute(_ context.Context, query usecases.TrackPublicTicketQuery) (*ticketdto.PublicStatusDTO, error) {
	m.query = query
	return m.result, m.err
}

func newTestPublicHandler(submitUC usecases.SubmitPublicTicketExecutor, trackUC usecases.TrackPublicTicketExecutor) *PublicHandler {
	return NewPublicHandler(submitUC, trackUC, testutil.NewMockLogger())
}

func TestPublicHandler_SubmitTicket_Success(t *testing.T) {
	mockUC := &mockSubmitUC{
		result: &usecases.SubmitPublicTicketResult{TicketID: 12, Status: "open"},
	}
	handler := newTestPublicHandler(mockUC, nil)

	reqBody := SubmitTicketRequest{
		CitizenName:  "Mehmet Demir",
		CitizenPhone: "05419876543",
		TicketType:   "yol",
		Summary:      "kaldırımda çukur",
		Description:  "okul önünde derin çukur var",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/public/tickets", reqBody)

	handler.SubmitTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "05419876543", mockUC.cmd.CitizenPhone)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Talebiniz alınmıştır", resp.Message)
}

func TestPublicHandler_SubmitTicket_MissingFields(t *testing.T) {
	handler := newTestPublicHandler(&mockSubmitUC{}, nil)

	reqBody := map[string]string{"citizen_name": "Mehmet Demir"}
	c, w := testutil.NewTestContext(http.MethodPost, "/public/tickets", reqBody)

	handler.SubmitTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestPublicHandler_SubmitTicket_InvalidMediaURL(t *testing.T) {
	handler := newTestPublicHandler(&mockSubmitUC{}, nil)

	reqBody := SubmitTicketRequest{
		CitizenName:  "Mehmet Demir",
		CitizenPhone: "05419876543",
		TicketType:   "yol",
		Summary:      "kaldırımda çukur",
		MediaURL:     "not-a-url",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/public/tickets", reqBody)

	handler.SubmitTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicHandler_TrackTicket_Success(t *testing.T) {
	mockUC := &mockTrackUC{
		result: &ticketdto.PublicStatusDTO{ID: 12, Status: "in_progress", Summary: "kaldırımda çukur"},
	}
	handler := newTestPublicHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/public/tickets/12", nil)
	testutil.SetURLParam(c, "id", "12")
	testutil.SetQueryParams(c, map[string]string{"phone": "05419876543"})

	handler.TrackTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(12), mockUC.query.TicketID)
	assert.Equal(t, "05419876543", mockUC.query.Phone)
}

func TestPublicHandler_TrackTicket_InvalidID(t *testing.T) {
	handler := newTestPublicHandler(nil, &mockTrackUC{})

	c, w := testutil.NewTestContext(http.MethodGet, "/public/tickets/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.TrackTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicHandler_TrackTicket_WrongPhone(t *testing.T) {
	mockUC := &mockTrackUC{err: errors.NewNotFoundError("Kayıt bulunamadı veya bilgiler hatalı.")}
	handler := newTestPublicHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/public/tickets/12", nil)
	testutil.SetURLParam(c, "id", "12")
	testutil.SetQueryParams(c, map[string]string{"phone": "05000000000"})

	handler.TrackTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
