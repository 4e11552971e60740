package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentity "beyazmasa/internal/application/identity"
	ticketutil "beyazmasa/internal/application/ticket/testutil"
	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/infrastructure/auth"
	infraidentity "beyazmasa/internal/infrastructure/identity"
	"beyazmasa/internal/interfaces/http/handlers/testutil"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/errors"
)

type mockAuthenticator struct {
	account *infraidentity.Account
	err     error
}

func (m *mockAuthenticator) Authenticate(_ context.Context, _, _ string) (*infraidentity.Account, error) {
	return m.account, m.err
}

func newTestAuthHandler(t *testing.T, authenticator Authenticator, profile *staff.Profile) *AuthHandler {
	t.Helper()

	staffRepo := ticketutil.NewMockStaffRepository()
	if profile != nil {
		staffRepo.AddProfile(profile)
	}
	resolver := appidentity.NewResolver(staffRepo, testutil.NewMockLogger())
	jwtService := auth.NewJWTService("test-secret", 15, 7)

	return NewAuthHandler(authenticator, jwtService, resolver, testutil.NewMockLogger())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	userID := uuid.New()
	dept := 3
	profile, err := staff.NewProfile(userID, "Ali Kaya", authorization.RoleStaff, &dept)
	require.NoError(t, err)

	authenticator := &mockAuthenticator{
		account: &infraidentity.Account{ID: userID, Email: "ali@belediye.gov.tr"},
	}
	handler := newTestAuthHandler(t, authenticator, profile)

	reqBody := LoginRequest{Email: "ali@belediye.gov.tr", Password: "gizli-sifre"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.True(t, resp.Success)

	var session SessionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &session))
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, userID.String(), session.UserID)
	assert.Equal(t, "staff", session.Role)

	cookies := w.Result().Cookies()
	names := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		names = append(names, ck.Name)
	}
	assert.Contains(t, names, auth.CookieAccessToken)
	assert.Contains(t, names, auth.CookieRefreshToken)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	authenticator := &mockAuthenticator{err: errors.NewUnauthorizedError("e-posta veya şifre hatalı")}
	handler := newTestAuthHandler(t, authenticator, nil)

	reqBody := LoginRequest{Email: "ali@belediye.gov.tr", Password: "yanlis"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_NoProfile(t *testing.T) {
	// Valid credentials but no staff profile: the account has no role and
	// cannot open a session.
	authenticator := &mockAuthenticator{
		account: &infraidentity.Account{ID: uuid.New(), Email: "eski@belediye.gov.tr"},
	}
	handler := newTestAuthHandler(t, authenticator, nil)

	reqBody := LoginRequest{Email: "eski@belediye.gov.tr", Password: "gizli-sifre"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Login_BindError(t *testing.T) {
	handler := newTestAuthHandler(t, &mockAuthenticator{}, nil)

	reqBody := map[string]string{"email": "not-an-email"}
	c, w := testutil.NewTestContext(http.MethodPost, "/auth/login", reqBody)

	handler.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	handler := newTestAuthHandler(t, &mockAuthenticator{}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)

	handler.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	userID := uuid.New()
	handler := newTestAuthHandler(t, &mockAuthenticator{}, nil)

	pair, err := handler.jwtService.Generate(userID.String(), authorization.RoleAdmin)
	require.NoError(t, err)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: auth.CookieRefreshToken, Value: pair.RefreshToken})

	handler.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Refresh_RejectsAccessTokenCookie(t *testing.T) {
	userID := uuid.New()
	handler := newTestAuthHandler(t, &mockAuthenticator{}, nil)

	pair, err := handler.jwtService.Generate(userID.String(), authorization.RoleAdmin)
	require.NoError(t, err)

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: auth.CookieRefreshToken, Value: pair.AccessToken})

	handler.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	handler := newTestAuthHandler(t, &mockAuthenticator{}, nil)
	actor := testutil.StaffActor(4)

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/me", nil)
	testutil.SetActor(c, actor)

	handler.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}
