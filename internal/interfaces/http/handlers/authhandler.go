// Package handlers contains the admin panel endpoints that do not warrant
// their own subpackage.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "beyazmasa/internal/application/identity"
	"beyazmasa/internal/infrastructure/auth"
	infraidentity "beyazmasa/internal/infrastructure/identity"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

// Authenticator validates an email and password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*infraidentity.Account, error)
}

type AuthHandler struct {
	authenticator Authenticator
	jwtService    *auth.JWTService
	resolver      *appidentity.Resolver
	logger        logger.Interface
}

func NewAuthHandler(
	authenticator Authenticator,
	jwtService *auth.JWTService,
	resolver *appidentity.Resolver,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtService:    jwtService,
		resolver:      resolver,
		logger:        log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "e-posta ve şifre gereklidir")
		return
	}

	account, err := h.authenticator.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warnw("login failed", "email", req.Email, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The role claim comes from the profile, not the credential row.
	actor, err := h.resolver.Resolve(c.Request.Context(), account.ID.String())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pair, err := h.jwtService.Generate(account.ID.String(), actor.Role)
	if err != nil {
		h.logger.Errorw("failed to generate session tokens", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "oturum oluşturulamadı")
		return
	}

	h.setSessionCookies(c, pair)
	utils.SuccessResponse(c, http.StatusOK, "", &SessionResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
		UserID:      account.ID.String(),
		Role:        actor.Role.String(),
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(auth.CookieRefreshToken)
	if err != nil || refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "oturum bulunamadı")
		return
	}

	pair, err := h.jwtService.Refresh(refreshToken)
	if err != nil {
		h.logger.Warnw("refresh failed", "error", err)
		h.clearSessionCookies(c)
		utils.ErrorResponse(c, http.StatusUnauthorized, "oturum süresi dolmuş")
		return
	}

	h.setSessionCookies(c, pair)
	utils.SuccessResponse(c, http.StatusOK, "", &SessionResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookies(c)
	utils.SuccessResponse(c, http.StatusOK, "Oturum kapatıldı", nil)
}

// Me handles GET /auth/me and returns the caller's resolved identity.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_id":       actor.UserID.String(),
		"role":          actor.Role.String(),
		"department_id": actor.DepartmentID,
	})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, pair *auth.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieAccessToken, pair.AccessToken, int(pair.ExpiresIn), "/", "", false, true)
	c.SetCookie(auth.CookieRefreshToken, pair.RefreshToken, 30*24*3600, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieAccessToken, "", -1, "/", "", false, true)
	c.SetCookie(auth.CookieRefreshToken, "", -1, "/", "", false, true)
}
