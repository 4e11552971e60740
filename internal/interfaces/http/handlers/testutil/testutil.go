package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/interfaces/http/middleware"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional body.
func NewTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetActor stores a resolved actor in the gin context, simulating the
// RequireAuth + ResolveActor middleware chain.
func SetActor(c *gin.Context, actor staff.Actor) {
	c.Set(middleware.ContextKeyUserID, actor.UserID.String())
	c.Set(authorization.ContextKeyUserRole, string(actor.Role))
	c.Set(middleware.ContextKeyActor, actor)
}

// AdminActor returns a fresh admin actor.
func AdminActor() staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleAdmin}
}

// StaffActor returns a fresh staff actor in the given department.
func StaffActor(departmentID int) staff.Actor {
	return staff.Actor{UserID: uuid.New(), Role: authorization.RoleStaff, DepartmentID: &departmentID}
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// NewMockLogger returns a logger that discards everything.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
