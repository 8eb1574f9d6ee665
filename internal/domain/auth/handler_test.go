package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSONRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func setupTestRouter(t *testing.T) (*gin.Engine, fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := setupTestService(t)

	r := gin.New()
	NewHandler(f.svc).RegisterRoutes(r.Group("/api"))
	return r, f
}

func TestAuthEndpoints(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/auth/test", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Backend is running")

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/register", map[string]any{
		"fullName": "Asha Verma",
		"mobile":   "9876543210",
		"email":    "asha@example.com",
		"password": "Passw0rd!",
		"role":     "SERVICE_PROVIDER",
		"price":    "450.50",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var reg AccountSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reg))
	assert.Equal(t, "/provider-dashboard", reg.RedirectURL)
	assert.NotContains(t, rr.Body.String(), "password")

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"mobile":   "9876543210",
		"password": "Passw0rd!",
		"role":     "SERVICE_PROVIDER",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var login AccountSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	assert.Equal(t, reg.ID, login.ID)
	assert.Equal(t, "Login successful", login.Message)
}

func TestAuthEndpointErrors(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/auth/register", map[string]any{
		"fullName": "Asha Verma",
		"mobile":   "98765",
		"password": "Passw0rd!",
		"role":     "USER",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid mobile number. Must be 10 digits."}`, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/login", map[string]any{
		"mobile":   "9876543210",
		"password": "Passw0rd!",
		"role":     "USER",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPost, "/api/auth/login", map[string]any{"mobile": "9876543210"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterServerError(t *testing.T) {
	r, f := setupTestRouter(t)
	require.NoError(t, f.db.Migrator().DropTable(&Identity{}))

	rr := doJSONRequest(r, http.MethodPost, "/api/auth/register", map[string]any{
		"fullName": "Asha Verma",
		"mobile":   "9876543210",
		"password": "Passw0rd!",
		"role":     "USER",
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Server error")
	assert.NotContains(t, rr.Body.String(), "no such table")
}
