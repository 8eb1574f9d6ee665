package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _, _ := setupStore(t)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

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

func createViaAPI(t *testing.T, r http.Handler) Booking {
	t.Helper()
	rr := doJSONRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"userId":      3,
		"providerId":  8,
		"serviceType": "Carpentry",
		"bookingDate": "2026-12-01",
		"bookingTime": "16:45",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var b Booking
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	return b
}

func TestBookingEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	b := createViaAPI(t, r)
	assert.Equal(t, StatusPending, b.Status)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/bookings/%d", b.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, key := range []string{"bookingId", "userId", "providerId", "serviceType", "bookingDate", "bookingTime", "status", "createdAt"} {
		assert.Contains(t, raw, key)
	}

	rr = doJSONRequest(r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", b.ID), map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"COMPLETED"`)

	rr = doJSONRequest(r, http.MethodPatch, fmt.Sprintf("/api/bookings/%d/status", b.ID), map[string]any{"status": "paid"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"PAID"`)

	for _, path := range []string{"/api/bookings", "/api/bookings/user/3", "/api/bookings/provider/8"} {
		rr = doJSONRequest(r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rr.Code, path)
		var list []Booking
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		assert.Len(t, list, 1, path)
	}
}

func TestBookingEndpoints_StatusErrors(t *testing.T) {
	r := setupTestRouter(t)
	b := createViaAPI(t, r)
	path := fmt.Sprintf("/api/bookings/%d/status", b.ID)

	rr := doJSONRequest(r, http.MethodPut, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Status is required"}`, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPut, path, map[string]any{"status": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodPut, path, map[string]any{"status": "SHIPPED"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid booking status: SHIPPED"}`, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPut, "/api/bookings/9999/status", map[string]any{"status": "ACCEPTED"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Booking not found with id: 9999"}`, rr.Body.String())
}

func TestBookingEndpoints_Cancel(t *testing.T) {
	r := setupTestRouter(t)
	b := createViaAPI(t, r)
	path := fmt.Sprintf("/api/bookings/%d/cancel", b.ID)

	rr := doJSONRequest(r, http.MethodPatch, path, map[string]any{"userId": 4})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = doJSONRequest(r, http.MethodPatch, path, map[string]any{"userId": 3})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"CANCELLED"`)
}

func TestBookingEndpoints_CreateValidation(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodPost, "/api/bookings", map[string]any{"userId": 1})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSONRequest(r, http.MethodPost, "/api/bookings", map[string]any{
		"userId": 1, "providerId": 2, "serviceType": "Painting", "bookingDate": "tomorrow", "bookingTime": "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Booking date must be in YYYY-MM-DD format"}`, rr.Body.String())
}
