package review

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

func TestReviewEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(setupTestService(t)).RegisterRoutes(r.Group("/api"))

	rr := doJSONRequest(r, http.MethodPost, "/api/review", map[string]any{
		"bookingId": 1, "userId": 2, "providerId": 3, "rating": 5, "comment": "Spotless work",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var created Review
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 5, created.Rating)

	rr = doJSONRequest(r, http.MethodPost, "/api/review", map[string]any{
		"bookingId": 2, "userId": 4, "providerId": 3, "rating": 2,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSONRequest(r, http.MethodPost, "/api/review", map[string]any{
		"bookingId": 3, "userId": 4, "providerId": 3, "rating": 7,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Rating must be between 1 and 5"}`, rr.Body.String())

	rr = doJSONRequest(r, http.MethodGet, "/api/review/provider/3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var byProvider []Review
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byProvider))
	assert.Len(t, byProvider, 2)

	rr = doJSONRequest(r, http.MethodGet, "/api/review/user/4", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var byUser []Review
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &byUser))
	require.Len(t, byUser, 1)
	assert.Equal(t, 2, byUser[0].Rating)

	rr = doJSONRequest(r, http.MethodGet, "/api/review/provider/3/rating", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var rating Rating
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rating))
	assert.EqualValues(t, 3, rating.ProviderID)
	assert.EqualValues(t, 2, rating.Count)
	assert.InDelta(t, 3.5, rating.Average, 0.001)

	rr = doJSONRequest(r, http.MethodGet, "/api/review/provider/abc/rating", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"message":"Invalid provider id"}`, rr.Body.String())
}
