package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymflow/internal/api"
	"gymflow/internal/booking"
	"gymflow/internal/config"
	"gymflow/internal/identity"
	"gymflow/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := ledger.New(ledger.DefaultClasses())
	require.NoError(t, err)

	return New(Deps{
		Config: &config.Config{
			DefaultUserID:  "current-user",
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
		},
		Bookings: booking.NewService(l),
	})
}

func serve(s *Server, method, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if userID != "" {
		req.Header.Set(identity.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := serve(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 12, resp.Classes)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	serve(s, http.MethodGet, "/classes", "")

	w := serve(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gymflow_http_requests_total")
	assert.Contains(t, w.Body.String(), "gymflow_class_occupancy")
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)

	// CrossFit (id 2) is full with user1 and user2 waiting.
	w := serve(s, http.MethodPost, "/classes/2/book", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"position":3`)

	w = serve(s, http.MethodPost, "/classes/1/book", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"confirmed"`)

	w = serve(s, http.MethodGet, "/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []booking.BookingView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 2)

	w = serve(s, http.MethodGet, "/bookings", "someone-else")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestOptionalRoutesDisabled(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/events", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/notifications/queue", "").Code)
}

func TestShutdown_BeforeStart(t *testing.T) {
	s := newTestServer(t)
	assert.NoError(t, s.Shutdown(context.Background()))
}
