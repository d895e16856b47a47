package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bellebook/salon-scheduler/internal/middleware"
)

func bookingTestRouter(h *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// stand-in for the auth middleware
	asUser := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(7))
		c.Set(middleware.ContextUserRole, "customer")
	}

	r.POST("/api/appointments", asUser, h.Create)
	r.POST("/api/appointments/reserve", asUser, h.Reserve)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	h := newBookingFixture(t)
	r := bookingTestRouter(h)

	w := postJSON(r, "/api/appointments",
		`{"service_id":1,"date":"2026-09-01","start_time":"09:00"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"pending"`) {
		t.Errorf("body %s missing pending status", w.Body.String())
	}
}

func TestCreateAppointmentEndpointConflictBody(t *testing.T) {
	h := newBookingFixture(t)
	r := bookingTestRouter(h)

	first := postJSON(r, "/api/appointments",
		`{"service_id":1,"date":"2026-09-01","start_time":"09:00"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first booking: status = %d, body %s", first.Code, first.Body.String())
	}

	second := postJSON(r, "/api/appointments",
		`{"service_id":1,"date":"2026-09-01","start_time":"09:00"}`)

	if second.Code != http.StatusBadRequest {
		t.Fatalf("second booking: status = %d, body %s", second.Code, second.Body.String())
	}
	if !strings.Contains(second.Body.String(), `"error":"Slot already booked"`) {
		t.Errorf("body = %s, want error field with exact message", second.Body.String())
	}
}

func TestCreateAppointmentEndpointRejectsBadPayload(t *testing.T) {
	h := newBookingFixture(t)
	r := bookingTestRouter(h)

	w := postJSON(r, "/api/appointments", `{"date":"2026-09-01"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestReserveEndpoint(t *testing.T) {
	h := newBookingFixture(t)
	r := bookingTestRouter(h)

	w := postJSON(r, "/api/appointments/reserve",
		`{"service_id":1,"date":"2026-09-01","start_time":"09:00"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, `"hold_id"`) || !strings.Contains(body, `"expires_in":300`) {
		t.Errorf("body = %s", body)
	}
}
