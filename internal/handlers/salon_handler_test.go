package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bellebook/salon-scheduler/internal/models"
)

// city hall, central Seoul
const (
	centerLat = 37.5665
	centerLng = 126.9780
)

func TestHaversineKm(t *testing.T) {
	if d := haversineKm(centerLat, centerLng, centerLat, centerLng); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}

	// one degree of latitude is ~111.19 km
	d := haversineKm(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("1 degree latitude = %f km, want ~111.19", d)
	}
}

func TestNearbySalonsOrdersAndBounds(t *testing.T) {
	salons := []models.Salon{
		{ID: 1, Name: "Gangnam", Latitude: 37.4979, Longitude: 127.0276},  // ~8.7 km
		{ID: 2, Name: "City Hall", Latitude: centerLat, Longitude: centerLng},
		{ID: 3, Name: "Busan", Latitude: 35.1796, Longitude: 129.0756},    // ~325 km, cut
		{ID: 4, Name: "Hongdae", Latitude: 37.5563, Longitude: 126.9220},  // ~5.1 km
	}

	got := nearbySalons(salons, centerLat, centerLng)

	if len(got) != 3 {
		t.Fatalf("got %d salons, want 3 (Busan outside %.0f km)", len(got), nearbyRadiusKm)
	}

	wantOrder := []uint{2, 4, 1}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: salon %d (%.1f km), want salon %d",
				i, got[i].ID, got[i].DistanceKm, id)
		}
	}

	for _, s := range got {
		if s.DistanceKm > nearbyRadiusKm {
			t.Errorf("salon %d at %.1f km exceeds the radius", s.ID, s.DistanceKm)
		}
	}
	if got[0].DistanceKm != 0 {
		t.Errorf("co-located salon distance = %f, want 0", got[0].DistanceKm)
	}
}

func TestNearbyRejectsBadCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// coordinate validation happens before any storage access
	h := NewSalonHandler(nil, nil)
	r.GET("/api/salons/nearby", h.Nearby)

	for _, query := range []string{"", "?lat=37.5", "?lat=abc&lng=127.0"} {
		req := httptest.NewRequest(http.MethodGet, "/api/salons/nearby"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", query, w.Code)
		}
	}
}
