package googlemaps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	return New(Config{
		APIKey:   "test-key",
		BaseURL:  serverURL,
		Language: "uk",
		Region:   "ua",
		Timeout:  2 * time.Second,
	})
}

func TestRouteDistanceSumsLegs(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"routes": [{"legs": [
				{"distance": {"value": 12000}},
				{"distance": {"value": 8500}},
				{"distance": {"value": 4730}}
			]}]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	dist := c.RouteDistance(context.Background(), "Метро Харківська, Київ",
		[]string{"вул. Хрещатик 1, Київ", "Бровари"})

	if !dist.Available() {
		t.Fatalf("expected distance available, got reason %q", dist.Reason)
	}
	// 25230 m -> 25.2 km
	if dist.Km != 25.2 {
		t.Errorf("expected 25.2 km, got %v", dist.Km)
	}
	if !strings.Contains(gotQuery, "mode=driving") {
		t.Errorf("expected mode=driving in query, got %q", gotQuery)
	}
	if !strings.Contains(gotQuery, "optimize%3Atrue") {
		t.Errorf("expected optimized waypoints in query, got %q", gotQuery)
	}
}

func TestRouteDistanceRoundsHalfAwayFromZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","routes":[{"legs":[{"distance":{"value":1250}}]}]}`))
	}))
	defer srv.Close()

	dist := newTestClient(srv.URL).RouteDistance(context.Background(), "base", []string{"a"})
	if !dist.Available() {
		t.Fatalf("expected available, got %q", dist.Reason)
	}
	if dist.Km != 1.3 {
		t.Errorf("expected 1250 m to round to 1.3 km, got %v", dist.Km)
	}
}

func TestRouteDistanceNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
	}))
	defer srv.Close()

	dist := newTestClient(srv.URL).RouteDistance(context.Background(), "base", []string{"nowhere"})
	if dist.Available() {
		t.Fatal("expected unavailable distance for ZERO_RESULTS")
	}
	if dist.Reason == "" {
		t.Error("expected a failure reason")
	}
}

func TestRouteDistanceHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dist := newTestClient(srv.URL).RouteDistance(context.Background(), "base", []string{"a"})
	if dist.Available() {
		t.Fatal("expected unavailable distance on server error")
	}
}

func TestRouteDistanceMissingKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(Config{APIKey: "", BaseURL: srv.URL})
	dist := c.RouteDistance(context.Background(), "base", []string{"a"})
	if dist.Available() {
		t.Fatal("expected unavailable distance without an api key")
	}
	if called {
		t.Error("expected no network call without an api key")
	}
}

func TestRouteDistanceNoWaypoints(t *testing.T) {
	c := New(Config{APIKey: "key"})
	dist := c.RouteDistance(context.Background(), "base", nil)
	if dist.Available() {
		t.Fatal("expected unavailable distance for empty waypoints")
	}
}
