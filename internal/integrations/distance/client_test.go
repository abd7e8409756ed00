package distance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/route" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("origin"); got != "Antalya Airport" {
			t.Errorf("unexpected origin %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distanceKm": 42.5, "durationMinutes": 50}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	route, err := c.Route(context.Background(), "Antalya Airport", "Kemer")
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if route.DistanceKm != 42.5 || route.DurationMinutes != 50 {
		t.Fatalf("unexpected route %+v", route)
	}
}

func TestClientRouteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.Route(context.Background(), "Nowhere", "Elsewhere")
	if !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestClientRouteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.Route(context.Background(), "A", "B")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClientRouteUnconfigured(t *testing.T) {
	c := NewClient("", 0)
	_, err := c.Route(context.Background(), "A", "B")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
