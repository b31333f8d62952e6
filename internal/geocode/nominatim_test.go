package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBuildQuery(t *testing.T) {
	if q := BuildQuery(" Ameerpet ", "Hyderabad, India"); q != "Ameerpet, Hyderabad, India" {
		t.Fatalf("unexpected query: %s", q)
	}
	if q := BuildQuery("Ameerpet", ""); q != "Ameerpet" {
		t.Fatalf("expected bare location, got %s", q)
	}
}

func TestNominatimGeocode(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat": "17.4375", "lon": "78.4483"}]`))
	}))
	defer srv.Close()

	g := &NominatimGeocoder{BaseURL: srv.URL, MinInterval: time.Millisecond}
	p, err := g.Geocode(context.Background(), "Ameerpet")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if p.Lat != 17.4375 || p.Lon != 78.4483 {
		t.Fatalf("unexpected point: %+v", p)
	}

	// Second call for the same query must come from the in-memory cache.
	if _, err := g.Geocode(context.Background(), "Ameerpet"); err != nil {
		t.Fatalf("cached geocode: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", hits)
	}
}

func TestNominatimGeocodeNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := &NominatimGeocoder{BaseURL: srv.URL, MinInterval: time.Millisecond}
	if _, err := g.Geocode(context.Background(), "Nowhere"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
