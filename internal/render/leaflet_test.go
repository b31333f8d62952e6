package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/ace2884/OR/internal/geo"
)

func TestRenderRouteEmptyStops(t *testing.T) {
	r := LeafletRenderer{}
	if _, err := r.RenderRoute(nil); !errors.Is(err, ErrNoStops) {
		t.Fatalf("expected ErrNoStops, got %v", err)
	}
}

func TestRenderRouteSingleStop(t *testing.T) {
	r := LeafletRenderer{}
	html, err := r.RenderRoute([]Stop{
		{Location: "Ameerpet", Point: geo.Point{Lat: 17.4375, Lon: 78.4483}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Ameerpet") {
		t.Fatalf("expected stop name in artifact")
	}
	if !strings.Contains(html, `"role":"origin"`) {
		t.Fatalf("single stop must be marked as origin")
	}
	if strings.Contains(html, `"role":"terminus"`) {
		t.Fatalf("single stop must not also be a terminus")
	}
}

func TestRenderRouteMarksRolesAndSegments(t *testing.T) {
	r := LeafletRenderer{Zoom: 13}
	stops := []Stop{
		{Location: "A", Point: geo.Point{Lat: 10, Lon: 10}},
		{Location: "B", Point: geo.Point{Lat: 10, Lon: 11}},
		{Location: "C", Point: geo.Point{Lat: 10, Lon: 12}},
	}
	html, err := r.RenderRoute(stops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"role":"origin"`, `"role":"waypoint"`, `"role":"terminus"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in artifact", want)
		}
	}
	// Two consecutive pairs, so two segment annotations at their midpoints.
	if got := strings.Count(html, `"mid_lat"`); got != 2 {
		t.Fatalf("expected 2 segments, got %d", got)
	}
	if !strings.Contains(html, `"zoom":13`) {
		t.Fatalf("expected configured zoom in artifact")
	}
	if !strings.Contains(html, "<html>") || !strings.Contains(html, "leaflet") {
		t.Fatalf("expected a self-contained leaflet document")
	}
}
