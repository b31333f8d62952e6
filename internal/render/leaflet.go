package render

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/ace2884/OR/internal/geo"
)

// LeafletRenderer draws a route as a self-contained Leaflet HTML document:
// one marker per stop (origin green, terminus red, waypoints blue), a
// polyline across the stops in visiting order, and a distance label at the
// midpoint of every consecutive pair.
type LeafletRenderer struct {
	// Zoom is the initial map zoom level. Zero means the default of 12.
	Zoom int
}

type mapMarker struct {
	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Role     string  `json:"role"`
	Stop     int     `json:"stop"`
}

type mapSegment struct {
	MidLat     float64 `json:"mid_lat"`
	MidLon     float64 `json:"mid_lon"`
	DistanceKm float64 `json:"distance_km"`
}

type mapPayload struct {
	CenterLat float64      `json:"center_lat"`
	CenterLon float64      `json:"center_lon"`
	Zoom      int          `json:"zoom"`
	Markers   []mapMarker  `json:"markers"`
	Path      [][2]float64 `json:"path"`
	Segments  []mapSegment `json:"segments"`
}

func (r LeafletRenderer) RenderRoute(stops []Stop) (string, error) {
	if len(stops) == 0 {
		return "", ErrNoStops
	}

	zoom := r.Zoom
	if zoom == 0 {
		zoom = 12
	}

	payload := mapPayload{Zoom: zoom}
	for i, s := range stops {
		payload.CenterLat += s.Point.Lat
		payload.CenterLon += s.Point.Lon

		role := "waypoint"
		switch {
		case i == 0:
			role = "origin"
		case i == len(stops)-1:
			role = "terminus"
		}
		payload.Markers = append(payload.Markers, mapMarker{
			Location: s.Location,
			Lat:      s.Point.Lat,
			Lon:      s.Point.Lon,
			Role:     role,
			Stop:     i + 1,
		})
		payload.Path = append(payload.Path, [2]float64{s.Point.Lat, s.Point.Lon})
	}
	payload.CenterLat /= float64(len(stops))
	payload.CenterLon /= float64(len(stops))

	for i := 0; i < len(stops)-1; i++ {
		mid := geo.Midpoint(stops[i].Point, stops[i+1].Point)
		payload.Segments = append(payload.Segments, mapSegment{
			MidLat:     mid.Lat,
			MidLon:     mid.Lon,
			DistanceKm: geo.RoundKm(geo.DistanceKm(stops[i].Point, stops[i+1].Point)),
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := routeMapTemplate.Execute(&buf, template.JS(data)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var routeMapTemplate = template.Must(template.New("route_map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Route Map</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var data = {{.}};
var map = L.map('map').setView([data.center_lat, data.center_lon], data.zoom);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var colors = {origin: 'green', terminus: 'red', waypoint: 'blue'};
data.markers.forEach(function (m) {
  L.circleMarker([m.lat, m.lon], {
    radius: 8,
    color: colors[m.role],
    fillColor: colors[m.role],
    fillOpacity: 0.9
  }).addTo(map).bindPopup('Stop ' + m.stop + ': ' + m.location).bindTooltip('Stop ' + m.stop);
});
if (data.path.length > 1) {
  L.polyline(data.path, {color: 'red', weight: 3, opacity: 0.8}).addTo(map);
}
data.segments.forEach(function (s) {
  L.circleMarker([s.mid_lat, s.mid_lon], {
    radius: 3,
    color: 'black',
    fillColor: 'black',
    fillOpacity: 1
  }).addTo(map).bindPopup(s.distance_km + ' km');
});
</script>
</body>
</html>
`))
