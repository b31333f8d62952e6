package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/ace2884/OR/internal/geo"
)

// ErrNotFound means the geocoding provider had no result for the query.
var ErrNotFound = errors.New("geocode not found")

// Geocoder resolves a free-text place query to a coordinate. Used offline by
// the geocache generator; the serving path only ever reads the generated
// cache file.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (geo.Point, error)
}

// BuildQuery joins a location key with an optional region suffix into a
// provider query, e.g. "Ameerpet" + "Hyderabad, India".
func BuildQuery(location, region string) string {
	location = strings.TrimSpace(location)
	region = strings.TrimSpace(region)
	if region == "" {
		return location
	}
	return location + ", " + region
}
