package geocache

import (
	"encoding/json"
	"os"

	"github.com/ace2884/OR/internal/geo"
)

// Cache is a read-only lookup table from location key to coordinate. It is
// built once at startup and never written afterward, so concurrent reads
// need no locking.
type Cache struct {
	points map[string]geo.Point
}

// Load scans candidate paths in order and builds the cache from the first
// file that parses as {"location": [lat, lon], ...}. A missing or
// unparsable candidate is skipped; if none works the cache is empty and
// every lookup misses. Loading never fails hard: an absent geocache only
// degrades routing to "no coordinates" results.
func Load(paths []string) *Cache {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		var raw map[string][]float64
		if err := json.Unmarshal(data, &raw); err != nil {
			continue
		}
		points := make(map[string]geo.Point, len(raw))
		for key, v := range raw {
			if len(v) < 2 {
				continue
			}
			if v[0] < -90 || v[0] > 90 || v[1] < -180 || v[1] > 180 {
				continue
			}
			points[key] = geo.Point{Lat: v[0], Lon: v[1]}
		}
		return &Cache{points: points}
	}
	return &Cache{points: map[string]geo.Point{}}
}

// New builds a cache from an in-memory mapping. Used by tests and by the
// geocache generator.
func New(points map[string]geo.Point) *Cache {
	copied := make(map[string]geo.Point, len(points))
	for k, v := range points {
		copied[k] = v
	}
	return &Cache{points: copied}
}

// Lookup returns the coordinate for a location key.
func (c *Cache) Lookup(key string) (geo.Point, bool) {
	p, ok := c.points[key]
	return p, ok
}

// Len reports how many locations are cached.
func (c *Cache) Len() int {
	return len(c.points)
}
