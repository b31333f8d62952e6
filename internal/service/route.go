package service

import (
	"math"

	"github.com/ace2884/OR/internal/geo"
	"github.com/ace2884/OR/internal/geocache"
	"github.com/ace2884/OR/internal/models"
)

// PlanRoute builds a visiting order over the given locations with a greedy
// nearest-neighbor walk. Locations missing from the cache are reported in
// Dropped rather than silently discarded. The walk starts at depot when the
// depot is itself one of the resolvable locations, otherwise at the first
// resolvable location in caller order, which keeps the output deterministic
// for a fixed input ordering. O(n^2) in the number of resolvable locations;
// the result is a Hamiltonian path over them, not a globally shortest tour.
func PlanRoute(cache *geocache.Cache, locations []string, depot string) models.RoutePlan {
	coords := make(map[string]geo.Point, len(locations))
	nodes := make([]string, 0, len(locations))
	seen := make(map[string]struct{}, len(locations))
	var dropped []string
	for _, loc := range locations {
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		p, ok := cache.Lookup(loc)
		if !ok {
			dropped = append(dropped, loc)
			continue
		}
		coords[loc] = p
		nodes = append(nodes, loc)
	}

	if len(nodes) == 0 {
		return models.RoutePlan{Route: []string{}, DistanceKm: 0, Dropped: dropped}
	}

	start := nodes[0]
	if _, ok := coords[depot]; ok && depot != "" {
		start = depot
	}

	route := []string{start}
	visited := map[string]struct{}{start: {}}
	total := 0.0
	current := start

	for len(visited) < len(nodes) {
		nearest := ""
		nearestDist := math.Inf(1)
		for _, n := range nodes {
			if _, ok := visited[n]; ok {
				continue
			}
			d := geo.DistanceKm(coords[current], coords[n])
			if d < nearestDist {
				nearestDist = d
				nearest = n
			}
		}
		route = append(route, nearest)
		total += nearestDist
		visited[nearest] = struct{}{}
		current = nearest
	}

	return models.RoutePlan{
		Route:      route,
		DistanceKm: geo.RoundKm(total),
		Dropped:    dropped,
	}
}
