// Command geocachegen builds a geocache file for the dispatch backend by
// resolving location names through Nominatim. Input is a text file with one
// location per line; output is the JSON mapping the server loads at startup.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ace2884/OR/internal/geocode"
)

func main() {
	input := flag.String("input", "locations.txt", "file with one location name per line")
	output := flag.String("output", "data/geocache.json", "geocache JSON file to write")
	region := flag.String("region", "", "region suffix appended to every query, e.g. \"Hyderabad, India\"")
	interval := flag.Duration("interval", time.Second, "minimum delay between Nominatim requests")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	logger := log.With().Str("service", "geocachegen").Logger()

	locations, err := readLocations(*input)
	if err != nil {
		logger.Fatal().Err(err).Str("input", *input).Msg("failed to read locations")
	}
	if len(locations) == 0 {
		logger.Fatal().Str("input", *input).Msg("no locations to geocode")
	}

	geocoder := &geocode.NominatimGeocoder{MinInterval: *interval}
	ctx := context.Background()

	cache := map[string][2]float64{}
	for _, loc := range locations {
		point, err := geocoder.Geocode(ctx, geocode.BuildQuery(loc, *region))
		if err != nil {
			logger.Warn().Err(err).Str("location", loc).Msg("skipping location")
			continue
		}
		cache[loc] = [2]float64{point.Lat, point.Lon}
		logger.Info().Str("location", loc).Float64("lat", point.Lat).Float64("lon", point.Lon).Msg("resolved")
	}

	if err := writeCache(*output, cache); err != nil {
		logger.Fatal().Err(err).Str("output", *output).Msg("failed to write geocache")
	}
	logger.Info().Int("entries", len(cache)).Str("output", *output).Msg("geocache written")
}

func readLocations(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out, scanner.Err()
}

func writeCache(path string, cache map[string][2]float64) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
