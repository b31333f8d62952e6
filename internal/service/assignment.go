package service

import (
	"errors"
	"strings"

	"github.com/ace2884/OR/internal/models"
)

// ErrEmployeeNotFound is returned when neither e_id nor name matches any
// current assignment. Distinct from a matched assignment whose locations
// cannot be routed, which callers must report separately.
var ErrEmployeeNotFound = errors.New("employee not found in current assignments")

var truthyAvailability = map[string]struct{}{
	"yes":       {},
	"true":      {},
	"1":         {},
	"available": {},
	"y":         {},
}

var falsyAvailability = map[string]struct{}{
	"no":    {},
	"false": {},
	"0":     {},
	"n":     {},
}

// AvailabilityTruthy reports whether a free-text availability value counts
// as available. Matching is case-insensitive and trims whitespace.
func AvailabilityTruthy(raw string) bool {
	_, ok := truthyAvailability[normalizeToken(raw)]
	return ok
}

// AvailabilityMatches compares an employee's raw availability against a
// requested filter value. Truthy filters match truthy values, falsy filters
// match falsy values, anything else falls back to substring compare.
func AvailabilityMatches(raw, desired string) bool {
	if strings.TrimSpace(desired) == "" {
		return true
	}
	value := normalizeToken(raw)
	want := normalizeToken(desired)
	if _, ok := truthyAvailability[want]; ok {
		_, match := truthyAvailability[value]
		return match
	}
	if _, ok := falsyAvailability[want]; ok {
		_, match := falsyAvailability[value]
		return match
	}
	return strings.Contains(value, want)
}

// Assign pairs each available employee with every ticket location matching
// their problem category. Locations keep ticket insertion order and
// duplicates (one ticket per visit). Employees that are unavailable, or
// whose category has no outstanding tickets, are skipped. Pure function over
// the two snapshots; output follows the employee input ordering.
func Assign(employees []models.Employee, tickets []models.Ticket) []models.Assignment {
	byCategory := map[string][]string{}
	for _, t := range tickets {
		loc := strings.TrimSpace(t.Location)
		cat := normalizeToken(t.ProblemCategory)
		if loc == "" || cat == "" {
			continue
		}
		byCategory[cat] = append(byCategory[cat], loc)
	}

	var out []models.Assignment
	for _, emp := range employees {
		if !AvailabilityTruthy(emp.Availability) {
			continue
		}
		locs := byCategory[normalizeToken(emp.ProblemCategory)]
		if len(locs) == 0 {
			continue
		}
		out = append(out, models.Assignment{
			EID:               emp.EID,
			Name:              emp.Name,
			ProblemCategory:   emp.ProblemCategory,
			AssignedLocations: locs,
		})
	}
	return out
}

// FindAssignment resolves an assignment by e_id, or by name when no e_id is
// given. Name matching is case-insensitive and trimmed.
func FindAssignment(assignments []models.Assignment, eID, name string) (models.Assignment, error) {
	eID = strings.TrimSpace(eID)
	if eID != "" {
		for _, a := range assignments {
			if a.EID == eID {
				return a, nil
			}
		}
		return models.Assignment{}, ErrEmployeeNotFound
	}
	want := normalizeToken(name)
	if want != "" {
		for _, a := range assignments {
			if normalizeToken(a.Name) == want {
				return a, nil
			}
		}
	}
	return models.Assignment{}, ErrEmployeeNotFound
}

func normalizeToken(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
