package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ace2884/OR/internal/models"
)

func TestAssignMatchesCategoryAndAvailability(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", Name: "Asha", ProblemCategory: "leak", Availability: "yes"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "leak"},
		{Location: "B", ProblemCategory: "leak"},
	}

	got := Assign(employees, tickets)
	if len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
	if got[0].EID != "E1" {
		t.Fatalf("expected E1, got %s", got[0].EID)
	}
	if !reflect.DeepEqual(got[0].AssignedLocations, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", got[0].AssignedLocations)
	}
}

func TestAssignExcludesUnavailableEmployee(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", ProblemCategory: "leak", Availability: "No"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "leak"},
	}
	if got := Assign(employees, tickets); len(got) != 0 {
		t.Fatalf("unavailable employee must be excluded, got %v", got)
	}
}

func TestAssignCategoryMatchIsCaseInsensitive(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", ProblemCategory: "  Leak ", Availability: "Available"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "LEAK"},
	}
	got := Assign(employees, tickets)
	if len(got) != 1 {
		t.Fatalf("expected category match across case/whitespace, got %v", got)
	}
}

func TestAssignKeepsDuplicateLocations(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", ProblemCategory: "wiring", Availability: "1"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "wiring"},
		{Location: "A", ProblemCategory: "wiring"},
		{Location: "B", ProblemCategory: "wiring"},
	}
	got := Assign(employees, tickets)
	if len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].AssignedLocations, []string{"A", "A", "B"}) {
		t.Fatalf("duplicates must be kept in order, got %v", got[0].AssignedLocations)
	}
}

func TestAssignSkipsEmployeeWithNoMatchingTickets(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", ProblemCategory: "plumbing", Availability: "yes"},
		{EID: "E2", ProblemCategory: "wiring", Availability: "yes"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "wiring"},
	}
	got := Assign(employees, tickets)
	if len(got) != 1 || got[0].EID != "E2" {
		t.Fatalf("expected only E2 assigned, got %v", got)
	}
}

func TestAssignSkipsTicketsMissingLocationOrCategory(t *testing.T) {
	employees := []models.Employee{
		{EID: "E1", ProblemCategory: "leak", Availability: "yes"},
	}
	tickets := []models.Ticket{
		{Location: "", ProblemCategory: "leak"},
		{Location: "B", ProblemCategory: ""},
	}
	if got := Assign(employees, tickets); len(got) != 0 {
		t.Fatalf("expected no assignments, got %v", got)
	}
}

func TestAssignPreservesEmployeeOrder(t *testing.T) {
	employees := []models.Employee{
		{EID: "E2", ProblemCategory: "leak", Availability: "y"},
		{EID: "E1", ProblemCategory: "leak", Availability: "true"},
	}
	tickets := []models.Ticket{
		{Location: "A", ProblemCategory: "leak"},
	}
	got := Assign(employees, tickets)
	if len(got) != 2 || got[0].EID != "E2" || got[1].EID != "E1" {
		t.Fatalf("expected input employee ordering, got %v", got)
	}
}

func TestAvailabilityTruthy(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"yes", true},
		{" YES ", true},
		{"true", true},
		{"1", true},
		{"Available", true},
		{"y", true},
		{"no", false},
		{"No", false},
		{"0", false},
		{"", false},
		{"on leave", false},
		{"maybe", false},
	}
	for _, c := range cases {
		if got := AvailabilityTruthy(c.raw); got != c.want {
			t.Fatalf("AvailabilityTruthy(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestAvailabilityMatches(t *testing.T) {
	if !AvailabilityMatches("Available", "yes") {
		t.Fatalf("truthy filter should match truthy value")
	}
	if !AvailabilityMatches("No", "false") {
		t.Fatalf("falsy filter should match falsy value")
	}
	if AvailabilityMatches("yes", "no") {
		t.Fatalf("falsy filter must not match truthy value")
	}
	if !AvailabilityMatches("on leave", "leave") {
		t.Fatalf("unknown filter falls back to substring compare")
	}
	if !AvailabilityMatches("anything", "") {
		t.Fatalf("empty filter matches everything")
	}
}

func TestFindAssignmentByID(t *testing.T) {
	assignments := []models.Assignment{
		{EID: "E1", Name: "Asha"},
		{EID: "E2", Name: "Ravi"},
	}
	a, err := FindAssignment(assignments, "E2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Ravi" {
		t.Fatalf("expected Ravi, got %s", a.Name)
	}
}

func TestFindAssignmentByNameCaseInsensitive(t *testing.T) {
	assignments := []models.Assignment{
		{EID: "E1", Name: "Asha"},
	}
	a, err := FindAssignment(assignments, "", "  asha ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.EID != "E1" {
		t.Fatalf("expected E1, got %s", a.EID)
	}
}

func TestFindAssignmentNotFound(t *testing.T) {
	assignments := []models.Assignment{{EID: "E1", Name: "Asha"}}
	if _, err := FindAssignment(assignments, "E9", ""); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	// An e_id that misses must not fall back to name matching.
	if _, err := FindAssignment(assignments, "E9", "Asha"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound when e_id misses, got %v", err)
	}
	if _, err := FindAssignment(assignments, "", ""); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound for empty selector, got %v", err)
	}
}
