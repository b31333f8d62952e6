package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ace2884/OR/internal/models"
)

func TestEmployeeStoreListBeforeUpload(t *testing.T) {
	s := NewEmployeeStore(filepath.Join(t.TempDir(), "employees.json"))
	if _, err := s.List(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestEmployeeStoreReplaceAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.json")
	s := NewEmployeeStore(path)

	in := []models.Employee{
		{EID: "E1", Name: "Asha", Skill: "plumber", ProblemCategory: "leak", Availability: "yes"},
		{EID: "E2", Name: "Ravi", Skill: "electrician", ProblemCategory: "wiring", Availability: "no"},
	}
	if err := s.Replace(in); err != nil {
		t.Fatalf("replace: %v", err)
	}
	out, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].EID != "E1" || out[1].EID != "E2" {
		t.Fatalf("unexpected roster: %+v", out)
	}

	// Replace is wholesale, not append.
	if err := s.Replace([]models.Employee{{EID: "E3"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	out, _ = s.List()
	if len(out) != 1 || out[0].EID != "E3" {
		t.Fatalf("expected wholesale replacement, got %+v", out)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file must not survive a write")
	}
}

func TestEmployeeStoreListFiltered(t *testing.T) {
	s := NewEmployeeStore(filepath.Join(t.TempDir(), "employees.json"))
	roster := []models.Employee{
		{EID: "E1", Skill: "Plumber", ProblemCategory: "leak", Availability: "yes"},
		{EID: "E2", Skill: "plumber", ProblemCategory: "leak", Availability: "No"},
		{EID: "E3", Skill: "electrician", ProblemCategory: "wiring", Availability: "Available"},
	}
	if err := s.Replace(roster); err != nil {
		t.Fatalf("replace: %v", err)
	}

	out, err := s.ListFiltered(EmployeeFilter{ProblemCategory: "LEAK", Availability: "yes"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(out) != 1 || out[0].EID != "E1" {
		t.Fatalf("expected only E1, got %+v", out)
	}

	out, _ = s.ListFiltered(EmployeeFilter{Skill: "plumber"})
	if len(out) != 2 {
		t.Fatalf("skill filter should be case-insensitive, got %+v", out)
	}
}

func TestTicketStoreCreateAssignsSequentialNumbers(t *testing.T) {
	s := NewTicketStore(filepath.Join(t.TempDir(), "customers_data.json"))

	first, err := s.Create(models.Ticket{Username: "u1", Location: "A", Contact: "123", ProblemCategory: "leak"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.TicketNumber != "T0001" {
		t.Fatalf("expected T0001, got %s", first.TicketNumber)
	}
	second, err := s.Create(models.Ticket{Username: "u2", Location: "B", ProblemCategory: "wiring"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.TicketNumber != "T0002" {
		t.Fatalf("expected T0002, got %s", second.TicketNumber)
	}
}

func TestTicketStoreListFilters(t *testing.T) {
	s := NewTicketStore(filepath.Join(t.TempDir(), "customers_data.json"))
	if _, err := s.List("", ""); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData before first create, got %v", err)
	}

	_, _ = s.Create(models.Ticket{Username: "u1", Location: "A", ProblemCategory: "leak"})
	created, _ := s.Create(models.Ticket{Username: "u2", Location: "B", ProblemCategory: "wiring"})
	_, _ = s.Create(models.Ticket{Username: "u1", Location: "C", ProblemCategory: "leak"})

	byUser, err := s.List("u1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("expected 2 tickets for u1, got %d", len(byUser))
	}

	byNumber, _ := s.List("", created.TicketNumber)
	if len(byNumber) != 1 || byNumber[0].Username != "u2" {
		t.Fatalf("expected the u2 ticket, got %+v", byNumber)
	}
}

func TestNextTicketNumberIgnoresMalformed(t *testing.T) {
	tickets := []models.Ticket{
		{TicketNumber: "T0007"},
		{TicketNumber: "X123"},
		{TicketNumber: "Tabc"},
	}
	if got := nextTicketNumber(tickets); got != "T0008" {
		t.Fatalf("expected T0008, got %s", got)
	}
	if got := nextTicketNumber(nil); got != "T0001" {
		t.Fatalf("expected T0001 for empty store, got %s", got)
	}
}
