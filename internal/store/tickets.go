package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ace2884/OR/internal/models"
)

// TicketStore persists customer tickets in a single JSON document with a
// small metadata block, replaced atomically on every write.
type TicketStore struct {
	path string
	mu   sync.Mutex
}

func NewTicketStore(path string) *TicketStore {
	return &TicketStore{path: path}
}

type ticketMetadata struct {
	TotalCustomers int      `json:"total_customers"`
	LocationsCount int      `json:"locations_count"`
	ProblemTypes   []string `json:"problem_types"`
	CreatedDate    string   `json:"created_date"`
}

type ticketDocument struct {
	Customers []models.Ticket `json:"customers"`
	Metadata  ticketMetadata  `json:"metadata"`
}

// Create appends a new ticket, assigning the next free ticket number in the
// form T0001. The whole read-modify-replace runs under the store mutex so
// concurrent creates cannot race on the number sequence.
func (s *TicketStore) Create(t models.Ticket) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil && !errors.Is(err, ErrNoData) {
		return models.Ticket{}, err
	}

	t.TicketNumber = nextTicketNumber(doc.Customers)
	doc.Customers = append(doc.Customers, t)

	doc.Metadata.TotalCustomers = len(doc.Customers)
	if doc.Metadata.CreatedDate == "" {
		doc.Metadata.CreatedDate = time.Now().UTC().Format("2006-01-02")
	}
	doc.Metadata.LocationsCount, doc.Metadata.ProblemTypes = summarize(doc.Customers)

	if err := writeFileAtomic(s.path, doc); err != nil {
		return models.Ticket{}, err
	}
	return t, nil
}

// List returns tickets, optionally narrowed by exact username and/or ticket
// number. ErrNoData when no ticket was ever created.
func (s *TicketStore) List(username, ticketNumber string) ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make([]models.Ticket, 0, len(doc.Customers))
	for _, t := range doc.Customers {
		if username != "" && t.Username != username {
			continue
		}
		if ticketNumber != "" && t.TicketNumber != ticketNumber {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *TicketStore) read() (ticketDocument, error) {
	var doc ticketDocument
	if err := readFileJSON(s.path, &doc); err != nil {
		return ticketDocument{}, err
	}
	return doc, nil
}

// nextTicketNumber scans existing numbers of the form T#### and returns the
// successor of the largest, so deletions never cause reuse of a live number.
func nextTicketNumber(tickets []models.Ticket) string {
	maxNum := 0
	for _, t := range tickets {
		tn := t.TicketNumber
		if !strings.HasPrefix(tn, "T") {
			continue
		}
		n, err := strconv.Atoi(tn[1:])
		if err != nil {
			continue
		}
		if n > maxNum {
			maxNum = n
		}
	}
	return fmt.Sprintf("T%04d", maxNum+1)
}

func summarize(tickets []models.Ticket) (int, []string) {
	locations := map[string]struct{}{}
	problems := map[string]struct{}{}
	var types []string
	for _, t := range tickets {
		locations[t.Location] = struct{}{}
		key := strings.ToLower(strings.TrimSpace(t.ProblemCategory))
		if _, ok := problems[key]; ok {
			continue
		}
		problems[key] = struct{}{}
		types = append(types, strings.TrimSpace(t.ProblemCategory))
	}
	return len(locations), types
}
