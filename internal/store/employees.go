package store

import (
	"strings"
	"sync"

	"github.com/ace2884/OR/internal/models"
	"github.com/ace2884/OR/internal/service"
)

// EmployeeStore persists the employee roster as a single JSON file that is
// replaced wholesale on every upload.
type EmployeeStore struct {
	path string
	mu   sync.Mutex
}

func NewEmployeeStore(path string) *EmployeeStore {
	return &EmployeeStore{path: path}
}

// Replace swaps the whole roster for the given one, atomically.
func (s *EmployeeStore) Replace(employees []models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if employees == nil {
		employees = []models.Employee{}
	}
	return writeFileAtomic(s.path, employees)
}

// List returns the roster, ErrNoData when nothing was ever uploaded.
func (s *EmployeeStore) List() ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Employee
	if err := readFileJSON(s.path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeFilter narrows a List result. Empty fields match everything.
type EmployeeFilter struct {
	Availability    string
	Skill           string
	ProblemCategory string
}

// ListFiltered applies the filter with the same normalization rules the
// assignment engine uses, so "available"/"Yes"/"1" all select the same rows.
func (s *EmployeeStore) ListFiltered(f EmployeeFilter) ([]models.Employee, error) {
	employees, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if f.Skill != "" && !strings.EqualFold(strings.TrimSpace(e.Skill), strings.TrimSpace(f.Skill)) {
			continue
		}
		if f.ProblemCategory != "" && !strings.EqualFold(strings.TrimSpace(e.ProblemCategory), strings.TrimSpace(f.ProblemCategory)) {
			continue
		}
		if !service.AvailabilityMatches(e.Availability, f.Availability) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
