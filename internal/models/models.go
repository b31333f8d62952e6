package models

// Employee is one row of the uploaded employee sheet. Availability keeps the
// raw free-text value from the CSV; callers normalize it through
// service.AvailabilityTruthy before acting on it.
type Employee struct {
	EID             string `json:"e_id"`
	Name            string `json:"name"`
	Skill           string `json:"skill"`
	ProblemCategory string `json:"problem_occured"`
	Availability    string `json:"availability"`
}

// Ticket is a customer-reported issue. TicketNumber is unique per store,
// generated in the form T0001.
type Ticket struct {
	Username        string `json:"username"`
	TicketNumber    string `json:"ticket_number"`
	Location        string `json:"location"`
	Contact         string `json:"contact"`
	ProblemCategory string `json:"problem_occured"`
}

// Assignment pairs an available employee with every ticket location matching
// their problem category. Derived on each request, never persisted.
type Assignment struct {
	EID               string   `json:"e_id"`
	Name              string   `json:"name"`
	ProblemCategory   string   `json:"problem_occured"`
	AssignedLocations []string `json:"assigned_locations"`
}

// RoutePlan is the ordered visiting sequence over an employee's assigned
// locations. Dropped lists the locations that had no cached coordinates and
// were left out of the route.
type RoutePlan struct {
	Route      []string `json:"route"`
	DistanceKm float64  `json:"distance_km"`
	Dropped    []string `json:"dropped_locations,omitempty"`
}
