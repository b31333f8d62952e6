package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ace2884/OR/internal/models"
	"github.com/ace2884/OR/internal/render"
	"github.com/ace2884/OR/internal/service"
	"github.com/ace2884/OR/internal/store"
)

type RouteRequest struct {
	EID   string `json:"e_id"`
	Name  string `json:"name"`
	Depot string `json:"depot"`
}

// @Summary Current assignments
// @Description Assignments are recomputed from the latest employee and ticket data on every call
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/assignments [get]
func (h *Handler) AssignmentsList(c *gin.Context) {
	assignments, ok := h.loadAssignments(c)
	if !ok {
		return
	}
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments, "count": len(assignments)})
}

// @Summary Optimized route with map
// @Description Compute the greedy nearest-neighbor route for an employee and render it as map HTML
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Employee selector (e_id or name) and optional depot"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/assignments/route [post]
func (h *Handler) AssignmentRoute(c *gin.Context) {
	req, assignment, ok := h.resolveAssignment(c)
	if !ok {
		return
	}

	plan := service.PlanRoute(h.Geocache, assignment.AssignedLocations, req.Depot)

	var mapHTML *string
	if artifact, err := h.Renderer.RenderRoute(h.routeStops(plan.Route)); err == nil {
		mapHTML = &artifact
	} else if !errors.Is(err, render.ErrNoStops) {
		h.Logger.Error().Err(err).Str("e_id", assignment.EID).Msg("route render failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"e_id":              assignment.EID,
		"name":              assignment.Name,
		"route":             plan.Route,
		"distance_km":       plan.DistanceKm,
		"dropped_locations": plan.Dropped,
		"map_html":          mapHTML,
	})
}

// @Summary Optimized route
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Employee selector (e_id or name) and optional depot"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/assignments/optimize [post]
func (h *Handler) AssignmentOptimize(c *gin.Context) {
	req, assignment, ok := h.resolveAssignment(c)
	if !ok {
		return
	}
	plan := service.PlanRoute(h.Geocache, assignment.AssignedLocations, req.Depot)
	c.JSON(http.StatusOK, gin.H{
		"e_id":              assignment.EID,
		"name":              assignment.Name,
		"route":             plan.Route,
		"distance_km":       plan.DistanceKm,
		"dropped_locations": plan.Dropped,
	})
}

// @Summary Route map only
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Employee selector (e_id or name) and optional depot"
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/assignments/map [post]
func (h *Handler) AssignmentMap(c *gin.Context) {
	req, assignment, ok := h.resolveAssignment(c)
	if !ok {
		return
	}
	plan := service.PlanRoute(h.Geocache, assignment.AssignedLocations, req.Depot)

	artifact, err := h.Renderer.RenderRoute(h.routeStops(plan.Route))
	if err != nil {
		if errors.Is(err, render.ErrNoStops) {
			writeError(c, http.StatusInternalServerError, "RENDER_ERROR",
				"Failed to generate map (no coordinates)", gin.H{"dropped_locations": plan.Dropped})
			return
		}
		h.Logger.Error().Err(err).Str("e_id", assignment.EID).Msg("route render failed")
		writeError(c, http.StatusInternalServerError, "RENDER_ERROR", "Failed to generate map", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"e_id":        assignment.EID,
		"name":        assignment.Name,
		"map_html":    artifact,
		"distance_km": plan.DistanceKm,
	})
}

// resolveAssignment parses the request body, recomputes assignments from the
// current snapshots, and resolves the requested employee. On failure it has
// already written the HTTP error and returns ok=false.
func (h *Handler) resolveAssignment(c *gin.Context) (RouteRequest, models.Assignment, bool) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", err.Error())
		return req, models.Assignment{}, false
	}
	if req.EID == "" && req.Name == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Provide e_id or name in JSON body", nil)
		return req, models.Assignment{}, false
	}

	assignments, ok := h.loadAssignments(c)
	if !ok {
		return req, models.Assignment{}, false
	}

	assignment, err := service.FindAssignment(assignments, req.EID, req.Name)
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Employee not found or no assigned locations", nil)
		return req, models.Assignment{}, false
	}
	return req, assignment, true
}

// loadAssignments reads both snapshots and recomputes the assignment set.
// Missing backing files surface as distinct 404s so the caller knows which
// upload is outstanding.
func (h *Handler) loadAssignments(c *gin.Context) ([]models.Assignment, bool) {
	employees, err := h.Employees.List()
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			writeError(c, http.StatusNotFound, "NO_DATA", "No employee data found", nil)
			return nil, false
		}
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read employees", err.Error())
		return nil, false
	}
	tickets, err := h.Tickets.List("", "")
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			writeError(c, http.StatusNotFound, "NO_DATA", "No customer data found", nil)
			return nil, false
		}
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read tickets", err.Error())
		return nil, false
	}
	return service.Assign(employees, tickets), true
}

func (h *Handler) routeStops(route []string) []render.Stop {
	stops := make([]render.Stop, 0, len(route))
	for _, loc := range route {
		p, ok := h.Geocache.Lookup(loc)
		if !ok {
			continue
		}
		stops = append(stops, render.Stop{Location: loc, Point: p})
	}
	return stops
}
