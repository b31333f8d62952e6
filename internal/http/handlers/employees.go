package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ace2884/OR/internal/store"
)

// @Summary Upload employee roster
// @Description Replace the employee roster with an uploaded CSV (columns e_id, name, skill, problem_occured, availability)
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "employees.csv"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/employees/upload [post]
func (h *Handler) EmployeesUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		// Be forgiving about the form field name, like the admin UI is.
		if file, err = c.FormFile("csv"); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST",
				"file required", "send multipart/form-data with a field named \"file\" or \"csv\"")
			return
		}
	}
	if !validateExt(file.Filename) {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "only .csv files are accepted", nil)
		return
	}

	employees, errs := parseEmployeesCSV(file)
	if len(errs) > 0 {
		writeError(c, http.StatusBadRequest, "CSV_PARSE_ERROR", "CSV validation errors", errs)
		return
	}

	if err := h.Employees.Replace(employees); err != nil {
		h.Logger.Error().Err(err).Msg("failed to save employees")
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to save employees", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d employees uploaded and saved successfully", len(employees)),
		"count":   len(employees),
	})
}

// @Summary List employees
// @Tags employees
// @Produce json
// @Param availability query string false "Availability filter"
// @Param skill query string false "Skill filter"
// @Param problem_occured query string false "Problem category filter"
// @Success 200 {array} models.Employee
// @Router /api/employees [get]
func (h *Handler) EmployeesList(c *gin.Context) {
	filter := store.EmployeeFilter{
		Availability:    c.Query("availability"),
		Skill:           c.Query("skill"),
		ProblemCategory: c.Query("problem_occured"),
	}
	employees, err := h.Employees.ListFiltered(filter)
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			writeError(c, http.StatusNotFound, "NO_DATA", "Employee data not found. Please upload first.", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read employees", err.Error())
		return
	}
	c.JSON(http.StatusOK, employees)
}

// EmployeesFilter matches employees on a required problem category plus an
// optional availability value. Accepts query parameters or a JSON body.
func (h *Handler) EmployeesFilter(c *gin.Context) {
	var body struct {
		ProblemCategory string `json:"problem_occured"`
		Availability    string `json:"availability"`
	}
	_ = c.ShouldBindJSON(&body)

	problem := strings.TrimSpace(c.Query("problem_occured"))
	if problem == "" {
		problem = strings.TrimSpace(body.ProblemCategory)
	}
	availability := strings.TrimSpace(c.Query("availability"))
	if availability == "" {
		availability = strings.TrimSpace(body.Availability)
	}
	if problem == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "problem_occured is required", nil)
		return
	}

	employees, err := h.Employees.ListFiltered(store.EmployeeFilter{
		ProblemCategory: problem,
		Availability:    availability,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoData) {
			writeError(c, http.StatusNotFound, "NO_DATA", "Employee data not found. Please upload first.", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to read employees", err.Error())
		return
	}
	c.JSON(http.StatusOK, employees)
}
