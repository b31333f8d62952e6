package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ace2884/OR/internal/models"
)

func parseEmployeesCSV(file *multipart.FileHeader) ([]models.Employee, []string) {
	f, err := file.Open()
	if err != nil {
		return nil, []string{err.Error()}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, []string{"failed to read header"}
	}
	index := headerIndex(headers)
	var errs []string
	var out []models.Employee

	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}

		e := models.Employee{
			EID:             getFieldAny(rec, index, "e_id", "id", "employee_id"),
			Name:            getFieldAny(rec, index, "name", "employee_name"),
			Skill:           getFieldAny(rec, index, "skill", "skills"),
			ProblemCategory: getFieldAny(rec, index, "problem_occured", "problem", "category"),
			Availability:    getFieldAny(rec, index, "availability", "available", "status"),
		}
		if e.EID == "" || e.Name == "" {
			errs = append(errs, fmt.Sprintf("line %d: e_id and name are required", line))
			continue
		}
		out = append(out, e)
	}
	return out, errs
}

func headerIndex(headers []string) map[string]int {
	idx := map[string]int{}
	for i, h := range headers {
		idx[normalizeHeader(h)] = i
	}
	return idx
}

func getField(rec []string, idx map[string]int, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[pos])
}

func getFieldAny(rec []string, idx map[string]int, names ...string) string {
	for _, name := range names {
		if v := getField(rec, idx, normalizeHeader(name)); v != "" {
			return v
		}
	}
	return ""
}

func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	return strings.ToLower(strings.TrimSpace(h))
}

func validateExt(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".csv"
}
