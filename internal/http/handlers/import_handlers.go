package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rogerio-castellano/bakery-api/internal/repo"
)

var importColumns = []string{"name", "price", "bakery_id"}

type csvRow struct {
	line   int
	values url.Values
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header must include %s", strings.Join(importColumns, ", "))
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		line, _ := reader.FieldPos(0)
		row := csvRow{line: line, values: url.Values{}}
		for _, col := range importColumns {
			row.values.Set(col, record[index[col]])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportBakedGoodsHandler godoc
// @Summary Import baked goods from CSV
// @Description CSV with header name,price,bakery_id. Valid rows are created; invalid rows are reported by line.
// @Tags baked_goods
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportBakedGoodsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal error"
// @Router /baked_goods/import [post]
// @Security BearerAuth
func (h *Handler) ImportBakedGoodsHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportBakedGoodsResult{Errors: []RowError{}}
	for _, row := range rows {
		in, validationErrors := parseBakedGood(row.values)
		if len(validationErrors) > 0 {
			result.Errors = append(result.Errors, RowError{Line: row.line, Errors: validationErrors})
			continue
		}

		if _, err := h.createBakedGood(r.Context(), in); err != nil {
			if errors.Is(err, repo.ErrBakeryNotFound) {
				result.Errors = append(result.Errors, RowError{Line: row.line, Errors: []ValidationError{errUnknownBakery}})
				continue
			}
			if result.ImportedCount > 0 {
				h.invalidate(r)
			}
			h.serverError(w, r, fmt.Sprintf("could not import baked goods: stopped at line %d", row.line), err)
			return
		}
		result.ImportedCount++
	}

	if result.ImportedCount > 0 {
		h.invalidate(r)
	}
	writeJSON(w, http.StatusOK, result)
}
