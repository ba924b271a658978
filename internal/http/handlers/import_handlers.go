package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/fridgewatch/fridgewatch/internal/freshness"
)

type profileRow struct {
	Name               string
	BaseShelfLifeHours float64
	RespirationRate    float64
}

func parseProfilesCSV(file multipart.File) ([]profileRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "shelf_life_hours", "respiration_rate"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var rows []profileRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, profileRow{
			Name:               record[index["name"]],
			BaseShelfLifeHours: parseFloat(record[index["shelf_life_hours"]]),
			RespirationRate:    parseFloat(record[index["respiration_rate"]]),
		})
	}
	return rows, nil
}

func validateProfileRow(r profileRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.BaseShelfLifeHours <= 0 {
		return errors.New("invalid shelf_life_hours")
	}
	if r.RespirationRate <= 0 {
		return errors.New("invalid respiration_rate")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// ImportProfilesHandler godoc
// @Summary Import item spoilage profiles via CSV
// @Description Upserts shelf-life and respiration profiles; invalid rows are reported and skipped
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with name,shelf_life_hours,respiration_rate"
// @Success 200 {object} ImportProfilesResult
// @Failure 400 {string} string "Invalid file"
// @Router /profiles/import [post]
func ImportProfilesHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseProfilesCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ProfileValidationError

	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		if err := validateProfileRow(row); err != nil {
			errorsList = append(errorsList, ProfileValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		registry.Put(row.Name, freshness.Profile{
			BaseShelfLifeHours: row.BaseShelfLifeHours,
			RespirationRate:    row.RespirationRate,
		})
		imported++
	}

	if err := writeJSON(w, http.StatusOK, ImportProfilesResult{
		ImportedProfilesCount: imported,
		Errors:                errorsList,
	}); err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
