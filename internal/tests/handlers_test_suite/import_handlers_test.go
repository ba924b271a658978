package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/fridgewatch/fridgewatch/internal/http/handlers"
)

func TestImportProfilesCSV(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	csv := "name,shelf_life_hours,respiration_rate\n" +
		"mango,96,1.1\n" +
		"lettuce,40,1.8\n"
	body, contentType := multipartCSV(csv, "profiles.csv")

	req := httptest.NewRequest(http.MethodPost, "/profiles/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result handler.ImportProfilesResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedProfilesCount != 2 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	p := registry.Lookup("mango")
	if p.BaseShelfLifeHours != 96 || p.RespirationRate != 1.1 {
		t.Errorf("imported profile not applied: %+v", p)
	}
}

func TestImportProfilesReportsInvalidRows(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	csv := "name,shelf_life_hours,respiration_rate\n" +
		"mango,96,1.1\n" +
		",50,1.0\n" + // missing name
		"kiwi,-5,1.0\n" // invalid shelf life
	body, contentType := multipartCSV(csv, "profiles.csv")

	req := httptest.NewRequest(http.MethodPost, "/profiles/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var result handler.ImportProfilesResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedProfilesCount != 1 {
		t.Errorf("expected 1 imported row, got %d", result.ImportedProfilesCount)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %+v", result.Errors)
	}
}

func TestImportProfilesRejectsMissingColumns(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	body, contentType := multipartCSV("name,price\nmango,3\n", "profiles.csv")

	req := httptest.NewRequest(http.MethodPost, "/profiles/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing columns, got %d", w.Code)
	}
}

func TestImportProfilesRequiresFile(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/profiles/import", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without file, got %d", w.Code)
	}
}
