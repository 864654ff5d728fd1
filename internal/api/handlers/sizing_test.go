package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar-sizing/internal/api/models"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSizingHandler()
	r.POST("/api/v1/sizing", h.RunSizing)
	r.POST("/api/v1/sizing/compare", h.CompareSizings)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func workedRequest() models.SizingRequest {
	return models.SizingRequest{
		System: models.SystemBody{
			PanelWattageW:     300,
			PeakSunHours:      5,
			SystemEfficiency:  0.9,
			DepthOfDischarge:  0.5,
			NighttimeHours:    5,
			BatteryVoltageV:   12,
			BatteryCapacityAh: 100,
			NightMargin:       0.10,
		},
		Loads: []models.LoadBody{
			{Name: "Load", Quantity: 1, WattageW: 100, HoursPerDay: 10},
		},
	}
}

func TestRunSizingWorkedScenario(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, "/api/v1/sizing", workedRequest())

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.SizingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Status != "completed" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.Result.DailyEnergyWh != 1000 {
		t.Fatalf("want daily 1000, got %v", resp.Result.DailyEnergyWh)
	}
	if resp.Result.InverterSizeW != 100 {
		t.Fatalf("want inverter 100, got %v", resp.Result.InverterSizeW)
	}
	if resp.Result.BatteryCount != 2 {
		t.Fatalf("want 2 batteries, got %d", resp.Result.BatteryCount)
	}
	if resp.Result.PanelCount != 1 {
		t.Fatalf("want 1 panel, got %d", resp.Result.PanelCount)
	}
	if resp.Breakdown != nil {
		t.Fatal("breakdown must be omitted unless requested")
	}
}

func TestRunSizingIncludesBreakdown(t *testing.T) {
	r := newTestRouter()
	req := workedRequest()
	req.Options.IncludeBreakdown = true
	w := doJSON(t, r, "/api/v1/sizing", req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.SizingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Breakdown) != 1 {
		t.Fatalf("want 1 breakdown row, got %d", len(resp.Breakdown))
	}
	if resp.Breakdown[0].ShareOfDaily != 1 {
		t.Fatalf("single load must own the full share, got %v", resp.Breakdown[0].ShareOfDaily)
	}
}

func TestRunSizingValidationError(t *testing.T) {
	r := newTestRouter()
	req := workedRequest()
	req.Loads[0].WattageW = 0
	w := doJSON(t, r, "/api/v1/sizing", req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("want VALIDATION_ERROR, got %q", resp.Error.Code)
	}
}

func TestRunSizingConfigurationError(t *testing.T) {
	r := newTestRouter()
	req := workedRequest()
	req.System.SystemEfficiency = 1.5
	w := doJSON(t, r, "/api/v1/sizing", req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Code != "CONFIGURATION_ERROR" {
		t.Fatalf("want CONFIGURATION_ERROR, got %q", resp.Error.Code)
	}
}

func TestRunSizingDefaultsApply(t *testing.T) {
	r := newTestRouter()
	// Empty system block: everything falls back to stock defaults.
	w := doJSON(t, r, "/api/v1/sizing", models.SizingRequest{
		Loads: []models.LoadBody{
			{Name: "Load", Quantity: 1, WattageW: 100, HoursPerDay: 10},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.SizingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Result.DailyEnergyWh != 1000 {
		t.Fatalf("want daily 1000, got %v", resp.Result.DailyEnergyWh)
	}
	if resp.Result.BatteryCount < 1 || resp.Result.PanelCount < 1 {
		t.Fatal("counts must stay at least 1")
	}
}

func TestCompareSizingsVariations(t *testing.T) {
	r := newTestRouter()
	req := models.CompareSizingRequest{
		Base: workedRequest(),
		Variations: []models.SizingVariation{
			{Name: "baseline"},
			{Name: "big panel", System: models.SystemBody{PanelWattageW: 450}},
			{Name: "broken", System: models.SystemBody{SystemEfficiency: 2}}, // skipped
		},
	}
	w := doJSON(t, r, "/api/v1/sizing/compare", req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.CompareSizingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Comparison) != 2 {
		t.Fatalf("want 2 results (invalid variation skipped), got %d", len(resp.Comparison))
	}
	if resp.Comparison[0].Name != "baseline" || resp.Comparison[1].Name != "big panel" {
		t.Fatalf("unexpected variation order: %+v", resp.Comparison)
	}
	// Same loads, same derived energy regardless of panel choice.
	if resp.Comparison[0].Result.DailyEnergyWh != resp.Comparison[1].Result.DailyEnergyWh {
		t.Fatal("daily energy must not depend on panel wattage")
	}
}
