package handlers

import (
	"errors"
	"log"
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/config"
	"solar-sizing/internal/model"
	"solar-sizing/internal/sizing"

	"github.com/gin-gonic/gin"
)

// SizingHandler handles sizing-related requests
type SizingHandler struct {
	batteryDir string
	panelDir   string
}

// NewSizingHandler creates a new sizing handler
func NewSizingHandler() *SizingHandler {
	return &SizingHandler{
		batteryDir: presetDir("BATTERY_DIR", "batteries"),
		panelDir:   presetDir("PANEL_DIR", "panels"),
	}
}

// RunSizing handles POST /api/v1/sizing
func (h *SizingHandler) RunSizing(c *gin.Context) {
	var req models.SizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildSystem(req.BatteryFile, req.PanelFile, req.System)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	loads := toModelLoads(req.Loads)

	result, err := sizing.Size(loads, cfg)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	resp := models.SizingResponse{
		Status: "completed",
		Result: toResultBody(result),
	}
	if req.Options.IncludeBreakdown {
		rows, err := sizing.Breakdown(loads, cfg)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		resp.Breakdown = toBreakdownBody(rows)
	}

	c.JSON(http.StatusOK, resp)
}

// CompareSizings handles POST /api/v1/sizing/compare
func (h *SizingHandler) CompareSizings(c *gin.Context) {
	var req models.CompareSizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	loads := toModelLoads(req.Base.Loads)
	if err := model.ValidateLoads(loads); err != nil {
		writeDomainError(c, err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		batteryFile := req.Base.BatteryFile
		if v.BatteryFile != "" {
			batteryFile = v.BatteryFile
		}
		panelFile := req.Base.PanelFile
		if v.PanelFile != "" {
			panelFile = v.PanelFile
		}
		system := mergeSystemBody(req.Base.System, v.System)

		cfg, err := h.buildSystem(batteryFile, panelFile, system)
		if err != nil {
			log.Printf("SizingHandler: skipping variation %q: %v", v.Name, err)
			continue
		}
		result, err := sizing.Size(loads, cfg)
		if err != nil {
			log.Printf("SizingHandler: skipping variation %q: %v", v.Name, err)
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:   v.Name,
			Result: toResultBody(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareSizingResponse{Comparison: comparison})
}

// buildSystem resolves presets, overlays explicit values, applies
// defaults, and validates. Preset precedence matches the config
// package: battery preset, then panel preset, then explicit values.
func (h *SizingHandler) buildSystem(batteryFile, panelFile string, body models.SystemBody) (model.SystemConfig, error) {
	settings := config.SystemSettings{
		PanelWattageW:     body.PanelWattageW,
		PeakSunHours:      body.PeakSunHours,
		SystemEfficiency:  body.SystemEfficiency,
		DepthOfDischarge:  body.DepthOfDischarge,
		NighttimeHours:    body.NighttimeHours,
		BatteryVoltageV:   body.BatteryVoltageV,
		BatteryCapacityAh: body.BatteryCapacityAh,
		NightMargin:       body.NightMargin,
	}

	if batteryFile != "" {
		preset, err := config.LoadBatteryPreset(presetPath(h.batteryDir, batteryFile))
		if err != nil {
			return model.SystemConfig{}, &model.ConfigurationError{
				Field: "battery_file", Message: err.Error(),
			}
		}
		settings = config.MergeSystem(preset.ToSystemSettings(), settings)
	}
	if panelFile != "" {
		preset, err := config.LoadPanelPreset(presetPath(h.panelDir, panelFile))
		if err != nil {
			return model.SystemConfig{}, &model.ConfigurationError{
				Field: "panel_file", Message: err.Error(),
			}
		}
		settings = config.MergeSystem(preset.ToSystemSettings(), settings)
	}

	cfg := config.ApplyDefaults(settings).ToModel()
	if err := cfg.Validate(); err != nil {
		return model.SystemConfig{}, err
	}
	return cfg, nil
}

// Shared helpers

func toModelLoads(loads []models.LoadBody) []model.LoadEntry {
	out := make([]model.LoadEntry, 0, len(loads))
	for _, l := range loads {
		out = append(out, model.LoadEntry{
			Name:        l.Name,
			Quantity:    l.Quantity,
			WattageW:    l.WattageW,
			HoursPerDay: l.HoursPerDay,
		})
	}
	return out
}

func toResultBody(r model.SizingResult) models.SizingResult {
	return models.SizingResult{
		DailyEnergyWh:         r.DailyEnergyWh,
		InverterSizeW:         r.InverterSizeW,
		NighttimeEnergyWh:     r.NighttimeEnergyWh,
		BatteryBankWh:         r.BatteryBankWh,
		RequiredAh:            r.RequiredAh,
		BatteryCount:          r.BatteryCount,
		RequiredPanelWattageW: r.RequiredPanelWattageW,
		PanelCount:            r.PanelCount,
	}
}

func toBreakdownBody(rows []sizing.BreakdownRow) []models.BreakdownRow {
	out := make([]models.BreakdownRow, len(rows))
	for i, r := range rows {
		out[i] = models.BreakdownRow{
			Name:         r.Name,
			Quantity:     r.Quantity,
			PeakW:        r.PeakW,
			DailyWh:      r.DailyWh,
			NighttimeWh:  r.NighttimeWh,
			ShareOfDaily: r.ShareOfDaily,
		}
	}
	return out
}

func mergeSystemBody(base, override models.SystemBody) models.SystemBody {
	out := base
	if override.PanelWattageW != 0 {
		out.PanelWattageW = override.PanelWattageW
	}
	if override.PeakSunHours != 0 {
		out.PeakSunHours = override.PeakSunHours
	}
	if override.SystemEfficiency != 0 {
		out.SystemEfficiency = override.SystemEfficiency
	}
	if override.DepthOfDischarge != 0 {
		out.DepthOfDischarge = override.DepthOfDischarge
	}
	if override.NighttimeHours != 0 {
		out.NighttimeHours = override.NighttimeHours
	}
	if override.BatteryVoltageV != 0 {
		out.BatteryVoltageV = override.BatteryVoltageV
	}
	if override.BatteryCapacityAh != 0 {
		out.BatteryCapacityAh = override.BatteryCapacityAh
	}
	if override.NightMargin != 0 {
		out.NightMargin = override.NightMargin
	}
	return out
}

// writeDomainError maps the calculator's typed errors onto API error
// codes. Both kinds are client errors: the UI is expected to re-prompt.
func writeDomainError(c *gin.Context, err error) {
	var ve *model.ValidationError
	var ce *model.ConfigurationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: ve.Error(),
				Details: map[string]interface{}{"field": ve.Field},
			},
		})
	case errors.As(err, &ce):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CONFIGURATION_ERROR",
				Message: ce.Error(),
				Details: map[string]interface{}{"field": ce.Field},
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}
