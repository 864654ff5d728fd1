package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/config"

	"github.com/gin-gonic/gin"
)

// PresetHandler serves battery and panel preset listings.
type PresetHandler struct {
	batteryDir string
	panelDir   string
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	return &PresetHandler{
		batteryDir: presetDir("BATTERY_DIR", "batteries"),
		panelDir:   presetDir("PANEL_DIR", "panels"),
	}
}

// presetDir resolves a preset directory: env override first, then
// examples/<sub> under the working directory.
func presetDir(envKey, sub string) string {
	dir := os.Getenv(envKey)
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", sub)
		} else {
			dir = filepath.Join("examples", sub)
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// presetPath maps a preset ID (filename without extension) to its
// file. IDs come from requests, so path components are stripped to
// keep lookups inside the preset directory.
func presetPath(dir, id string) string {
	return filepath.Join(dir, filepath.Base(id)+".yaml")
}

// ListBatteries handles GET /api/v1/batteries
func (h *PresetHandler) ListBatteries(c *gin.Context) {
	batteries := []models.BatteryPresetInfo{}

	entries, err := os.ReadDir(h.batteryDir)
	if err != nil {
		log.Printf("PresetHandler: failed to read battery directory %s: %v", h.batteryDir, err)
		c.JSON(http.StatusOK, gin.H{"batteries": batteries})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.batteryDir, entry.Name())
		preset, err := config.LoadBatteryPreset(path)
		if err != nil {
			log.Printf("PresetHandler: skipping battery file %s: %v", path, err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := preset.Name
		if name == "" {
			name = id
		}
		batteries = append(batteries, models.BatteryPresetInfo{
			ID:   id,
			Name: name,
			File: path,
			Specs: models.BatterySpecs{
				Chemistry:        preset.Chemistry,
				VoltageV:         preset.VoltageV,
				CapacityAh:       preset.CapacityAh,
				DepthOfDischarge: preset.DepthOfDischarge,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"batteries": batteries})
}

// ListPanels handles GET /api/v1/panels
func (h *PresetHandler) ListPanels(c *gin.Context) {
	panels := []models.PanelPresetInfo{}

	entries, err := os.ReadDir(h.panelDir)
	if err != nil {
		log.Printf("PresetHandler: failed to read panel directory %s: %v", h.panelDir, err)
		c.JSON(http.StatusOK, gin.H{"panels": panels})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.panelDir, entry.Name())
		preset, err := config.LoadPanelPreset(path)
		if err != nil {
			log.Printf("PresetHandler: skipping panel file %s: %v", path, err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		name := preset.Name
		if name == "" {
			name = id
		}
		panels = append(panels, models.PanelPresetInfo{
			ID:       id,
			Name:     name,
			File:     path,
			WattageW: preset.WattageW,
		})
	}

	c.JSON(http.StatusOK, gin.H{"panels": panels})
}
