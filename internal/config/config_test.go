package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-sizing/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
system:
  system_efficiency: 0.9
loads:
  - name: Fridge
    quantity: 1
    wattage_w: 150
    hours_per_day: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	sys := cfg.System.ToModel()
	assert.Equal(t, 0.9, sys.SystemEfficiency)
	assert.Equal(t, model.DefaultPanelWattageW, sys.PanelWattageW)
	assert.Equal(t, model.DefaultPeakSunHours, sys.PeakSunHours)
	assert.Equal(t, model.DefaultNightMargin, sys.NightMargin)

	loads := cfg.ToModelLoads()
	require.Len(t, loads, 1)
	assert.Equal(t, "Fridge", loads[0].Name)
}

func TestLoadMergesBatteryPreset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "batteries/lithium.yaml", `
battery:
  name: Lithium 100Ah
  chemistry: lithium
  voltage_v: 24
  capacity_ah: 100
  depth_of_discharge: 0.8
`)
	path := writeFile(t, dir, "config.yaml", `
battery_file: batteries/lithium.yaml
system:
  battery_capacity_ah: 200   # explicit value overrides the preset
loads: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	sys := cfg.System.ToModel()
	assert.Equal(t, 24.0, sys.BatteryVoltageV)
	assert.Equal(t, 200.0, sys.BatteryCapacityAh)
	assert.Equal(t, 0.8, sys.DepthOfDischarge)
}

func TestLoadMergesPanelPreset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "panels/big.yaml", `
panel:
  name: Mono 450W
  wattage_w: 450
`)
	path := writeFile(t, dir, "config.yaml", `
panel_file: panels/big.yaml
loads: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 450.0, cfg.System.ToModel().PanelWattageW)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
system:
  system_efficiency: 1.5
loads: []
`)

	_, err := Load(path)
	require.Error(t, err)
	var ce *model.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "system_efficiency", ce.Field)
}

func TestLoadRejectsInvalidLoadEntry(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
loads:
  - name: Broken
    quantity: 1
    wattage_w: 0
    hours_per_day: 2
`)

	_, err := Load(path)
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "wattage_w", ve.Field)
}

func TestLoadMissingPresetFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
battery_file: batteries/nope.yaml
loads: []
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestMergeSystemKeepsBaseZeros(t *testing.T) {
	base := SystemSettings{BatteryVoltageV: 12, BatteryCapacityAh: 100}
	out := MergeSystem(base, SystemSettings{BatteryVoltageV: 48})
	assert.Equal(t, 48.0, out.BatteryVoltageV)
	assert.Equal(t, 100.0, out.BatteryCapacityAh)
	assert.Zero(t, out.PanelWattageW)
}
