package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// BatteryPreset is the shape of a battery preset file, wrapped under a
// top-level "battery" key:
//
//	battery:
//	  name: Lithium 100Ah
//	  chemistry: lithium
//	  voltage_v: 12
//	  capacity_ah: 100
//	  depth_of_discharge: 0.8
type BatteryPreset struct {
	Name             string  `yaml:"name"`
	Chemistry        string  `yaml:"chemistry"` // lithium | gel
	VoltageV         float64 `yaml:"voltage_v"`
	CapacityAh       float64 `yaml:"capacity_ah"`
	DepthOfDischarge float64 `yaml:"depth_of_discharge"`
}

// PanelPreset is the shape of a panel preset file, wrapped under a
// top-level "panel" key.
type PanelPreset struct {
	Name     string  `yaml:"name"`
	WattageW float64 `yaml:"wattage_w"`
}

func (p BatteryPreset) ToSystemSettings() SystemSettings {
	return SystemSettings{
		BatteryVoltageV:   p.VoltageV,
		BatteryCapacityAh: p.CapacityAh,
		DepthOfDischarge:  p.DepthOfDischarge,
	}
}

func (p PanelPreset) ToSystemSettings() SystemSettings {
	return SystemSettings{PanelWattageW: p.WattageW}
}

type batteryPresetWrapper struct {
	Battery BatteryPreset `yaml:"battery"`
}

type panelPresetWrapper struct {
	Panel PanelPreset `yaml:"panel"`
}

func LoadBatteryPreset(path string) (BatteryPreset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryPreset{}, err
	}
	var w batteryPresetWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryPreset{}, err
	}
	return w.Battery, nil
}

func LoadPanelPreset(path string) (PanelPreset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PanelPreset{}, err
	}
	var w panelPresetWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PanelPreset{}, err
	}
	return w.Panel, nil
}
