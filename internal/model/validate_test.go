package model

import (
	"errors"
	"testing"
)

func TestLoadEntryValidate(t *testing.T) {
	cases := []struct {
		name      string
		load      LoadEntry
		wantField string
	}{
		{"valid", LoadEntry{Name: "ok", Quantity: 1, WattageW: 100, HoursPerDay: 5}, ""},
		{"zero hours is valid", LoadEntry{Name: "ok", Quantity: 1, WattageW: 100, HoursPerDay: 0}, ""},
		{"full day is valid", LoadEntry{Name: "ok", Quantity: 1, WattageW: 100, HoursPerDay: 24}, ""},
		{"zero quantity", LoadEntry{Quantity: 0, WattageW: 100, HoursPerDay: 5}, "quantity"},
		{"negative quantity", LoadEntry{Quantity: -1, WattageW: 100, HoursPerDay: 5}, "quantity"},
		{"zero wattage", LoadEntry{Quantity: 1, WattageW: 0, HoursPerDay: 5}, "wattage_w"},
		{"negative hours", LoadEntry{Quantity: 1, WattageW: 100, HoursPerDay: -0.5}, "hours_per_day"},
		{"too many hours", LoadEntry{Quantity: 1, WattageW: 100, HoursPerDay: 24.5}, "hours_per_day"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.load.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if ve.Field != tc.wantField {
				t.Fatalf("want field %q, got %q", tc.wantField, ve.Field)
			}
		})
	}
}

func TestSystemConfigValidate(t *testing.T) {
	valid := DefaultSystemConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cases := []struct {
		name      string
		mutate    func(*SystemConfig)
		wantField string
	}{
		{"efficiency above one", func(c *SystemConfig) { c.SystemEfficiency = 1.5 }, "system_efficiency"},
		{"efficiency zero", func(c *SystemConfig) { c.SystemEfficiency = 0 }, "system_efficiency"},
		{"dod above one", func(c *SystemConfig) { c.DepthOfDischarge = 1.01 }, "depth_of_discharge"},
		{"zero panel wattage", func(c *SystemConfig) { c.PanelWattageW = 0 }, "panel_wattage_w"},
		{"zero sun hours", func(c *SystemConfig) { c.PeakSunHours = 0 }, "peak_sun_hours"},
		{"night hours too high", func(c *SystemConfig) { c.NighttimeHours = 25 }, "nighttime_hours"},
		{"zero voltage", func(c *SystemConfig) { c.BatteryVoltageV = 0 }, "battery_voltage_v"},
		{"zero capacity", func(c *SystemConfig) { c.BatteryCapacityAh = 0 }, "battery_capacity_ah"},
		{"negative margin", func(c *SystemConfig) { c.NightMargin = -0.1 }, "night_margin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSystemConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			var ce *ConfigurationError
			if !errors.As(err, &ce) {
				t.Fatalf("want ConfigurationError, got %v", err)
			}
			if ce.Field != tc.wantField {
				t.Fatalf("want field %q, got %q", tc.wantField, ce.Field)
			}
		})
	}
}
