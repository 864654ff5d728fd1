package model

// Defaults applied when a SystemConfig field is left at its zero value.
const (
	DefaultPanelWattageW     = 300.0
	DefaultPeakSunHours      = 5.0
	DefaultSystemEfficiency  = 0.8
	DefaultDepthOfDischarge  = 0.5
	DefaultNighttimeHours    = 6.0
	DefaultBatteryVoltageV   = 12.0
	DefaultBatteryCapacityAh = 100.0
	DefaultNightMargin       = 0.10
)

// SystemConfig holds the sizing assumptions shared by all loads.
// Units:
// - PanelWattageW: rated watts of a single panel
// - PeakSunHours: equivalent full-sun hours per day
// - SystemEfficiency, DepthOfDischarge: fractions in (0, 1]
// - NighttimeHours: hours per day served from the battery, 0..24
// - BatteryVoltageV, BatteryCapacityAh: single-battery nominal ratings
// - NightMargin: safety fraction added to nighttime demand (0.10 = +10%)
type SystemConfig struct {
	PanelWattageW     float64
	PeakSunHours      float64
	SystemEfficiency  float64
	DepthOfDischarge  float64
	NighttimeHours    float64
	BatteryVoltageV   float64
	BatteryCapacityAh float64
	NightMargin       float64
}

// DefaultSystemConfig returns a config populated with the stock assumptions.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		PanelWattageW:     DefaultPanelWattageW,
		PeakSunHours:      DefaultPeakSunHours,
		SystemEfficiency:  DefaultSystemEfficiency,
		DepthOfDischarge:  DefaultDepthOfDischarge,
		NighttimeHours:    DefaultNighttimeHours,
		BatteryVoltageV:   DefaultBatteryVoltageV,
		BatteryCapacityAh: DefaultBatteryCapacityAh,
		NightMargin:       DefaultNightMargin,
	}
}

func (c SystemConfig) Validate() error {
	if c.PanelWattageW <= 0 {
		return &ConfigurationError{Field: "panel_wattage_w", Message: "must be > 0"}
	}
	if c.PeakSunHours <= 0 {
		return &ConfigurationError{Field: "peak_sun_hours", Message: "must be > 0"}
	}
	if c.SystemEfficiency <= 0 || c.SystemEfficiency > 1 {
		return &ConfigurationError{Field: "system_efficiency", Message: "must be in (0, 1]"}
	}
	if c.DepthOfDischarge <= 0 || c.DepthOfDischarge > 1 {
		return &ConfigurationError{Field: "depth_of_discharge", Message: "must be in (0, 1]"}
	}
	if c.NighttimeHours < 0 || c.NighttimeHours > 24 {
		return &ConfigurationError{Field: "nighttime_hours", Message: "must be within [0, 24]"}
	}
	if c.BatteryVoltageV <= 0 {
		return &ConfigurationError{Field: "battery_voltage_v", Message: "must be > 0"}
	}
	if c.BatteryCapacityAh <= 0 {
		return &ConfigurationError{Field: "battery_capacity_ah", Message: "must be > 0"}
	}
	if c.NightMargin < 0 {
		return &ConfigurationError{Field: "night_margin", Message: "must be >= 0"}
	}
	return nil
}
