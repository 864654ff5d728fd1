package models

// SystemBody carries sizing assumptions in a request. Zero fields fall
// back to preset values (if a preset file is named) and then to the
// stock defaults.
type SystemBody struct {
	PanelWattageW     float64 `json:"panel_wattage_w,omitempty"`
	PeakSunHours      float64 `json:"peak_sun_hours,omitempty"`
	SystemEfficiency  float64 `json:"system_efficiency,omitempty"`
	DepthOfDischarge  float64 `json:"depth_of_discharge,omitempty"`
	NighttimeHours    float64 `json:"nighttime_hours,omitempty"`
	BatteryVoltageV   float64 `json:"battery_voltage_v,omitempty"`
	BatteryCapacityAh float64 `json:"battery_capacity_ah,omitempty"`
	NightMargin       float64 `json:"night_margin,omitempty"`
}

// LoadBody is one appliance row in a request.
type LoadBody struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	WattageW    float64 `json:"wattage_w"`
	HoursPerDay float64 `json:"hours_per_day"`
}

// SizingRequest represents the request body for running a sizing
type SizingRequest struct {
	// BatteryFile/PanelFile name preset files (without extension)
	// looked up in the preset directories.
	BatteryFile string        `json:"battery_file,omitempty"`
	PanelFile   string        `json:"panel_file,omitempty"`
	System      SystemBody    `json:"system,omitempty"`
	Loads       []LoadBody    `json:"loads"`
	Options     SizingOptions `json:"options,omitempty"`
}

// SizingOptions contains optional sizing parameters
type SizingOptions struct {
	IncludeBreakdown bool `json:"include_breakdown,omitempty"` // default: false
}

// CompareSizingRequest represents a request to compare sizing variations
type CompareSizingRequest struct {
	Base       SizingRequest     `json:"base" binding:"required"`
	Variations []SizingVariation `json:"variations" binding:"required"`
}

// SizingVariation defines one variation to size
type SizingVariation struct {
	Name        string     `json:"name" binding:"required"`
	BatteryFile string     `json:"battery_file,omitempty"`
	PanelFile   string     `json:"panel_file,omitempty"`
	System      SystemBody `json:"system,omitempty"`
}

// RecommendRequest represents a request for an AI recommendation
type RecommendRequest struct {
	BatteryFile string           `json:"battery_file,omitempty"`
	PanelFile   string           `json:"panel_file,omitempty"`
	System      SystemBody       `json:"system,omitempty"`
	Loads       []LoadBody       `json:"loads"`
	Query       string           `json:"query" binding:"required"`
	History     []HistoryMessage `json:"history,omitempty"`
}

// HistoryMessage is one prior turn of the recommendation conversation
type HistoryMessage struct {
	Role    string `json:"role" binding:"required"` // "user" or "assistant"
	Content string `json:"content" binding:"required"`
}
