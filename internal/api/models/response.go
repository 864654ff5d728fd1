package models

// SizingResponse represents the response from a sizing run
type SizingResponse struct {
	Status    string         `json:"status"`
	Result    SizingResult   `json:"result"`
	Breakdown []BreakdownRow `json:"breakdown,omitempty"`
}

// SizingResult contains the derived sizing figures, intermediates
// included for display.
type SizingResult struct {
	DailyEnergyWh         float64 `json:"daily_energy_wh"`
	InverterSizeW         float64 `json:"inverter_size_w"`
	NighttimeEnergyWh     float64 `json:"nighttime_energy_wh"`
	BatteryBankWh         float64 `json:"battery_bank_wh"`
	RequiredAh            float64 `json:"required_ah"`
	BatteryCount          int     `json:"battery_count"`
	RequiredPanelWattageW float64 `json:"required_panel_wattage_w"`
	PanelCount            int     `json:"panel_count"`
}

// BreakdownRow attributes daily/nighttime energy to one load
type BreakdownRow struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	PeakW        float64 `json:"peak_w"`
	DailyWh      float64 `json:"daily_wh"`
	NighttimeWh  float64 `json:"nighttime_wh"`
	ShareOfDaily float64 `json:"share_of_daily"`
}

// CompareSizingResponse represents the response from a comparison
type CompareSizingResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains the result for one variation
type ComparisonResult struct {
	Name   string       `json:"name"`
	Result SizingResult `json:"result"`
}

// BatteryPresetInfo describes one battery preset file
type BatteryPresetInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs BatterySpecs `json:"specs"`
}

// BatterySpecs contains battery preset ratings
type BatterySpecs struct {
	Chemistry        string  `json:"chemistry,omitempty"`
	VoltageV         float64 `json:"voltage_v"`
	CapacityAh       float64 `json:"capacity_ah"`
	DepthOfDischarge float64 `json:"depth_of_discharge"`
}

// PanelPresetInfo describes one panel preset file
type PanelPresetInfo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	File     string  `json:"file"`
	WattageW float64 `json:"wattage_w"`
}

// RecommendResponse represents the recommendation text returned to the UI
type RecommendResponse struct {
	Status         string `json:"status"`
	Recommendation string `json:"recommendation"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
