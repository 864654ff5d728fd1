package model

// SizingResult is the derived output of one sizing run. It is a pure
// function of (loads, config): recompute it on every input change
// rather than storing it.
//
// NighttimeEnergyWh, BatteryBankWh, RequiredAh and RequiredPanelWattageW
// are intermediates kept for display alongside the headline numbers.
type SizingResult struct {
	DailyEnergyWh float64

	// InverterSizeW is the exact sum of quantity x wattage across all
	// loads. Worst case: everything runs at once. No extra margin.
	InverterSizeW float64

	NighttimeEnergyWh float64
	BatteryBankWh     float64
	RequiredAh        float64
	BatteryCount      int // >= 1

	RequiredPanelWattageW float64
	PanelCount            int // >= 1
}
