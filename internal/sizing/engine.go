package sizing

import (
	"math"

	"solar-sizing/internal/model"
)

// ComputeDailyEnergy sums quantity x wattage x hours over all loads,
// in Wh/day.
func ComputeDailyEnergy(loads []model.LoadEntry) (float64, error) {
	if err := model.ValidateLoads(loads); err != nil {
		return 0, err
	}
	total := 0.0
	for _, l := range loads {
		total += l.DailyWh()
	}
	return total, nil
}

// ComputeInverterSize returns the exact worst-case simultaneous draw in
// watts: the sum of quantity x wattage across all loads, with no
// additional margin.
func ComputeInverterSize(loads []model.LoadEntry) (float64, error) {
	if err := model.ValidateLoads(loads); err != nil {
		return 0, err
	}
	total := 0.0
	for _, l := range loads {
		total += l.PeakW()
	}
	return total, nil
}

// BatteryRequirement carries the intermediate battery sizing figures.
type BatteryRequirement struct {
	NighttimeEnergyWh float64
	BankWh            float64
	RequiredAh        float64
}

// ComputeBatteryRequirement sizes the bank for nighttime demand.
//
// Each load's nighttime runtime is its daily hours capped at the global
// nighttime_hours setting; there is no per-load night fraction. The
// capped demand is scaled by (1 + night_margin), then divided by depth
// of discharge and system efficiency to get usable bank Wh, and by the
// battery voltage to get Ah.
func ComputeBatteryRequirement(loads []model.LoadEntry, cfg model.SystemConfig) (BatteryRequirement, error) {
	if err := cfg.Validate(); err != nil {
		return BatteryRequirement{}, err
	}
	if err := model.ValidateLoads(loads); err != nil {
		return BatteryRequirement{}, err
	}

	nightWh := 0.0
	for _, l := range loads {
		nightWh += l.PeakW() * math.Min(l.HoursPerDay, cfg.NighttimeHours)
	}
	nightWh *= 1 + cfg.NightMargin

	bankWh := nightWh / cfg.DepthOfDischarge / cfg.SystemEfficiency
	return BatteryRequirement{
		NighttimeEnergyWh: nightWh,
		BankWh:            bankWh,
		RequiredAh:        bankWh / cfg.BatteryVoltageV,
	}, nil
}

// ComputeBatteryCount returns ceil(requiredAh / capacityAh), never
// fewer than one battery.
func ComputeBatteryCount(requiredAh, capacityAh float64) int {
	n := int(math.Ceil(requiredAh / capacityAh))
	if n < 1 {
		n = 1
	}
	return n
}

// ComputePanelCount converts daily energy demand into a panel count.
// Required array wattage is dailyWh / (peak sun hours x efficiency);
// the count is that divided by a single panel's rating, rounded up,
// never fewer than one panel.
func ComputePanelCount(dailyWh, panelW, peakSunHours, efficiency float64) int {
	requiredW := dailyWh / (peakSunHours * efficiency)
	n := int(math.Ceil(requiredW / panelW))
	if n < 1 {
		n = 1
	}
	return n
}

// Size runs the full pipeline: validate, aggregate daily energy, derive
// inverter size, battery bank, and panel count. Counts always round up;
// under-sizing is never silently permitted.
func Size(loads []model.LoadEntry, cfg model.SystemConfig) (model.SizingResult, error) {
	if err := cfg.Validate(); err != nil {
		return model.SizingResult{}, err
	}
	if err := model.ValidateLoads(loads); err != nil {
		return model.SizingResult{}, err
	}

	dailyWh, err := ComputeDailyEnergy(loads)
	if err != nil {
		return model.SizingResult{}, err
	}
	inverterW, err := ComputeInverterSize(loads)
	if err != nil {
		return model.SizingResult{}, err
	}
	batt, err := ComputeBatteryRequirement(loads, cfg)
	if err != nil {
		return model.SizingResult{}, err
	}

	requiredPanelW := dailyWh / (cfg.PeakSunHours * cfg.SystemEfficiency)

	return model.SizingResult{
		DailyEnergyWh:         dailyWh,
		InverterSizeW:         inverterW,
		NighttimeEnergyWh:     batt.NighttimeEnergyWh,
		BatteryBankWh:         batt.BankWh,
		RequiredAh:            batt.RequiredAh,
		BatteryCount:          ComputeBatteryCount(batt.RequiredAh, cfg.BatteryCapacityAh),
		RequiredPanelWattageW: requiredPanelW,
		PanelCount:            ComputePanelCount(dailyWh, cfg.PanelWattageW, cfg.PeakSunHours, cfg.SystemEfficiency),
	}, nil
}
