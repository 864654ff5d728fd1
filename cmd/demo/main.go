package main

import (
	"fmt"

	"solar-sizing/internal/model"
	"solar-sizing/internal/sizing"
)

// Demo:
// - Build a small appliance list by hand
// - Size the system with a 12V/100Ah bank and 300W panels
// - Print the result and the per-load breakdown to show how the pieces
//   fit together
func main() {
	loads := []model.LoadEntry{
		{Name: "Fridge", Quantity: 1, WattageW: 150, HoursPerDay: 8},
		{Name: "LED lights", Quantity: 6, WattageW: 10, HoursPerDay: 6},
		{Name: "Laptop", Quantity: 1, WattageW: 100, HoursPerDay: 10},
	}

	cfg := model.DefaultSystemConfig()
	cfg.SystemEfficiency = 0.9
	cfg.NighttimeHours = 5

	res, err := sizing.Size(loads, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Daily energy:     %.1f Wh\n", res.DailyEnergyWh)
	fmt.Printf("Inverter size:    %.1f W\n", res.InverterSizeW)
	fmt.Printf("Nighttime energy: %.1f Wh\n", res.NighttimeEnergyWh)
	fmt.Printf("Battery bank:     %.1f Wh -> %d batteries\n", res.BatteryBankWh, res.BatteryCount)
	fmt.Printf("Panels:           %.1f W required -> %d panels\n", res.RequiredPanelWattageW, res.PanelCount)

	rows, err := sizing.Breakdown(loads, cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println("\nPer-load breakdown:")
	for _, r := range rows {
		fmt.Printf("  %-12s %4.0f W peak  %7.1f Wh/day  (%.0f%%)\n",
			r.Name, r.PeakW, r.DailyWh, r.ShareOfDaily*100)
	}
}
