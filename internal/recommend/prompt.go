package recommend

import (
	"fmt"
	"strings"

	"solar-sizing/internal/sizing"
)

// BuildSystemPrompt renders the sizing snapshot as context for the
// model. Pure text assembly; the snapshot is never mutated.
func BuildSystemPrompt(snap sizing.Snapshot) string {
	var b strings.Builder

	b.WriteString("You are an assistant for an off-grid solar PV sizing tool. ")
	b.WriteString("Answer the user's question using the session below. ")
	b.WriteString("The figures are simplified estimates; remind the user to consult a professional for a final design.\n\n")

	b.WriteString("Loads:\n")
	if len(snap.Loads) == 0 {
		b.WriteString("  (none entered)\n")
	}
	for _, l := range snap.Loads {
		fmt.Fprintf(&b, "  - %s: %d x %.0f W, %.1f h/day\n", l.Name, l.Quantity, l.WattageW, l.HoursPerDay)
	}

	cfg := snap.Config
	b.WriteString("\nAssumptions:\n")
	fmt.Fprintf(&b, "  panel wattage: %.0f W, peak sun hours: %.1f, system efficiency: %.0f%%\n",
		cfg.PanelWattageW, cfg.PeakSunHours, cfg.SystemEfficiency*100)
	fmt.Fprintf(&b, "  battery: %.0f V / %.0f Ah, depth of discharge: %.0f%%\n",
		cfg.BatteryVoltageV, cfg.BatteryCapacityAh, cfg.DepthOfDischarge*100)
	fmt.Fprintf(&b, "  nighttime hours: %.1f, night margin: %.0f%%\n",
		cfg.NighttimeHours, cfg.NightMargin*100)

	res := snap.Result
	b.WriteString("\nComputed sizing:\n")
	fmt.Fprintf(&b, "  daily energy: %.1f Wh\n", res.DailyEnergyWh)
	fmt.Fprintf(&b, "  inverter size: %.1f W\n", res.InverterSizeW)
	fmt.Fprintf(&b, "  nighttime energy (with margin): %.1f Wh\n", res.NighttimeEnergyWh)
	fmt.Fprintf(&b, "  battery bank: %.1f Wh (%.1f Ah) -> %d batteries\n",
		res.BatteryBankWh, res.RequiredAh, res.BatteryCount)
	fmt.Fprintf(&b, "  panels: %.1f W required -> %d panels\n",
		res.RequiredPanelWattageW, res.PanelCount)

	return b.String()
}
