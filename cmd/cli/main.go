package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"solar-sizing/internal/config"
	"solar-sizing/internal/report"
	"solar-sizing/internal/sizing"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "size":
		cmdSize(os.Args[2:])
	case "presets":
		cmdPresets(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli size --config examples/config.yaml --out results/breakdown.csv")
	fmt.Println("  cli presets --dir examples/batteries")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - size prints daily energy, inverter size, battery count, and panel count")
	fmt.Println("  - presets lists battery preset YAML files in a directory")
}

func cmdSize(args []string) {
	fs := flag.NewFlagSet("size", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional: output CSV path for the per-load breakdown")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	loads := cfg.ToModelLoads()
	system := cfg.System.ToModel()

	res, err := sizing.Size(loads, system)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sizing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Daily energy:      %.2f Wh\n", res.DailyEnergyWh)
	fmt.Printf("Inverter size:     %.2f W\n", res.InverterSizeW)
	fmt.Printf("Nighttime energy:  %.2f Wh (incl. %.0f%% margin)\n", res.NighttimeEnergyWh, system.NightMargin*100)
	fmt.Printf("Battery bank:      %.2f Wh (%.2f Ah @ %.0f V)\n", res.BatteryBankWh, res.RequiredAh, system.BatteryVoltageV)
	fmt.Printf("Batteries:         %d x %.0f Ah\n", res.BatteryCount, system.BatteryCapacityAh)
	fmt.Printf("Panels:            %d x %.0f W (%.2f W required)\n", res.PanelCount, system.PanelWattageW, res.RequiredPanelWattageW)

	if *outPath != "" {
		rows, err := sizing.Breakdown(loads, system)
		if err != nil {
			fmt.Fprintf(os.Stderr, "breakdown: %v\n", err)
			os.Exit(1)
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		if err := report.WriteBreakdownCSV(*outPath, rows); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	}
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	dir := fs.String("dir", "examples/batteries", "Directory of battery preset YAML files")
	_ = fs.Parse(args)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-24s %-20s %-10s %-8s %-8s %-6s\n", "id", "name", "chemistry", "volts", "ah", "dod")
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		preset, err := config.LoadBatteryPreset(filepath.Join(*dir, e.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", e.Name(), err)
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		name := preset.Name
		if name == "" {
			name = id
		}
		fmt.Printf("%-24s %-20s %-10s %-8.0f %-8.0f %-6.2f\n",
			id, name, preset.Chemistry, preset.VoltageV, preset.CapacityAh, preset.DepthOfDischarge)
	}
}
