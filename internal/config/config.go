package config

import (
	"errors"
	"os"
	"path/filepath"

	"solar-sizing/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: pull battery ratings from a preset YAML (e.g.
	// examples/batteries/*.yaml). Explicit system values override the
	// preset.
	BatteryFile string `yaml:"battery_file"`
	// Optional: pull the panel rating from a preset YAML (e.g.
	// examples/panels/*.yaml).
	PanelFile string `yaml:"panel_file"`

	System SystemSettings `yaml:"system"`
	Loads  []LoadSettings `yaml:"loads"`
}

// SystemSettings mirrors model.SystemConfig with YAML tags. Zero fields
// pick up the stock defaults in Load.
type SystemSettings struct {
	PanelWattageW     float64 `yaml:"panel_wattage_w"`
	PeakSunHours      float64 `yaml:"peak_sun_hours"`
	SystemEfficiency  float64 `yaml:"system_efficiency"`
	DepthOfDischarge  float64 `yaml:"depth_of_discharge"`
	NighttimeHours    float64 `yaml:"nighttime_hours"`
	BatteryVoltageV   float64 `yaml:"battery_voltage_v"`
	BatteryCapacityAh float64 `yaml:"battery_capacity_ah"`
	NightMargin       float64 `yaml:"night_margin"`
}

type LoadSettings struct {
	Name        string  `yaml:"name"`
	Quantity    int     `yaml:"quantity"`
	WattageW    float64 `yaml:"wattage_w"`
	HoursPerDay float64 `yaml:"hours_per_day"`
}

func (s SystemSettings) ToModel() model.SystemConfig {
	return model.SystemConfig{
		PanelWattageW:     s.PanelWattageW,
		PeakSunHours:      s.PeakSunHours,
		SystemEfficiency:  s.SystemEfficiency,
		DepthOfDischarge:  s.DepthOfDischarge,
		NighttimeHours:    s.NighttimeHours,
		BatteryVoltageV:   s.BatteryVoltageV,
		BatteryCapacityAh: s.BatteryCapacityAh,
		NightMargin:       s.NightMargin,
	}
}

func (l LoadSettings) ToModel() model.LoadEntry {
	return model.LoadEntry{
		Name:        l.Name,
		Quantity:    l.Quantity,
		WattageW:    l.WattageW,
		HoursPerDay: l.HoursPerDay,
	}
}

// ToModelLoads converts the configured load list.
func (c *Config) ToModelLoads() []model.LoadEntry {
	out := make([]model.LoadEntry, 0, len(c.Loads))
	for _, l := range c.Loads {
		out = append(out, l.ToModel())
	}
	return out
}

// Load reads a YAML config, resolves preset files, applies defaults,
// and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.System = ApplyDefaults(c.System)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but applies no defaults and
// does not validate. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	// Preset paths are interpreted relative to the config file
	// directory first, falling back to the path as given.
	if c.BatteryFile != "" {
		preset, err := LoadBatteryPreset(resolvePath(path, c.BatteryFile))
		if err != nil {
			return nil, err
		}
		c.System = MergeSystem(preset.ToSystemSettings(), c.System)
	}
	if c.PanelFile != "" {
		preset, err := LoadPanelPreset(resolvePath(path, c.PanelFile))
		if err != nil {
			return nil, err
		}
		c.System = MergeSystem(preset.ToSystemSettings(), c.System)
	}
	return &c, nil
}

func resolvePath(cfgPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.System.ToModel().Validate(); err != nil {
		return err
	}
	return model.ValidateLoads(c.ToModelLoads())
}

// ApplyDefaults fills zero fields with the stock assumptions.
func ApplyDefaults(s SystemSettings) SystemSettings {
	def := model.DefaultSystemConfig()
	return MergeSystem(SystemSettings{
		PanelWattageW:     def.PanelWattageW,
		PeakSunHours:      def.PeakSunHours,
		SystemEfficiency:  def.SystemEfficiency,
		DepthOfDischarge:  def.DepthOfDischarge,
		NighttimeHours:    def.NighttimeHours,
		BatteryVoltageV:   def.BatteryVoltageV,
		BatteryCapacityAh: def.BatteryCapacityAh,
		NightMargin:       def.NightMargin,
	}, s)
}

// MergeSystem overlays non-zero fields from override onto base. Used
// when a preset file provides the base and the request or config file
// provides overrides.
func MergeSystem(base, override SystemSettings) SystemSettings {
	out := base
	if override.PanelWattageW != 0 {
		out.PanelWattageW = override.PanelWattageW
	}
	if override.PeakSunHours != 0 {
		out.PeakSunHours = override.PeakSunHours
	}
	if override.SystemEfficiency != 0 {
		out.SystemEfficiency = override.SystemEfficiency
	}
	if override.DepthOfDischarge != 0 {
		out.DepthOfDischarge = override.DepthOfDischarge
	}
	if override.NighttimeHours != 0 {
		out.NighttimeHours = override.NighttimeHours
	}
	if override.BatteryVoltageV != 0 {
		out.BatteryVoltageV = override.BatteryVoltageV
	}
	if override.BatteryCapacityAh != 0 {
		out.BatteryCapacityAh = override.BatteryCapacityAh
	}
	if override.NightMargin != 0 {
		out.NightMargin = override.NightMargin
	}
	return out
}
