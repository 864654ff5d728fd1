package model

// LoadEntry describes one appliance row entered by the user.
// Units:
// - WattageW: watts drawn by a single unit
// - HoursPerDay: hours of daily runtime, 0..24
//
// Entries are immutable values; they carry no identity beyond their
// position in the list they arrived in.
type LoadEntry struct {
	Name        string
	Quantity    int
	WattageW    float64
	HoursPerDay float64
}

func (l LoadEntry) Validate() error {
	if l.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "must be > 0"}
	}
	if l.WattageW <= 0 {
		return &ValidationError{Field: "wattage_w", Message: "must be > 0"}
	}
	if l.HoursPerDay < 0 || l.HoursPerDay > 24 {
		return &ValidationError{Field: "hours_per_day", Message: "must be within [0, 24]"}
	}
	return nil
}

// PeakW is the worst-case simultaneous draw of this entry.
func (l LoadEntry) PeakW() float64 {
	return float64(l.Quantity) * l.WattageW
}

// DailyWh is the energy this entry consumes over one day.
func (l LoadEntry) DailyWh() float64 {
	return l.PeakW() * l.HoursPerDay
}

// ValidateLoads validates every entry, returning the first failure.
func ValidateLoads(loads []LoadEntry) error {
	for _, l := range loads {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
