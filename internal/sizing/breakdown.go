package sizing

import (
	"math"
	"sort"

	"solar-sizing/internal/model"
)

// BreakdownRow attributes a slice of the daily and nighttime demand to
// one load entry.
type BreakdownRow struct {
	Name         string
	Quantity     int
	PeakW        float64
	DailyWh      float64
	NighttimeWh  float64
	ShareOfDaily float64 // fraction of total daily energy, 0..1
}

// Breakdown itemizes daily energy per load, sorted descending by
// contribution so the heaviest consumers come first. Nighttime Wh here
// excludes the night margin; the margin applies to the aggregate, not
// to individual rows.
func Breakdown(loads []model.LoadEntry, cfg model.SystemConfig) ([]BreakdownRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := model.ValidateLoads(loads); err != nil {
		return nil, err
	}

	total := 0.0
	for _, l := range loads {
		total += l.DailyWh()
	}

	rows := make([]BreakdownRow, 0, len(loads))
	for _, l := range loads {
		row := BreakdownRow{
			Name:        l.Name,
			Quantity:    l.Quantity,
			PeakW:       l.PeakW(),
			DailyWh:     l.DailyWh(),
			NighttimeWh: l.PeakW() * math.Min(l.HoursPerDay, cfg.NighttimeHours),
		}
		if total > 0 {
			row.ShareOfDaily = row.DailyWh / total
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DailyWh > rows[j].DailyWh
	})
	return rows, nil
}
