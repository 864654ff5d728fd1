package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"solar-sizing/internal/sizing"
)

// WriteBreakdownCSV writes the per-load breakdown to path. One row per
// load, heaviest consumers first (the order Breakdown returns).
func WriteBreakdownCSV(path string, rows []sizing.BreakdownRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"name",
		"quantity",
		"peak_w",
		"daily_wh",
		"nighttime_wh",
		"share_of_daily",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.Name,
			strconv.Itoa(r.Quantity),
			fmtFloat(r.PeakW),
			fmtFloat(r.DailyWh),
			fmtFloat(r.NighttimeWh),
			fmtFloat(r.ShareOfDaily),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
