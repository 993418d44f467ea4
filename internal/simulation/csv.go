package simulation

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteRawCSV dumps the per-scenario indicator values, one row per scenario.
// This is the primary artifact for offline inspection of a run; NaN slots are
// written as empty cells.
func WriteRawCSV(path string, res *Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"scenario", "npv", "irr", "roi", "pbp", "dpp"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < res.NSims; i++ {
		row := []string{
			strconv.Itoa(i),
			fmtFloat(res.NPV[i]),
			fmtFloat(res.IRR[i]),
			fmtFloat(res.ROI[i]),
			fmtFloat(res.PBP[i]),
			fmtFloat(res.DPP[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	if x != x { // NaN
		return ""
	}
	return strconv.FormatFloat(x, 'f', 6, 64)
}
