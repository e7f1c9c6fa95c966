package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"production-plan/internal/planner"
)

// WritePlanCSV writes the merit order of a plan to path, one row per powerplant.
func WritePlanCSV(path string, res *planner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteMeritOrder(f, res); err != nil {
		return err
	}
	return f.Close()
}

func WriteMeritOrder(out io.Writer, res *planner.Result) error {
	w := csv.NewWriter(out)

	header := []string{
		"rank",
		"name",
		"type",
		"cost_per_mwh",
		"effective_pmin",
		"effective_pmax",
		"p",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, d := range res.MeritOrder {
		row := []string{
			strconv.Itoa(i + 1),
			d.Name,
			string(d.Type),
			fmtFloat(d.Cost, 2),
			fmtFloat(d.PMin, 1),
			fmtFloat(d.PMax, 1),
			fmtFloat(d.P, 1),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'f', prec, 64)
}
