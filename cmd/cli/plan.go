package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"production-plan/internal/api/models"
	"production-plan/internal/data"
	"production-plan/internal/logger"
	"production-plan/internal/planner"
	"production-plan/internal/report"
)

func newPlanCmd() *cobra.Command {
	var payload, out, format string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the production plan for a payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "table" {
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}
			res, err := runPayload(payload, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			items := models.NewPlanItems(res.Allocations)

			if out != "" {
				if err := writeOut(out, res, items); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", len(items), out)
			}

			if format == "table" {
				printPlanTable(cmd.OutOrStdout(), items)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "path to a JSON or YAML payload")
	cmd.Flags().StringVar(&out, "out", "", "optional output file (.csv or .json)")
	cmd.Flags().StringVar(&format, "format", "json", "stdout format: json or table")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}

func newMeritOrderCmd() *cobra.Command {
	var payload string
	cmd := &cobra.Command{
		Use:   "meritorder",
		Short: "Print the merit order with costs and dispatched power",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runPayload(payload, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			printMeritOrder(cmd.OutOrStdout(), models.NewMeritOrderResponse(res))
			return nil
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "path to a JSON or YAML payload")
	_ = cmd.MarkFlagRequired("payload")
	return cmd
}

// runPayload logs to errOut so stdout carries only the plan.
func runPayload(path string, errOut io.Writer) (*planner.Result, error) {
	req, err := data.LoadPayload(path)
	if err != nil {
		return nil, err
	}
	return planner.New(logger.NewWithWriter("cli", errOut)).Run(req.ToModel())
}

func writeOut(path string, res *planner.Result, items []models.ProductionPlanItem) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return report.WritePlanCSV(path, res)
	case ".json":
		return data.WritePlanJSON(path, items)
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

func printPlanTable(w io.Writer, items []models.ProductionPlanItem) {
	fmt.Fprintf(w, "%-28s %10s\n", "name", "p (MW)")
	for _, it := range items {
		fmt.Fprintf(w, "%-28s %10.1f\n", it.Name, it.P)
	}
}

func printMeritOrder(w io.Writer, mo models.MeritOrderResponse) {
	fmt.Fprintf(w, "%-4s %-28s %-12s %-10s %-8s %-8s %-8s\n", "rank", "name", "type", "eur/MWh", "pmin", "pmax", "p")
	for _, u := range mo.Units {
		fmt.Fprintf(w, "%-4d %-28s %-12s %-10.2f %-8.1f %-8.1f %-8.1f\n",
			u.Rank, u.Name, u.Type, u.CostPerMWh, u.EffectivePMin, u.EffectivePMax, u.P)
	}
	fmt.Fprintf(w, "load=%.1f MW allocated=%.1f MW hourly cost=%s EUR\n", mo.Load, mo.Allocated, mo.HourlyCost)
}
