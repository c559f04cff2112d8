package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rollcall/pkg/rollcall"
	"rollcall/pkg/rollcall/ocr"
	"rollcall/pkg/rollcall/output"
	"rollcall/pkg/rollcall/roster"
)

func newReconcileCmd() *cobra.Command {
	var (
		sheetDate  string
		sheetID    string
		asJSON     bool
		pretty     bool
		outputPath string
		xlsxPath   string
	)

	cmd := &cobra.Command{
		Use:   "reconcile [analysis.json]",
		Short: "Reconcile an OCR analysis against the roster",
		Long: `reconcile reads a saved OCR analysis (AnalyzeDocument-style JSON),
reconstructs the sign-in table, matches each row against the roster, and
prints the reconciliation report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := decodeRegions(args[0])
			if err != nil {
				return err
			}
			logger.Info("decoded analysis", "path", args[0], "regions", len(regions))

			store, err := roster.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			snapshot, err := store.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("loaded roster", "identities", len(snapshot))

			if sheetID == "" {
				sheetID = uuid.NewString()
			}

			report := rollcall.Process(regions, snapshot, rollcall.Options{
				SelectionMarker: cfg.SelectionMarker,
				SheetDate:       sheetDate,
				SheetID:         sheetID,
			})
			logger.Info("reconciled sheet",
				"rows", report.Summary.TotalRows,
				"valid", report.Summary.ValidMatches,
				"unmatched_roster", len(report.UnmatchedRoster),
			)

			if xlsxPath != "" {
				if err := output.WriteWorkbook(report, xlsxPath); err != nil {
					return err
				}
			}

			if asJSON || outputPath != "" {
				data, err := output.ToJSON(report, pretty)
				if err != nil {
					return fmt.Errorf("serialize report: %w", err)
				}
				if outputPath != "" {
					return os.WriteFile(outputPath, data, 0o644)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(output.RenderResults(report))
			fmt.Print(output.RenderSummary(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetDate, "date", "", "Sheet date YYYY-MM-DD")
	cmd.Flags().StringVar(&sheetID, "sheet-id", "", "ID printed on the sheet (default: generated)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the JSON report to a file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write the report as an Excel workbook")
	return cmd
}

func decodeRegions(path string) ([]ocr.Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open analysis: %w", err)
	}
	defer f.Close()
	return ocr.DecodeTextract(f)
}
