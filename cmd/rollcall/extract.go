package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/pkg/rollcall/output"
	"rollcall/pkg/rollcall/sheet"
)

func newExtractCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "extract [analysis.json]",
		Short: "Print the rows reconstructed from an OCR analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := decodeRegions(args[0])
			if err != nil {
				return err
			}

			params := sheet.DefaultParams()
			if cfg.SelectionMarker != "" {
				params.SelectionMarker = cfg.SelectionMarker
			}
			rows := sheet.Reconstruct(regions, params)
			logger.Info("reconstructed table", "regions", len(regions), "rows", len(rows))

			data, err := output.RowsToJSON(rows, pretty)
			if err != nil {
				return fmt.Errorf("serialize rows: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
