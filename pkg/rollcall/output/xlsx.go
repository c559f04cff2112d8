package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rollcall/pkg/rollcall/match"
)

// WriteWorkbook exports a report as an Excel workbook with one results sheet
// and one summary sheet.
func WriteWorkbook(report *match.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const resultsSheet = "Results"
	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Row", "Sheet Name", "Sheet ID", "Matched ID", "Matched Name", "Type", "Confidence", "Valid", "Signature"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range report.Results {
		values := []any{r.RowNumber, r.SheetName, r.SheetID, r.MatchedID, r.MatchedName, string(r.Type), r.Confidence, r.Valid, r.SignaturePresent}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return fmt.Errorf("write result row: %w", err)
			}
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	s := report.Summary
	lines := [][2]any{
		{"Sheet date", report.SheetDate},
		{"Sheet ID", report.SheetID},
		{"Total rows", s.TotalRows},
		{"Valid matches", s.ValidMatches},
		{"High confidence", s.HighConfidence},
		{"ID matches", s.IDMatches},
		{"Name matches", s.NameMatches},
		{"No matches", s.NoMatches},
		{"Match percent", s.MatchPercent},
	}
	for i, line := range lines {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(summarySheet, keyCell, line[0]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if err := f.SetCellValue(summarySheet, valCell, line[1]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
