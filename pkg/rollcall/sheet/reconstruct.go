package sheet

import (
	"fmt"
	"strings"

	"rollcall/pkg/rollcall/ocr"
)

// Params holds parameters for table reconstruction.
type Params struct {
	// SelectionMarker is the literal appended for a filled selection mark.
	SelectionMarker string
}

// DefaultParams returns default reconstruction parameters.
func DefaultParams() Params {
	return Params{
		SelectionMarker: "[X]",
	}
}

type cellKey struct {
	row, col int
}

// Reconstruct converts the provider's flat region collection into data rows
// from the first detected table. Row 1 is the header; rows whose every value
// is empty are dropped. A missing table, missing cells, or dangling child ids
// degrade to fewer or no rows, never an error.
func Reconstruct(regions []ocr.Region, params Params) []Row {
	idx := ocr.Index(regions)

	table, ok := firstTable(regions)
	if !ok {
		return nil
	}

	cells := make(map[cellKey]string)
	maxRow, maxCol := 0, 0
	for _, cid := range table.ChildIDs {
		cell, ok := idx[cid]
		if !ok || cell.Kind != ocr.KindCell {
			continue
		}
		if cell.RowIndex > maxRow {
			maxRow = cell.RowIndex
		}
		if cell.ColumnIndex > maxCol {
			maxCol = cell.ColumnIndex
		}
		cells[cellKey{cell.RowIndex, cell.ColumnIndex}] = cellText(cell, idx, params.SelectionMarker)
	}

	header := make([]string, 0, maxCol)
	for c := 1; c <= maxCol; c++ {
		raw := cells[cellKey{1, c}]
		if strings.TrimSpace(raw) == "" {
			raw = fmt.Sprintf("Col%d", c)
		}
		header = append(header, classifyHeader(raw))
	}

	var rows []Row
	for r := 2; r <= maxRow; r++ {
		row := make(Row, len(header))
		empty := true
		for c, key := range header {
			val := strings.TrimSpace(cells[cellKey{r, c + 1}])
			if val != "" {
				empty = false
			}
			// Duplicate classified headers collapse onto one key; the
			// later column wins.
			row[key] = val
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}

// firstTable returns the first table region in input order.
func firstTable(regions []ocr.Region) (ocr.Region, bool) {
	for _, r := range regions {
		if r.Kind == ocr.KindTable {
			return r, true
		}
	}
	return ocr.Region{}, false
}

// cellText joins the text of a cell's word children and the marker for each
// filled selection mark. Child ids that resolve to nothing are skipped.
func cellText(cell ocr.Region, idx map[string]ocr.Region, marker string) string {
	var parts []string
	for _, cid := range cell.ChildIDs {
		child, ok := idx[cid]
		if !ok {
			continue
		}
		switch child.Kind {
		case ocr.KindWord:
			if child.Text != "" {
				parts = append(parts, child.Text)
			}
		case ocr.KindSelectionMark:
			if child.Selected {
				parts = append(parts, marker)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
