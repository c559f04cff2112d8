// Package ocr defines the region model produced by the OCR/table-detection
// provider and decoders for its wire formats.
package ocr

// Kind identifies the variant of a detected region.
type Kind string

const (
	// KindWord is a single recognized word.
	KindWord Kind = "WORD"
	// KindSelectionMark is a checkbox or similar selection element.
	KindSelectionMark Kind = "SELECTION_MARK"
	// KindCell is one table cell, positioned by row/column index.
	KindCell Kind = "CELL"
	// KindTable is a detected table grouping cell regions.
	KindTable Kind = "TABLE"
)

// Region is one detected OCR primitive. Regions reference each other by id;
// a referenced id that resolves to nothing is skipped by consumers, never an
// error.
type Region struct {
	// ID uniquely identifies the region within one provider response.
	ID string `json:"id"`
	// Kind is the variant tag.
	Kind Kind `json:"kind"`
	// Text is the recognized text (words only).
	Text string `json:"text,omitempty"`
	// Selected reports whether a selection mark is filled in.
	Selected bool `json:"selected,omitempty"`
	// RowIndex is the 1-based table row (cells only).
	RowIndex int `json:"row_index,omitempty"`
	// ColumnIndex is the 1-based table column (cells only).
	ColumnIndex int `json:"column_index,omitempty"`
	// ChildIDs lists ids of contained regions (cells and tables).
	ChildIDs []string `json:"child_ids,omitempty"`
}

// Index builds an id lookup over regions. Regions without an id are dropped.
func Index(regions []Region) map[string]Region {
	idx := make(map[string]Region, len(regions))
	for _, r := range regions {
		if r.ID == "" {
			continue
		}
		idx[r.ID] = r
	}
	return idx
}
