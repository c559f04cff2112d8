package match

import "rollcall/pkg/rollcall/sheet"

// Type classifies how a row was matched to a roster identity.
type Type string

const (
	// TypeID means the row's identifier keyed directly into the roster.
	TypeID Type = "ID"
	// TypeName means the best name-similarity candidate was chosen.
	TypeName Type = "NAME"
	// TypeNone means no candidate cleared the match floor.
	TypeNone Type = "NONE"
)

// Result is the reconciliation outcome for one extracted row.
type Result struct {
	// RowNumber is the 1-based position in the extracted sequence.
	RowNumber int `json:"row_number"`
	// SheetName is the name as written on the sheet.
	SheetName string `json:"sheet_name"`
	// SheetID is the identifier as written on the sheet, whitespace removed.
	SheetID string `json:"sheet_id"`
	// MatchedID is the chosen roster identifier; on TypeNone it falls back
	// to the row's own identifier, or "UNKNOWN" when that is empty too.
	MatchedID string `json:"matched_id"`
	// MatchedName is the chosen roster name, empty on TypeNone.
	MatchedName string `json:"matched_name"`
	// Confidence is the similarity score of the chosen candidate, 0 on
	// TypeNone.
	Confidence float64 `json:"confidence"`
	// Type is the match classification.
	Type Type `json:"match_type"`
	// Valid reports a confirmed match: matched and confidence >= 0.90.
	Valid bool `json:"valid"`
	// SignaturePresent reports whether the row's signature cell held
	// anything.
	SignaturePresent bool `json:"signature_present"`
	// Row is the underlying extracted row.
	Row sheet.Row `json:"row"`
}

// Summary holds sheet-level reconciliation counts.
type Summary struct {
	// TotalRows is the number of extracted rows processed.
	TotalRows int `json:"total_rows"`
	// ValidMatches counts rows with confidence >= 0.90.
	ValidMatches int `json:"valid_matches"`
	// HighConfidence counts rows with confidence >= 0.80.
	HighConfidence int `json:"high_confidence"`
	// IDMatches counts identifier-keyed matches.
	IDMatches int `json:"id_matches"`
	// NameMatches counts name-similarity matches.
	NameMatches int `json:"name_matches"`
	// NoMatches counts unmatched rows.
	NoMatches int `json:"no_matches"`
	// MatchPercent is matched roster identifiers over all roster
	// identifiers, times 100; 0 for an empty roster.
	MatchPercent float64 `json:"match_percent"`
}

// Report aggregates per-row results with sheet-level and roster-level
// reconciliation sets.
type Report struct {
	// SheetDate is the date printed on the sheet, as supplied by the caller.
	SheetDate string `json:"sheet_date,omitempty"`
	// SheetID identifies the physical sheet, as supplied by the caller.
	SheetID string `json:"sheet_id,omitempty"`
	// Results holds one entry per extracted row, in row order.
	Results []Result `json:"results"`
	// MatchedIDs lists roster identifiers matched by some row, sorted.
	MatchedIDs []string `json:"matched_ids"`
	// ExtraNames lists sheet names with no roster counterpart, in row order.
	ExtraNames []string `json:"extra_names"`
	// UnmatchedRoster lists roster identifiers no row matched, sorted.
	UnmatchedRoster []string `json:"unmatched_roster"`
	// Summary holds the aggregate counts.
	Summary Summary `json:"summary"`
}
