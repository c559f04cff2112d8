package rollcall

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/pkg/rollcall/match"
	"rollcall/pkg/rollcall/ocr"
	"rollcall/pkg/rollcall/roster"
)

const signInAnalysis = `{
  "Blocks": [
    {"Id": "tbl", "BlockType": "TABLE", "Relationships": [
      {"Type": "CHILD", "Ids": ["h1", "h2", "h3", "r1c1", "r1c2", "r1c3", "r2c1", "r2c2", "r2c3"]}
    ]},
    {"Id": "h1", "BlockType": "CELL", "RowIndex": 1, "ColumnIndex": 1, "Relationships": [{"Type": "CHILD", "Ids": ["w-h1"]}]},
    {"Id": "h2", "BlockType": "CELL", "RowIndex": 1, "ColumnIndex": 2, "Relationships": [{"Type": "CHILD", "Ids": ["w-h2a", "w-h2b"]}]},
    {"Id": "h3", "BlockType": "CELL", "RowIndex": 1, "ColumnIndex": 3, "Relationships": [{"Type": "CHILD", "Ids": ["w-h3"]}]},
    {"Id": "w-h1", "BlockType": "WORD", "Text": "Name"},
    {"Id": "w-h2a", "BlockType": "WORD", "Text": "Employee"},
    {"Id": "w-h2b", "BlockType": "WORD", "Text": "ID"},
    {"Id": "w-h3", "BlockType": "WORD", "Text": "Signature"},
    {"Id": "r1c1", "BlockType": "CELL", "RowIndex": 2, "ColumnIndex": 1, "Relationships": [{"Type": "CHILD", "Ids": ["w-r1a", "w-r1b"]}]},
    {"Id": "r1c2", "BlockType": "CELL", "RowIndex": 2, "ColumnIndex": 2, "Relationships": [{"Type": "CHILD", "Ids": ["w-r1id"]}]},
    {"Id": "r1c3", "BlockType": "CELL", "RowIndex": 2, "ColumnIndex": 3, "Relationships": [{"Type": "CHILD", "Ids": ["sel-1"]}]},
    {"Id": "w-r1a", "BlockType": "WORD", "Text": "Jane"},
    {"Id": "w-r1b", "BlockType": "WORD", "Text": "Doe"},
    {"Id": "w-r1id", "BlockType": "WORD", "Text": "001"},
    {"Id": "sel-1", "BlockType": "SELECTION_ELEMENT", "SelectionStatus": "SELECTED"},
    {"Id": "r2c1", "BlockType": "CELL", "RowIndex": 3, "ColumnIndex": 1},
    {"Id": "r2c2", "BlockType": "CELL", "RowIndex": 3, "ColumnIndex": 2},
    {"Id": "r2c3", "BlockType": "CELL", "RowIndex": 3, "ColumnIndex": 3}
  ]
}`

func TestProcessEndToEnd(t *testing.T) {
	regions, err := ocr.DecodeTextract(strings.NewReader(signInAnalysis))
	require.NoError(t, err)

	snapshot := map[string]roster.Identity{
		"001": {ID: "001", Name: "Jane Doe"},
		"002": {ID: "002", Name: "John Smith"},
	}

	report := Process(regions, snapshot, Options{SheetDate: "2026-08-01", SheetID: "sheet-7"})

	assert.Equal(t, "2026-08-01", report.SheetDate)
	assert.Equal(t, "sheet-7", report.SheetID)

	// The all-empty third table row is dropped.
	require.Len(t, report.Results, 1)

	r := report.Results[0]
	assert.Equal(t, "Jane Doe", r.SheetName)
	assert.Equal(t, match.TypeID, r.Type)
	assert.Equal(t, "001", r.MatchedID)
	assert.Equal(t, 1.0, r.Confidence)
	assert.True(t, r.Valid)
	assert.True(t, r.SignaturePresent)

	assert.Equal(t, []string{"001"}, report.MatchedIDs)
	assert.Equal(t, []string{"002"}, report.UnmatchedRoster)
	assert.InDelta(t, 50.0, report.Summary.MatchPercent, 0.001)
}

func TestProcessCustomMarker(t *testing.T) {
	regions, err := ocr.DecodeTextract(strings.NewReader(signInAnalysis))
	require.NoError(t, err)

	report := Process(regions, nil, Options{SelectionMarker: "X"})
	require.Len(t, report.Results, 1)
	assert.Equal(t, "X", report.Results[0].Row["Signature"])
}

func TestProcessNoRegions(t *testing.T) {
	report := Process(nil, map[string]roster.Identity{
		"001": {ID: "001", Name: "Jane Doe"},
	}, DefaultOptions())

	assert.Empty(t, report.Results)
	assert.Equal(t, []string{"001"}, report.UnmatchedRoster)
	assert.Equal(t, 0.0, report.Summary.MatchPercent)
}
