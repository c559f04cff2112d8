// Package output serializes and renders reconciliation reports for the CLI.
package output

import (
	"encoding/json"

	"rollcall/pkg/rollcall/match"
)

// ToJSON serializes a report to JSON.
func ToJSON(report *match.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// RowsToJSON serializes extracted rows to JSON, for the extract command.
func RowsToJSON(rows any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(rows, "", "  ")
	}
	return json.Marshal(rows)
}
