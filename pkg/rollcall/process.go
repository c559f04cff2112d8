package rollcall

import (
	"rollcall/pkg/rollcall/match"
	"rollcall/pkg/rollcall/ocr"
	"rollcall/pkg/rollcall/roster"
	"rollcall/pkg/rollcall/sheet"
)

// Process reconstructs the first table from the provider's regions and
// reconciles its rows against the roster snapshot. Pure function of its
// inputs; malformed regions or an empty roster degrade to an empty or
// partial report.
func Process(regions []ocr.Region, snapshot map[string]roster.Identity, opts Options) *match.Report {
	rows := sheet.Reconstruct(regions, opts.sheetParams())
	report := match.Reconcile(rows, snapshot)
	report.SheetDate = opts.SheetDate
	report.SheetID = opts.SheetID
	return report
}
