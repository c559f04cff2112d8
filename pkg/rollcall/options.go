// Package rollcall reconciles scanned sign-in sheets against a roster of
// known identities.
package rollcall

import "rollcall/pkg/rollcall/sheet"

// Options configures sheet processing.
type Options struct {
	// SelectionMarker is the literal emitted for a filled selection mark.
	// Empty means the default marker.
	SelectionMarker string
	// SheetDate is the date printed on the sheet (YYYY-MM-DD), recorded on
	// the report.
	SheetDate string
	// SheetID identifies the physical sheet, recorded on the report.
	SheetID string
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) sheetParams() sheet.Params {
	params := sheet.DefaultParams()
	if o.SelectionMarker != "" {
		params.SelectionMarker = o.SelectionMarker
	}
	return params
}
