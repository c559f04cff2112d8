// Package sheet reconstructs an ordered grid of header-labeled rows from the
// flat region collection an OCR provider returns for a sign-in sheet.
package sheet

import "strings"

// Canonical column keys a header cell classifies into.
const (
	KeyName       = "Name"
	KeyEmployeeID = "EmployeeID"
	KeyRoomNumber = "RoomNumber"
	KeyWake       = "Wake"
	KeySignature  = "Signature"
)

// Row maps a canonical column key (or a normalized raw header) to the cell
// text extracted for that column.
type Row map[string]string

// Name returns the row's name cell, whitespace-trimmed.
func (r Row) Name() string {
	return strings.TrimSpace(r[KeyName])
}

// EmployeeID returns the row's identifier cell with all whitespace removed.
func (r Row) EmployeeID() string {
	return strings.Join(strings.Fields(r[KeyEmployeeID]), "")
}

// SignaturePresent reports whether the signature cell holds anything.
func (r Row) SignaturePresent() bool {
	return strings.TrimSpace(r[KeySignature]) != ""
}

// classifyHeader maps raw header text onto a canonical key. The checks run in
// a fixed priority order; "Employee Name" classifies as Name because the name
// check precedes the employee/id check. Unrecognized headers fall back to
// their own lower-cased text with spaces removed.
func classifyHeader(raw string) string {
	h := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(h, "name"):
		return KeyName
	case strings.Contains(h, "employee") && strings.Contains(h, "id"):
		return KeyEmployeeID
	case strings.Contains(h, "room"):
		return KeyRoomNumber
	case strings.Contains(h, "wake"):
		return KeyWake
	case strings.Contains(h, "sign"):
		return KeySignature
	default:
		return strings.ReplaceAll(h, " ", "")
	}
}
