// Package roster persists known identity records in SQLite and loads roster
// snapshots for reconciliation.
package roster

// Identity is one known identity record. The identifier is the unique key;
// Attrs carries arbitrary extra attributes from the source system.
type Identity struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Attrs map[string]string `json:"attrs,omitempty"`
}
