// Package consts provides operation name constants for the hook system.
package consts

// Operation names for the hook system.
const (
	// Template operations.
	Add  = "Add"
	Init = "Init"

	// Merge operations.
	Merge     = "Merge"
	Propagate = "Propagate"
)

// Operations lists every operation hooks can be registered on.
var Operations = []string{Add, Init, Merge, Propagate}
