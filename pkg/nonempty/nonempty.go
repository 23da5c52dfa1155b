// Package nonempty provides sequence types that are guaranteed to hold at
// least one element across their entire lifetime.
//
// List is the owned, growable variant and follows the semantics of a plain
// slice; operations that could empty it either refuse to run or report a
// soft "no removal" outcome. View is the borrowed, read-only variant:
// a zero-copy window over storage that is owned elsewhere.
package nonempty

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNotEnoughElements is returned when a construction source is empty,
	// or when a removal would shrink a sequence below one element.
	ErrNotEnoughElements errorkit.Error = "not enough elements"
	// ErrOutOfBounds is returned when an index falls outside the valid range.
	ErrOutOfBounds errorkit.Error = "index is out of bounds"
)
