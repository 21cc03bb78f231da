package focaccia

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller misuse. These indicate programming errors in the
// host application, not conditions reachable through end-user input; anything
// a user can trigger (empty list, all items disabled, unmatched typeahead)
// degrades to a silent no-op instead.
var (
	// ErrTrapActive indicates Activate was called on a trap that is already
	// holding focus. Deactivate the existing trap first.
	ErrTrapActive = errors.New("focus trap already active")
)

// OutOfRangeError reports a registry lookup with a stale or invalid index.
// This should never be reachable from user input; treat it as an assertion
// failure in the host's bookkeeping.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("focaccia: index %d out of range [0, %d)", e.Index, e.Length)
}

// IsOutOfRange checks if an error is an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var oor *OutOfRangeError
	return errors.As(err, &oor)
}

// KeymapError represents a failure to parse or apply keymap overrides.
type KeymapError struct {
	Op  string // Operation that failed (e.g., "parse", "bind")
	Err error  // Underlying error
}

func (e *KeymapError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("focaccia: keymap %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("focaccia: keymap %s", e.Op)
}

func (e *KeymapError) Unwrap() error {
	return e.Err
}
