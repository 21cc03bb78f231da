// Package constants defines shared constants and types used throughout the
// focaccia navigation toolkit.
package constants

import "time"

// DefaultTypeaheadTimeout is how long the typeahead buffer survives after the
// last keystroke before it is cleared.
const DefaultTypeaheadTimeout = 500 * time.Millisecond

// DefaultAnnounceDebounce is the window within which an identical announcement
// is suppressed to avoid flooding assistive technology.
const DefaultAnnounceDebounce = 150 * time.Millisecond

// DefaultRepeatDelay is the hold time before a held key starts repeating.
const DefaultRepeatDelay = 300 * time.Millisecond

// DefaultRepeatInterval is the time between repeats once repeating has begun.
const DefaultRepeatInterval = 50 * time.Millisecond

// Key represents an abstract navigation key, mapped from whatever input layer
// the host runs on (SDL, evdev, a terminal). This abstraction keeps the
// navigation core independent of any particular event source.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	// KeyRune carries a printable character for typeahead matching.
	// The character itself travels in Event.Rune.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyHome:   "home",
	KeyEnd:    "end",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyEscape: "escape",
	KeyTab:    "tab",
	KeyRune:   "rune",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyFromName resolves a key name used in keymap files ("up", "enter", ...)
// back to its Key constant. The bool reports whether the name was recognized.
func KeyFromName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyNone, false
}

// IsDirectional returns true for the four arrow keys.
func (k Key) IsDirectional() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}
