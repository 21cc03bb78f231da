package focaccia

import (
	"time"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

// KeyRepeat tracks a held navigation key and handles repeat timing for hosts
// whose input layer only reports raw press/release transitions (evdev, SDL
// with repeat disabled). Hosts with OS-level key repeat do not need it.
type KeyRepeat struct {
	heldKey        constants.Key
	heldShift      bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool

	now func() time.Time
}

// NewKeyRepeat creates a KeyRepeat with default timing: 300ms before the
// first repeat, then 50ms between repeats.
func NewKeyRepeat() *KeyRepeat {
	return NewKeyRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewKeyRepeatWithTiming creates a KeyRepeat with custom timing.
func NewKeyRepeatWithTiming(delay, interval time.Duration) *KeyRepeat {
	kr := &KeyRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
	kr.lastRepeatTime = kr.now()
	return kr
}

// Observe updates the held state from a key event. Only directional keys
// repeat; activation and dismissal keys fire once per press. Returns true if
// the event affected the held state.
func (k *KeyRepeat) Observe(ev Event) bool {
	if !ev.Key.IsDirectional() {
		return false
	}
	if ev.Pressed {
		if k.heldKey != ev.Key {
			k.heldKey = ev.Key
			k.heldShift = ev.Shift
			k.lastRepeatTime = k.now()
			k.hasRepeated = false
		}
		return true
	}
	if k.heldKey == ev.Key {
		k.Reset()
	}
	return true
}

// IsHeld returns true if a directional key is currently held.
func (k *KeyRepeat) IsHeld() bool {
	return k.heldKey != constants.KeyNone
}

// Update checks if a repeat event should fire based on timing. Call this
// every frame; feed the returned event into Controller.HandleKey when ok is
// true. The first repeat occurs after the delay, subsequent repeats after
// the interval.
func (k *KeyRepeat) Update() (ev Event, ok bool) {
	if !k.IsHeld() {
		k.lastRepeatTime = k.now()
		k.hasRepeated = false
		return Event{}, false
	}

	timeSince := k.now().Sub(k.lastRepeatTime)

	threshold := k.repeatInterval
	if !k.hasRepeated {
		threshold = k.repeatDelay
	}

	if timeSince >= threshold {
		k.lastRepeatTime = k.now()
		k.hasRepeated = true
		return Event{Key: k.heldKey, Shift: k.heldShift, Pressed: true}, true
	}

	return Event{}, false
}

// Reset clears the held key and timing state.
func (k *KeyRepeat) Reset() {
	k.heldKey = constants.KeyNone
	k.heldShift = false
	k.hasRepeated = false
	k.lastRepeatTime = k.now()
}
