package focaccia

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

func newTestKeyRepeat() (*KeyRepeat, *time.Time) {
	kr := NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
	cur := time.Unix(1000, 0)
	kr.now = func() time.Time { return cur }
	kr.lastRepeatTime = cur
	return kr, &cur
}

func TestKeyRepeatDelayThenInterval(t *testing.T) {
	kr, cur := newTestKeyRepeat()

	if !kr.Observe(Event{Key: constants.KeyDown, Pressed: true}) {
		t.Fatal("directional press not observed")
	}
	if _, ok := kr.Update(); ok {
		t.Error("repeat fired before the delay")
	}

	*cur = cur.Add(300 * time.Millisecond)
	ev, ok := kr.Update()
	if !ok || ev.Key != constants.KeyDown || !ev.Pressed {
		t.Fatalf("Update after delay = (%v, %v), want KeyDown press", ev, ok)
	}

	if _, ok := kr.Update(); ok {
		t.Error("repeat fired again without the interval elapsing")
	}
	*cur = cur.Add(50 * time.Millisecond)
	if _, ok := kr.Update(); !ok {
		t.Error("repeat did not fire after the interval")
	}
}

func TestKeyRepeatReleaseStops(t *testing.T) {
	kr, cur := newTestKeyRepeat()

	kr.Observe(Event{Key: constants.KeyDown, Pressed: true})
	*cur = cur.Add(300 * time.Millisecond)
	kr.Update()

	kr.Observe(Event{Key: constants.KeyDown, Pressed: false})
	if kr.IsHeld() {
		t.Error("IsHeld() = true after release")
	}
	*cur = cur.Add(time.Second)
	if _, ok := kr.Update(); ok {
		t.Error("repeat fired after release")
	}
}

func TestKeyRepeatIgnoresNonDirectional(t *testing.T) {
	kr, _ := newTestKeyRepeat()

	if kr.Observe(Event{Key: constants.KeyEnter, Pressed: true}) {
		t.Error("Observe accepted an activation key")
	}
	if kr.Observe(Event{Key: constants.KeyRune, Rune: 'w', Pressed: true}) {
		t.Error("Observe accepted a printable key")
	}
	if kr.IsHeld() {
		t.Error("IsHeld() = true without a directional press")
	}
}

func TestKeyRepeatSwitchingKeysRestartsDelay(t *testing.T) {
	kr, cur := newTestKeyRepeat()

	kr.Observe(Event{Key: constants.KeyDown, Pressed: true})
	*cur = cur.Add(250 * time.Millisecond)
	kr.Observe(Event{Key: constants.KeyUp, Pressed: true})

	*cur = cur.Add(100 * time.Millisecond)
	if _, ok := kr.Update(); ok {
		t.Error("switched key inherited the previous key's hold time")
	}
	*cur = cur.Add(200 * time.Millisecond)
	ev, ok := kr.Update()
	if !ok || ev.Key != constants.KeyUp {
		t.Errorf("Update = (%v, %v), want KeyUp repeat", ev, ok)
	}
}
