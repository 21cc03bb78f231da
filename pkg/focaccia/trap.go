package focaccia

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal/locale"
)

// Trap confines Tab navigation to the focusable descendants of a single
// container while active, for modal surfaces. Focusables are snapshotted at
// activation time; content that appears inside the container afterwards is
// not trapped until the trap is reactivated.
//
// Deactivation restores focus to the element that held it before activation,
// exactly once, no matter how many times Deactivate is called.
type Trap struct {
	// Fallback receives focus on deactivation when the previously focused
	// element has left the tree (e.g. the dialog's trigger was removed while
	// the dialog was open). Optional.
	Fallback Element

	container Container
	doc       Document
	announcer *Announcer

	focusables    []Element
	previousFocus Element
	active        *atomic.Bool
	restored      bool
}

// NewTrap creates an inactive trap around container. The announcer may be
// nil to suppress the engage/release announcements.
func NewTrap(container Container, doc Document, announcer *Announcer) *Trap {
	return &Trap{
		container: container,
		doc:       doc,
		announcer: announcer,
		active:    atomic.NewBool(false),
	}
}

// Active reports whether the trap currently confines focus.
func (t *Trap) Active() bool {
	return t.active.Load()
}

// Activate snapshots the container's focusables, records the element that
// holds focus so it can be restored later, and moves focus to the first
// focusable. Activating an already-active trap is a programming error and
// returns ErrTrapActive with the trap left untouched.
func (t *Trap) Activate() error {
	if !t.active.CompareAndSwap(false, true) {
		return ErrTrapActive
	}

	t.focusables = t.container.FocusableDescendants()
	t.restored = false
	t.previousFocus = nil
	if t.doc != nil {
		t.previousFocus = t.doc.ActiveElement()
	}

	if len(t.focusables) == 0 {
		internal.GetLogger().Warn("trap activated with no focusable descendants")
	} else {
		first := t.focusables[0]
		if first.Attached() {
			first.Focus()
		}
	}

	if t.announcer != nil {
		t.announcer.Announce(locale.OverlayEngaged(), Assertive)
	}
	return nil
}

// Deactivate releases the trap and restores focus to the previously focused
// element. Safe to call repeatedly; only the first call after an activation
// restores focus.
func (t *Trap) Deactivate() {
	if !t.active.CompareAndSwap(true, false) {
		return
	}

	if !t.restored {
		t.restored = true
		switch {
		case t.previousFocus != nil && t.previousFocus.Attached():
			t.previousFocus.Focus()
		case t.Fallback != nil && t.Fallback.Attached():
			t.Fallback.Focus()
		case t.previousFocus != nil:
			internal.GetLogger().Debug("previous focus detached, restore skipped")
		}
	}
	t.previousFocus = nil
	t.focusables = nil

	if t.announcer != nil {
		t.announcer.Announce(locale.OverlayReleased(), Polite)
	}
}

// HandleKey consumes Tab and Shift+Tab while the trap is active, cycling
// focus through the snapshot with wraparound. Every other key passes through.
func (t *Trap) HandleKey(ev Event) bool {
	if !t.active.Load() || !ev.Pressed || ev.Key != constants.KeyTab {
		return false
	}
	if len(t.focusables) == 0 {
		return true // swallow Tab so focus cannot escape an empty trap
	}

	step := 1
	if ev.Shift {
		step = -1
	}

	n := len(t.focusables)
	cur := t.focusedIndex()
	next := (cur + step + n) % n
	if cur < 0 {
		// Focus escaped the snapshot somehow; pull it back to an edge.
		next = 0
		if ev.Shift {
			next = n - 1
		}
	}

	// Snapshot entries may have left the tree since activation; keep scanning
	// in the same direction so focus always lands back inside the trap.
	for i := 0; i < n; i++ {
		el := t.focusables[next]
		if el.Attached() {
			el.Focus()
			break
		}
		next = (next + step + n) % n
	}
	return true
}

// focusedIndex locates the host's focused element within the snapshot, -1
// when it is outside the trap.
func (t *Trap) focusedIndex() int {
	if t.doc == nil {
		return -1
	}
	active := t.doc.ActiveElement()
	if active == nil {
		return -1
	}
	for i, el := range t.focusables {
		if el == active {
			return i
		}
	}
	return -1
}

// TrapGroup coordinates stacked modal surfaces (a dialog opening another
// dialog). Only the top trap receives keys; dismissing unwinds one layer at
// a time, restoring focus through each layer in reverse order.
type TrapGroup struct {
	traps []*Trap
}

// NewTrapGroup creates an empty group.
func NewTrapGroup() *TrapGroup {
	return &TrapGroup{traps: make([]*Trap, 0)}
}

// Push activates t and makes it the top of the stack. The trap is not pushed
// if activation fails.
func (g *TrapGroup) Push(t *Trap) error {
	if err := t.Activate(); err != nil {
		return err
	}
	g.traps = append(g.traps, t)
	return nil
}

// Pop deactivates and removes the top trap. Returns false when the stack is
// empty.
func (g *TrapGroup) Pop() bool {
	if len(g.traps) == 0 {
		return false
	}
	top := g.traps[len(g.traps)-1]
	g.traps = g.traps[:len(g.traps)-1]
	top.Deactivate()
	return true
}

// Peek returns the top trap without removing it, or nil.
func (g *TrapGroup) Peek() *Trap {
	if len(g.traps) == 0 {
		return nil
	}
	return g.traps[len(g.traps)-1]
}

// Len returns the number of active layers.
func (g *TrapGroup) Len() int {
	return len(g.traps)
}

// IsEmpty reports whether no trap is active.
func (g *TrapGroup) IsEmpty() bool {
	return len(g.traps) == 0
}

// Clear unwinds every layer, top first.
func (g *TrapGroup) Clear() {
	for g.Pop() {
	}
}

// HandleKey routes the event to the top trap. Escape pops the top layer.
func (g *TrapGroup) HandleKey(ev Event) bool {
	top := g.Peek()
	if top == nil {
		return false
	}
	if ev.Pressed && ev.Key == constants.KeyEscape {
		g.Pop()
		return true
	}
	return top.HandleKey(ev)
}
