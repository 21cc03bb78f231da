package focaccia

import (
	"testing"
	"time"
)

func healthRegistry() *Registry {
	r := NewRegistry()
	items, _ := healthItems(nil)
	r.Replace(items)
	return r
}

func TestTypeaheadPrefixMatch(t *testing.T) {
	r := healthRegistry()
	m := NewMatcher(0)

	m.Append('w')
	m.Append('o')
	if got := m.Resolve(r, 0); got != 2 {
		t.Errorf("Resolve(%q) = %d, want 2 (Workouts)", m.Buffer(), got)
	}
}

func TestTypeaheadRepeatedCharCycles(t *testing.T) {
	r := healthRegistry()
	m := NewMatcher(0)

	// First "w" from Dashboard lands on Water Intake.
	m.Append('w')
	focused := m.Resolve(r, 0)
	if focused != 1 {
		t.Fatalf("first w: Resolve = %d, want 1 (Water Intake)", focused)
	}

	// Second "w" cycles to the next item sharing the initial.
	m.Append('w')
	focused = m.Resolve(r, focused)
	if focused != 2 {
		t.Fatalf("second w: Resolve = %d, want 2 (Workouts)", focused)
	}

	// Third wraps back around.
	m.Append('w')
	focused = m.Resolve(r, focused)
	if focused != 1 {
		t.Fatalf("third w: Resolve = %d, want 1 (Water Intake)", focused)
	}
}

func TestTypeaheadRepeatedCharOffMatchStaysPrefix(t *testing.T) {
	// When the focused item does not share the initial, "ww" is treated as a
	// literal prefix, which matches nothing here.
	r := healthRegistry()
	m := NewMatcher(0)

	m.Append('w')
	m.Append('w')
	if got := m.Resolve(r, 0); got != -1 {
		t.Errorf("Resolve(%q) from Dashboard = %d, want -1", m.Buffer(), got)
	}
}

func TestTypeaheadCaseFolding(t *testing.T) {
	r := healthRegistry()
	m := NewMatcher(0)

	m.Append('W')
	m.Append('A')
	if got := m.Resolve(r, 2); got != 1 {
		t.Errorf("Resolve(%q) = %d, want 1 (Water Intake)", m.Buffer(), got)
	}
}

func TestTypeaheadSkipsDisabled(t *testing.T) {
	r := NewRegistry()
	r.Replace([]NavItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "water", Label: "Water Intake", Disabled: true},
		{ID: "workouts", Label: "Workouts"},
	})
	m := NewMatcher(0)

	m.Append('w')
	if got := m.Resolve(r, 0); got != 2 {
		t.Errorf("Resolve skipping disabled = %d, want 2 (Workouts)", got)
	}
}

func TestTypeaheadNoMatch(t *testing.T) {
	r := healthRegistry()
	m := NewMatcher(0)

	m.Append('z')
	if got := m.Resolve(r, 0); got != -1 {
		t.Errorf("Resolve(%q) = %d, want -1", m.Buffer(), got)
	}
}

func TestTypeaheadEmptyRegistry(t *testing.T) {
	m := NewMatcher(0)
	m.Append('a')
	if got := m.Resolve(NewRegistry(), -1); got != -1 {
		t.Errorf("Resolve on empty registry = %d, want -1", got)
	}
}

func TestTypeaheadBufferDecay(t *testing.T) {
	m := NewMatcher(500 * time.Millisecond)
	cur := time.Unix(1000, 0)
	m.now = func() time.Time { return cur }

	m.Append('d')
	cur = cur.Add(600 * time.Millisecond)
	m.Append('w')

	if got := m.Buffer(); got != "w" {
		t.Errorf("Buffer after decay = %q, want %q", got, "w")
	}
}

func TestTypeaheadBufferSurvivesWithinTimeout(t *testing.T) {
	m := NewMatcher(500 * time.Millisecond)
	cur := time.Unix(1000, 0)
	m.now = func() time.Time { return cur }

	m.Append('w')
	cur = cur.Add(400 * time.Millisecond)
	m.Append('o')

	if got := m.Buffer(); got != "wo" {
		t.Errorf("Buffer = %q, want %q", got, "wo")
	}
}

func TestTypeaheadTickClearsStaleBuffer(t *testing.T) {
	m := NewMatcher(500 * time.Millisecond)
	cur := time.Unix(1000, 0)
	m.now = func() time.Time { return cur }

	m.Append('w')
	m.Tick()
	if m.Buffer() != "w" {
		t.Fatalf("Tick cleared a fresh buffer")
	}

	cur = cur.Add(600 * time.Millisecond)
	m.Tick()
	if m.Buffer() != "" {
		t.Errorf("Buffer after stale Tick = %q, want empty", m.Buffer())
	}
}
