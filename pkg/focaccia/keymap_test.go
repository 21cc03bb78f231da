package focaccia

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

func TestDefaultKeymapVertical(t *testing.T) {
	km := DefaultKeymap(Vertical)

	want := map[constants.Key]Action{
		constants.KeyDown:   ActionNext,
		constants.KeyUp:     ActionPrevious,
		constants.KeyHome:   ActionFirst,
		constants.KeyEnd:    ActionLast,
		constants.KeyEnter:  ActionActivate,
		constants.KeySpace:  ActionActivate,
		constants.KeyEscape: ActionDismiss,
		constants.KeyLeft:   ActionNone,
		constants.KeyRight:  ActionNone,
	}
	for k, a := range want {
		if got := km.Lookup(k); got != a {
			t.Errorf("Lookup(%v) = %v, want %v", k, got, a)
		}
	}
}

func TestDefaultKeymapHorizontal(t *testing.T) {
	km := DefaultKeymap(Horizontal)

	if km.Lookup(constants.KeyRight) != ActionNext || km.Lookup(constants.KeyLeft) != ActionPrevious {
		t.Error("horizontal keymap missing Left/Right bindings")
	}
	if km.Lookup(constants.KeyDown) != ActionNone {
		t.Error("horizontal keymap bound Down")
	}
}

func TestKeymapBind(t *testing.T) {
	km := DefaultKeymap(Vertical)

	km.Bind(constants.KeyRight, ActionActivate)
	if km.Lookup(constants.KeyRight) != ActionActivate {
		t.Error("Bind did not take effect")
	}

	km.Bind(constants.KeyNone, ActionNext)
	if km.Lookup(constants.KeyNone) != ActionNone {
		t.Error("Bind accepted KeyNone")
	}
}

func TestKeymapSetBytes(t *testing.T) {
	km := DefaultKeymap(Vertical)

	err := km.SetBytes([]byte(`{"next": ["right", "down"], "previous": ["left"]}`))
	if err != nil {
		t.Fatalf("SetBytes returned %v", err)
	}

	if km.Lookup(constants.KeyRight) != ActionNext || km.Lookup(constants.KeyDown) != ActionNext {
		t.Error("new next bindings not applied")
	}
	if km.Lookup(constants.KeyLeft) != ActionPrevious {
		t.Error("new previous binding not applied")
	}
	// Up was the old previous binding; redefining the action drops it.
	if km.Lookup(constants.KeyUp) != ActionNone {
		t.Errorf("Lookup(up) = %v, want ActionNone after rebind", km.Lookup(constants.KeyUp))
	}
	// Untouched actions keep their defaults.
	if km.Lookup(constants.KeyEnter) != ActionActivate {
		t.Error("unrelated binding lost during SetBytes")
	}
}

func TestKeymapSetBytesRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"next": [`},
		{"unknown action", `{"teleport": ["down"]}`},
		{"unknown key", `{"next": ["pgdn"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DefaultKeymap(Vertical)
			err := km.SetBytes([]byte(tt.data))
			if err == nil {
				t.Fatal("SetBytes accepted bad input")
			}
			var kme *KeymapError
			if !errors.As(err, &kme) {
				t.Errorf("error = %v, want KeymapError", err)
			}
			if km.Lookup(constants.KeyDown) != ActionNext {
				t.Error("failed SetBytes modified bindings")
			}
		})
	}
}
