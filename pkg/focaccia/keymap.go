package focaccia

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

// Action is a navigation command a key can be bound to.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionFirst
	ActionLast
	ActionActivate
	ActionDismiss
)

var actionNames = map[string]Action{
	"next":     ActionNext,
	"previous": ActionPrevious,
	"first":    ActionFirst,
	"last":     ActionLast,
	"activate": ActionActivate,
	"dismiss":  ActionDismiss,
}

// Keymap maps keys to navigation actions. The defaults follow the common
// composite-widget conventions; hosts can rebind from JSON for devices with
// unusual input (game handhelds, kiosks).
type Keymap struct {
	bindings map[constants.Key]Action
}

// DefaultKeymap builds the standard bindings for the given orientation.
// Vertical groups navigate with Up/Down, horizontal groups with Left/Right;
// the perpendicular arrows stay unbound so the host's default behavior runs.
func DefaultKeymap(o Orientation) *Keymap {
	b := map[constants.Key]Action{
		constants.KeyHome:   ActionFirst,
		constants.KeyEnd:    ActionLast,
		constants.KeyEnter:  ActionActivate,
		constants.KeySpace:  ActionActivate,
		constants.KeyEscape: ActionDismiss,
	}
	if o == Horizontal {
		b[constants.KeyRight] = ActionNext
		b[constants.KeyLeft] = ActionPrevious
	} else {
		b[constants.KeyDown] = ActionNext
		b[constants.KeyUp] = ActionPrevious
	}
	return &Keymap{bindings: b}
}

// Lookup resolves a key to its bound action, or ActionNone.
func (km *Keymap) Lookup(k constants.Key) Action {
	return km.bindings[k]
}

// Bind maps a single key to an action, replacing any previous binding for
// that key.
func (km *Keymap) Bind(k constants.Key, a Action) {
	if k == constants.KeyNone {
		return
	}
	km.bindings[k] = a
}

// SetBytes replaces bindings from a JSON document of the form
//
//	{"next": ["down", "right"], "activate": ["enter", "space"]}
//
// Actions absent from the document keep their current bindings. Unknown
// action or key names fail the whole update so misconfiguration is caught
// during development rather than silently ignored.
func (km *Keymap) SetBytes(data []byte) error {
	if !gjson.ValidBytes(data) {
		return &KeymapError{Op: "parse", Err: fmt.Errorf("invalid JSON")}
	}

	type binding struct {
		key    constants.Key
		action Action
	}
	var staged []binding

	var parseErr error
	gjson.ParseBytes(data).ForEach(func(name, keys gjson.Result) bool {
		action, ok := actionNames[name.String()]
		if !ok {
			parseErr = &KeymapError{Op: "bind", Err: fmt.Errorf("unknown action %q", name.String())}
			return false
		}
		for _, kn := range keys.Array() {
			key, ok := constants.KeyFromName(kn.String())
			if !ok {
				parseErr = &KeymapError{Op: "bind", Err: fmt.Errorf("unknown key %q", kn.String())}
				return false
			}
			staged = append(staged, binding{key: key, action: action})
		}
		return true
	})
	if parseErr != nil {
		return parseErr
	}

	for _, b := range staged {
		// Drop old bindings for any action being redefined.
		for k, a := range km.bindings {
			if a == b.action {
				delete(km.bindings, k)
			}
		}
	}
	for _, b := range staged {
		km.bindings[b.key] = b.action
	}
	return nil
}
