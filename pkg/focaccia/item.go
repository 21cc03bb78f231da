package focaccia

import "github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"

// Element is an opaque handle to a host-rendered focusable element. The
// navigation core never renders anything itself; it asks the host to move
// focus through this interface and the host applies the change to whatever
// widget tree it owns.
type Element interface {
	// Focus moves the host's input focus to this element.
	Focus()
	// Attached reports whether the element is still part of the host's
	// widget tree. Focus must not be called on a detached element.
	Attached() bool
}

// NavItem describes one navigable entry in a composite widget (a sidebar
// menu, a tab strip, an overlay's action row). Identity is ID; IDs must be
// unique within one registry.
type NavItem struct {
	ID       string      // Stable identity, used to preserve focus across list changes
	Label    string      // Text announced to assistive technology and typeahead-matched
	Disabled bool        // Disabled items are skipped by navigation and typeahead
	Element  Element     // Host element that receives focus for this item
	Metadata interface{} // Application-specific data attached to the item
}

// Document exposes the host's notion of "where is focus right now". Traps use
// it to capture and restore the previously focused element; controllers use
// it to pick up focus when the user tabs into the group.
type Document interface {
	// ActiveElement returns the currently focused element, or nil.
	ActiveElement() Element
}

// Container is a host region whose focusable content a trap can snapshot.
type Container interface {
	// FocusableDescendants returns the container's focusable elements in
	// traversal order. Called once at trap activation, not per keystroke.
	FocusableDescendants() []Element
}

// Orientation selects which arrow keys drive navigation.
type Orientation int

const (
	// Vertical menus navigate with Up/Down (sidebar, dropdown).
	Vertical Orientation = iota
	// Horizontal menus navigate with Left/Right (tab strip, toolbar).
	Horizontal
)

// Event is a single key event delivered by a host input adapter.
type Event struct {
	Key     constants.Key // Abstract key, KeyRune for printable characters
	Rune    rune          // The character when Key == KeyRune
	Shift   bool          // Shift modifier state (distinguishes Shift+Tab)
	Pressed bool          // True for key-down, false for key-up
}
