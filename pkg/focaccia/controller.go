package focaccia

import (
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal/locale"
)

// Controller drives roving focus over a registry of items. It is the sole
// writer of the focused index and of the roving tab stop: at any time exactly
// one item is Tab-reachable (TabStopID) and all siblings are not, so Tab
// enters and leaves the group at exactly one place.
//
// The controller is a small state machine with two states: idle (the group
// does not hold focus) and navigating (roving focus active). Key events only
// cause transitions while navigating; everything else passes through to the
// host. All methods must be called from the host UI loop.
type Controller struct {
	// OnActivate is invoked when the user presses an activation key on the
	// focused item. The focused index does not change.
	OnActivate func(item NavItem)

	registry  *Registry
	matcher   *Matcher
	announcer *Announcer
	keymap    *Keymap
	doc       Document

	focusedIndex     int // -1 when no item holds roving focus
	navigating       bool
	currentID        string
	wrap             bool
	announcePosition bool
}

// NewController creates a controller over its own empty registry.
// The announcer may be shared with other components (traps) writing to the
// same live region; pass nil to disable announcements entirely.
// doc may be nil when the host cannot report its focused element; focus-in
// then always lands on the first enabled item.
func NewController(announcer *Announcer, doc Document, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		registry:         NewRegistry(),
		matcher:          NewMatcher(opts.TypeaheadTimeout),
		announcer:        announcer,
		keymap:           DefaultKeymap(opts.Orientation),
		doc:              doc,
		focusedIndex:     -1,
		wrap:             opts.Wrap,
		announcePosition: opts.AnnouncePosition,
	}
}

// Keymap exposes the controller's bindings for host customization.
func (c *Controller) Keymap() *Keymap {
	return c.keymap
}

// ReplaceItems swaps in a new item snapshot. If the previously focused item's
// ID survives the change its index is remapped so focus is preserved;
// otherwise the focused index resets and the tab stop falls back to the first
// enabled item so the group stays Tab-reachable.
func (c *Controller) ReplaceItems(items []NavItem) {
	var focusedID string
	if item, err := c.registry.ItemAt(c.focusedIndex); err == nil {
		focusedID = item.ID
	}

	c.registry.Replace(items)

	if focusedID != "" {
		c.focusedIndex = c.registry.IndexOf(focusedID)
	} else {
		c.focusedIndex = -1
	}
	internal.GetLogger().Debug("registry replaced",
		"items", len(items), "focused", c.focusedIndex)
}

// Items returns the current item snapshot.
func (c *Controller) Items() []NavItem {
	return c.registry.Items()
}

// FocusedIndex returns the roving focus index, or -1.
func (c *Controller) FocusedIndex() int {
	return c.focusedIndex
}

// Navigating reports whether roving focus is currently active.
func (c *Controller) Navigating() bool {
	return c.navigating
}

// TabStopID returns the ID of the single item that should carry tabindex=0.
// When nothing holds roving focus it falls back to the first enabled item.
// Empty means the group has no focusable entry point.
func (c *Controller) TabStopID() string {
	if item, err := c.registry.ItemAt(c.focusedIndex); err == nil {
		return item.ID
	}
	if i := c.registry.FirstEnabledIndex(); i >= 0 {
		item, _ := c.registry.ItemAt(i)
		return item.ID
	}
	return ""
}

// IsItemFocused reports whether the item with the given ID holds roving focus.
func (c *Controller) IsItemFocused(id string) bool {
	item, err := c.registry.ItemAt(c.focusedIndex)
	return err == nil && item.ID == id
}

// SetCurrentID marks an item as the active route/selection; the host renders
// its aria-current flag from CurrentID. Independent of roving focus.
func (c *Controller) SetCurrentID(id string) {
	c.currentID = id
}

// CurrentID returns the active route/selection ID.
func (c *Controller) CurrentID() string {
	return c.currentID
}

// FocusIn transitions idle -> navigating when the container receives focus.
// The focused index snaps to whichever item the host reports as focused, or
// the first enabled item when none matches. Instruction text is announced
// once per activation.
func (c *Controller) FocusIn() {
	if c.navigating {
		return
	}
	c.navigating = true

	if i := c.matchDocumentFocus(); i >= 0 {
		c.focusedIndex = i
	} else if c.focusedIndex < 0 || !c.isFocusable(c.focusedIndex) {
		c.focusedIndex = c.registry.FirstEnabledIndex()
	}

	c.announce(locale.MenuFocused(), Polite)
}

// FocusOut transitions navigating -> idle when focus leaves the container by
// any means. The focused index is retained so re-entry resumes where the user
// left off.
func (c *Controller) FocusOut() {
	c.navigating = false
	c.matcher.Clear()
}

// HandleKey interprets one key event. It returns true when the event was
// consumed; unmapped keys return false so the host's default behavior (and
// the browser-equivalent default) still runs.
func (c *Controller) HandleKey(ev Event) bool {
	if !ev.Pressed || !c.navigating {
		return false
	}

	if ev.Key == constants.KeyRune && ev.Rune != 0 {
		c.handleTypeahead(ev.Rune)
		return true
	}

	switch c.keymap.Lookup(ev.Key) {
	case ActionNext:
		c.moveFocus(c.registry.NextEnabledIndex(c.focusedIndex, 1, c.wrap))
	case ActionPrevious:
		c.moveFocus(c.registry.NextEnabledIndex(c.focusedIndex, -1, c.wrap))
	case ActionFirst:
		c.moveFocus(c.registry.FirstEnabledIndex())
	case ActionLast:
		c.moveFocus(c.registry.LastEnabledIndex())
	case ActionActivate:
		if item, err := c.registry.ItemAt(c.focusedIndex); err == nil && c.OnActivate != nil {
			c.OnActivate(item)
		}
	case ActionDismiss:
		c.navigating = false
		c.matcher.Clear()
	default:
		return false
	}
	return true
}

// Tick advances frame-based timing: the typeahead decay. Hosts call this once
// per frame alongside Announcer.Tick.
func (c *Controller) Tick() {
	c.matcher.Tick()
}

func (c *Controller) handleTypeahead(ch rune) {
	c.matcher.Append(ch)
	if i := c.matcher.Resolve(c.registry, c.focusedIndex); i >= 0 {
		c.moveFocus(i)
	}
}

// moveFocus applies an index-changing transition: update state, move host
// focus, announce. A negative index (no enabled target) leaves everything
// unchanged and announces nothing.
func (c *Controller) moveFocus(i int) {
	if i < 0 || i == c.focusedIndex {
		return
	}
	item, err := c.registry.ItemAt(i)
	if err != nil {
		return
	}

	c.focusedIndex = i
	if item.Element != nil && item.Element.Attached() {
		item.Element.Focus()
	}

	if c.announcePosition {
		c.announce(locale.ItemPosition(item.Label, i+1, c.registry.Len()), Polite)
	} else {
		c.announce(item.Label, Polite)
	}
}

// matchDocumentFocus finds the registry index whose element currently holds
// host focus, or -1.
func (c *Controller) matchDocumentFocus() int {
	if c.doc == nil {
		return -1
	}
	active := c.doc.ActiveElement()
	if active == nil {
		return -1
	}
	for i, item := range c.registry.Items() {
		if item.Element == active && !item.Disabled {
			return i
		}
	}
	return -1
}

func (c *Controller) isFocusable(i int) bool {
	item, err := c.registry.ItemAt(i)
	return err == nil && !item.Disabled
}

func (c *Controller) announce(msg string, p Politeness) {
	if c.announcer != nil {
		c.announcer.Announce(msg, p)
	}
}
