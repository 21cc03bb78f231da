package focaccia

import (
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/internal"
)

// Politeness selects how urgently assistive technology voices a message.
type Politeness int

const (
	// Polite messages wait for current speech to finish.
	Polite Politeness = iota
	// Assertive messages interrupt current speech.
	Assertive
)

func (p Politeness) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// Region is the host's live-region element: a single node, rendered once at
// the application root, whose text mutations are voiced by assistive
// technology. It stays visually hidden but must not be removed from the
// accessibility tree while the announcer is live.
type Region interface {
	// SetText replaces the region's text content.
	SetText(text string)
	// SetPoliteness updates the region's live-region mode.
	SetPoliteness(p Politeness)
	// Attached reports whether the region is still mounted.
	Attached() bool
}

type pendingAnnounce struct {
	message    string
	politeness Politeness
}

// Announcer pushes de-duplicated text into a live region. Screen readers only
// voice text *mutations*, so writing the same string twice in place would be
// silently ignored; the announcer therefore clears the region immediately and
// writes the message on the next Tick, guaranteeing a mutation.
//
// Create one announcer per mounted region and Dispose it when the region
// unmounts. Announce and Tick must be called from the host UI loop.
type Announcer struct {
	region   Region
	debounce time.Duration

	lastMessage string
	lastEmit    time.Time
	pending     *pendingAnnounce
	disposed    *atomic.Bool

	now func() time.Time
}

// NewAnnouncer wires an announcer to a live region. A zero debounce uses
// constants.DefaultAnnounceDebounce.
func NewAnnouncer(region Region, debounce time.Duration) *Announcer {
	if debounce <= 0 {
		debounce = constants.DefaultAnnounceDebounce
	}
	return &Announcer{
		region:   region,
		debounce: debounce,
		disposed: atomic.NewBool(false),
		now:      time.Now,
	}
}

// Announce queues a message for the live region. An identical message inside
// the debounce window is dropped so repeated state changes do not spam the
// screen reader; a different message always goes through, and always mutates
// the region text rather than being no-oped.
func (a *Announcer) Announce(message string, politeness Politeness) {
	if a.disposed.Load() || message == "" {
		return
	}

	// The region's live mode tracks the most recent call, deduplicated or not.
	if a.region.Attached() {
		a.region.SetPoliteness(politeness)
	}

	now := a.now()
	if a.pending != nil && a.pending.message == message {
		return
	}
	if a.pending == nil && message == a.lastMessage && now.Sub(a.lastEmit) < a.debounce {
		return
	}

	// Clear now, write on the next frame: two distinct mutations.
	if a.region.Attached() {
		a.region.SetText("")
	}
	a.pending = &pendingAnnounce{message: message, politeness: politeness}
}

// Tick flushes the pending message, if any. Hosts call this once per frame
// after event handling; the one-frame deferral is what makes the
// clear-then-write pair register as a mutation with screen readers.
func (a *Announcer) Tick() {
	if a.disposed.Load() || a.pending == nil {
		return
	}
	p := a.pending
	a.pending = nil

	// The region may have unmounted between Announce and Tick.
	if !a.region.Attached() {
		internal.GetLogger().Debug("live region detached, dropping announcement", "message", p.message)
		return
	}
	a.region.SetText(p.message)
	a.lastMessage = p.message
	a.lastEmit = a.now()
}

// Dispose cancels any pending write and detaches the announcer. Safe to call
// more than once; all later Announce and Tick calls become no-ops.
func (a *Announcer) Dispose() {
	if !a.disposed.CompareAndSwap(false, true) {
		return
	}
	a.pending = nil
}
