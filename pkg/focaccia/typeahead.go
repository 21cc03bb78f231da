package focaccia

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

// folder performs Unicode case folding so typeahead matching is
// case-insensitive across scripts, not just ASCII.
var folder = cases.Fold()

// Matcher buffers recently typed printable characters and resolves them to a
// navigation target. The buffer decays: a pause longer than the timeout
// starts a fresh match, and Tick clears a stale buffer even when the user
// never types again.
//
// A Matcher is owned by its controller and is not safe for concurrent use.
type Matcher struct {
	buf      []rune
	lastChar time.Time
	timeout  time.Duration

	now func() time.Time
}

// NewMatcher creates a matcher with the given decay timeout. A zero timeout
// uses constants.DefaultTypeaheadTimeout.
func NewMatcher(timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = constants.DefaultTypeaheadTimeout
	}
	return &Matcher{timeout: timeout, now: time.Now}
}

// Append adds a printable character to the buffer, clearing it first when the
// previous keystroke is older than the timeout. The character is case-folded
// on the way in.
func (m *Matcher) Append(ch rune) {
	now := m.now()
	if len(m.buf) > 0 && now.Sub(m.lastChar) > m.timeout {
		m.buf = m.buf[:0]
	}
	m.buf = append(m.buf, []rune(folder.String(string(ch)))...)
	m.lastChar = now
}

// Buffer returns the current folded buffer contents.
func (m *Matcher) Buffer() string {
	return string(m.buf)
}

// Clear empties the buffer immediately.
func (m *Matcher) Clear() {
	m.buf = m.buf[:0]
}

// Tick clears the buffer when it has gone stale. Hosts call this once per
// frame so an abandoned buffer cannot leak into a later, unrelated typing
// burst even if no further keys arrive.
func (m *Matcher) Tick() {
	if len(m.buf) > 0 && m.now().Sub(m.lastChar) > m.timeout {
		m.buf = m.buf[:0]
	}
}

// Resolve maps the current buffer to an item index in the registry. The scan
// starts just after the focused index and wraps around once, so matching
// walks forward through the list. Disabled items are skipped; they can never
// receive focus.
//
// When the buffer is one character typed repeatedly ("ww") and the focused
// item already starts with that character, the repeated presses cycle through
// the items sharing that initial instead of sticking on the first match.
//
// Returns -1 when the registry is empty or nothing matches; the caller leaves
// focus unchanged.
func (m *Matcher) Resolve(reg *Registry, focused int) int {
	n := reg.Len()
	if n == 0 || len(m.buf) == 0 {
		return -1
	}

	query := string(m.buf)
	if repeated, ch := m.repeatedChar(); repeated {
		if item, err := reg.ItemAt(focused); err == nil && !item.Disabled &&
			strings.HasPrefix(folder.String(item.Label), ch) {
			query = ch
		}
	}

	start := focused
	if start < 0 || start >= n {
		start = -1
	}
	for step := 1; step <= n; step++ {
		i := (start + step + n) % n
		item, err := reg.ItemAt(i)
		if err != nil || item.Disabled {
			continue
		}
		if strings.HasPrefix(folder.String(item.Label), query) {
			return i
		}
	}
	return -1
}

// repeatedChar reports whether the buffer is a single character typed more
// than once, and returns that character.
func (m *Matcher) repeatedChar() (bool, string) {
	if len(m.buf) < 2 {
		return false, ""
	}
	first := m.buf[0]
	for _, r := range m.buf[1:] {
		if r != first {
			return false, ""
		}
	}
	return true, string(first)
}
