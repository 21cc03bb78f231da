// Package sdlinput translates SDL keyboard events into focaccia events for
// SDL-hosted frontends.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

var keysymMap = map[sdl.Keycode]constants.Key{
	sdl.K_UP:       constants.KeyUp,
	sdl.K_DOWN:     constants.KeyDown,
	sdl.K_LEFT:     constants.KeyLeft,
	sdl.K_RIGHT:    constants.KeyRight,
	sdl.K_HOME:     constants.KeyHome,
	sdl.K_END:      constants.KeyEnd,
	sdl.K_RETURN:   constants.KeyEnter,
	sdl.K_KP_ENTER: constants.KeyEnter,
	sdl.K_SPACE:    constants.KeySpace,
	sdl.K_ESCAPE:   constants.KeyEscape,
	sdl.K_TAB:      constants.KeyTab,
}

// Translate converts an SDL keyboard event. ok is false for keys with no
// navigation meaning; the host should let those fall through to its own
// handling.
//
// Space maps to KeySpace rather than a typeahead rune, matching its
// activation role. Printable ASCII becomes KeyRune carrying the character.
func Translate(e *sdl.KeyboardEvent) (ev focaccia.Event, ok bool) {
	pressed := e.Type == sdl.KEYDOWN
	shift := e.Keysym.Mod&sdl.KMOD_SHIFT != 0

	if key, found := keysymMap[e.Keysym.Sym]; found {
		return focaccia.Event{Key: key, Shift: shift, Pressed: pressed}, true
	}

	// Keycodes for printable characters equal their ASCII value.
	if e.Keysym.Sym > sdl.K_SPACE && e.Keysym.Sym <= sdl.Keycode('~') {
		return focaccia.Event{
			Key:     constants.KeyRune,
			Rune:    rune(e.Keysym.Sym),
			Shift:   shift,
			Pressed: pressed,
		}, true
	}

	return focaccia.Event{}, false
}
