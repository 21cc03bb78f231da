// Package teainput translates Bubble Tea key messages for terminal frontends.
package teainput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

var keyTypeMap = map[tea.KeyType]constants.Key{
	tea.KeyUp:    constants.KeyUp,
	tea.KeyDown:  constants.KeyDown,
	tea.KeyLeft:  constants.KeyLeft,
	tea.KeyRight: constants.KeyRight,
	tea.KeyHome:  constants.KeyHome,
	tea.KeyEnd:   constants.KeyEnd,
	tea.KeyEnter: constants.KeyEnter,
	tea.KeySpace: constants.KeySpace,
	tea.KeyEsc:   constants.KeyEscape,
	tea.KeyTab:   constants.KeyTab,
}

// Translate converts a Bubble Tea key message. Terminals only report
// presses, so every event has Pressed set; hosts pair Translate with
// Controller.HandleKey directly and skip KeyRepeat.
func Translate(msg tea.KeyMsg) (ev focaccia.Event, ok bool) {
	if msg.Type == tea.KeyShiftTab {
		return focaccia.Event{Key: constants.KeyTab, Shift: true, Pressed: true}, true
	}

	if key, found := keyTypeMap[msg.Type]; found {
		return focaccia.Event{Key: key, Pressed: true}, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return focaccia.Event{
			Key:     constants.KeyRune,
			Rune:    msg.Runes[0],
			Pressed: true,
		}, true
	}

	return focaccia.Event{}, false
}
