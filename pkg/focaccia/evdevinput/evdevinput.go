// Package evdevinput reads raw Linux input devices and translates key events
// for embedded frontends that talk to /dev/input directly.
package evdevinput

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia"
	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

var keyCodeMap = map[evdev.EvCode]constants.Key{
	evdev.KEY_UP:       constants.KeyUp,
	evdev.KEY_DOWN:     constants.KeyDown,
	evdev.KEY_LEFT:     constants.KeyLeft,
	evdev.KEY_RIGHT:    constants.KeyRight,
	evdev.KEY_HOME:     constants.KeyHome,
	evdev.KEY_END:      constants.KeyEnd,
	evdev.KEY_ENTER:    constants.KeyEnter,
	evdev.KEY_KPENTER:  constants.KeyEnter,
	evdev.KEY_SPACE:    constants.KeySpace,
	evdev.KEY_ESC:      constants.KeyEscape,
	evdev.KEY_TAB:      constants.KeyTab,
	evdev.KEY_PAGEUP:   constants.KeyHome,
	evdev.KEY_PAGEDOWN: constants.KeyEnd,
}

var runeMap = map[evdev.EvCode]rune{
	evdev.KEY_A: 'a', evdev.KEY_B: 'b', evdev.KEY_C: 'c', evdev.KEY_D: 'd',
	evdev.KEY_E: 'e', evdev.KEY_F: 'f', evdev.KEY_G: 'g', evdev.KEY_H: 'h',
	evdev.KEY_I: 'i', evdev.KEY_J: 'j', evdev.KEY_K: 'k', evdev.KEY_L: 'l',
	evdev.KEY_M: 'm', evdev.KEY_N: 'n', evdev.KEY_O: 'o', evdev.KEY_P: 'p',
	evdev.KEY_Q: 'q', evdev.KEY_R: 'r', evdev.KEY_S: 's', evdev.KEY_T: 't',
	evdev.KEY_U: 'u', evdev.KEY_V: 'v', evdev.KEY_W: 'w', evdev.KEY_X: 'x',
	evdev.KEY_Y: 'y', evdev.KEY_Z: 'z',
	evdev.KEY_0: '0', evdev.KEY_1: '1', evdev.KEY_2: '2', evdev.KEY_3: '3',
	evdev.KEY_4: '4', evdev.KEY_5: '5', evdev.KEY_6: '6', evdev.KEY_7: '7',
	evdev.KEY_8: '8', evdev.KEY_9: '9',
}

// Source wraps an evdev device and yields navigation events. ReadOne blocks,
// so Next is typically driven from its own goroutine feeding a channel into
// the host loop.
type Source struct {
	device    *evdev.InputDevice
	shiftHeld bool
}

// Open opens an input device by path (e.g., /dev/input/event1).
func Open(path string) (*Source, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{device: device}, nil
}

// Next blocks until the device produces a translatable key event. Non-key
// events and unmapped keys are skipped. Returns the device error on failure,
// including when the device is closed.
func (s *Source) Next() (focaccia.Event, error) {
	for {
		ie, err := s.device.ReadOne()
		if err != nil {
			return focaccia.Event{}, err
		}
		if ie.Type != evdev.EV_KEY {
			continue
		}

		// Value: 0=release, 1=press, 2=autorepeat. Autorepeat counts as a
		// press so held arrows keep moving focus.
		pressed := ie.Value != 0

		if ie.Code == evdev.KEY_LEFTSHIFT || ie.Code == evdev.KEY_RIGHTSHIFT {
			s.shiftHeld = pressed
			continue
		}

		if key, ok := keyCodeMap[ie.Code]; ok {
			return focaccia.Event{Key: key, Shift: s.shiftHeld, Pressed: pressed}, nil
		}
		if ch, ok := runeMap[ie.Code]; ok {
			return focaccia.Event{
				Key:     constants.KeyRune,
				Rune:    ch,
				Shift:   s.shiftHeld,
				Pressed: pressed,
			}, nil
		}
	}
}

// Close releases the underlying device.
func (s *Source) Close() error {
	return s.device.Close()
}
