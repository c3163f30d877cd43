package behavior

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a physical key press: key code plus modifier flags.
type KeyEvent struct {
	KeyCode KeyCode
	Shift   bool
	Ctrl    bool
	Meta    bool
	Alt     bool
}

// shiftedDigits maps US-layout shifted digit characters to their key.
var shiftedDigits = map[rune]KeyCode{
	')': Key0, '!': Key1, '@': Key2, '#': Key3, '$': Key4,
	'%': Key5, '^': Key6, '&': Key7, '*': Key8, '(': Key9,
}

// KeyEventFromTea converts a Bubble Tea key message into a KeyEvent.
//
// Terminals report Ctrl combinations as control characters and never report
// Meta, so hosts running in a terminal should resolve with Platform{}.
// It returns false for keys that have no key code equivalent.
func KeyEventFromTea(msg tea.KeyMsg) (KeyEvent, bool) {
	ev := KeyEvent{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyEnter:
		ev.KeyCode = KeyReturn
		return ev, true
	case tea.KeyTab:
		ev.KeyCode = 9
		return ev, true
	case tea.KeyShiftTab:
		ev.KeyCode, ev.Shift = 9, true
		return ev, true
	case tea.KeyBackspace:
		ev.KeyCode = KeyBackspace
		return ev, true
	case tea.KeyDelete:
		ev.KeyCode = KeyDelete
		return ev, true
	case tea.KeyRunes, tea.KeySpace:
		if msg.Paste || len(msg.Runes) != 1 {
			return KeyEvent{}, false
		}
		return keyEventFromRune(msg.Runes[0], ev)
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		ev.KeyCode = KeyCode('A' + int(msg.Type-tea.KeyCtrlA))
		ev.Ctrl = true
		return ev, true
	}
	return KeyEvent{}, false
}

func keyEventFromRune(r rune, ev KeyEvent) (KeyEvent, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		ev.KeyCode = KeyCode(unicode.ToUpper(r))
	case r >= 'A' && r <= 'Z':
		ev.KeyCode, ev.Shift = KeyCode(r), true
	case r >= '0' && r <= '9':
		ev.KeyCode = KeyCode(r)
	case r == ' ':
		ev.KeyCode = 32
	case r == '.':
		ev.KeyCode = KeyPeriod
	case r == ',':
		ev.KeyCode = KeyComma
	default:
		code, ok := shiftedDigits[r]
		if !ok {
			return KeyEvent{}, false
		}
		ev.KeyCode, ev.Shift = code, true
	}
	return ev, true
}
