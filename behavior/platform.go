package behavior

import "runtime"

// Platform selects platform-specific shortcut behavior.
type Platform struct {
	// Mac makes Cmd (meta) the command modifier instead of Ctrl.
	Mac bool
}

// HostPlatform is the platform of the running process. It is computed once
// at start-up; inject a Platform explicitly where determinism matters.
var HostPlatform = DetectPlatform(runtime.GOOS)

// DetectPlatform maps a GOOS value to a Platform.
func DetectPlatform(goos string) Platform {
	return Platform{Mac: goos == "darwin" || goos == "ios"}
}

// HasCommandModifier reports whether ev holds the platform command modifier
// (Cmd on Mac, Ctrl elsewhere) without Alt.
func (p Platform) HasCommandModifier(ev KeyEvent) bool {
	if p.Mac {
		return ev.Meta && !ev.Alt
	}
	return p.IsCtrlKeyCommand(ev)
}

// IsCtrlKeyCommand reports whether ev holds Ctrl without Alt.
func (p Platform) IsCtrlKeyCommand(ev KeyEvent) bool {
	return ev.Ctrl && !ev.Alt
}

// IsOptionKeyCommand reports whether ev holds Option on a Mac.
func (p Platform) IsOptionKeyCommand(ev KeyEvent) bool {
	return p.Mac && ev.Alt
}
