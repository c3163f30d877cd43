package behavior

import (
	"runtime"
	"testing"
)

func allTypesVocab() Vocabulary {
	return vocab(
		[]string{
			BlockHeaderOne, BlockHeaderTwo, BlockHeaderThree, BlockHeaderFour,
			BlockHeaderFive, BlockHeaderSix, BlockOrderedListItem, BlockUnorderedListItem,
		},
		[]string{StyleBold, StyleItalic, StyleCode, StyleUnderline, StyleStrikethrough, StyleSuperscript, StyleSubscript},
		[]string{EntityLink},
	)
}

func TestKeyBinder_Resolve(t *testing.T) {
	other := Platform{Mac: false}
	mac := Platform{Mac: true}
	full := allTypesVocab()
	none := Config{}.Vocabulary()

	cases := []struct {
		name     string
		vocab    Vocabulary
		platform Platform
		ev       KeyEvent
		want     Resolution
	}{
		{name: "ctrl-b-bold", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyB, Ctrl: true}, want: Resolution{Command: StyleBold, Outcome: OutcomeMatched}},
		{name: "ctrl-b-bold-disabled", vocab: none, platform: other, ev: KeyEvent{KeyCode: KeyB, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "cmd-b-mac", vocab: full, platform: mac, ev: KeyEvent{KeyCode: KeyB, Meta: true}, want: Resolution{Command: StyleBold, Outcome: OutcomeMatched}},
		{name: "ctrl-b-mac-is-not-command", vocab: full, platform: mac, ev: KeyEvent{KeyCode: KeyB, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "meta-b-other-is-not-command", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyB, Meta: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "plain-b", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyB}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "ctrl-alt-b", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyB, Ctrl: true, Alt: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "ctrl-i", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyI, Ctrl: true}, want: Resolution{Command: StyleItalic, Outcome: OutcomeMatched}},
		{name: "ctrl-j", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyJ, Ctrl: true}, want: Resolution{Command: StyleCode, Outcome: OutcomeMatched}},
		{name: "ctrl-u", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyU, Ctrl: true}, want: Resolution{Command: StyleUnderline, Outcome: OutcomeMatched}},
		{name: "ctrl-period", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyPeriod, Ctrl: true}, want: Resolution{Command: StyleSuperscript, Outcome: OutcomeMatched}},
		{name: "ctrl-comma", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyComma, Ctrl: true}, want: Resolution{Command: StyleSubscript, Outcome: OutcomeMatched}},
		{name: "ctrl-k-link", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyK, Ctrl: true}, want: Resolution{Command: EntityLink, Outcome: OutcomeMatched}},
		{name: "ctrl-k-link-disabled", vocab: none, platform: other, ev: KeyEvent{KeyCode: KeyK, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},

		{name: "shift-ctrl-b-suppressed", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyB, Shift: true, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "shift-cmd-i-suppressed", vocab: full, platform: mac, ev: KeyEvent{KeyCode: KeyI, Shift: true, Meta: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "shift-ctrl-j-suppressed", vocab: none, platform: other, ev: KeyEvent{KeyCode: KeyJ, Shift: true, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "shift-ctrl-u-suppressed", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyU, Shift: true, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "shift-ctrl-x-strike", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyX, Shift: true, Ctrl: true}, want: Resolution{Command: StyleStrikethrough, Outcome: OutcomeMatched}},
		{name: "ctrl-x-not-strike", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyX, Ctrl: true}, want: Resolution{Outcome: OutcomeDefault}},
		{name: "shift-ctrl-7-ol", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key7, Shift: true, Ctrl: true}, want: Resolution{Command: BlockOrderedListItem, Outcome: OutcomeMatched}},
		{name: "shift-ctrl-8-ul", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key8, Shift: true, Ctrl: true}, want: Resolution{Command: BlockUnorderedListItem, Outcome: OutcomeMatched}},
		{name: "shift-ctrl-8-ul-disabled", vocab: none, platform: other, ev: KeyEvent{KeyCode: Key8, Shift: true, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "shift-8-typed", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key8, Shift: true}, want: Resolution{Outcome: OutcomeSuppressed}},

		{name: "ctrl-alt-0-always", vocab: none, platform: other, ev: KeyEvent{KeyCode: Key0, Ctrl: true, Alt: true}, want: Resolution{Command: BlockUnstyled, Outcome: OutcomeMatched}},
		{name: "meta-alt-0-always", vocab: none, platform: other, ev: KeyEvent{KeyCode: Key0, Meta: true, Alt: true}, want: Resolution{Command: BlockUnstyled, Outcome: OutcomeMatched}},
		{name: "ctrl-alt-1-h1", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key1, Ctrl: true, Alt: true}, want: Resolution{Command: BlockHeaderOne, Outcome: OutcomeMatched}},
		{name: "cmd-alt-6-h6-mac", vocab: full, platform: mac, ev: KeyEvent{KeyCode: Key6, Meta: true, Alt: true}, want: Resolution{Command: BlockHeaderSix, Outcome: OutcomeMatched}},
		{name: "shift-ctrl-alt-3-h3", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key3, Shift: true, Ctrl: true, Alt: true}, want: Resolution{Command: BlockHeaderThree, Outcome: OutcomeMatched}},
		{name: "ctrl-alt-2-disabled", vocab: none, platform: other, ev: KeyEvent{KeyCode: Key2, Ctrl: true, Alt: true}, want: Resolution{Outcome: OutcomeSuppressed}},
		{name: "ctrl-1-without-alt", vocab: full, platform: other, ev: KeyEvent{KeyCode: Key1, Ctrl: true}, want: Resolution{Outcome: OutcomeSuppressed}},

		{name: "ctrl-z-default-undo", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyZ, Ctrl: true}, want: Resolution{Command: CommandUndo, Outcome: OutcomeDefault}},
		{name: "return-default-split", vocab: full, platform: other, ev: KeyEvent{KeyCode: KeyReturn}, want: Resolution{Command: CommandSplitBlock, Outcome: OutcomeDefault}},
		{name: "unknown-key", vocab: full, platform: other, ev: KeyEvent{KeyCode: 200}, want: Resolution{Outcome: OutcomeDefault}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kb := NewKeyBinder(tc.vocab, tc.platform, nil)
			if got := kb.Resolve(tc.ev); got != tc.want {
				t.Fatalf("Resolve(%+v): got %+v, want %+v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestKeyBinder_ShiftSuppressionIgnoresConfiguration(t *testing.T) {
	for _, code := range []KeyCode{KeyB, KeyI, KeyJ, KeyU} {
		for _, v := range []Vocabulary{allTypesVocab(), Config{}.Vocabulary()} {
			for _, p := range []Platform{{Mac: true}, {Mac: false}} {
				ev := KeyEvent{KeyCode: code, Shift: true, Ctrl: true, Meta: true}
				got := NewKeyBinder(v, p, nil).Resolve(ev)
				if got.Outcome != OutcomeSuppressed || got.Command != "" {
					t.Fatalf("key %d platform %+v: got %+v, want suppressed", code, p, got)
				}
			}
		}
	}
}

func TestKeyBinder_UsesInjectedFallback(t *testing.T) {
	var seen []KeyEvent
	fallback := func(ev KeyEvent, p Platform) string {
		seen = append(seen, ev)
		if p.Mac {
			return "mac-fallback"
		}
		return "fallback"
	}
	kb := NewKeyBinder(allTypesVocab(), Platform{Mac: true}, fallback)

	got := kb.Resolve(KeyEvent{KeyCode: KeyZ, Meta: true})
	if got != (Resolution{Command: "mac-fallback", Outcome: OutcomeDefault}) {
		t.Fatalf("got %+v", got)
	}
	// Claimed keys never reach the fallback.
	kb.Resolve(KeyEvent{KeyCode: KeyB, Meta: true})
	if len(seen) != 1 {
		t.Fatalf("fallback calls: got %d, want 1", len(seen))
	}
	if kb.Platform() != (Platform{Mac: true}) {
		t.Fatalf("platform not retained")
	}
}

func TestBindings_TableIsAuditable(t *testing.T) {
	list := Bindings()
	if len(list) != len(bindings) {
		t.Fatalf("bindings: got %d, want %d", len(list), len(bindings))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].KeyCode > list[i].KeyCode {
			t.Fatalf("bindings not sorted at %d", i)
		}
	}

	seen := map[chord]bool{}
	for _, b := range bindings {
		shifts := []bool{b.Shift}
		if b.AnyShift {
			shifts = []bool{false, true}
		}
		for _, s := range shifts {
			c := chord{code: b.KeyCode, shift: s}
			if seen[c] {
				t.Fatalf("duplicate binding for %+v", c)
			}
			seen[c] = true
		}
		if b.Command != "" && b.Category != CategoryAlways && Descriptions[b.Command] == "" {
			t.Fatalf("binding command %q has no description", b.Command)
		}
	}

	list[0].Command = "mutated"
	if Bindings()[0].Command == "mutated" {
		t.Fatalf("Bindings must return a copy")
	}
}

func TestVocabulary_Enables(t *testing.T) {
	v := vocab([]string{BlockHeaderTwo}, []string{StyleBold}, []string{EntityLink})
	tests := []struct {
		name string
		b    Binding
		want bool
	}{
		{name: "unstyled always", b: Binding{Category: CategoryAlways, Command: BlockUnstyled}, want: true},
		{name: "suppress only", b: Binding{Category: CategoryAlways}, want: false},
		{name: "enabled block", b: Binding{Category: CategoryBlock, Command: BlockHeaderTwo}, want: true},
		{name: "disabled block", b: Binding{Category: CategoryBlock, Command: BlockHeaderOne}, want: false},
		{name: "enabled style", b: Binding{Category: CategoryStyle, Command: StyleBold}, want: true},
		{name: "disabled style", b: Binding{Category: CategoryStyle, Command: StyleItalic}, want: false},
		{name: "enabled entity", b: Binding{Category: CategoryEntity, Command: EntityLink}, want: true},
		{name: "style name under block category", b: Binding{Category: CategoryBlock, Command: StyleBold}, want: false},
		{name: "unknown category", b: Binding{Category: Category(99), Command: StyleBold}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Enables(tt.b); got != tt.want {
				t.Fatalf("Enables(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}

	kb := NewKeyBinder(v, Platform{}, nil)
	for _, b := range Bindings() {
		if b.Modifier != ModCommand || b.Shift || b.AnyShift {
			continue
		}
		res := kb.Resolve(KeyEvent{KeyCode: b.KeyCode, Ctrl: true})
		if matched := res.Outcome == OutcomeMatched; matched != v.Enables(b) {
			t.Fatalf("binding %q: resolved %v, Enables %v", b.Command, res.Outcome, v.Enables(b))
		}
	}
}

func TestDefaultKeyBinding(t *testing.T) {
	other := Platform{}
	mac := Platform{Mac: true}

	cases := []struct {
		name string
		p    Platform
		ev   KeyEvent
		want string
	}{
		{name: "undo", p: other, ev: KeyEvent{KeyCode: KeyZ, Ctrl: true}, want: CommandUndo},
		{name: "redo-shift-z", p: mac, ev: KeyEvent{KeyCode: KeyZ, Meta: true, Shift: true}, want: CommandRedo},
		{name: "redo-ctrl-y", p: other, ev: KeyEvent{KeyCode: KeyY, Ctrl: true}, want: CommandRedo},
		{name: "secondary-paste-mac", p: mac, ev: KeyEvent{KeyCode: KeyY, Ctrl: true}, want: CommandSecondaryPaste},
		{name: "bold", p: other, ev: KeyEvent{KeyCode: KeyB, Ctrl: true}, want: CommandBold},
		{name: "transpose-mac-only", p: other, ev: KeyEvent{KeyCode: KeyT, Ctrl: true}, want: ""},
		{name: "transpose-mac", p: mac, ev: KeyEvent{KeyCode: KeyT, Ctrl: true}, want: CommandTransposeCharacters},
		{name: "ctrl-m-split", p: other, ev: KeyEvent{KeyCode: KeyM, Ctrl: true}, want: CommandSplitBlock},
		{name: "backspace", p: other, ev: KeyEvent{KeyCode: KeyBackspace}, want: CommandBackspace},
		{name: "backspace-word-other", p: other, ev: KeyEvent{KeyCode: KeyBackspace, Ctrl: true}, want: CommandBackspaceWord},
		{name: "backspace-word-mac", p: mac, ev: KeyEvent{KeyCode: KeyBackspace, Alt: true}, want: CommandBackspaceWord},
		{name: "backspace-line-mac", p: mac, ev: KeyEvent{KeyCode: KeyBackspace, Meta: true}, want: CommandBackspaceToLineStart},
		{name: "delete-word", p: other, ev: KeyEvent{KeyCode: KeyDelete, Ctrl: true}, want: CommandDeleteWord},
		{name: "delete", p: mac, ev: KeyEvent{KeyCode: KeyDelete}, want: CommandDelete},
		{name: "letter", p: other, ev: KeyEvent{KeyCode: KeyX}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DefaultKeyBinding(tc.ev, tc.p); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	if !DetectPlatform("darwin").Mac || DetectPlatform("linux").Mac || DetectPlatform("windows").Mac {
		t.Fatalf("unexpected platform detection")
	}
	if HostPlatform != DetectPlatform(runtime.GOOS) {
		t.Fatalf("host platform must match runtime detection")
	}
}

func TestOutcome_String(t *testing.T) {
	if OutcomeMatched.String() != "matched" || OutcomeSuppressed.String() != "suppressed" || OutcomeDefault.String() != "default" {
		t.Fatalf("unexpected outcome names")
	}
}
