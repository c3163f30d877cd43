package behavior

import "sort"

// Outcome classifies a key binding resolution.
type Outcome uint8

const (
	// OutcomeDefault means no shortcut matched; Command comes from the
	// fallback binding and may be empty.
	OutcomeDefault Outcome = iota
	// OutcomeMatched means a shortcut matched and its type is enabled.
	OutcomeMatched
	// OutcomeSuppressed means the key is reserved but yields no command, either
	// because its type is disabled or its modifiers do not match. Hosts must
	// not run their own default for it.
	OutcomeSuppressed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return "default"
	}
}

// Resolution is the result of resolving one key event.
type Resolution struct {
	Command string
	Outcome Outcome
}

// Category names the enabled set that gates a binding.
type Category uint8

const (
	// CategoryAlways bindings are enabled whenever they carry a command.
	CategoryAlways Category = iota
	// CategoryBlock bindings need their block type enabled.
	CategoryBlock
	// CategoryStyle bindings need their inline style enabled.
	CategoryStyle
	// CategoryEntity bindings need their entity type enabled.
	CategoryEntity
)

// ModifierRule is the modifier combination a binding requires.
type ModifierRule uint8

const (
	// ModCommand requires the platform command modifier without Alt.
	ModCommand ModifierRule = iota
	// ModCtrlOrMetaAlt requires Alt with Ctrl or Meta, on every platform.
	ModCtrlOrMetaAlt
	// ModNever never matches; the binding only suppresses the key.
	ModNever
)

// Binding is one entry of the shortcut table.
type Binding struct {
	KeyCode KeyCode
	// Shift is the required shift state, unless AnyShift is set.
	Shift    bool
	AnyShift bool
	Modifier ModifierRule
	Category Category
	Command  string
}

var bindings = []Binding{
	// Shift held. Shift+B/I/J/U are reserved so the host default does not
	// apply a formatting action for them.
	{KeyCode: KeyB, Shift: true, Modifier: ModNever},
	{KeyCode: KeyI, Shift: true, Modifier: ModNever},
	{KeyCode: KeyJ, Shift: true, Modifier: ModNever},
	{KeyCode: KeyU, Shift: true, Modifier: ModNever},
	{KeyCode: KeyX, Shift: true, Category: CategoryStyle, Command: StyleStrikethrough},
	{KeyCode: Key7, Shift: true, Category: CategoryBlock, Command: BlockOrderedListItem},
	{KeyCode: Key8, Shift: true, Category: CategoryBlock, Command: BlockUnorderedListItem},

	// Shift released.
	{KeyCode: KeyK, Category: CategoryEntity, Command: EntityLink},
	{KeyCode: KeyB, Category: CategoryStyle, Command: StyleBold},
	{KeyCode: KeyI, Category: CategoryStyle, Command: StyleItalic},
	{KeyCode: KeyJ, Category: CategoryStyle, Command: StyleCode},
	{KeyCode: KeyU, Category: CategoryStyle, Command: StyleUnderline},
	{KeyCode: KeyPeriod, Category: CategoryStyle, Command: StyleSuperscript},
	{KeyCode: KeyComma, Category: CategoryStyle, Command: StyleSubscript},

	// Block shortcuts, whatever the shift state.
	{KeyCode: Key0, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryAlways, Command: BlockUnstyled},
	{KeyCode: Key1, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderOne},
	{KeyCode: Key2, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderTwo},
	{KeyCode: Key3, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderThree},
	{KeyCode: Key4, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderFour},
	{KeyCode: Key5, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderFive},
	{KeyCode: Key6, AnyShift: true, Modifier: ModCtrlOrMetaAlt, Category: CategoryBlock, Command: BlockHeaderSix},
}

type chord struct {
	code  KeyCode
	shift bool
}

var bindingIndex = indexBindings(bindings)

func indexBindings(list []Binding) map[chord]Binding {
	idx := make(map[chord]Binding, len(list)+8)
	for _, b := range list {
		if b.AnyShift {
			idx[chord{code: b.KeyCode, shift: false}] = b
			idx[chord{code: b.KeyCode, shift: true}] = b
			continue
		}
		idx[chord{code: b.KeyCode, shift: b.Shift}] = b
	}
	return idx
}

// Bindings returns the shortcut table ordered by key code and shift state.
func Bindings() []Binding {
	out := append([]Binding(nil), bindings...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].KeyCode != out[j].KeyCode {
			return out[i].KeyCode < out[j].KeyCode
		}
		return !out[i].Shift && out[j].Shift
	})
	return out
}

// FallbackFunc resolves keys no shortcut claims, typically to the editor
// framework's default commands. An empty result means no command.
type FallbackFunc func(ev KeyEvent, p Platform) string

// KeyBinder resolves key events to commands for one configuration.
type KeyBinder struct {
	vocab    Vocabulary
	platform Platform
	fallback FallbackFunc
}

// NewKeyBinder returns a KeyBinder gated by vocab. A nil fallback uses
// DefaultKeyBinding.
func NewKeyBinder(vocab Vocabulary, platform Platform, fallback FallbackFunc) KeyBinder {
	if fallback == nil {
		fallback = DefaultKeyBinding
	}
	return KeyBinder{vocab: vocab, platform: platform, fallback: fallback}
}

// Platform returns the platform the binder was built for.
func (kb KeyBinder) Platform() Platform { return kb.platform }

// Resolve maps ev to a command. It is total: every event yields a
// Resolution.
func (kb KeyBinder) Resolve(ev KeyEvent) Resolution {
	b, ok := bindingIndex[chord{code: ev.KeyCode, shift: ev.Shift}]
	if !ok {
		fallback := kb.fallback
		if fallback == nil {
			fallback = DefaultKeyBinding
		}
		return Resolution{Command: fallback(ev, kb.platform), Outcome: OutcomeDefault}
	}
	if !kb.vocab.Enables(b) || !kb.modifiersMatch(b.Modifier, ev) {
		return Resolution{Outcome: OutcomeSuppressed}
	}
	return Resolution{Command: b.Command, Outcome: OutcomeMatched}
}

// Enables reports whether the vocabulary enables the command of b.
func (v Vocabulary) Enables(b Binding) bool {
	switch b.Category {
	case CategoryAlways:
		return b.Command != ""
	case CategoryBlock:
		return v.Blocks.Has(b.Command)
	case CategoryStyle:
		return v.Styles.Has(b.Command)
	case CategoryEntity:
		return v.Entities.Has(b.Command)
	default:
		return false
	}
}

func (kb KeyBinder) modifiersMatch(rule ModifierRule, ev KeyEvent) bool {
	switch rule {
	case ModCommand:
		return kb.platform.HasCommandModifier(ev)
	case ModCtrlOrMetaAlt:
		return (ev.Ctrl || ev.Meta) && ev.Alt
	default:
		return false
	}
}

// Default framework commands returned by DefaultKeyBinding.
const (
	CommandUndo                 = "undo"
	CommandRedo                 = "redo"
	CommandSplitBlock           = "split-block"
	CommandDelete               = "delete"
	CommandDeleteWord           = "delete-word"
	CommandBackspace            = "backspace"
	CommandBackspaceWord        = "backspace-word"
	CommandBackspaceToLineStart = "backspace-to-start-of-line"
	CommandTransposeCharacters  = "transpose-characters"
	CommandSecondaryCut         = "secondary-cut"
	CommandSecondaryPaste       = "secondary-paste"
	CommandBold                 = "bold"
	CommandItalic               = "italic"
	CommandUnderline            = "underline"
	CommandCode                 = "code"
)

// DefaultKeyBinding is the editor framework's default key binding.
func DefaultKeyBinding(ev KeyEvent, p Platform) string {
	cmd := p.HasCommandModifier(ev)
	ctrl := p.IsCtrlKeyCommand(ev)

	switch ev.KeyCode {
	case KeyB:
		return pick(cmd, CommandBold)
	case KeyD:
		return pick(ctrl, CommandDelete)
	case KeyH:
		return pick(ctrl, CommandBackspace)
	case KeyI:
		return pick(cmd, CommandItalic)
	case KeyJ:
		return pick(cmd, CommandCode)
	case KeyK:
		return pick(p.Mac && ctrl, CommandSecondaryCut)
	case KeyM, KeyO:
		return pick(ctrl, CommandSplitBlock)
	case KeyT:
		return pick(p.Mac && ctrl, CommandTransposeCharacters)
	case KeyU:
		return pick(cmd, CommandUnderline)
	case KeyW:
		return pick(p.Mac && ctrl, CommandBackspaceWord)
	case KeyY:
		if !ctrl {
			return ""
		}
		if p.Mac {
			return CommandSecondaryPaste
		}
		return CommandRedo
	case KeyZ:
		if !cmd {
			return ""
		}
		if ev.Shift {
			return CommandRedo
		}
		return CommandUndo
	case KeyReturn:
		return CommandSplitBlock
	case KeyDelete:
		if (p.Mac && ev.Alt) || (!p.Mac && ev.Ctrl) {
			return CommandDeleteWord
		}
		return CommandDelete
	case KeyBackspace:
		if p.Mac && ev.Meta {
			return CommandBackspaceToLineStart
		}
		if (p.Mac && ev.Alt) || (!p.Mac && ev.Ctrl) {
			return CommandBackspaceWord
		}
		return CommandBackspace
	default:
		return ""
	}
}

func pick(ok bool, cmd string) string {
	if ok {
		return cmd
	}
	return ""
}
