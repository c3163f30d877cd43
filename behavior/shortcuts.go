package behavior

// KeyboardShortcut is the display label of a shortcut. Generic is used when
// the platform variant is empty.
type KeyboardShortcut struct {
	Generic string
	Mac     string
	Other   string
}

func platformShortcut(mac, other string) KeyboardShortcut {
	return KeyboardShortcut{Mac: mac, Other: other}
}

// KeyboardShortcuts holds the shortcut labels shown in UI hints.
var KeyboardShortcuts = map[string]KeyboardShortcut{
	BlockUnstyled:          {Generic: "⌫"},
	BlockHeaderOne:         {Generic: "#"},
	BlockHeaderTwo:         {Generic: "##"},
	BlockHeaderThree:       {Generic: "###"},
	BlockHeaderFour:        {Generic: "####"},
	BlockHeaderFive:        {Generic: "#####"},
	BlockHeaderSix:         {Generic: "######"},
	BlockUnorderedListItem: {Generic: "-"},
	BlockOrderedListItem:   {Generic: "1."},
	BlockBlockquote:        {Generic: ">"},
	BlockCode:              {Generic: "```"},

	StyleBold:          platformShortcut("⌘ + B", "Ctrl + B"),
	StyleItalic:        platformShortcut("⌘ + I", "Ctrl + I"),
	StyleUnderline:     platformShortcut("⌘ + U", "Ctrl + U"),
	StyleStrikethrough: platformShortcut("⌘ + ⇧ + X", "Ctrl + ⇧ + X"),
	StyleSuperscript:   platformShortcut("⌘ + .", "Ctrl + ."),
	StyleSubscript:     platformShortcut("⌘ + ,", "Ctrl + ,"),
	StyleCode:          platformShortcut("⌘ + J", "Ctrl + J"),

	EntityLink:           platformShortcut("⌘ + K", "Ctrl + K"),
	EntityHorizontalRule: {Generic: "- - -"},

	TypeBR:   {Generic: "⇧ + ↵"},
	TypeUndo: platformShortcut("⌘ + Z", "Ctrl + Z"),
	TypeRedo: platformShortcut("⌘ + ⇧ + Z", "Ctrl + ⇧ + Z"),
}

// HasShortcut reports whether t has a keyboard shortcut.
func HasShortcut(t string) bool {
	_, ok := KeyboardShortcuts[t]
	return ok
}

// ShortcutLabel returns the display label of t's shortcut for the given
// platform, falling back to the generic label.
func ShortcutLabel(t string, mac bool) (string, bool) {
	sc, ok := KeyboardShortcuts[t]
	if !ok {
		return "", false
	}
	label := sc.Other
	if mac {
		label = sc.Mac
	}
	if label == "" {
		label = sc.Generic
	}
	return label, label != ""
}
