package behavior

import "github.com/iw2rmb/draftail/content"

// Block types.
const (
	BlockUnstyled          = content.TypeUnstyled
	BlockHeaderOne         = "header-one"
	BlockHeaderTwo         = "header-two"
	BlockHeaderThree       = "header-three"
	BlockHeaderFour        = "header-four"
	BlockHeaderFive        = "header-five"
	BlockHeaderSix         = "header-six"
	BlockUnorderedListItem = "unordered-list-item"
	BlockOrderedListItem   = "ordered-list-item"
	BlockBlockquote        = "blockquote"
	BlockCode              = "code-block"
	BlockAtomic            = content.TypeAtomic
)

// Entity types.
const (
	EntityLink           = "LINK"
	EntityDocument       = "DOCUMENT"
	EntityImage          = "IMAGE"
	EntityEmbed          = "EMBED"
	EntityHorizontalRule = "HORIZONTAL_RULE"
)

// Inline styles.
const (
	StyleBold          = "BOLD"
	StyleItalic        = "ITALIC"
	StyleCode          = "CODE"
	StyleUnderline     = "UNDERLINE"
	StyleStrikethrough = "STRIKETHROUGH"
	StyleMark          = "MARK"
	StyleQuotation     = "QUOTATION"
	StyleSmall         = "SMALL"
	StyleSample        = "SAMPLE"
	StyleInsert        = "INSERT"
	StyleDelete        = "DELETE"
	StyleKeyboard      = "KEYBOARD"
	StyleSuperscript   = "SUPERSCRIPT"
	StyleSubscript     = "SUBSCRIPT"
)

// Pseudo types that have shortcuts and labels but are not content types.
const (
	TypeBR   = "BR"
	TypeUndo = "undo"
	TypeRedo = "redo"
)

// Key command results for host command handlers.
const (
	Handled    = "handled"
	NotHandled = "not-handled"
)

const (
	// DraftMaxDepth is the deepest list nesting the renderer styles natively.
	DraftMaxDepth = 4
	// MaxSupportedListNesting is the absolute nesting ceiling, whatever the
	// configuration says.
	MaxSupportedListNesting = 10
)

// FontFamilyMonospace is the font stack used by monospace inline styles.
const FontFamilyMonospace = `Consolas, Menlo, Monaco, "Lucida Console", "Liberation Mono", "DejaVu Sans Mono", "Bitstream Vera Sans Mono", "Courier New", monospace, sans-serif`

// ImagePlaceholder is the character pasted content uses in place of
// embedded non-text content.
const ImagePlaceholder = "📷"

// KeyCode is a keyboard key code as reported by browser key events.
type KeyCode int

// Key codes used by built-in shortcuts.
const (
	KeyBackspace KeyCode = 8
	KeyReturn    KeyCode = 13
	KeyDelete    KeyCode = 46
	Key0         KeyCode = 48
	Key1         KeyCode = 49
	Key2         KeyCode = 50
	Key3         KeyCode = 51
	Key4         KeyCode = 52
	Key5         KeyCode = 53
	Key6         KeyCode = 54
	Key7         KeyCode = 55
	Key8         KeyCode = 56
	Key9         KeyCode = 57
	KeyB         KeyCode = 66
	KeyD         KeyCode = 68
	KeyH         KeyCode = 72
	KeyI         KeyCode = 73
	KeyJ         KeyCode = 74
	KeyK         KeyCode = 75
	KeyM         KeyCode = 77
	KeyO         KeyCode = 79
	KeyT         KeyCode = 84
	KeyU         KeyCode = 85
	KeyW         KeyCode = 87
	KeyX         KeyCode = 88
	KeyY         KeyCode = 89
	KeyZ         KeyCode = 90
	KeyComma     KeyCode = 188
	KeyPeriod    KeyCode = 190
)

// InputBlockMap maps marks typed at the start of a block to the block type
// they convert to.
var InputBlockMap = map[string]string{
	"* ":      BlockUnorderedListItem,
	"- ":      BlockUnorderedListItem,
	"1. ":     BlockOrderedListItem,
	"# ":      BlockHeaderOne,
	"## ":     BlockHeaderTwo,
	"### ":    BlockHeaderThree,
	"#### ":   BlockHeaderFour,
	"##### ":  BlockHeaderFive,
	"###### ": BlockHeaderSix,
	"> ":      BlockBlockquote,
	"```":     BlockCode,
}

// InputEntityMap maps entity types to the mark that inserts them.
var InputEntityMap = map[string]string{
	EntityHorizontalRule: "---",
}

// Labels are short default labels for toolbar controls.
var Labels = map[string]string{
	BlockUnstyled:          "P",
	BlockHeaderOne:         "H1",
	BlockHeaderTwo:         "H2",
	BlockHeaderThree:       "H3",
	BlockHeaderFour:        "H4",
	BlockHeaderFive:        "H5",
	BlockHeaderSix:         "H6",
	BlockUnorderedListItem: "UL",
	BlockOrderedListItem:   "OL",
	BlockCode:              "{ }",
	BlockBlockquote:        "❝",

	StyleBold:          "B",
	StyleItalic:        "𝘐",
	StyleCode:          "{ }",
	StyleUnderline:     "U",
	StyleStrikethrough: "S",
	StyleMark:          "☆",
	StyleQuotation:     "❛",
	StyleSmall:         "Small",
	StyleSample:        "Data",
	StyleInsert:        "Ins",
	StyleDelete:        "Del",
	StyleSuperscript:   "Sup",
	StyleSubscript:     "Sub",
	StyleKeyboard:      "⌘",

	EntityLink:           "🔗",
	EntityDocument:       "🗐",
	EntityImage:          "🖼",
	EntityEmbed:          "🎬",
	EntityHorizontalRule: "―",

	TypeBR:   "↵",
	TypeUndo: "↺",
	TypeRedo: "↻",
}

// Descriptions are human-readable names for types.
var Descriptions = map[string]string{
	BlockUnstyled:          "Paragraph",
	BlockHeaderOne:         "Heading 1",
	BlockHeaderTwo:         "Heading 2",
	BlockHeaderThree:       "Heading 3",
	BlockHeaderFour:        "Heading 4",
	BlockHeaderFive:        "Heading 5",
	BlockHeaderSix:         "Heading 6",
	BlockUnorderedListItem: "Bulleted list",
	BlockOrderedListItem:   "Numbered list",
	BlockBlockquote:        "Blockquote",
	BlockCode:              "Code block",

	StyleBold:          "Bold",
	StyleItalic:        "Italic",
	StyleCode:          "Inline code",
	StyleUnderline:     "Underline",
	StyleStrikethrough: "Strikethrough",
	StyleMark:          "Highlight",
	StyleQuotation:     "Inline quotation",
	StyleSmall:         "Small",
	StyleSample:        "Program output",
	StyleInsert:        "Inserted",
	StyleDelete:        "Deleted",
	StyleKeyboard:      "Shortcut key",
	StyleSuperscript:   "Superscript",
	StyleSubscript:     "Subscript",

	EntityLink:           "Link",
	EntityDocument:       "Document",
	EntityImage:          "Image",
	EntityEmbed:          "Embed",
	EntityHorizontalRule: "Horizontal line",

	TypeBR:   "Line break",
	TypeUndo: "Undo",
	TypeRedo: "Redo",
}

// CSSProps is a set of CSS declarations keyed by camel-cased property name.
type CSSProps map[string]string

// DefaultCustomStyleMap holds the built-in CSS of known inline styles.
var DefaultCustomStyleMap = map[string]CSSProps{
	StyleBold:          {"fontWeight": "bold"},
	StyleItalic:        {"fontStyle": "italic"},
	StyleStrikethrough: {"textDecoration": "line-through"},
	StyleUnderline:     {"textDecoration": "underline"},
	StyleCode: {
		"padding":         "0.2em 0.3125em",
		"margin":          "0",
		"fontSize":        "85%",
		"backgroundColor": "rgba(27, 31, 35, 0.05)",
		"fontFamily":      FontFamilyMonospace,
		"borderRadius":    "3px",
	},
	StyleMark:      {"backgroundColor": "yellow", "color": "black"},
	StyleQuotation: {"fontStyle": "italic"},
	StyleSmall:     {"fontSize": "smaller"},
	StyleSample:    {"fontFamily": FontFamilyMonospace},
	StyleInsert:    {"textDecoration": "underline"},
	StyleDelete:    {"textDecoration": "line-through"},
	StyleKeyboard: {
		"fontFamily":        FontFamilyMonospace,
		"padding":           "3px 5px",
		"fontSize":          "11px",
		"lineHeight":        "10px",
		"color":             "#444d56",
		"verticalAlign":     "middle",
		"backgroundColor":   "#fafbfc",
		"border":            "solid 1px #c6cbd1",
		"borderBottomColor": "#959da5",
		"borderRadius":      "3px",
		"boxShadow":         "inset 0 -1px 0 #959da5",
	},
	StyleSuperscript: {"fontSize": "80%", "verticalAlign": "super", "lineHeight": "1"},
	StyleSubscript:   {"fontSize": "80%", "verticalAlign": "sub", "lineHeight": "1"},
}

// blockEntityTypes are entity types that only belong in atomic blocks.
var blockEntityTypes = map[string]bool{
	EntityImage:          true,
	EntityEmbed:          true,
	EntityHorizontalRule: true,
}

// IsBlockEntity reports whether entities of this type stand for an atomic,
// non-text block.
func IsBlockEntity(entityType string) bool {
	return blockEntityTypes[entityType]
}

// IsListItem reports whether blockType supports nesting depth.
func IsListItem(blockType string) bool {
	return blockType == BlockUnorderedListItem || blockType == BlockOrderedListItem
}
