package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/draftail/behavior"
	"github.com/iw2rmb/draftail/content"
)

const (
	indentWidth = 2
	ruleWidth   = 24
	ellipsis    = "…"
)

var bullets = []string{"•", "◦", "▪"}

// Preview renders documents. Width, when positive, truncates every line to
// that many terminal cells.
type Preview struct {
	Style  Style
	Inline map[string]lipgloss.Style
	Width  int
}

// New returns a Preview for the given inline style descriptors, using the
// default block styles and the custom style map they produce.
func New(r *lipgloss.Renderer, inlineStyles []behavior.TypeDescriptor) Preview {
	return Preview{
		Style:  DefaultStyle(r),
		Inline: InlineStyles(r, behavior.CustomStyleMap(inlineStyles)),
	}
}

// Render renders doc, one line per block.
func (p Preview) Render(doc content.Document) string {
	lines := make([]string, 0, len(doc.Blocks))
	var counters [behavior.MaxSupportedListNesting + 1]int
	for _, b := range doc.Blocks {
		depth := b.Depth
		if depth < 0 {
			depth = 0
		}
		if depth > behavior.MaxSupportedListNesting {
			depth = behavior.MaxSupportedListNesting
		}

		ordinal := 0
		switch b.Type {
		case behavior.BlockOrderedListItem:
			counters[depth]++
			ordinal = counters[depth]
			clear(counters[depth+1:])
		case behavior.BlockUnorderedListItem:
			clear(counters[depth:])
		default:
			clear(counters[:])
		}
		lines = append(lines, p.renderBlock(doc, b, depth, ordinal))
	}
	return strings.Join(lines, "\n")
}

func (p Preview) renderBlock(doc content.Document, b content.Block, depth, ordinal int) string {
	base := p.Style.Text
	marker := p.Style.Marker
	prefix := ""
	switch b.Type {
	case behavior.BlockHeaderOne, behavior.BlockHeaderTwo, behavior.BlockHeaderThree,
		behavior.BlockHeaderFour, behavior.BlockHeaderFive, behavior.BlockHeaderSix:
		base = p.Style.Header
		marker = p.Style.Header
		prefix = strings.Repeat("#", headerLevel(b.Type)) + " "
	case behavior.BlockUnorderedListItem:
		prefix = strings.Repeat(" ", depth*indentWidth) + bullets[depth%len(bullets)] + " "
	case behavior.BlockOrderedListItem:
		prefix = strings.Repeat(" ", depth*indentWidth) + fmt.Sprintf("%d. ", ordinal)
	case behavior.BlockBlockquote:
		base = base.Italic(true)
		marker = p.Style.Quote
		prefix = "│ "
	case behavior.BlockCode:
		base = p.Style.Code
	case behavior.BlockAtomic:
		return p.Style.Atomic.Render(p.truncate(p.atomicLabel(doc, b)))
	}

	var sb strings.Builder
	avail := -1
	if p.Width > 0 {
		prefix = p.truncate(prefix)
		avail = p.Width - runewidth.StringWidth(prefix)
	}
	if prefix != "" {
		sb.WriteString(marker.Render(prefix))
	}

	for _, r := range b.Ranges {
		text := r.Text
		if avail >= 0 {
			if avail == 0 {
				break
			}
			w := runewidth.StringWidth(text)
			if w > avail {
				text = runewidth.Truncate(text, avail, ellipsis)
				avail = 0
			} else {
				avail -= w
			}
		}
		if text == "" {
			continue
		}
		sb.WriteString(p.rangeStyle(base, r).Render(text))
	}
	return sb.String()
}

// rangeStyle layers the range's inline styles over base. Styles are applied in
// sorted order so the first style setting an attribute wins deterministically.
func (p Preview) rangeStyle(base lipgloss.Style, r content.Range) lipgloss.Style {
	if len(r.Styles) == 0 {
		return base
	}
	names := append([]string(nil), r.Styles...)
	sort.Strings(names)

	var s lipgloss.Style
	first := true
	for _, name := range names {
		is, ok := p.Inline[name]
		if !ok {
			continue
		}
		if first {
			s = is
			first = false
			continue
		}
		s = s.Inherit(is)
	}
	if first {
		return base
	}
	return s.Inherit(base)
}

func (p Preview) atomicLabel(doc content.Document, b content.Block) string {
	keys := b.EntityKeys()
	if len(keys) == 0 {
		return "[" + b.Type + "]"
	}
	e, ok := doc.Entity(keys[0])
	if !ok {
		return "[" + b.Type + "]"
	}

	switch e.Type {
	case behavior.EntityHorizontalRule:
		w := ruleWidth
		if p.Width > 0 {
			w = p.Width
		}
		return strings.Repeat("─", w)
	case behavior.EntityImage:
		return labelWith(behavior.ImagePlaceholder, e.Data, "alt", "src")
	case behavior.EntityEmbed:
		return labelWith("embed", e.Data, "title", "url")
	default:
		return labelWith(e.Type, e.Data, "url")
	}
}

// labelWith returns "[head value]" for the first non-empty data key, or
// "[head]".
func labelWith(head string, data map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := data[k].(string); ok && s != "" {
			return "[" + head + " " + s + "]"
		}
	}
	return "[" + head + "]"
}

func (p Preview) truncate(s string) string {
	if p.Width <= 0 || runewidth.StringWidth(s) <= p.Width {
		return s
	}
	return runewidth.Truncate(s, p.Width, ellipsis)
}

func headerLevel(blockType string) int {
	switch blockType {
	case behavior.BlockHeaderOne:
		return 1
	case behavior.BlockHeaderTwo:
		return 2
	case behavior.BlockHeaderThree:
		return 3
	case behavior.BlockHeaderFour:
		return 4
	case behavior.BlockHeaderFive:
		return 5
	default:
		return 6
	}
}
