package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/draftail/behavior"
)

// Style controls block-level rendering.
type Style struct {
	Text   lipgloss.Style
	Header lipgloss.Style
	Quote  lipgloss.Style
	Code   lipgloss.Style
	Marker lipgloss.Style
	Atomic lipgloss.Style
}

// DefaultStyle returns the stock block styles built with r. A nil r uses the
// lipgloss default renderer.
func DefaultStyle(r *lipgloss.Renderer) Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Style{
		Text:   r.NewStyle(),
		Header: r.NewStyle().Bold(true),
		Quote:  r.NewStyle().Foreground(lipgloss.Color("244")),
		Code:   r.NewStyle().Faint(true),
		Marker: r.NewStyle().Foreground(lipgloss.Color("240")),
		Atomic: r.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
	}
}

// InlineStyles translates a custom style map to lipgloss styles.
func InlineStyles(r *lipgloss.Renderer, styleMap map[string]behavior.CSSProps) map[string]lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	out := make(map[string]lipgloss.Style, len(styleMap))
	for name, props := range styleMap {
		out[name] = InlineStyle(r, props)
	}
	return out
}

// InlineStyle translates one set of CSS properties.
//
// fontWeight bold (or 600 and above) is bold, fontStyle italic is italic,
// textDecoration maps to underline and strikethrough, a monospace fontFamily
// is faint and any backgroundColor is reverse video. Hex colors become the
// foreground.
func InlineStyle(r *lipgloss.Renderer, props behavior.CSSProps) lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := r.NewStyle()
	if isBold(props["fontWeight"]) {
		s = s.Bold(true)
	}
	if strings.EqualFold(props["fontStyle"], "italic") {
		s = s.Italic(true)
	}
	deco := strings.ToLower(props["textDecoration"])
	if strings.Contains(deco, "underline") {
		s = s.Underline(true)
	}
	if strings.Contains(deco, "line-through") {
		s = s.Strikethrough(true)
	}
	if strings.Contains(strings.ToLower(props["fontFamily"]), "monospace") {
		s = s.Faint(true)
	}
	if props["backgroundColor"] != "" {
		s = s.Reverse(true)
	}
	if c := props["color"]; strings.HasPrefix(c, "#") {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func isBold(weight string) bool {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}
