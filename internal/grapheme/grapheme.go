package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ReplaceChars replaces every occurrence of chars in text with repl. Runes of
// a cluster that are not in chars are kept, so a cluster joining a replaced
// character to other text loses only that character. It returns the new text
// and the number of occurrences replaced.
func ReplaceChars(text string, chars []string, repl string) (string, int) {
	if text == "" || len(chars) == 0 {
		return text, 0
	}

	g := uniseg.NewGraphemes(text)
	var sb strings.Builder
	sb.Grow(len(text))
	n := 0
	for g.Next() {
		c := g.Str()
		if !ContainsAny(c, chars) {
			sb.WriteString(c)
			continue
		}
		for _, ch := range chars {
			if ch == "" {
				continue
			}
			n += strings.Count(c, ch)
			c = strings.ReplaceAll(c, ch, repl)
		}
		sb.WriteString(c)
	}
	if n == 0 {
		return text, 0
	}
	return sb.String(), n
}

// ContainsAny reports whether cluster contains any of chars.
func ContainsAny(cluster string, chars []string) bool {
	for _, c := range chars {
		if c != "" && strings.Contains(cluster, c) {
			return true
		}
	}
	return false
}

// IsBlank reports whether every cluster of text is whitespace or one of
// placeholders.
func IsBlank(text string, placeholders ...string) bool {
	for _, c := range Split(text) {
		if isSpace(c) || ContainsAny(c, placeholders) {
			continue
		}
		return false
	}
	return true
}

func isSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
