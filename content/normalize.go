package content

import (
	"reflect"
	"sort"
)

// NormalizeRanges returns the canonical form of ranges:
//   - empty ranges are removed,
//   - styles are sorted and deduplicated (an empty set becomes nil),
//   - adjacent ranges with equal styles and entity are merged.
func NormalizeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Text == "" {
			continue
		}
		r.Styles = normalizeStyles(r.Styles)
		if n := len(out); n > 0 && sameMeta(out[n-1], r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeStyles(styles []string) []string {
	if len(styles) == 0 {
		return nil
	}
	out := append([]string(nil), styles...)
	sort.Strings(out)
	n := 0
	for i, s := range out {
		if s == "" {
			continue
		}
		if n > 0 && out[n-1] == s {
			continue
		}
		out[n] = out[i]
		n++
	}
	if n == 0 {
		return nil
	}
	return out[:n]
}

func sameMeta(a, b Range) bool {
	if a.EntityKey != b.EntityKey || len(a.Styles) != len(b.Styles) {
		return false
	}
	for i := range a.Styles {
		if a.Styles[i] != b.Styles[i] {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same blocks and entities.
//
// Nil and empty collections compare equal.
func Equal(a, b Document) bool {
	if len(a.Blocks) != len(b.Blocks) || len(a.Entities) != len(b.Entities) {
		return false
	}
	for i := range a.Blocks {
		if !blockEqual(a.Blocks[i], b.Blocks[i]) {
			return false
		}
	}
	for k, ea := range a.Entities {
		eb, ok := b.Entities[k]
		if !ok || ea.Type != eb.Type || ea.Mutability != eb.Mutability || !dataEqual(ea.Data, eb.Data) {
			return false
		}
	}
	return true
}

func blockEqual(a, b Block) bool {
	if a.Key != b.Key || a.Type != b.Type || a.Depth != b.Depth || len(a.Ranges) != len(b.Ranges) {
		return false
	}
	for i := range a.Ranges {
		ra, rb := a.Ranges[i], b.Ranges[i]
		if ra.Text != rb.Text || !sameMeta(ra, rb) {
			return false
		}
	}
	return dataEqual(a.Data, b.Data)
}

func dataEqual(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
