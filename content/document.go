package content

import (
	"sort"
	"strings"
)

// Mutability controls how an entity reacts to edits of its text.
type Mutability string

const (
	Mutable   Mutability = "MUTABLE"
	Immutable Mutability = "IMMUTABLE"
	Segmented Mutability = "SEGMENTED"
)

// Entity is a typed, data-carrying annotation.
type Entity struct {
	Type       string
	Mutability Mutability
	Data       map[string]any
}

// Range is a contiguous span of text inside a block.
//
// Styles is a set; Normalize sorts and deduplicates it.
// EntityKey is empty when the range is not annotated.
type Range struct {
	Text      string
	Styles    []string
	EntityKey string
}

// HasStyle reports whether style is applied to the range.
func (r Range) HasStyle(style string) bool {
	for _, s := range r.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// Block is a paragraph-level unit of a document.
type Block struct {
	Key    string
	Type   string
	Depth  int
	Ranges []Range
	Data   map[string]any
}

// Text returns the block's plain text.
func (b Block) Text() string {
	switch len(b.Ranges) {
	case 0:
		return ""
	case 1:
		return b.Ranges[0].Text
	}
	var sb strings.Builder
	for _, r := range b.Ranges {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// EntityKeys returns entity keys referenced by the block in first-use order.
func (b Block) EntityKeys() []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range b.Ranges {
		if r.EntityKey == "" || seen[r.EntityKey] {
			continue
		}
		seen[r.EntityKey] = true
		out = append(out, r.EntityKey)
	}
	return out
}

// Document is an ordered sequence of blocks plus their entity table.
type Document struct {
	Blocks   []Block
	Entities map[string]Entity
}

// Entity returns the entity stored under key.
func (d Document) Entity(key string) (Entity, bool) {
	if key == "" || d.Entities == nil {
		return Entity{}, false
	}
	e, ok := d.Entities[key]
	return e, ok
}

// PlainText joins block texts with '\n'.
func (d Document) PlainText() string {
	var sb strings.Builder
	for i, b := range d.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// EntityKeys returns the keys of the entity table in sorted order.
func (d Document) EntityKeys() []string {
	keys := make([]string, 0, len(d.Entities))
	for k := range d.Entities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{}
	if d.Blocks != nil {
		out.Blocks = make([]Block, len(d.Blocks))
		for i, b := range d.Blocks {
			out.Blocks[i] = b.Clone()
		}
	}
	if d.Entities != nil {
		out.Entities = make(map[string]Entity, len(d.Entities))
		for k, e := range d.Entities {
			out.Entities[k] = e.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	out := b
	if b.Ranges != nil {
		out.Ranges = make([]Range, len(b.Ranges))
		for i, r := range b.Ranges {
			out.Ranges[i] = r.Clone()
		}
	}
	out.Data = cloneData(b.Data)
	return out
}

// Clone returns a deep copy of r.
func (r Range) Clone() Range {
	out := r
	if r.Styles != nil {
		out.Styles = append([]string(nil), r.Styles...)
	}
	return out
}

// Clone returns a deep copy of e.
func (e Entity) Clone() Entity {
	out := e
	out.Data = cloneData(e.Data)
	return out
}

func cloneData(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return cloneData(tv)
	case []any:
		out := make([]any, len(tv))
		for i := range tv {
			out[i] = cloneValue(tv[i])
		}
		return out
	default:
		return v
	}
}
