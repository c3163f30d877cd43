package behavior

import (
	"fmt"

	"github.com/iw2rmb/draftail/content"
	"github.com/iw2rmb/draftail/internal/grapheme"
)

// FilterReport counts the changes Filter made to a document.
type FilterReport struct {
	DemotedBlocks       int `yaml:"demotedBlocks"`
	RemovedAtomicBlocks int `yaml:"removedAtomicBlocks"`
	ResetDepths         int `yaml:"resetDepths"`
	ClampedDepths       int `yaml:"clampedDepths"`
	StrippedStyles      int `yaml:"strippedStyles"`
	RemovedEntities     int `yaml:"removedEntities"`
	FilteredEntityData  int `yaml:"filteredEntityData"`
	ReplacedCharacters  int `yaml:"replacedCharacters"`
	RegeneratedKeys     int `yaml:"regeneratedKeys"`
}

// Changed reports whether Filter modified anything.
func (r FilterReport) Changed() bool {
	return r != FilterReport{}
}

// Filter returns a copy of doc restricted to the vocabulary.
//
// Disallowed block types are demoted to unstyled and disallowed inline styles
// and entities are stripped from their text, which is kept. Atomic blocks are
// removed when they do not carry an allowed entity. Depth is reset to 0 on
// non-list blocks and clamped to v.MaxDepth on list items. Whitespaced
// characters are replaced by spaces. The result is well-formed and filtering
// it again with the same vocabulary returns it unchanged.
func Filter(v Vocabulary, doc content.Document) content.Document {
	out, _ := FilterWithReport(v, doc)
	return out
}

// FilterWithReport is Filter plus a count of what changed.
func FilterWithReport(v Vocabulary, doc content.Document) (content.Document, FilterReport) {
	f := filterer{
		v:        v,
		src:      doc,
		maxDepth: clampInt(v.MaxDepth, 0, MaxSupportedListNesting),
		ws:       v.WhitespacedCharacters(),
		entities: map[string]content.Entity{},
		accepted: map[string]bool{},
	}

	out := content.Document{Blocks: make([]content.Block, 0, len(doc.Blocks))}
	for _, src := range doc.Blocks {
		b, keep := f.block(src)
		if !keep {
			f.rep.RemovedAtomicBlocks++
			continue
		}
		out.Blocks = append(out.Blocks, b)
	}
	if len(out.Blocks) == 0 {
		out.Blocks = append(out.Blocks, content.Block{Type: BlockUnstyled})
	}
	f.rep.RegeneratedKeys = assignKeys(out.Blocks)

	for _, b := range out.Blocks {
		for _, key := range b.EntityKeys() {
			if out.Entities == nil {
				out.Entities = map[string]content.Entity{}
			}
			out.Entities[key] = f.entities[key]
		}
	}
	return out, f.rep
}

type filterer struct {
	v        Vocabulary
	src      content.Document
	maxDepth int
	ws       []string

	// entities holds the filtered copy of every accepted entity, referenced
	// or not.
	entities map[string]content.Entity
	// accepted caches entity decisions by key; false means rejected.
	accepted map[string]bool
	rep      FilterReport
}

func (f *filterer) block(src content.Block) (content.Block, bool) {
	b := src.Clone()

	if b.Type == BlockAtomic {
		if key, ok := f.atomicEntity(b); ok {
			return content.Block{
				Key:    b.Key,
				Type:   BlockAtomic,
				Ranges: []content.Range{{Text: " ", EntityKey: key}},
				Data:   b.Data,
			}, true
		}
		if grapheme.IsBlank(b.Text(), ImagePlaceholder) {
			return content.Block{}, false
		}
	}

	if b.Type != BlockUnstyled && (b.Type == BlockAtomic || !f.v.Blocks.Has(b.Type)) {
		b.Type = BlockUnstyled
		f.rep.DemotedBlocks++
	}
	b.Depth = f.depth(b.Type, b.Depth)

	for i := range b.Ranges {
		f.inline(&b.Ranges[i])
	}
	b.Ranges = content.NormalizeRanges(b.Ranges)
	return b, true
}

func (f *filterer) depth(blockType string, depth int) int {
	if !IsListItem(blockType) {
		if depth != 0 {
			f.rep.ResetDepths++
		}
		return 0
	}
	switch {
	case depth < 0:
		f.rep.ClampedDepths++
		return 0
	case depth > f.maxDepth:
		f.rep.ClampedDepths++
		return f.maxDepth
	default:
		return depth
	}
}

// atomicEntity returns the key of the entity an atomic block stands for. Only
// the first entity reference counts.
func (f *filterer) atomicEntity(b content.Block) (string, bool) {
	for _, r := range b.Ranges {
		if r.EntityKey == "" {
			continue
		}
		return r.EntityKey, f.acceptEntity(r.EntityKey, true)
	}
	return "", false
}

func (f *filterer) inline(r *content.Range) {
	if len(r.Styles) > 0 {
		kept := make([]string, 0, len(r.Styles))
		for _, s := range r.Styles {
			if f.v.Styles.Has(s) {
				kept = append(kept, s)
				continue
			}
			f.rep.StrippedStyles++
		}
		r.Styles = kept
	}

	if r.EntityKey != "" && !f.acceptEntity(r.EntityKey, false) {
		r.EntityKey = ""
		f.rep.RemovedEntities++
	}

	text, n := grapheme.ReplaceChars(r.Text, f.ws, " ")
	r.Text = text
	f.rep.ReplacedCharacters += n
}

// acceptEntity decides whether the entity under key survives and records its
// filtered copy. Block-level entity types only survive in atomic blocks.
func (f *filterer) acceptEntity(key string, atomic bool) bool {
	e, ok := f.src.Entity(key)
	if !ok {
		return false
	}
	if !atomic && IsBlockEntity(e.Type) {
		return false
	}
	if ok, seen := f.accepted[key]; seen {
		return ok
	}

	ok = false
	if d, allowed := f.v.Filterable[e.Type]; allowed {
		var e2 content.Entity
		e2, ok = f.filterEntityData(e, d)
		if ok {
			f.entities[key] = e2
		}
	}
	f.accepted[key] = ok
	return ok
}

func (f *filterer) filterEntityData(e content.Entity, d TypeDescriptor) (content.Entity, bool) {
	e = e.Clone()
	if len(d.Attributes) > 0 && len(e.Data) > 0 {
		keep := make(map[string]bool, len(d.Attributes))
		for _, a := range d.Attributes {
			keep[a] = true
		}
		for k := range e.Data {
			if !keep[k] {
				delete(e.Data, k)
				f.rep.FilteredEntityData++
			}
		}
		if len(e.Data) == 0 {
			e.Data = nil
		}
	}

	for attr, re := range f.v.allowlists[e.Type] {
		val, ok := e.Data[attr]
		if !ok || re == nil || !re.MatchString(dataString(val)) {
			return content.Entity{}, false
		}
	}
	return e, true
}

func dataString(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case nil:
		return ""
	default:
		return fmt.Sprint(tv)
	}
}

// assignKeys gives every block a unique non-empty key. The first block using a
// key keeps it; the others get generated keys. It returns the number of keys
// generated.
func assignKeys(blocks []content.Block) int {
	used := make(map[string]bool, len(blocks))
	needsKey := make([]bool, len(blocks))
	for i, b := range blocks {
		if b.Key == "" || used[b.Key] {
			needsKey[i] = true
			continue
		}
		used[b.Key] = true
	}

	generated := 0
	next := 0
	for i := range blocks {
		if !needsKey[i] {
			continue
		}
		key := content.BlockKey(next)
		for used[key] {
			next++
			key = content.BlockKey(next)
		}
		next++
		used[key] = true
		blocks[i].Key = key
		generated++
	}
	return generated
}
