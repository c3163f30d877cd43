package content

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidRaw is returned by FromRaw when the input is not JSON.
var ErrInvalidRaw = errors.New("content: raw content is not valid JSON")

// FromRaw decodes Draft.js raw content ({"blocks": [...], "entityMap": {...}}).
//
// Decoding is lenient: members with the wrong shape are ignored and offsets
// outside the block text are clipped. Offsets and lengths are UTF-16 code
// units. Only input that is not JSON at all yields an error.
func FromRaw(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, ErrInvalidRaw
	}
	root := gjson.ParseBytes(data)

	doc := Document{}
	em := root.Get("entityMap")
	if em.IsObject() || em.IsArray() {
		doc.Entities = map[string]Entity{}
		em.ForEach(func(k, v gjson.Result) bool {
			if !v.IsObject() {
				return true
			}
			key := k.String()
			if em.IsArray() {
				key = strconv.Itoa(int(k.Int()))
			}
			doc.Entities[key] = decodeEntity(v)
			return true
		})
	}

	root.Get("blocks").ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			doc.Blocks = append(doc.Blocks, decodeBlock(v))
		}
		return true
	})
	return doc, nil
}

func decodeEntity(v gjson.Result) Entity {
	e := Entity{
		Type:       v.Get("type").String(),
		Mutability: Mutability(strings.ToUpper(v.Get("mutability").String())),
	}
	e.Data = decodeData(v.Get("data"))
	return e
}

func decodeData(v gjson.Result) map[string]any {
	if !v.IsObject() {
		return nil
	}
	m, ok := v.Value().(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	return m
}

type charMeta struct {
	styles []string
	entity string
}

func decodeBlock(v gjson.Result) Block {
	b := Block{
		Key:   v.Get("key").String(),
		Type:  v.Get("type").String(),
		Depth: int(v.Get("depth").Int()),
		Data:  decodeData(v.Get("data")),
	}
	if b.Type == "" {
		b.Type = TypeUnstyled
	}

	runes := []rune(v.Get("text").String())
	if len(runes) == 0 {
		return b
	}

	// starts[i] is the UTF-16 offset of runes[i].
	starts := make([]int, len(runes))
	units := 0
	for i, r := range runes {
		starts[i] = units
		units += utf16Len(r)
	}
	span := func(r gjson.Result) (int, int) {
		off := int(r.Get("offset").Int())
		n := int(r.Get("length").Int())
		if n <= 0 {
			return 0, 0
		}
		return sort.SearchInts(starts, off), sort.SearchInts(starts, off+n)
	}

	metas := make([]charMeta, len(runes))
	v.Get("inlineStyleRanges").ForEach(func(_, r gjson.Result) bool {
		style := r.Get("style").String()
		if style == "" {
			return true
		}
		lo, hi := span(r)
		for i := lo; i < hi; i++ {
			metas[i].styles = append(metas[i].styles, style)
		}
		return true
	})
	v.Get("entityRanges").ForEach(func(_, r gjson.Result) bool {
		key := r.Get("key")
		if !key.Exists() || key.Type == gjson.Null {
			return true
		}
		lo, hi := span(r)
		for i := lo; i < hi; i++ {
			metas[i].entity = key.String()
		}
		return true
	})

	var sb strings.Builder
	cur := metas[0]
	for i, r := range runes {
		if i > 0 && !sameCharMeta(cur, metas[i]) {
			b.Ranges = append(b.Ranges, Range{Text: sb.String(), Styles: cur.styles, EntityKey: cur.entity})
			sb.Reset()
			cur = metas[i]
		}
		sb.WriteRune(r)
	}
	b.Ranges = append(b.Ranges, Range{Text: sb.String(), Styles: cur.styles, EntityKey: cur.entity})
	b.Ranges = NormalizeRanges(b.Ranges)
	return b
}

func sameCharMeta(a, b charMeta) bool {
	return sameMeta(
		Range{Styles: normalizeStyles(a.styles), EntityKey: a.entity},
		Range{Styles: normalizeStyles(b.styles), EntityKey: b.entity},
	)
}

func utf16Len(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Len(r)
	}
	return n
}

type rawStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

type rawEntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

type rawBlock struct {
	Key               string           `json:"key"`
	Text              string           `json:"text"`
	Type              string           `json:"type"`
	Depth             int              `json:"depth"`
	InlineStyleRanges []rawStyleRange  `json:"inlineStyleRanges"`
	EntityRanges      []rawEntityRange `json:"entityRanges"`
	Data              map[string]any   `json:"data"`
}

type rawEntity struct {
	Type       string         `json:"type"`
	Mutability Mutability     `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// ToRaw encodes doc as Draft.js raw content.
//
// Entity keys are renumbered 0..n-1 in order of first use. Entities that no
// range references are omitted, as are references to missing entities.
func ToRaw(doc Document) ([]byte, error) {
	out := []byte(`{"blocks":[],"entityMap":{}}`)
	entityMap := map[string]rawEntity{}
	renumbered := map[string]int{}

	var err error
	for _, b := range doc.Blocks {
		rb := rawBlock{
			Key:               b.Key,
			Text:              b.Text(),
			Type:              b.Type,
			Depth:             b.Depth,
			InlineStyleRanges: []rawStyleRange{},
			EntityRanges:      []rawEntityRange{},
			Data:              b.Data,
		}
		if rb.Data == nil {
			rb.Data = map[string]any{}
		}

		lastStyle := map[string]int{}
		offset := 0
		for _, r := range b.Ranges {
			n := UTF16Len(r.Text)
			for _, s := range r.Styles {
				if i, ok := lastStyle[s]; ok && rb.InlineStyleRanges[i].Offset+rb.InlineStyleRanges[i].Length == offset {
					rb.InlineStyleRanges[i].Length += n
					continue
				}
				lastStyle[s] = len(rb.InlineStyleRanges)
				rb.InlineStyleRanges = append(rb.InlineStyleRanges, rawStyleRange{Offset: offset, Length: n, Style: s})
			}
			if e, ok := doc.Entity(r.EntityKey); ok {
				key, seen := renumbered[r.EntityKey]
				if !seen {
					key = len(renumbered)
					renumbered[r.EntityKey] = key
					data := e.Data
					if data == nil {
						data = map[string]any{}
					}
					entityMap[strconv.Itoa(key)] = rawEntity{Type: e.Type, Mutability: e.Mutability, Data: data}
				}
				last := len(rb.EntityRanges) - 1
				if last >= 0 && rb.EntityRanges[last].Key == key && rb.EntityRanges[last].Offset+rb.EntityRanges[last].Length == offset {
					rb.EntityRanges[last].Length += n
				} else {
					rb.EntityRanges = append(rb.EntityRanges, rawEntityRange{Offset: offset, Length: n, Key: key})
				}
			}
			offset += n
		}

		out, err = sjson.SetBytes(out, "blocks.-1", rb)
		if err != nil {
			return nil, err
		}
	}

	if len(entityMap) > 0 {
		out, err = sjson.SetBytes(out, "entityMap", entityMap)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
