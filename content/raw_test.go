package content

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

const sampleRaw = `{
  "blocks": [
    {
      "key": "a1",
      "text": "😀 bold link",
      "type": "header-two",
      "depth": 0,
      "inlineStyleRanges": [{"offset": 3, "length": 4, "style": "BOLD"}, {"offset": 5, "length": 2, "style": "ITALIC"}],
      "entityRanges": [{"offset": 8, "length": 4, "key": 0}],
      "data": {}
    },
    {"key": "a2", "text": "item", "type": "unordered-list-item", "depth": 2}
  ],
  "entityMap": {
    "0": {"type": "LINK", "mutability": "mutable", "data": {"url": "https://example.com"}}
  }
}`

func TestFromRaw_DecodesUTF16Offsets(t *testing.T) {
	doc, err := FromRaw([]byte(sampleRaw))
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks: got %d, want 2", len(doc.Blocks))
	}

	// The emoji takes two UTF-16 units, so offset 3 is the 'b' of "bold".
	want := []Range{
		{Text: "😀 "},
		{Text: "bo", Styles: []string{"BOLD"}},
		{Text: "ld", Styles: []string{"BOLD", "ITALIC"}},
		{Text: " "},
		{Text: "link", EntityKey: "0"},
	}
	if got := doc.Blocks[0].Ranges; !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges:\n got %#v\nwant %#v", got, want)
	}
	if doc.Blocks[1].Depth != 2 || doc.Blocks[1].Type != "unordered-list-item" {
		t.Fatalf("second block: %#v", doc.Blocks[1])
	}
	e, ok := doc.Entity("0")
	if !ok || e.Type != "LINK" || e.Mutability != Mutable || e.Data["url"] != "https://example.com" {
		t.Fatalf("entity: %#v ok=%v", e, ok)
	}
}

func TestFromRaw_Lenient(t *testing.T) {
	raw := `{"blocks": [
	  {"text": "abc", "inlineStyleRanges": [{"offset": -5, "length": 7, "style": "BOLD"}, {"offset": 1, "length": 99, "style": ""}, "junk"], "entityRanges": [{"offset": 0, "length": 1}]},
	  42,
	  {"key": "k", "type": "", "text": ""}
	], "entityMap": []}`

	doc, err := FromRaw([]byte(raw))
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks: got %d, want 2", len(doc.Blocks))
	}
	want := []Range{{Text: "ab", Styles: []string{"BOLD"}}, {Text: "c"}}
	if got := doc.Blocks[0].Ranges; !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges: got %#v, want %#v", got, want)
	}
	if doc.Blocks[1].Type != TypeUnstyled {
		t.Fatalf("missing type should default to unstyled, got %q", doc.Blocks[1].Type)
	}
}

func TestFromRaw_RejectsNonJSON(t *testing.T) {
	if _, err := FromRaw([]byte("<p>hello</p>")); !errors.Is(err, ErrInvalidRaw) {
		t.Fatalf("expected ErrInvalidRaw, got %v", err)
	}
}

func TestToRaw_RoundTrip(t *testing.T) {
	doc, err := FromRaw([]byte(sampleRaw))
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	out, err := ToRaw(doc)
	if err != nil {
		t.Fatalf("ToRaw: %v", err)
	}

	res := gjson.ParseBytes(out)
	if got := res.Get("blocks.0.inlineStyleRanges.#(style==\"BOLD\").length").Int(); got != 4 {
		t.Fatalf("bold length: got %d, want 4", got)
	}
	if got := res.Get("blocks.0.entityRanges.0.offset").Int(); got != 8 {
		t.Fatalf("entity offset: got %d, want 8", got)
	}
	if got := res.Get("entityMap.0.data.url").String(); got != "https://example.com" {
		t.Fatalf("entity url: got %q", got)
	}

	back, err := FromRaw(out)
	if err != nil {
		t.Fatalf("FromRaw(ToRaw): %v", err)
	}
	if !Equal(doc, back) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", back, doc)
	}
}

func TestToRaw_RenumbersEntitiesAndSkipsDangling(t *testing.T) {
	doc := Document{
		Blocks: []Block{{Key: "a", Type: TypeUnstyled, Ranges: []Range{
			{Text: "x", EntityKey: "zz"},
			{Text: "y", EntityKey: "missing"},
			{Text: "z", EntityKey: "aa"},
		}}},
		Entities: map[string]Entity{
			"aa":     {Type: "LINK", Mutability: Mutable},
			"zz":     {Type: "DOCUMENT", Mutability: Mutable},
			"unused": {Type: "LINK"},
		},
	}
	out, err := ToRaw(doc)
	if err != nil {
		t.Fatalf("ToRaw: %v", err)
	}
	res := gjson.ParseBytes(out)
	if got := res.Get("entityMap.0.type").String(); got != "DOCUMENT" {
		t.Fatalf("entity 0: got %q, want DOCUMENT", got)
	}
	if got := res.Get("entityMap.1.type").String(); got != "LINK" {
		t.Fatalf("entity 1: got %q, want LINK", got)
	}
	if got := len(res.Get("entityMap").Map()); got != 2 {
		t.Fatalf("entity count: got %d, want 2", got)
	}
	if got := res.Get("blocks.0.entityRanges.#").Int(); got != 2 {
		t.Fatalf("entity ranges: got %d, want 2", got)
	}
}
