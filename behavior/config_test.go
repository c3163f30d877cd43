package behavior

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/draftail/content"
)

func TestNewTypeSet(t *testing.T) {
	set := NewTypeSet([]TypeDescriptor{
		{Type: StyleBold, Label: "first"},
		{Type: ""},
		{Type: StyleBold, Label: "second"},
		{Type: StyleItalic},
	})
	if len(set) != 2 {
		t.Fatalf("len: got %d, want 2", len(set))
	}
	if got := set[StyleBold].Label; got != "first" {
		t.Fatalf("duplicate type: got label %q, want %q", got, "first")
	}
	if set.Has("") || !set.Has(StyleItalic) {
		t.Fatalf("membership: %v", set)
	}
}

func TestConfig_MaxDepth(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "negative", in: -3, want: 0},
		{name: "zero", in: 0, want: 0},
		{name: "within", in: 4, want: 4},
		{name: "ceiling", in: MaxSupportedListNesting, want: MaxSupportedListNesting},
		{name: "above", in: 50, want: MaxSupportedListNesting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Config{MaxListNesting: tt.in}).MaxDepth(); got != tt.want {
				t.Fatalf("MaxDepth(%d): got %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_VocabularyHorizontalRule(t *testing.T) {
	off := Config{EntityTypes: descs(EntityLink)}.Vocabulary()
	if off.Filterable.Has(EntityHorizontalRule) {
		t.Fatalf("rule filterable without EnableHorizontalRule")
	}
	if !off.Filterable.Has(EntityLink) {
		t.Fatalf("configured entity missing from filterable set")
	}

	on := Config{EntityTypes: descs(EntityLink), EnableHorizontalRule: true}.Vocabulary()
	if !on.Filterable.Has(EntityHorizontalRule) {
		t.Fatalf("rule not filterable with EnableHorizontalRule")
	}
	if on.Entities.Has(EntityHorizontalRule) {
		t.Fatalf("rule leaked into configured entities")
	}
}

func TestConfig_VocabularyWhitespaced(t *testing.T) {
	tests := []struct {
		name      string
		lineBreak bool
		want      []string
	}{
		{name: "line breaks disabled", want: []string{"\t", ImagePlaceholder, "\n"}},
		{name: "line breaks enabled", lineBreak: true, want: []string{"\t", ImagePlaceholder}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Config{EnableLineBreak: tt.lineBreak}.Vocabulary()
			if got := v.WhitespacedCharacters(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVocabulary_WhitespacedFollowsExportedFields(t *testing.T) {
	if got := (Vocabulary{}).WhitespacedCharacters(); !reflect.DeepEqual(got, []string{"\t", ImagePlaceholder, "\n"}) {
		t.Fatalf("zero vocabulary: got %q", got)
	}

	v := Config{}.Vocabulary()
	v.EnableLineBreak = true
	if got := v.WhitespacedCharacters(); !reflect.DeepEqual(got, []string{"\t", ImagePlaceholder}) {
		t.Fatalf("line breaks enabled after derivation: got %q", got)
	}
	doc := content.Document{Blocks: []content.Block{{Key: "a", Type: BlockUnstyled, Ranges: []content.Range{{Text: "a\nb"}}}}}
	if text := Filter(v, doc).Blocks[0].Text(); text != "a\nb" {
		t.Fatalf("line break replaced: got %q", text)
	}
	if text := Filter(Vocabulary{}, doc).Blocks[0].Text(); text != "a b" {
		t.Fatalf("zero vocabulary kept line break: got %q", text)
	}
}

func TestConfig_VocabularyInvalidAllowlistRejects(t *testing.T) {
	v := Config{EntityTypes: []TypeDescriptor{{Type: EntityLink, Allowlist: map[string]string{"url": "("}}}}.Vocabulary()
	re, ok := v.allowlists[EntityLink]["url"]
	if !ok || re != nil {
		t.Fatalf("invalid pattern should compile to a rejecting nil entry, got %v (present=%v)", re, ok)
	}
}
