package behavior

import "regexp"

// TypeDescriptor describes one enabled block type, inline style or entity
// type. Type is the identity and is unique within its category.
type TypeDescriptor struct {
	Type        string   `yaml:"type"`
	Label       string   `yaml:"label,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Icon        string   `yaml:"icon,omitempty"`
	Element     string   `yaml:"element,omitempty"`
	ClassName   string   `yaml:"className,omitempty"`
	Style       CSSProps `yaml:"style,omitempty"`

	// Attributes lists the entity data keys to keep. Empty keeps all keys.
	Attributes []string `yaml:"attributes,omitempty"`
	// Allowlist maps entity data keys to patterns their value must match for
	// the entity to be kept.
	Allowlist map[string]string `yaml:"allowlist,omitempty"`
}

// Config is the editor configuration supplied by the host.
type Config struct {
	BlockTypes   []TypeDescriptor `yaml:"blockTypes"`
	InlineStyles []TypeDescriptor `yaml:"inlineStyles"`
	EntityTypes  []TypeDescriptor `yaml:"entityTypes"`

	MaxListNesting       int  `yaml:"maxListNesting"`
	EnableLineBreak      bool `yaml:"enableLineBreak"`
	EnableHorizontalRule bool `yaml:"enableHorizontalRule"`
}

// MaxDepth returns the effective nesting ceiling: the configured value clamped
// to [0, MaxSupportedListNesting].
func (c Config) MaxDepth() int {
	return clampInt(c.MaxListNesting, 0, MaxSupportedListNesting)
}

// TypeSet maps a type to its descriptor.
type TypeSet map[string]TypeDescriptor

// NewTypeSet indexes descriptors by type. Descriptors with an empty type are
// ignored; the first descriptor of a type wins.
func NewTypeSet(descs []TypeDescriptor) TypeSet {
	set := make(TypeSet, len(descs))
	for _, d := range descs {
		if d.Type == "" {
			continue
		}
		if _, ok := set[d.Type]; ok {
			continue
		}
		set[d.Type] = d
	}
	return set
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t string) bool {
	_, ok := s[t]
	return ok
}

// Vocabulary is the lookup form of a Config, built once per configuration
// change.
type Vocabulary struct {
	Blocks   TypeSet
	Styles   TypeSet
	Entities TypeSet

	// Allowed entity types for content filtering. Entities does not include
	// the horizontal rule unless it is configured explicitly; Filterable does
	// when EnableHorizontalRule is set.
	Filterable TypeSet

	MaxDepth             int
	EnableLineBreak      bool
	EnableHorizontalRule bool

	allowlists  map[string]map[string]*regexp.Regexp
}

// Vocabulary derives the lookup form of c.
//
// Allowlist patterns that do not compile reject every value of that key.
func (c Config) Vocabulary() Vocabulary {
	v := Vocabulary{
		Blocks:               NewTypeSet(c.BlockTypes),
		Styles:               NewTypeSet(c.InlineStyles),
		Entities:             NewTypeSet(c.EntityTypes),
		MaxDepth:             c.MaxDepth(),
		EnableLineBreak:      c.EnableLineBreak,
		EnableHorizontalRule: c.EnableHorizontalRule,
	}

	v.Filterable = make(TypeSet, len(v.Entities)+1)
	for t, d := range v.Entities {
		v.Filterable[t] = d
	}
	if c.EnableHorizontalRule && !v.Filterable.Has(EntityHorizontalRule) {
		v.Filterable[EntityHorizontalRule] = TypeDescriptor{Type: EntityHorizontalRule}
	}

	v.allowlists = map[string]map[string]*regexp.Regexp{}
	for t, d := range v.Filterable {
		if len(d.Allowlist) == 0 {
			continue
		}
		patterns := make(map[string]*regexp.Regexp, len(d.Allowlist))
		for attr, pattern := range d.Allowlist {
			// A nil pattern never matches.
			re, err := regexp.Compile(pattern)
			if err != nil {
				re = nil
			}
			patterns[attr] = re
		}
		v.allowlists[t] = patterns
	}
	return v
}

// WhitespacedCharacters returns the characters the filter replaces with a
// space, in a stable order.
func (v Vocabulary) WhitespacedCharacters() []string {
	out := []string{"\t", ImagePlaceholder}
	if !v.EnableLineBreak {
		out = append(out, "\n")
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
