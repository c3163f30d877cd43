package behavior

import (
	"strconv"
	"strings"

	"github.com/iw2rmb/draftail/content"
)

// Wrapper is the container element grouping consecutive blocks of a type.
type Wrapper struct {
	Element   string
	ClassName string
}

// RenderSpec tells the renderer how to render a block type.
type RenderSpec struct {
	Element         string
	Wrapper         *Wrapper
	AliasedElements []string
}

// RenderMap maps block types to their rendering.
type RenderMap map[string]RenderSpec

var (
	ulWrapper   = &Wrapper{Element: "ul", ClassName: "public-DraftStyleDefault-ul"}
	olWrapper   = &Wrapper{Element: "ol", ClassName: "public-DraftStyleDefault-ol"}
	preWrapper  = &Wrapper{Element: "pre", ClassName: "public-DraftStyleDefault-pre"}
	unstyledAka = []string{"p"}
)

// DefaultBlockRenderMap returns the editor framework's default rendering.
func DefaultBlockRenderMap() RenderMap {
	return RenderMap{
		BlockHeaderOne:         {Element: "h1"},
		BlockHeaderTwo:         {Element: "h2"},
		BlockHeaderThree:       {Element: "h3"},
		BlockHeaderFour:        {Element: "h4"},
		BlockHeaderFive:        {Element: "h5"},
		BlockHeaderSix:         {Element: "h6"},
		"section":              {Element: "section"},
		"article":              {Element: "article"},
		BlockUnorderedListItem: {Element: "li", Wrapper: ulWrapper},
		BlockOrderedListItem:   {Element: "li", Wrapper: olWrapper},
		BlockBlockquote:        {Element: "blockquote"},
		BlockAtomic:            {Element: "figure"},
		BlockCode:              {Element: "pre", Wrapper: preWrapper},
		BlockUnstyled:          {Element: "div", AliasedElements: unstyledAka},
	}
}

// BlockRenderMap derives the render map from the enabled block types.
//
// Code blocks render as <code> inside the default <pre> wrapper. A block type
// with an explicit Element replaces its entry with that element alone.
func BlockRenderMap(blockTypes []TypeDescriptor) RenderMap {
	rm := DefaultBlockRenderMap()
	enabled := NewTypeSet(blockTypes)

	if enabled.Has(BlockCode) {
		rm[BlockCode] = RenderSpec{Element: "code", Wrapper: rm[BlockCode].Wrapper}
	}
	for _, d := range blockTypes {
		if d.Type == "" || d.Element == "" {
			continue
		}
		rm[d.Type] = RenderSpec{Element: d.Element}
	}
	return rm
}

// UnstyledClassName is the base class of unstyled blocks.
const UnstyledClassName = "Draftail-unstyled"

// BlockClassFunc computes the CSS class of a block.
type BlockClassFunc func(block content.Block) string

// NewBlockClassFunc derives the block class function from the enabled block
// types. Blocks deeper than DraftMaxDepth get depth classes the renderer does
// not provide.
func NewBlockClassFunc(blockTypes []TypeDescriptor) BlockClassFunc {
	classNames := map[string]string{BlockUnstyled: UnstyledClassName}
	for _, d := range blockTypes {
		if d.Type != "" && d.ClassName != "" {
			classNames[d.Type] = d.ClassName
		}
	}

	return func(block content.Block) string {
		className := classNames[block.Type]
		if block.Depth <= DraftMaxDepth {
			return className
		}
		depth := strconv.Itoa(block.Depth)
		depthClass := "Draftail-depth" + depth + " public-DraftStyleDefault-depth" + depth
		return strings.TrimSpace(className + " " + depthClass)
	}
}

// CustomStyleMap derives the CSS of each enabled inline style: the
// descriptor's Style, else the built-in default, else no declarations.
func CustomStyleMap(inlineStyles []TypeDescriptor) map[string]CSSProps {
	out := make(map[string]CSSProps, len(inlineStyles))
	for _, d := range inlineStyles {
		if d.Type == "" {
			continue
		}
		switch {
		case len(d.Style) > 0:
			out[d.Type] = cloneProps(d.Style)
		case DefaultCustomStyleMap[d.Type] != nil:
			out[d.Type] = cloneProps(DefaultCustomStyleMap[d.Type])
		default:
			out[d.Type] = CSSProps{}
		}
	}
	return out
}

func cloneProps(in CSSProps) CSSProps {
	out := make(CSSProps, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
