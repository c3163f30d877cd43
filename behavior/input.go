package behavior

import "github.com/iw2rmb/draftail/content"

// BlockConversion returns the block type mark converts the current block to,
// or false when the mark is unknown or its type is disabled.
func (v Vocabulary) BlockConversion(mark string) (string, bool) {
	t, ok := InputBlockMap[mark]
	if !ok || !v.Blocks.Has(t) {
		return "", false
	}
	return t, true
}

// HorizontalRuleInput reports whether mark inserts a horizontal rule in
// block. Code blocks never do.
func HorizontalRuleInput(mark string, block content.Block) bool {
	return mark == InputEntityMap[EntityHorizontalRule] && block.Type != BlockCode
}

// InputActionKind identifies what a host should do with typed input.
type InputActionKind uint8

const (
	// InputNone leaves the input to the host.
	InputNone InputActionKind = iota
	// InputConvertBlock converts the block to InputAction.BlockType and
	// drops the typed mark.
	InputConvertBlock
	// InputHorizontalRule inserts a horizontal rule in place of the mark.
	InputHorizontalRule
)

// InputAction is the autocomplete decision for one input.
type InputAction struct {
	Kind      InputActionKind
	BlockType string
}

// HandleBeforeInput decides how the mark just typed at the start of block
// changes the document. The horizontal rule only triggers when it is enabled.
func (v Vocabulary) HandleBeforeInput(mark string, block content.Block) InputAction {
	if t, ok := v.BlockConversion(mark); ok && block.Type != t {
		return InputAction{Kind: InputConvertBlock, BlockType: t}
	}
	if v.EnableHorizontalRule && HorizontalRuleInput(mark, block) {
		return InputAction{Kind: InputHorizontalRule}
	}
	return InputAction{}
}
