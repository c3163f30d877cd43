package content

import (
	"strconv"
	"strings"
)

// Block types owned by the document model itself. The full registry lives in
// the behavior package.
const (
	TypeUnstyled = "unstyled"
	TypeAtomic   = "atomic"
)

// FromText builds a plain document with one unstyled block per line.
//
// "\r\n" and lone "\r" are treated as line breaks. Empty input yields one
// empty block.
func FromText(text string) Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	doc := Document{Blocks: make([]Block, 0, len(lines))}
	for i, line := range lines {
		b := Block{Key: BlockKey(i), Type: TypeUnstyled}
		if line != "" {
			b.Ranges = []Range{{Text: line}}
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}

// BlockKey returns the deterministic key for the n-th generated block.
func BlockKey(n int) string {
	if n < 0 {
		n = 0
	}
	return "b" + strconv.FormatInt(int64(n), 36)
}
