package behavior

import (
	"strconv"
	"strings"
)

const listNestingTemplate = `
.Draftail-depth{{depth}}.public-DraftStyleDefault-listLTR {
    margin-left: {{margin}}em;
}

.Draftail-depth{{depth}}.public-DraftStyleDefault-listRTL {
    margin-right: {{margin}}em;
}

.Draftail-depth{{depth}}.public-DraftStyleDefault-orderedListItem::before {
    content: counter(ol{{depth}}) '. ';
    counter-increment: ol{{depth}};
}

.Draftail-depth{{depth}}.public-DraftStyleDefault-reset {
    counter-reset: ol{{depth}};
}
`

// ListNestingStyles returns the stylesheet for list depths the renderer does
// not style natively: DraftMaxDepth+1 up to min(maxListNesting,
// MaxSupportedListNesting). All whitespace is stripped.
//
// It returns false when no extra depth is needed.
func ListNestingStyles(maxListNesting int) (string, bool) {
	maxDepth := maxListNesting
	if maxDepth > MaxSupportedListNesting {
		maxDepth = MaxSupportedListNesting
	}

	var sb strings.Builder
	for depth := DraftMaxDepth + 1; depth <= maxDepth; depth++ {
		margin := 1.5 * float64(depth+1)
		r := strings.NewReplacer(
			"{{depth}}", strconv.Itoa(depth),
			"{{margin}}", strconv.FormatFloat(margin, 'f', -1, 64),
		)
		sb.WriteString(stripWhitespace(r.Replace(listNestingTemplate)))
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return -1
		}
		return r
	}, s)
}
