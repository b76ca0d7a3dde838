package fluentrx

import (
	"strings"

	"github.com/coregx/fluentrx/literal"
)

// NewlineWithOptionalCarriageReturn matches a line break written as
// either \n or \r\n. Emits \r?\n.
func (b *Builder) NewlineWithOptionalCarriageReturn() *Quantifiers {
	return b.appendAtom(`\r?\n`)
}

// LetterCaseInsensitive matches an ASCII letter of either case.
// Emits [a-zA-Z].
func (b *Builder) LetterCaseInsensitive() *Quantifiers {
	return b.appendAtom("[a-zA-Z]")
}

// LetterUpperCase matches an uppercase ASCII letter. Emits [A-Z].
func (b *Builder) LetterUpperCase() *Quantifiers {
	return b.appendAtom("[A-Z]")
}

// LetterLowerCase matches a lowercase ASCII letter. Emits [a-z].
func (b *Builder) LetterLowerCase() *Quantifiers {
	return b.appendAtom("[a-z]")
}

// Keywords matches any one of words literally. Emits (?:w1|w2|...) with
// every word escaped.
//
// Empty words are dropped and duplicates keep their first position. If a
// word would be shadowed by an earlier word that is its strict prefix, the
// words are reordered longest first so each of them can still match.
//
// Example:
//
//	fluentrx.New().Keywords("cat", "category") // (?:category|cat)
//	fluentrx.New().Keywords("a.b", "c")        // (?:a\.b|c)
func (b *Builder) Keywords(words ...string) *Quantifiers {
	set := literal.NewSet(words...)
	set.Order()

	var sb strings.Builder
	sb.WriteString("(?:")
	for i := 0; i < set.Len(); i++ {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(QuoteMeta(set.Get(i)))
	}
	sb.WriteByte(')')
	return b.appendAtom(sb.String())
}
