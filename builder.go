// Package fluentrx builds regular-expression pattern text through a fluent,
// chainable API instead of hand-written regex syntax.
//
// A Builder owns a single append-only stream. Every operation appends a
// fragment of notation to that stream, and Build returns the accumulated
// text. The notation follows the .NET / Perl dialect: named groups,
// balancing groups, atomic groups, lookaround and inline options.
//
// Operations are partitioned into views that describe what may follow the
// last appended construct:
//   - atoms (Text, Digit, Word, ...) return *Quantifiers
//   - Quantifiers add repetition to the preceding atom and return *Builder
//   - Classes, Anchors and BackReferences append atoms
//   - Groups wrap already-built sub-expressions and return *Builder
//   - Options accumulates inline flags and emits a modifier group
//
// Every view embeds the root *Builder, so the whole root API stays
// reachable from any view. The views do not enforce grammar; the emitted
// text is validated later by whichever regex engine consumes it.
//
// Basic usage:
//
//	b := fluentrx.New()
//	b.Anchors().LineBegin()
//	b.Digit().Times(3).Text("-").Digit().Times(4)
//	b.Anchors().LineEnd()
//	fmt.Println(b) // ^\d{3}-\d{4}$
//
// Sub-expressions:
//
//	word := fluentrx.New().Word().OneOrMore()
//	b := fluentrx.New()
//	b.Groups().NamedGroup("w", fluentrx.Brackets, word)
//	b.BackReferences().RefersToNamedGroup("w")
//	fmt.Println(b) // (?<w>\w+)\k<w>
//
// A sub-expression is built at the moment it is embedded: later changes to
// it do not reach the parent.
//
// A Builder is not safe for concurrent use. Use one Builder per goroutine
// or serialize access externally.
package fluentrx

import (
	"strings"
)

// Expression is anything that can produce pattern text.
//
// *Builder and every view satisfy it, which lets an atom chain such as
// New().Word() be passed directly where a sub-expression is expected.
type Expression interface {
	Build() string
}

// Pattern is a fixed piece of pattern text used as an Expression.
type Pattern string

// Build returns the pattern text.
func (p Pattern) Build() string {
	return string(p)
}

// Concat builds every expression in order and returns the joined text as
// a single snapshot.
//
// Example:
//
//	inner := fluentrx.Concat(fluentrx.New().Digit(), fluentrx.New().Text("."))
//	fluentrx.New().Groups().Capture(inner) // (\d\.)
func Concat(exprs ...Expression) Pattern {
	var sb strings.Builder
	for _, e := range exprs {
		sb.WriteString(e.Build())
	}
	return Pattern(sb.String())
}

// Builder accumulates pattern text.
//
// The zero value is not usable; create builders with New.
type Builder struct {
	stream *strings.Builder

	quantifiers *Quantifiers
	classes     *Classes
	anchors     *Anchors
	groups      *Groups
	backrefs    *BackReferences
	options     *Options
}

// New returns a Builder with an empty stream.
//
// Example:
//
//	b := fluentrx.New()
//	b.Text("a.b")
//	fmt.Println(b.Build()) // a\.b
func New() *Builder {
	b := &Builder{stream: &strings.Builder{}}
	b.quantifiers = &Quantifiers{b}
	b.classes = &Classes{b}
	b.anchors = &Anchors{b}
	b.groups = &Groups{b}
	b.backrefs = &BackReferences{b}
	b.options = &Options{Builder: b}
	return b
}

// Quantifiers returns the quantifier view.
//
// Quantifiers apply to whatever was appended last. Atom operations already
// return this view; call Quantifiers explicitly to repeat a group, since
// group operations return the root builder:
//
//	b := fluentrx.New()
//	b.Groups().NonCapture(fluentrx.New().Text("ab"))
//	b.Quantifiers().OneOrMore() // (?:ab)+
func (b *Builder) Quantifiers() *Quantifiers {
	return b.quantifiers
}

// Classes returns the character class view.
func (b *Builder) Classes() *Classes {
	return b.classes
}

// Anchors returns the zero-width assertion view.
func (b *Builder) Anchors() *Anchors {
	return b.anchors
}

// Groups returns the grouping construct view.
func (b *Builder) Groups() *Groups {
	return b.groups
}

// BackReferences returns the backreference view.
func (b *Builder) BackReferences() *BackReferences {
	return b.backrefs
}

// Options returns the inline option assembler. The assembler keeps its
// accumulated flags between Finish calls.
func (b *Builder) Options() *Options {
	return b.options
}

// Raw appends data to the stream without escaping. Use it for notation
// the builder has no operation for.
func (b *Builder) Raw(data string) *Quantifiers {
	return b.appendAtom(data)
}

// Build returns the pattern text accumulated so far.
//
// Build does not consume the stream: calling it repeatedly returns the
// same text, and more operations may follow.
func (b *Builder) Build() string {
	return b.stream.String()
}

// String implements fmt.Stringer. It is the same as Build.
func (b *Builder) String() string {
	return b.Build()
}

// Len returns the length in bytes of the text accumulated so far.
func (b *Builder) Len() int {
	return b.stream.Len()
}

// appendAtom writes s and hands back the quantifier view.
func (b *Builder) appendAtom(s string) *Quantifiers {
	b.stream.WriteString(s)
	return b.quantifiers
}

// append writes s and hands back the root builder.
func (b *Builder) append(s string) *Builder {
	b.stream.WriteString(s)
	return b
}

// wrap writes open, the built text of subs and closeTok. The subs are
// built before anything is written, so a builder may embed its own
// current text.
func (b *Builder) wrap(open string, subs []Expression, closeTok string) *Builder {
	inner := Concat(subs...)
	b.stream.WriteString(open)
	b.stream.WriteString(string(inner))
	b.stream.WriteString(closeTok)
	return b
}
