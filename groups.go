package fluentrx

// Delimiter selects how a group name is written.
type Delimiter uint8

const (
	// Quotes writes the name between single quotes: (?'name'...).
	Quotes Delimiter = iota

	// Brackets writes the name between angle brackets: (?<name>...).
	Brackets
)

// String returns a human-readable delimiter name
func (d Delimiter) String() string {
	if d == Brackets {
		return "Brackets"
	}
	return "Quotes"
}

func (d Delimiter) enclose(name string) string {
	if d == Brackets {
		return "<" + name + ">"
	}
	return "'" + name + "'"
}

// Groups composes grouping constructs around sub-expressions.
//
// Every operation builds its sub-expressions on the spot and embeds the
// resulting text; the sub-builders stay independent of the parent.
// Operations return the root builder rather than the quantifier view, so
// repeating a group takes an explicit Quantifiers call.
type Groups struct {
	*Builder
}

// Capture captures the concatenation of the sub-expressions into the next
// numbered group. Emits (inner).
//
// Example:
//
//	b := fluentrx.New()
//	b.Groups().Capture(fluentrx.New().Word())
//	b.BackReferences().RefersToUnnamedGroup(1) // (\w)\1 matches "ee" in "deep"
func (g *Groups) Capture(sub Expression, more ...Expression) *Builder {
	return g.wrap("(", prepend(sub, more), ")")
}

// NamedGroup captures the concatenation of the sub-expressions into a
// group called name. Emits (?'name'inner) or, with Brackets,
// (?<name>inner).
func (g *Groups) NamedGroup(name string, d Delimiter, sub Expression, more ...Expression) *Builder {
	return g.wrap("(?"+d.enclose(name), prepend(sub, more), ")")
}

// BalancingGroup deletes the most recent capture of name2 and stores the
// text between that capture and the current position in name1. If name2
// has no capture the match backtracks, which makes name2 a stack for
// matching nested pairs such as parentheses.
// Emits (?'name1-name2'inner) or, with Brackets, (?<name1-name2>inner).
//
// Example (balanced parentheses):
//
//	open := fluentrx.New()
//	open.Groups().NamedGroup("Open", fluentrx.Quotes, fluentrx.New().Text("("))
//	closing := fluentrx.New()
//	closing.Groups().BalancingGroup("Close", "Open", fluentrx.Quotes, fluentrx.New().Text(")"))
//	// (?'Open'\() ... (?'Close-Open'\))
func (g *Groups) BalancingGroup(name1, name2 string, d Delimiter, sub Expression, more ...Expression) *Builder {
	return g.wrap("(?"+d.enclose(name1+"-"+name2), prepend(sub, more), ")")
}

// NonCapture groups the sub-expressions without capturing. Emits (?:inner).
//
// Example:
//
//	b := fluentrx.New().Text("Write")
//	b.Groups().NonCapture(fluentrx.New().Text("Line"))
//	b.Quantifiers().Optional() // Write(?:Line)?
func (g *Groups) NonCapture(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?:", prepend(sub, more), ")")
}

// PositiveLookAhead asserts that inner matches next. Emits (?=inner).
func (g *Groups) PositiveLookAhead(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?=", prepend(sub, more), ")")
}

// NegativeLookAhead asserts that inner does not match next. Emits (?!inner).
func (g *Groups) NegativeLookAhead(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?!", prepend(sub, more), ")")
}

// PositiveLookBehind asserts that inner matches just before the current
// position. Emits (?<=inner).
func (g *Groups) PositiveLookBehind(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?<=", prepend(sub, more), ")")
}

// NegativeLookBehind asserts that inner does not match just before the
// current position. Emits (?<!inner).
func (g *Groups) NegativeLookBehind(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?<!", prepend(sub, more), ")")
}

// Atomic matches inner and never backtracks into it. Emits (?>inner).
// For instance (?>a|ab)c matches "ac" but nothing in "abc".
func (g *Groups) Atomic(sub Expression, more ...Expression) *Builder {
	return g.wrap("(?>", prepend(sub, more), ")")
}

func prepend(first Expression, rest []Expression) []Expression {
	out := make([]Expression, 0, 1+len(rest))
	out = append(out, first)
	return append(out, rest...)
}
