package fluentrx

// Anchors appends zero-width assertions. They make a match succeed or
// fail depending on the current position without consuming characters.
type Anchors struct {
	*Builder
}

// LineBegin asserts the start of the input, or of a line in multiline
// mode. Emits ^.
//
// Example:
//
//	b := fluentrx.New()
//	b.Anchors().LineBegin().Digit().Times(3) // ^\d{3}
func (a *Anchors) LineBegin() *Quantifiers { return a.appendAtom("^") }

// LineEnd asserts the end of the input (or before a final \n), or the end
// of a line in multiline mode. Emits $.
func (a *Anchors) LineEnd() *Quantifiers { return a.appendAtom("$") }

// TextBegin asserts the start of the input regardless of mode. Emits \A.
func (a *Anchors) TextBegin() *Quantifiers { return a.appendAtom(`\A`) }

// TextEndOrLineBreakAtEnd asserts the end of the input or a position
// before a final \n. Emits \Z.
func (a *Anchors) TextEndOrLineBreakAtEnd() *Quantifiers { return a.appendAtom(`\Z`) }

// TextEnd asserts the very end of the input. Emits \z.
func (a *Anchors) TextEnd() *Quantifiers { return a.appendAtom(`\z`) }

// BeginOnPreviousMatch asserts the position where the previous match
// ended. Emits \G.
func (a *Anchors) BeginOnPreviousMatch() *Quantifiers { return a.appendAtom(`\G`) }

// Boundary wraps sub between two word boundaries. Emits \bsub\b.
//
// Example:
//
//	words := fluentrx.New().Word().OneOrMore().Whitespace().Word().OneOrMore()
//	fluentrx.New().Anchors().Boundary(words) // \b\w+\s\w+\b
func (a *Anchors) Boundary(sub Expression) *Quantifiers {
	return a.appendAtom(`\b` + sub.Build() + `\b`)
}

// BoundaryExcludeStartAndEndCharacters wraps sub between two non-boundary
// assertions. Emits \Bsub\B.
func (a *Anchors) BoundaryExcludeStartAndEndCharacters(sub Expression) *Quantifiers {
	return a.appendAtom(`\B` + sub.Build() + `\B`)
}

// BoundaryExcludeStartCharacter requires a non-boundary before sub and a
// boundary after it. Emits \Bsub\b.
func (a *Anchors) BoundaryExcludeStartCharacter(sub Expression) *Quantifiers {
	return a.appendAtom(`\B` + sub.Build() + `\b`)
}

// BoundaryExcludeEndCharacter requires a boundary before sub and a
// non-boundary after it. Emits \bsub\B.
func (a *Anchors) BoundaryExcludeEndCharacter(sub Expression) *Quantifiers {
	return a.appendAtom(`\b` + sub.Build() + `\B`)
}
