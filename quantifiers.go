package fluentrx

import (
	"strconv"
)

// Quantifiers appends repetition suffixes to the construct appended last.
//
// The view only knows stream position: it does not check that the
// preceding text is quantifiable, and counts are written verbatim
// (negative or inverted ranges are left to the consuming engine).
//
// Each greedy operation has a lazy counterpart with a trailing '?',
// which matches as few times as possible.
type Quantifiers struct {
	*Builder
}

// ZeroOrMore matches the previous element zero or more times. Emits *.
//
// Example:
//
//	fluentrx.New().Digit().ZeroOrMore() // \d*
func (q *Quantifiers) ZeroOrMore() *Builder { return q.append("*") }

// OneOrMore matches the previous element one or more times. Emits +.
func (q *Quantifiers) OneOrMore() *Builder { return q.append("+") }

// Optional matches the previous element zero or one time. Emits ?.
func (q *Quantifiers) Optional() *Builder { return q.append("?") }

// Times matches the previous element exactly n times. Emits {n}.
//
// Example:
//
//	fluentrx.New().Digit().Times(3) // \d{3}
func (q *Quantifiers) Times(n int) *Builder {
	return q.append(exactly(n))
}

// AtLeast matches the previous element n or more times. Emits {n,}.
func (q *Quantifiers) AtLeast(n int) *Builder {
	return q.append(atLeast(n))
}

// Between matches the previous element from minimum to maximum times.
// Emits {minimum,maximum}.
func (q *Quantifiers) Between(minimum, maximum int) *Builder {
	return q.append(between(minimum, maximum))
}

// ZeroOrMoreLazy is the lazy form of ZeroOrMore. Emits *?.
func (q *Quantifiers) ZeroOrMoreLazy() *Builder { return q.append("*?") }

// OneOrMoreLazy is the lazy form of OneOrMore. Emits +?.
func (q *Quantifiers) OneOrMoreLazy() *Builder { return q.append("+?") }

// OptionalLazy is the lazy form of Optional. Emits ??.
func (q *Quantifiers) OptionalLazy() *Builder { return q.append("??") }

// TimesLazy is the lazy form of Times. Emits {n}?.
func (q *Quantifiers) TimesLazy(n int) *Builder {
	return q.append(exactly(n) + "?")
}

// AtLeastLazy is the lazy form of AtLeast. Emits {n,}?.
func (q *Quantifiers) AtLeastLazy(n int) *Builder {
	return q.append(atLeast(n) + "?")
}

// BetweenLazy is the lazy form of Between. Emits {minimum,maximum}?.
func (q *Quantifiers) BetweenLazy(minimum, maximum int) *Builder {
	return q.append(between(minimum, maximum) + "?")
}

func exactly(n int) string {
	return "{" + strconv.Itoa(n) + "}"
}

func atLeast(n int) string {
	return "{" + strconv.Itoa(n) + ",}"
}

func between(minimum, maximum int) string {
	return "{" + strconv.Itoa(minimum) + "," + strconv.Itoa(maximum) + "}"
}
