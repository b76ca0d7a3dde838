package fluentrx

// Classes appends character classes.
//
// Set contents are written as given: ranges such as "a-z" and shorthand
// such as `\d` are allowed, and nothing inside the brackets is escaped.
type Classes struct {
	*Builder
}

// InSet matches any character of set. Emits [set].
//
// Example:
//
//	fluentrx.New().Classes().InSet("a-f0-9") // [a-f0-9]
func (c *Classes) InSet(set string) *Quantifiers {
	return c.appendAtom("[" + set + "]")
}

// InSetRunes is InSet for a collection of characters.
func (c *Classes) InSetRunes(set []rune) *Quantifiers {
	return c.InSet(string(set))
}

// NotInSet matches any character not in set. Emits [^set].
func (c *Classes) NotInSet(set string) *Quantifiers {
	return c.appendAtom("[^" + set + "]")
}

// NotInSetRunes is NotInSet for a collection of characters.
func (c *Classes) NotInSetRunes(set []rune) *Quantifiers {
	return c.NotInSet(string(set))
}

// Range matches any character from start to end inclusive.
// Emits [start-end].
func (c *Classes) Range(start, end rune) *Quantifiers {
	return c.appendAtom("[" + string(start) + "-" + string(end) + "]")
}

// NotInRange matches any character outside start..end.
// Emits [^start-end].
func (c *Classes) NotInRange(start, end rune) *Quantifiers {
	return c.appendAtom("[^" + string(start) + "-" + string(end) + "]")
}
