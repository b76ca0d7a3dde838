package fluentrx

// Inline option letters.
const (
	flagIgnoreCase      = 'i'
	flagMultiline       = 'm'
	flagSingleLine      = 's'
	flagExplicitCapture = 'n'
	flagIgnoreSpace     = 'x'
)

// Options accumulates inline option flags and emits them as a modifier
// group.
//
// Toggles only record a letter in the enable or disable list. Letters
// are neither de-duplicated nor checked for conflicts, and Finish does
// not clear the lists: a second Finish on the same builder emits every
// flag recorded so far.
//
// Example:
//
//	b := fluentrx.New()
//	b.Options().CaseInsensitive().EnableMultiline().Finish(fluentrx.New().Text("abc"))
//	fmt.Println(b) // (?im:abc)
type Options struct {
	*Builder

	enables  []byte
	disables []byte
}

// CaseInsensitive enables case-insensitive matching (+i).
func (o *Options) CaseInsensitive() *Options {
	o.enables = append(o.enables, flagIgnoreCase)
	return o
}

// CaseSensitive disables case-insensitive matching (-i).
func (o *Options) CaseSensitive() *Options {
	o.disables = append(o.disables, flagIgnoreCase)
	return o
}

// EnableMultiline makes ^ and $ match at line boundaries (+m).
func (o *Options) EnableMultiline() *Options {
	o.enables = append(o.enables, flagMultiline)
	return o
}

// DisableMultiline turns multiline mode off (-m).
func (o *Options) DisableMultiline() *Options {
	o.disables = append(o.disables, flagMultiline)
	return o
}

// EnableSingleLine makes the dot match every character including \n (+s).
func (o *Options) EnableSingleLine() *Options {
	o.enables = append(o.enables, flagSingleLine)
	return o
}

// DisableSingleLine records the letter 'm' in the disable list.
//
// Existing patterns depend on this spelling, so it is kept as is; use
// Raw("(?-s)") to turn single-line mode off.
func (o *Options) DisableSingleLine() *Options {
	o.disables = append(o.disables, flagMultiline)
	return o
}

// EnableExplicitCapture stops unnamed groups from capturing (+n).
func (o *Options) EnableExplicitCapture() *Options {
	o.enables = append(o.enables, flagExplicitCapture)
	return o
}

// DisableExplicitCapture turns explicit capture off (-n).
func (o *Options) DisableExplicitCapture() *Options {
	o.disables = append(o.disables, flagExplicitCapture)
	return o
}

// EnableIgnorePatternWhitespace excludes unescaped white space from the
// pattern and enables # comments (+x).
func (o *Options) EnableIgnorePatternWhitespace() *Options {
	o.enables = append(o.enables, flagIgnoreSpace)
	return o
}

// DisableIgnorePatternWhitespace makes ' ' and '#' ordinary pattern
// characters again (-x).
func (o *Options) DisableIgnorePatternWhitespace() *Options {
	o.disables = append(o.disables, flagIgnoreSpace)
	return o
}

// Finish applies the recorded options to sub only.
// Emits (?enabled-disabled:inner); the '-' and disabled letters are left
// out when nothing was disabled.
func (o *Options) Finish(sub Expression) *Builder {
	return o.wrap(o.modifiers()+":", []Expression{sub}, ")")
}

// FinishRemaining applies the recorded options from this point to the end
// of the enclosing pattern. Emits (?enabled-disabled).
func (o *Options) FinishRemaining() *Builder {
	return o.append(o.modifiers() + ")")
}

// modifiers returns the group opener with the flag letters, e.g. "(?im-x".
func (o *Options) modifiers() string {
	buf := make([]byte, 0, 3+len(o.enables)+len(o.disables))
	buf = append(buf, '(', '?')
	buf = append(buf, o.enables...)
	if len(o.disables) > 0 {
		buf = append(buf, '-')
		buf = append(buf, o.disables...)
	}
	return string(buf)
}
