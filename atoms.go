package fluentrx

import (
	"github.com/coregx/fluentrx/unicat"
)

// Text matches text literally. Metacharacters are escaped with QuoteMeta.
//
// Example:
//
//	fluentrx.New().Text("(o.O)") // \(o\.O\)
func (b *Builder) Text(text string) *Quantifiers {
	return b.appendAtom(QuoteMeta(text))
}

// Bell matches U+0007. Emits \a.
func (b *Builder) Bell() *Quantifiers { return b.appendAtom(`\a`) }

// Backspace matches U+0008. Emits \b, which is a backspace only inside a
// character class; outside one the consuming engine reads it as a word
// boundary.
func (b *Builder) Backspace() *Quantifiers { return b.appendAtom(`\b`) }

// Tab matches U+0009. Emits \t.
func (b *Builder) Tab() *Quantifiers { return b.appendAtom(`\t`) }

// CarriageReturn matches U+000D. Emits \r.
func (b *Builder) CarriageReturn() *Quantifiers { return b.appendAtom(`\r`) }

// Newline matches U+000A. Emits \n.
func (b *Builder) Newline() *Quantifiers { return b.appendAtom(`\n`) }

// VerticalTab matches U+000B. Emits \v.
func (b *Builder) VerticalTab() *Quantifiers { return b.appendAtom(`\v`) }

// FormFeed matches U+000C. Emits \f.
func (b *Builder) FormFeed() *Quantifiers { return b.appendAtom(`\f`) }

// Escape matches U+001B. Emits \e.
func (b *Builder) Escape() *Quantifiers { return b.appendAtom(`\e`) }

// Octal matches a character written in octal notation. Emits \value.
//
// value must have two or three decimal digits (10 through 999); anything
// else returns a *LiteralError and leaves the stream untouched.
//
// Example:
//
//	q, err := fluentrx.New().Octal(101) // \101
func (b *Builder) Octal(value int) (*Quantifiers, error) {
	s, err := octalEscape(value)
	if err != nil {
		return nil, err
	}
	return b.appendAtom(s), nil
}

// Hex matches a character written as two hexadecimal digits. Emits \xvalue.
//
// Example:
//
//	q, err := fluentrx.New().Hex("1A") // \x1A
//	_, err = fluentrx.New().Hex("1G")  // ErrInvalidLiteral
func (b *Builder) Hex(value string) (*Quantifiers, error) {
	s, err := hexDigitsEscape("Hex", value, 2)
	if err != nil {
		return nil, err
	}
	return b.appendAtom(s), nil
}

// Unicode matches a character written as four hexadecimal digits.
//
// The emitted form is \xvalue, not \uvalue.
func (b *Builder) Unicode(value string) (*Quantifiers, error) {
	s, err := hexDigitsEscape("Unicode", value, 4)
	if err != nil {
		return nil, err
	}
	return b.appendAtom(s), nil
}

// Control matches the ASCII control character named by value, e.g. 'C'
// for Ctrl-C. Emits \cvalue. Characters above 127 are rejected.
func (b *Builder) Control(value rune) (*Quantifiers, error) {
	s, err := controlEscape(value)
	if err != nil {
		return nil, err
	}
	return b.appendAtom(s), nil
}

// Anything matches any character (except newline outside single-line
// mode). Emits a dot.
func (b *Builder) Anything() *Quantifiers { return b.appendAtom(".") }

// Word matches a word character. Emits \w.
func (b *Builder) Word() *Quantifiers { return b.appendAtom(`\w`) }

// NonWord matches a non-word character. Emits \W.
func (b *Builder) NonWord() *Quantifiers { return b.appendAtom(`\W`) }

// Whitespace matches a white-space character. Emits \s.
func (b *Builder) Whitespace() *Quantifiers { return b.appendAtom(`\s`) }

// NonWhitespace matches a non-white-space character. Emits \S.
func (b *Builder) NonWhitespace() *Quantifiers { return b.appendAtom(`\S`) }

// Digit matches a decimal digit. Emits \d.
func (b *Builder) Digit() *Quantifiers { return b.appendAtom(`\d`) }

// NonDigit matches anything but a decimal digit. Emits \D.
func (b *Builder) NonDigit() *Quantifiers { return b.appendAtom(`\D`) }

// UnicodeCategoryOrBlockOrScript matches a character of the given Unicode
// category or script.
//
// Example:
//
//	fluentrx.New().UnicodeCategoryOrBlockOrScript(unicat.Letter) // \p{L}
func (b *Builder) UnicodeCategoryOrBlockOrScript(t unicat.Token) *Quantifiers {
	return b.appendAtom(`\p{` + t.Code() + `}`)
}

// NonUnicodeCategoryOrBlockOrScript matches a character outside the given
// Unicode category or script. Emits \P{code}.
func (b *Builder) NonUnicodeCategoryOrBlockOrScript(t unicat.Token) *Quantifiers {
	return b.appendAtom(`\P{` + t.Code() + `}`)
}

// Choice matches any one of the alternatives. Emits (a|b|...).
//
// Like the group operations, Choice returns the root builder; use
// Quantifiers to repeat the alternation.
func (b *Builder) Choice(first, second Expression, more ...Expression) *Builder {
	alts := make([]string, 0, 2+len(more))
	alts = append(alts, first.Build(), second.Build())
	for _, e := range more {
		alts = append(alts, e.Build())
	}

	b.stream.WriteByte('(')
	for i, alt := range alts {
		if i > 0 {
			b.stream.WriteByte('|')
		}
		b.stream.WriteString(alt)
	}
	b.stream.WriteByte(')')
	return b
}
