package fluentrx

import (
	"testing"

	"github.com/coregx/fluentrx/unicat"
)

func TestFixedAtoms(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Builder) *Quantifiers
		want string
	}{
		{"Bell", (*Builder).Bell, `\a`},
		{"Backspace", (*Builder).Backspace, `\b`},
		{"Tab", (*Builder).Tab, `\t`},
		{"CarriageReturn", (*Builder).CarriageReturn, `\r`},
		{"Newline", (*Builder).Newline, `\n`},
		{"VerticalTab", (*Builder).VerticalTab, `\v`},
		{"FormFeed", (*Builder).FormFeed, `\f`},
		{"Escape", (*Builder).Escape, `\e`},
		{"Anything", (*Builder).Anything, `.`},
		{"Word", (*Builder).Word, `\w`},
		{"NonWord", (*Builder).NonWord, `\W`},
		{"Whitespace", (*Builder).Whitespace, `\s`},
		{"NonWhitespace", (*Builder).NonWhitespace, `\S`},
		{"Digit", (*Builder).Digit, `\d`},
		{"NonDigit", (*Builder).NonDigit, `\D`},
		{"NewlineWithOptionalCarriageReturn", (*Builder).NewlineWithOptionalCarriageReturn, `\r?\n`},
		{"LetterCaseInsensitive", (*Builder).LetterCaseInsensitive, `[a-zA-Z]`},
		{"LetterUpperCase", (*Builder).LetterUpperCase, `[A-Z]`},
		{"LetterLowerCase", (*Builder).LetterLowerCase, `[a-z]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(New()).Build(); got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestUnicodeTokens(t *testing.T) {
	tests := []struct {
		token   unicat.Token
		match   string
		exclude string
	}{
		{unicat.Letter, `\p{L}`, `\P{L}`},
		{unicat.LetterUppercase, `\p{Lu}`, `\P{Lu}`},
		{unicat.PunctuationDash, `\p{Pd}`, `\P{Pd}`},
		{unicat.ScriptGreek, `\p{IsGreek}`, `\P{IsGreek}`},
		{unicat.ScriptCanadianAboriginal, `\p{IsCanadian_Aboriginal}`, `\P{IsCanadian_Aboriginal}`},
	}

	for _, tt := range tests {
		t.Run(tt.token.Code(), func(t *testing.T) {
			if got := New().UnicodeCategoryOrBlockOrScript(tt.token).Build(); got != tt.match {
				t.Errorf("UnicodeCategoryOrBlockOrScript = %q, want %q", got, tt.match)
			}
			if got := New().NonUnicodeCategoryOrBlockOrScript(tt.token).Build(); got != tt.exclude {
				t.Errorf("NonUnicodeCategoryOrBlockOrScript = %q, want %q", got, tt.exclude)
			}
		})
	}
}

func TestUnicodeTokenQuantified(t *testing.T) {
	b := New().UnicodeCategoryOrBlockOrScript(unicat.Letter).OneOrMore()
	if got, want := b.Build(), `\p{L}+`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name string
		q    *Quantifiers
		want string
	}{
		{"in set", New().Classes().InSet("aeiou"), `[aeiou]`},
		{"in set ranges", New().Classes().InSet(`a-f0-9\-`), `[a-f0-9\-]`},
		{"in set runes", New().Classes().InSetRunes([]rune{'x', 'y', 'é'}), `[xyé]`},
		{"not in set", New().Classes().NotInSet("aeiou"), `[^aeiou]`},
		{"not in set runes", New().Classes().NotInSetRunes([]rune("\t ")), "[^\t ]"},
		{"range", New().Classes().Range('a', 'z'), `[a-z]`},
		{"not in range", New().Classes().NotInRange('0', '9'), `[^0-9]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnchors(t *testing.T) {
	sub := func() Expression { return New().Word().OneOrMore().Whitespace().Word().OneOrMore() }

	tests := []struct {
		name string
		q    *Quantifiers
		want string
	}{
		{"line begin", New().Anchors().LineBegin(), `^`},
		{"line end", New().Anchors().LineEnd(), `$`},
		{"text begin", New().Anchors().TextBegin(), `\A`},
		{"text end or line break", New().Anchors().TextEndOrLineBreakAtEnd(), `\Z`},
		{"text end", New().Anchors().TextEnd(), `\z`},
		{"previous match", New().Anchors().BeginOnPreviousMatch(), `\G`},
		{"boundary", New().Anchors().Boundary(sub()), `\b\w+\s\w+\b`},
		{"exclude both", New().Anchors().BoundaryExcludeStartAndEndCharacters(sub()), `\B\w+\s\w+\B`},
		{"exclude start", New().Anchors().BoundaryExcludeStartCharacter(sub()), `\B\w+\s\w+\b`},
		{"exclude end", New().Anchors().BoundaryExcludeEndCharacter(sub()), `\b\w+\s\w+\B`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackReferences(t *testing.T) {
	b := New()
	b.Groups().Capture(New().Word())
	b.BackReferences().RefersToUnnamedGroup(1)
	if got, want := b.Build(), `(\w)\1`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	b = New()
	b.Groups().NamedGroup("double", Brackets, New().Word())
	b.BackReferences().RefersToNamedGroup("double")
	if got, want := b.Build(), `(?<double>\w)\k<double>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// No existence check on the referenced group.
	if got, want := New().BackReferences().RefersToUnnamedGroup(42).OneOrMore().Build(), `\42+`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := New().BackReferences().RefersToNamedGroup("missing").Build(), `\k<missing>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
