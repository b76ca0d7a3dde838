package fluentrx

import "testing"

func TestQuantifiers(t *testing.T) {
	tests := []struct {
		name  string
		apply func(q *Quantifiers) *Builder
		want  string
	}{
		{"zero or more", (*Quantifiers).ZeroOrMore, `\d*`},
		{"one or more", (*Quantifiers).OneOrMore, `\d+`},
		{"optional", (*Quantifiers).Optional, `\d?`},
		{"times", func(q *Quantifiers) *Builder { return q.Times(3) }, `\d{3}`},
		{"at least", func(q *Quantifiers) *Builder { return q.AtLeast(2) }, `\d{2,}`},
		{"between", func(q *Quantifiers) *Builder { return q.Between(3, 5) }, `\d{3,5}`},
		{"zero or more lazy", (*Quantifiers).ZeroOrMoreLazy, `\d*?`},
		{"one or more lazy", (*Quantifiers).OneOrMoreLazy, `\d+?`},
		{"optional lazy", (*Quantifiers).OptionalLazy, `\d??`},
		{"times lazy", func(q *Quantifiers) *Builder { return q.TimesLazy(3) }, `\d{3}?`},
		{"at least lazy", func(q *Quantifiers) *Builder { return q.AtLeastLazy(2) }, `\d{2,}?`},
		{"between lazy", func(q *Quantifiers) *Builder { return q.BetweenLazy(3, 5) }, `\d{3,5}?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.apply(New().Digit())
			if got := b.Build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestQuantifierCountsVerbatim verifies that counts are not validated.
func TestQuantifierCountsVerbatim(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
		want string
	}{
		{"negative", New().Word().Times(-1), `\w{-1}`},
		{"inverted", New().Word().Between(5, 2), `\w{5,2}`},
		{"zero", New().Word().AtLeast(0), `\w{0,}`},
		{"large", New().Word().Times(1 << 20), `\w{1048576}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestQuantifyGroup verifies the explicit re-entry into the quantifier view
// after a group.
func TestQuantifyGroup(t *testing.T) {
	b := New().Text("Write")
	b.Groups().NonCapture(New().Text("Line"))
	b.Quantifiers().Optional()

	if got, want := b.Build(), `Write(?:Line)?`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestChainAfterQuantifier verifies that root operations stay reachable
// from the quantifier view and from the builder it returns.
func TestChainAfterQuantifier(t *testing.T) {
	b := New().Digit().Times(3).Text("-").Digit().Times(4)

	if got, want := b.Build(), `\d{3}-\d{4}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Atom directly followed by another atom, no quantifier.
	b = New().Digit().Word().OneOrMore()
	if got, want := b.Build(), `\d\w+`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
