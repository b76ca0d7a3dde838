package fluentrx

import (
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	re, err := New().Digit().Times(3).Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("901") {
		t.Error(`\d{3} should match "901"`)
	}
	if re.MatchString("90") {
		t.Error(`\d{3} should not match "90"`)
	}
	if re.String() != `\d{3}` {
		t.Errorf("String() = %q, want %q", re.String(), `\d{3}`)
	}
}

func TestCompileComposed(t *testing.T) {
	b := New()
	b.Anchors().LineBegin()
	b.Options().CaseInsensitive().Finish(New().Text("hello"))
	b.Whitespace().OneOrMore()
	b.Groups().Capture(New().Word().OneOrMore())
	b.Anchors().LineEnd()

	re, err := b.Compile()
	if err != nil {
		t.Fatalf("Compile(%q): %v", b.Build(), err)
	}

	m := re.FindStringSubmatch("HeLLo   gopher")
	if m == nil {
		t.Fatalf("%q did not match", b.Build())
	}
	if got := m[1]; got != "gopher" {
		t.Errorf("group 1 = %q, want %q", got, "gopher")
	}
}

// TestCompileRejectsUnsupported lists constructs the builder emits that
// RE2 does not accept.
func TestCompileRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
	}{
		{"named group brackets", New().Groups().NamedGroup("x", Brackets, New().Digit())},
		{"named group quotes", New().Groups().NamedGroup("x", Quotes, New().Digit())},
		{"lookahead", New().Groups().PositiveLookAhead(Pattern("a"))},
		{"atomic", New().Groups().Atomic(Pattern("a"))},
		{"escape char", New().Escape().Builder},
		{"text end or line break", New().Anchors().TextEndOrLineBreakAtEnd().Builder},
		{"backreference", New().BackReferences().RefersToUnnamedGroup(1).Builder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.b.Compile(); err == nil {
				t.Errorf("Compile(%q) succeeded, want error", tt.b.Build())
			}
		})
	}
}

func TestMustCompilePanic(t *testing.T) {
	b := New().Groups().PositiveLookAhead(Pattern("a"))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile did not panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.HasPrefix(msg, "regexp: Compile(`(?=a)`): ") {
			t.Errorf("panic message = %q", msg)
		}
	}()
	b.MustCompile()
}
