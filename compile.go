package fluentrx

import (
	"github.com/grafana/regexp"
)

// Compile compiles the text built so far with the RE2 engine.
//
// RE2 accepts a subset of the notation the builder can emit. Named groups
// in either delimiter (the engine only knows (?P<name>...)), lookaround,
// atomic and balancing groups, backreferences, \e, \Z, \G and
// \p{IsScript} are rejected; the engine's error is returned unchanged.
// Plain captures are numbered as usual.
//
// Example:
//
//	re, err := fluentrx.New().Digit().Times(3).Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("901-333") // true
func (b *Builder) Compile() (*regexp.Regexp, error) {
	return regexp.Compile(b.Build())
}

// MustCompile is like Compile but panics if the text does not compile.
//
// Example:
//
//	var zip = fluentrx.New().Digit().Times(5).MustCompile()
func (b *Builder) MustCompile() *regexp.Regexp {
	pattern := b.Build()
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}
