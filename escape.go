package fluentrx

import (
	"strconv"
	"unicode/utf8"
)

// metaChars lists the characters Text escapes.
const metaChars = `\.+*?()|[]{}^$`

// QuoteMeta returns text with every regex metacharacter prefixed by a
// backslash. No other transformation is applied: case, whitespace and
// non-ASCII characters pass through unchanged.
//
// Example:
//
//	escaped := fluentrx.QuoteMeta("I'm a John Doe? (o.O)")
//	// escaped = `I'm a John Doe\? \(o\.O\)`
func QuoteMeta(s string) string {
	// Count how many characters need escaping
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	// All metacharacters are ASCII, so a byte walk never splits a rune.
	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is a metacharacter.
func isSpecial(c byte) bool {
	for i := 0; i < len(metaChars); i++ {
		if c == metaChars[i] {
			return true
		}
	}
	return false
}

// octalEscape validates value and returns its escape.
//
// Only values with two or three decimal digits are accepted. Single-digit
// values are refused even though \1..\7 are octal escapes too; those
// spellings collide with numbered backreferences.
func octalEscape(value int) (string, error) {
	if value < 10 || value > 999 {
		return "", literalErrorf("Octal", strconv.Itoa(value),
			"octal representation must contain only 2 or 3 digits, got %d", value)
	}
	return `\` + strconv.Itoa(value), nil
}

// hexDigitsEscape validates that value holds exactly digits hexadecimal
// characters and returns `\x` followed by value.
func hexDigitsEscape(op, value string, digits int) (string, error) {
	if n := utf8.RuneCountInString(value); n != digits {
		return "", literalErrorf(op, value,
			"must be exactly %d digits, but it has %d", digits, n)
	}
	if _, err := strconv.ParseUint(value, 16, 32); err != nil {
		return "", literalErrorf(op, value, "not a valid hexadecimal number")
	}
	return `\x` + value, nil
}

// controlEscape validates that c is ASCII and returns `\c` followed by c.
func controlEscape(c rune) (string, error) {
	if c < 0 || c > 127 {
		return "", literalErrorf("Control", string(c),
			"ASCII characters range from 0 to 127, got %d", c)
	}
	return `\c` + string(c), nil
}
