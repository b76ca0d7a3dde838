// Package unicat is a fixed catalog of Unicode general categories and
// scripts, each bound to the code the regex notation uses inside \p{...}
// and \P{...}.
//
// Tokens are selected by identity:
//
//	b := fluentrx.New()
//	b.UnicodeCategoryOrBlockOrScript(unicat.LetterUppercase) // \p{Lu}
//	b.NonUnicodeCategoryOrBlockOrScript(unicat.ScriptGreek)  // \P{IsGreek}
//
// There is no lookup by name, and the catalog cannot be extended at run
// time: Token has no exported constructor.
package unicat

// Token is a Unicode category or script. Tokens are comparable values;
// two tokens are equal when their codes are equal.
type Token struct {
	code string
}

// Code returns the notation code, e.g. "Lu" or "IsGreek".
func (t Token) Code() string {
	return t.code
}

// String returns the notation code.
func (t Token) String() string {
	return t.code
}

// IsZero reports whether t is the zero Token, which names nothing.
func (t Token) IsZero() bool {
	return t.code == ""
}
