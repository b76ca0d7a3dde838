package unicat

// Letters.
var (
	// LetterUppercase matches an uppercase letter.
	LetterUppercase = Token{"Lu"}
	// LetterLowercase matches a lowercase letter.
	LetterLowercase = Token{"Ll"}
	// LetterTitlecase matches a titlecase letter (a digraph whose first
	// part is uppercase).
	LetterTitlecase = Token{"Lt"}
	// LetterAnycase matches an uppercase, lowercase or titlecase letter.
	LetterAnycase = Token{"LC"}
	// LetterModifier matches a modifier letter.
	LetterModifier = Token{"Lm"}
	// LetterOther matches other letters, including syllables and ideographs.
	LetterOther = Token{"Lo"}
	// Letter matches any letter: Lu | Ll | Lt | Lm | Lo.
	Letter = Token{"L"}
)

// Marks.
var (
	// MarkNonspacing matches a nonspacing combining mark (zero advance width).
	MarkNonspacing = Token{"Mn"}
	// MarkSpacing matches a spacing combining mark (positive advance width).
	MarkSpacing = Token{"Mc"}
	// MarkEnclosing matches an enclosing combining mark.
	MarkEnclosing = Token{"Me"}
	// Mark matches any combining mark: Mn | Mc | Me.
	Mark = Token{"M"}
)

// Numbers.
var (
	NumberDigit  = Token{"Nd"}
	NumberLetter = Token{"Nl"}
	NumberOther  = Token{"No"}
	// Number matches any numeric character: Nd | Nl | No.
	Number = Token{"N"}
)

// Punctuation.
var (
	PunctuationConnector = Token{"Pc"}
	PunctuationDash      = Token{"Pd"}
	PunctuationOpen      = Token{"Ps"}
	PunctuationClose     = Token{"Pe"}
	PunctuationInitial   = Token{"Pi"}
	PunctuationFinal     = Token{"Pf"}
	PunctuationOther     = Token{"Po"}
	// Punctuation matches any punctuation mark: Pc | Pd | Ps | Pe | Pi | Pf | Po.
	Punctuation = Token{"P"}
)

// Symbols.
var (
	SymbolMath     = Token{"Sm"}
	SymbolCurrency = Token{"Sc"}
	SymbolModifier = Token{"Sk"}
	SymbolOther    = Token{"So"}
	// Symbol matches any symbol: Sm | Sc | Sk | So.
	Symbol = Token{"S"}
)

// Separators.
var (
	// SeparatorSpace matches a space character of any non-zero width.
	SeparatorSpace = Token{"Zs"}
	// SeparatorLine matches U+2028 LINE SEPARATOR only.
	SeparatorLine = Token{"Zl"}
	// SeparatorParagraph matches U+2029 PARAGRAPH SEPARATOR only.
	SeparatorParagraph = Token{"Zp"}
	// Separator matches any separator: Zs | Zl | Zp.
	Separator = Token{"Z"}
)

// Control and other code points.
var (
	// ControlCode matches a C0 or C1 control code.
	ControlCode = Token{"Cc"}
	// ControlFormat matches a format control character.
	ControlFormat = Token{"Cf"}
	// ControlSurrogate matches a surrogate code point.
	ControlSurrogate = Token{"Cs"}
	// ControlPrivateUse matches a private-use character.
	ControlPrivateUse = Token{"Co"}
	// ControlUnassigned matches a reserved unassigned code point or a
	// noncharacter.
	ControlUnassigned = Token{"Cn"}
	// Control matches any of Cc | Cf | Cs | Co | Cn.
	Control = Token{"C"}
)

// Categories returns every general category token, grouped by major
// class. The slice is a fresh copy on each call.
func Categories() []Token {
	return []Token{
		LetterUppercase, LetterLowercase, LetterTitlecase, LetterAnycase,
		LetterModifier, LetterOther, Letter,
		MarkNonspacing, MarkSpacing, MarkEnclosing, Mark,
		NumberDigit, NumberLetter, NumberOther, Number,
		PunctuationConnector, PunctuationDash, PunctuationOpen, PunctuationClose,
		PunctuationInitial, PunctuationFinal, PunctuationOther, Punctuation,
		SymbolMath, SymbolCurrency, SymbolModifier, SymbolOther, Symbol,
		SeparatorSpace, SeparatorLine, SeparatorParagraph, Separator,
		ControlCode, ControlFormat, ControlSurrogate, ControlPrivateUse,
		ControlUnassigned, Control,
	}
}
