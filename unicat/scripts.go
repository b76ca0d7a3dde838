package unicat

// Scripts. Codes use the "Is" prefix of the named-block notation.
var (
	ScriptCommon             = Token{"IsCommon"}
	ScriptArabic             = Token{"IsArabic"}
	ScriptArmenian           = Token{"IsArmenian"}
	ScriptBengali            = Token{"IsBengali"}
	ScriptBopomofo           = Token{"IsBopomofo"}
	ScriptBraille            = Token{"IsBraille"}
	ScriptBuhid              = Token{"IsBuhid"}
	ScriptCanadianAboriginal = Token{"IsCanadian_Aboriginal"}
	ScriptCherokee           = Token{"IsCherokee"}
	ScriptCyrillic           = Token{"IsCyrillic"}
	ScriptDevanagari         = Token{"IsDevanagari"}
	ScriptEthiopic           = Token{"IsEthiopic"}
	ScriptGeorgian           = Token{"IsGeorgian"}
	ScriptGreek              = Token{"IsGreek"}
	ScriptGujarati           = Token{"IsGujarati"}
	ScriptGurmukhi           = Token{"IsGurmukhi"}
	ScriptHan                = Token{"IsHan"}
	ScriptHangul             = Token{"IsHangul"}
	ScriptHanunoo            = Token{"IsHanunoo"}
	ScriptHebrew             = Token{"IsHebrew"}
	ScriptHiragana           = Token{"IsHiragana"}
	ScriptInherited          = Token{"IsInherited"}
	ScriptKannada            = Token{"IsKannada"}
	ScriptKatakana           = Token{"IsKatakana"}
	ScriptKhmer              = Token{"IsKhmer"}
	ScriptLao                = Token{"IsLao"}
	ScriptLatin              = Token{"IsLatin"}
	ScriptLimbu              = Token{"IsLimbu"}
	ScriptMalayalam          = Token{"IsMalayalam"}
	ScriptMongolian          = Token{"IsMongolian"}
	ScriptMyanmar            = Token{"IsMyanmar"}
	ScriptOgham              = Token{"IsOgham"}
	ScriptOriya              = Token{"IsOriya"}
	ScriptRunic              = Token{"IsRunic"}
	ScriptSinhala            = Token{"IsSinhala"}
	ScriptSyriac             = Token{"IsSyriac"}
	ScriptTagalog            = Token{"IsTagalog"}
	ScriptTagbanwa           = Token{"IsTagbanwa"}
	ScriptTaiLe              = Token{"IsTaiLe"}
	ScriptTamil              = Token{"IsTamil"}
	ScriptTelugu             = Token{"IsTelugu"}
	ScriptThaana             = Token{"IsThaana"}
	// ScriptThai emits IsThai, spelled like every other script; older
	// patterns may use the bare Thai code, which Raw can still write.
	ScriptThai               = Token{"IsThai"}
	ScriptTibetan            = Token{"IsTibetan"}
	ScriptYi                 = Token{"IsYi"}
)

// Scripts returns every script token in alphabetical order after Common.
// The slice is a fresh copy on each call.
func Scripts() []Token {
	return []Token{
		ScriptCommon, ScriptArabic, ScriptArmenian, ScriptBengali, ScriptBopomofo,
		ScriptBraille, ScriptBuhid, ScriptCanadianAboriginal, ScriptCherokee,
		ScriptCyrillic, ScriptDevanagari, ScriptEthiopic, ScriptGeorgian,
		ScriptGreek, ScriptGujarati, ScriptGurmukhi, ScriptHan, ScriptHangul,
		ScriptHanunoo, ScriptHebrew, ScriptHiragana, ScriptInherited,
		ScriptKannada, ScriptKatakana, ScriptKhmer, ScriptLao, ScriptLatin,
		ScriptLimbu, ScriptMalayalam, ScriptMongolian, ScriptMyanmar,
		ScriptOgham, ScriptOriya, ScriptRunic, ScriptSinhala, ScriptSyriac,
		ScriptTagalog, ScriptTagbanwa, ScriptTaiLe, ScriptTamil, ScriptTelugu,
		ScriptThaana, ScriptThai, ScriptTibetan, ScriptYi,
	}
}
