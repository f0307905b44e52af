package normalize

// fontTables maps the legacy phonetic fonts used in the source documents to
// standard Unicode text. The original typesetting used private glyph slots
// of these fonts, so the codepoint alone is meaningless without the font.
// Keys are listed in \uXXXX order for readability.
var fontTables = map[string]map[rune]string{
	"Lingua": {
		'&': "u̯",         // u̯
		'2': "i̮",         // i̮
		'8': "u̇",         // u̇
		'@': "i̯",         // i̯
		'К': "ə̑",    // ə̑
		'Ы': "o̭",         // o̭
		'ц': "e̮",         // e̮
		'ќ': "č́",   // č́
	},
	"1 FU": {
		'¹': "i̯", // i̯
	},
}

// scriptTables maps codepoints that look right but belong to the wrong
// script, an artifact of typists switching keyboard layouts. The
// substitutions are only applied once the text's script is known.
var scriptTables = map[Script]map[rune]string{
	ScriptLatin: {
		'а': "a",       // а → a
		'и': "u",       // и → u
		'п': "n",       // п → n
		'х': "x",       // х → x
		'ш': "ɯ",       // ш → ɯ
		'Ө': "Ɵ",       // Ө → Ɵ
		'ө': "ɵ",       // ө → ɵ
	},
	ScriptCyrillic: {
		'á': "а́", // á → а́
		'é': "е́", // é → е́
		'ó': "о́", // ó → о́
		'ÿ': "ӱ",       // ÿ → ӱ
		'ɵ': "ө",       // ɵ → ө
		'c': "с",       // c → с
	},
}

// alwaysTable holds substitutions applied regardless of script. These are
// known typo codepoints that never belong in the source material.
var alwaysTable = map[rune]string{
	'ѳ': "ө", // ҳ-series typo → ө
}

// HasFontTable reports whether the font is one of the recognized legacy
// phonetic fonts, i.e. its codepoints require substitution.
func HasFontTable(font string) bool {
	_, ok := fontTables[font]
	return ok
}
