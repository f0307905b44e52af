package normalize

import (
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// Script identifies a writing-script substitution table.
type Script string

const (
	// ScriptNone disables script-specific substitution.
	ScriptNone Script = ""
	// ScriptDetect requests heuristic detection per character sequence.
	ScriptDetect Script = "detect"
	// ScriptLatin covers the Latin-based phonetic transcription.
	ScriptLatin Script = "Latn"
	// ScriptCyrillic covers the Cyrillic orthography.
	ScriptCyrillic Script = "Cyrl"
)

// ParseScript maps a user-supplied script name to a Script.
func ParseScript(s string) (Script, bool) {
	switch Script(s) {
	case ScriptNone, ScriptDetect, ScriptLatin, ScriptCyrillic:
		return Script(s), true
	}
	return ScriptNone, false
}

// detectIgnore lists codepoints that legitimately occur in both scripts of
// the source material and carry no signal for detection.
var detectIgnore = map[rune]bool{
	'ɵ': true, // ɵ
	'ш': true, // ш
	'ѳ': true, // ҳ-series typo
	'Ө': true, // Ө
	'ө': true, // ө
}

// DetectScript heuristically guesses the writing script of the text.
//
// Characters resolved through a font table and the fixed ignore set are
// excluded from the tally. The rest count as Latin or Cyrillic by their
// Unicode character name. Cyrillic wins only when it outnumbers Latin and
// makes up at least a fifth of the tallied characters; ties go to Latin.
// The result is a heuristic, not an exact classification.
func DetectScript(chars []lexeme.Character) Script {
	var total, latin, cyrillic int
	for _, c := range chars {
		if HasFontTable(c.Style.Font) || detectIgnore[c.Rune] {
			continue
		}
		total++
		name := runeName(c.Rune)
		switch {
		case strings.Contains(name, "LATIN"):
			latin++
		case strings.Contains(name, "CYRILLIC"):
			cyrillic++
		}
	}
	if cyrillic > latin && cyrillic*5 >= total {
		return ScriptCyrillic
	}
	return ScriptLatin
}

// runeName returns the Unicode character name, "" when unnamed.
func runeName(r rune) string {
	name := runenames.Name(r)
	// runenames renders unnamed and control codepoints inside <...>.
	if strings.HasPrefix(name, "<") {
		return ""
	}
	return name
}
