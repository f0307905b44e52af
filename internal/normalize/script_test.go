package normalize

import (
	"testing"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// Script detection is a heuristic; these cases are deliberately clear-cut.
func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Script
	}{
		{"plain latin", "gurt busy", ScriptLatin},
		{"plain cyrillic", "деревня поле", ScriptCyrillic},
		{"mostly latin with noise", "gurt busy login word п", ScriptLatin},
		{"digits and punctuation only", "123 (4),", ScriptLatin},
		{"empty", "", ScriptLatin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chars := lexeme.FromString(tt.text, lexeme.Style{})
			if got := DetectScript(chars); got != tt.want {
				t.Errorf("DetectScript(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectScriptIgnoresPhoneticFont(t *testing.T) {
	// Characters typeset in a glyph-table font carry no script signal,
	// whatever their raw codepoints look like.
	chars := lexeme.FromString("КККК", lexeme.Style{Font: "Lingua"})
	chars = append(chars, lexeme.FromString("ab", lexeme.Style{})...)
	if got := DetectScript(chars); got != ScriptLatin {
		t.Errorf("expected Latn when Cyrillic-looking runes sit in a phonetic font, got %v", got)
	}
}

func TestDetectScriptIgnoreSet(t *testing.T) {
	// ө and ш occur in both scripts of the source material.
	chars := lexeme.FromString("өшөш ab", lexeme.Style{})
	if got := DetectScript(chars); got != ScriptLatin {
		t.Errorf("expected ignore-set runes to carry no weight, got %v", got)
	}
}

func TestDetectScriptThreshold(t *testing.T) {
	// Cyrillic must reach a fifth of the tally: 2 Cyrillic letters against
	// 1 Latin and 12 neutral digits stay below the threshold.
	chars := lexeme.FromString("аб x 123456789012", lexeme.Style{})
	if got := DetectScript(chars); got != ScriptLatin {
		t.Errorf("expected threshold to hold back Cyrillic, got %v", got)
	}
	// Without the digit padding the same letters clear it.
	chars = lexeme.FromString("аб x", lexeme.Style{})
	if got := DetectScript(chars); got != ScriptCyrillic {
		t.Errorf("expected Cyrillic above threshold, got %v", got)
	}
}

func TestParseScript(t *testing.T) {
	for _, valid := range []string{"", "detect", "Latn", "Cyrl"} {
		if _, ok := ParseScript(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	if _, ok := ParseScript("Grek"); ok {
		t.Error("expected unknown script to be rejected")
	}
}
