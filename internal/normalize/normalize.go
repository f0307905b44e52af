// Package normalize maps styled characters to canonical Unicode text.
//
// The source documents encode phonetic symbols through font-specific glyph
// slots and contain codepoints typed in the wrong keyboard layout. This
// package resolves both, then applies Unicode canonical composition.
package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/korpuslab/docx2dict/internal/diag"
	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// Options selects the normalization behavior for one call.
type Options struct {
	// Script selects the script substitution table. ScriptNone disables
	// script-specific substitution; ScriptDetect defers to DetectScript.
	Script Script
	// NoCompose skips the final canonical composition. The markup builder
	// needs raw output mid-accumulation to keep character offsets intact,
	// composing only when a node is closed.
	NoCompose bool
	// Sink receives advisory diagnostics. Nil means discard.
	Sink diag.Sink
}

func (o Options) sink() diag.Sink {
	if o.Sink == nil {
		return diag.Discard()
	}
	return o.Sink
}

// GlyphError reports a codepoint from a recognized legacy font that has no
// entry in the font's substitution table. The text cannot be guessed, so
// the entry being parsed must be abandoned.
type GlyphError struct {
	Rune rune
	Font string
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("no Unicode symbol matching U+%04X from font %s", e.Rune, e.Font)
}

// Char converts a single character to its normal form.
//
// Whitespace normalizes to one regular space, regardless of style. A
// character typeset in a known phonetic font is resolved through the
// font's table; a miss there is a GlyphError. Otherwise the script and
// always-substitute tables are consulted, with a diagnostic on a hit.
// The output is not composed; callers assembling final text compose it.
func Char(c lexeme.Character, opts Options) (string, error) {
	if c.IsSpace() {
		return " ", nil
	}
	if table, ok := fontTables[c.Style.Font]; ok {
		if repl, ok := table[c.Rune]; ok {
			return repl, nil
		}
		return "", &GlyphError{Rune: c.Rune, Font: c.Style.Font}
	}
	if table, ok := scriptTables[opts.Script]; ok {
		if repl, ok := table[c.Rune]; ok {
			warnReplacement(opts.sink(), c)
			return repl, nil
		}
	}
	if repl, ok := alwaysTable[c.Rune]; ok {
		warnReplacement(opts.sink(), c)
		return repl, nil
	}
	if opts.Script != ScriptNone {
		// Consistency check just in case: a codepoint whose Unicode name
		// belongs to the other script is worth a look.
		if name := runeName(c.Rune); name != "" {
			if foreign := foreignScriptMarker(opts.Script); foreign != "" &&
				strings.Contains(name, foreign) {
				opts.sink().Debugf("unexpected %s in script %s", name, opts.Script)
			}
		}
	}
	return string(c.Rune), nil
}

func warnReplacement(sink diag.Sink, c lexeme.Character) {
	sink.Infof("replaced possibly erroneous symbol %c (U+%04X)", c.Rune, c.Rune)
}

// foreignScriptMarker returns the Unicode name fragment that should not
// appear in text of the given script.
func foreignScriptMarker(s Script) string {
	switch s {
	case ScriptLatin:
		return "CYRILLIC"
	case ScriptCyrillic:
		return "LATIN"
	default:
		return ""
	}
}

// Text collects a character sequence into normalized plain text.
//
// Each character is converted with Char; when Options.Script is
// ScriptDetect the script is detected once for the whole sequence. Unless
// NoCompose is set, the result is put in Unicode canonical composition
// (NFC). Composition may change the string's length even when it is
// visually identical.
func Text(chars []lexeme.Character, opts Options) (string, error) {
	opts = ResolveScript(chars, opts)
	var sb strings.Builder
	for _, c := range chars {
		s, err := Char(c, opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	if opts.NoCompose {
		return sb.String(), nil
	}
	return norm.NFC.String(sb.String()), nil
}

// ResolveScript replaces a ScriptDetect option with the detected script of
// the sequence, reporting the choice to the sink. Other options pass
// through unchanged.
func ResolveScript(chars []lexeme.Character, opts Options) Options {
	if opts.Script != ScriptDetect {
		return opts
	}
	opts.Script = DetectScript(chars)
	opts.sink().Debugf("detected script %s", opts.Script)
	return opts
}
