package parse

import (
	"errors"
	"testing"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

func plain(s string) []lexeme.Character {
	return lexeme.FromString(s, lexeme.Style{})
}

func bold(s string) []lexeme.Character {
	return lexeme.FromString(s, lexeme.Style{Bold: true})
}

func TestStyleTest(t *testing.T) {
	isBold := func(c lexeme.Character) bool { return c.Style.Bold }
	p := StyleTest(isBold, "bold character")

	r := p(bold("x"), 0)
	if !r.OK() || r.Next() != 1 {
		t.Error("expected a bold character to match")
	}

	r = p(plain("x"), 0)
	if r.OK() {
		t.Error("expected a plain character to be rejected")
	}
	if at, expected := r.FailedAt(); at != 0 || expected != "bold character" {
		t.Errorf("unexpected failure: at %d, expected %q", at, expected)
	}

	// Whitespace style is cosmetic: it satisfies any predicate.
	r = p(plain(" "), 0)
	if !r.OK() {
		t.Error("expected whitespace to satisfy the style predicate")
	}

	r = p(plain(""), 0)
	if r.OK() {
		t.Error("expected failure at end of input")
	}
}

func TestLiteral(t *testing.T) {
	p := Literal('(')
	if r := p(bold("("), 0); !r.OK() {
		t.Error("expected literal to ignore style")
	}
	if r := p(plain("x"), 0); r.OK() {
		t.Error("expected mismatch to fail")
	}
}

func TestAnyChar(t *testing.T) {
	if r := AnyChar(plain("a"), 0); !r.OK() || r.Value().Rune != 'a' {
		t.Error("expected any character to match")
	}
	if r := AnyChar(plain("a"), 1); r.OK() {
		t.Error("expected failure at end of input")
	}
}

func TestStyledRunLongestMatchWithBackoff(t *testing.T) {
	// The eligible run "ababa" extends past the last full match "abab".
	p := MustStyledRun(`(?:ab)+`, StyleOpts{})
	r := p(plain("ababax"), 0)
	if !r.OK() {
		t.Fatal("expected a match")
	}
	if r.Next() != 4 {
		t.Errorf("expected the longest fully matched prefix (4), got %d", r.Next())
	}
	if got := lexeme.Text(r.Value()); got != "abab" {
		t.Errorf("expected %q, got %q", "abab", got)
	}
}

func TestStyledRunFailsAtRunStart(t *testing.T) {
	p := MustStyledRun(`[0-9]+`, StyleOpts{})
	r := p(plain("abc"), 1)
	if r.OK() {
		t.Fatal("expected failure")
	}
	if at, expected := r.FailedAt(); at != 1 || expected != `[0-9]+` {
		t.Errorf("expected failure at run start with the pattern, got %d %q", at, expected)
	}
}

func TestStyledRunStyleBoundary(t *testing.T) {
	p := MustStyledRun(`\S+`, StyleOpts{Bold: TriYes})
	stream := append(bold("head"), plain("word")...)
	r := p(stream, 0)
	if !r.OK() {
		t.Fatal("expected a match")
	}
	if got := lexeme.Text(r.Value()); got != "head" {
		t.Errorf("expected the run to stop at the style change, got %q", got)
	}
}

func TestStyledRunWhitespacePassesStyle(t *testing.T) {
	// Interior spaces carry default style but must not end a bold run.
	p := MustStyledRun(`[a-z ]+`, StyleOpts{Bold: TriYes})
	stream := append(bold("ab"), plain(" ")...)
	stream = append(stream, bold("cd")...)
	r := p(stream, 0)
	if !r.OK() {
		t.Fatal("expected a match")
	}
	if got := lexeme.Text(r.Value()); got != "ab cd" {
		t.Errorf("expected whitespace to pass the style test, got %q", got)
	}
}

func TestStyledRunColorConstraints(t *testing.T) {
	red := lexeme.RGB{R: 0xff}
	redChars := lexeme.FromString("ab", lexeme.Style{Color: &red})

	exact, _ := StyledRun(`.+`, StyleOpts{ColorMode: ColorExact, Color: red})
	if r := exact(redChars, 0); !r.OK() || r.Next() != 2 {
		t.Error("expected exact color to match")
	}

	absent, _ := StyledRun(`.+`, StyleOpts{ColorMode: ColorAbsent})
	if r := absent(redChars, 0); r.OK() {
		t.Error("expected colored run to fail an absent-color constraint")
	}

	present, _ := StyledRun(`.+`, StyleOpts{ColorMode: ColorPresent})
	if r := present(plain("ab"), 0); r.OK() {
		t.Error("expected uncolored run to fail a present-color constraint")
	}
}

func TestStyledRunMalformedPattern(t *testing.T) {
	_, err := StyledRun(`(unclosed`, StyleOpts{})
	if err == nil {
		t.Fatal("expected an error for a malformed pattern")
	}
	if !errors.Is(err, ErrMalformedGrammar) {
		t.Errorf("expected ErrMalformedGrammar, got %v", err)
	}
}

// Re-running the full pattern against exactly the consumed prefix must
// succeed; the consumed length is self-consistent.
func TestStyledRunConsumedPrefixFullyMatches(t *testing.T) {
	pattern := `[a-z]+[0-9]`
	p := MustStyledRun(pattern, StyleOpts{})
	stream := plain("abc1de")
	r := p(stream, 0)
	if !r.OK() {
		t.Fatal("expected a match")
	}
	again := p(stream[:r.Next()], 0)
	if !again.OK() || again.Next() != r.Next() {
		t.Errorf("expected the consumed prefix to fully match on its own")
	}
}
