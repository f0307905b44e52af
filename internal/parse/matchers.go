package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// StyleTest succeeds consuming exactly one character iff pred holds for
// it. Whitespace always satisfies the predicate: the style of purely
// cosmetic spaces inside styled runs is never checked.
func StyleTest(pred func(lexeme.Character) bool, expected string) Parser[lexeme.Character] {
	return func(stream []lexeme.Character, index int) Result[lexeme.Character] {
		if index >= len(stream) {
			return Fail[lexeme.Character](index, expected)
		}
		c := stream[index]
		if c.IsSpace() || pred(c) {
			return Success(index+1, c)
		}
		return Fail[lexeme.Character](index, expected)
	}
}

// Literal matches a single character by codepoint, ignoring style.
func Literal(r rune) Parser[lexeme.Character] {
	expected := string(r)
	return func(stream []lexeme.Character, index int) Result[lexeme.Character] {
		if index < len(stream) && stream[index].Rune == r {
			return Success(index+1, stream[index])
		}
		return Fail[lexeme.Character](index, expected)
	}
}

// AnyChar matches any single character.
func AnyChar(stream []lexeme.Character, index int) Result[lexeme.Character] {
	if index >= len(stream) {
		return Fail[lexeme.Character](index, "any character")
	}
	return Success(index+1, stream[index])
}

// Tri is a three-valued style constraint: unchecked, required, or
// forbidden.
type Tri int

const (
	TriUnchecked Tri = iota
	TriYes
	TriNo
)

func (t Tri) match(v bool) bool {
	switch t {
	case TriYes:
		return v
	case TriNo:
		return !v
	default:
		return true
	}
}

// ColorMode selects how a style's color is constrained.
type ColorMode int

const (
	// ColorUnchecked ignores the color entirely.
	ColorUnchecked ColorMode = iota
	// ColorPresent requires any explicit color.
	ColorPresent
	// ColorAbsent requires no explicit color.
	ColorAbsent
	// ColorExact requires the specific color in StyleOpts.Color.
	ColorExact
)

// StyleOpts constrains the formatting of characters in a styled run.
// Absent constraints are not checked.
type StyleOpts struct {
	Bold      Tri
	Italic    Tri
	ColorMode ColorMode
	Color     lexeme.RGB // consulted only with ColorExact
}

// Pred builds the character predicate for these constraints. Whitespace
// always passes.
func (o StyleOpts) Pred() func(lexeme.Character) bool {
	return func(c lexeme.Character) bool {
		if c.IsSpace() {
			return true
		}
		st := c.Style
		if !o.Bold.match(st.Bold) || !o.Italic.match(st.Italic) {
			return false
		}
		switch o.ColorMode {
		case ColorPresent:
			return st.Color != nil
		case ColorAbsent:
			return st.Color == nil
		case ColorExact:
			return st.Color != nil && *st.Color == o.Color
		default:
			return true
		}
	}
}

// StyledRun matches the longest prefix of a style-constrained character
// run whose text fully matches the given regular expression.
//
// The matcher scans forward while each character satisfies the style
// constraints, tracking the longest prefix at which the pattern matched
// the accumulated text in full. On reaching the end of the eligible run
// it consumes exactly that prefix; the run may extend past the point
// where a full match last held, but only a fully matched prefix is ever
// consumed. If no prefix ever matched in full, the matcher fails at the
// run's start, reporting the pattern.
//
// An invalid pattern is a malformed grammar, reported at construction.
func StyledRun(pattern string, opts StyleOpts) (Parser[[]lexeme.Character], error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrMalformedGrammar, pattern, err)
	}
	pred := opts.Pred()
	return func(stream []lexeme.Character, index int) Result[[]lexeme.Character] {
		var text strings.Builder
		matched := -1
		for j := index; j < len(stream) && pred(stream[j]); j++ {
			text.WriteRune(stream[j].Rune)
			if re.MatchString(text.String()) {
				matched = j + 1
			}
		}
		if matched < 0 {
			return Fail[[]lexeme.Character](index, pattern)
		}
		return Success(matched, stream[index:matched])
	}, nil
}

// MustStyledRun is StyledRun for statically known patterns. It panics on a
// malformed pattern.
func MustStyledRun(pattern string, opts StyleOpts) Parser[[]lexeme.Character] {
	p, err := StyledRun(pattern, opts)
	if err != nil {
		panic(err)
	}
	return p
}
