// Package lexeme defines the basic units that are processed while parsing.
//
// The unit of text is a single character (one Unicode codepoint) supplied
// with its formatting information. Compound graphemes are split into
// separate Characters sharing the same style.
package lexeme

import (
	"fmt"
	"unicode"
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style represents the formatting of a single character.
// A zero Style is the default (unstyled) formatting.
type Style struct {
	Font        string // font name, "" if not specified
	Bold        bool
	Italic      bool
	Superscript bool
	Subscript   bool
	Color       *RGB // nil if no explicit color
}

// Equal reports whether two styles have identical attributes.
// Colors are compared by value, not by pointer.
func (s Style) Equal(o Style) bool {
	if s.Font != o.Font || s.Bold != o.Bold || s.Italic != o.Italic ||
		s.Superscript != o.Superscript || s.Subscript != o.Subscript {
		return false
	}
	return colorEqual(s.Color, o.Color)
}

func colorEqual(a, b *RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Character is a single codepoint inside a paragraph together with its style.
type Character struct {
	Rune  rune
	Style Style
}

// IsSpace reports whether the character is whitespace. The style of
// whitespace is cosmetic and is ignored throughout the engine.
func (c Character) IsSpace() bool {
	return unicode.IsSpace(c.Rune)
}
