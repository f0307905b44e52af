package lexeme

import "strings"

// FromString converts a string to a sequence of characters sharing one style.
func FromString(s string, style Style) []Character {
	chars := make([]Character, 0, len(s))
	for _, r := range s {
		chars = append(chars, Character{Rune: r, Style: style})
	}
	return chars
}

// Text collects a character sequence into a plain string, dropping all
// formatting. No normalization is applied; see the normalize package for
// the canonical form.
func Text(chars []Character) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Strip removes whitespace characters from both ends of the sequence.
func Strip(chars []Character) []Character {
	return StripFunc(chars, Character.IsSpace)
}

// StripCutset removes characters contained in cutset from both ends.
func StripCutset(chars []Character, cutset string) []Character {
	return StripFunc(chars, func(c Character) bool {
		return strings.ContainsRune(cutset, c.Rune)
	})
}

// StripFunc removes characters satisfying drop from both ends.
func StripFunc(chars []Character, drop func(Character) bool) []Character {
	start := 0
	for start < len(chars) && drop(chars[start]) {
		start++
	}
	end := len(chars)
	for end > start && drop(chars[end-1]) {
		end--
	}
	return chars[start:end]
}

// SplitOn splits the sequence on the given separator rune. Empty fields
// are omitted, matching the behavior of repeated separators.
func SplitOn(chars []Character, sep rune) [][]Character {
	var result [][]Character
	start := 0
	for i, c := range chars {
		if c.Rune == sep {
			if i > start {
				result = append(result, chars[start:i])
			}
			start = i + 1
		}
	}
	if start != len(chars) {
		result = append(result, chars[start:])
	}
	return result
}
