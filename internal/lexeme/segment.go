package lexeme

// DefaultContinuations are the section-continuation marker glyphs. A bold
// paragraph opening with one of these continues the previous entry rather
// than starting a new one.
const DefaultContinuations = "♦●○"

// minEntryChars is the shortest paragraph that can be entry content.
// Shorter paragraphs are treated as separators between entries.
const minEntryChars = 3

// Segmenter groups paragraphs into entry-sized character buffers.
type Segmenter struct {
	// Continuations overrides DefaultContinuations when non-empty.
	Continuations string
}

func (s *Segmenter) continuations() string {
	if s.Continuations != "" {
		return s.Continuations
	}
	return DefaultContinuations
}

// Segment groups a document's paragraphs into entries.
//
// A paragraph shorter than three characters is never entry content: it
// flushes the accumulating entry, if any, and is discarded. A qualifying
// paragraph whose first character is bold and is not a continuation marker
// starts a new entry. Any other qualifying paragraph continues the current
// entry, joined with a synthetic newline of default style.
func (s *Segmenter) Segment(paragraphs [][]Character) [][]Character {
	var entries [][]Character
	var buf []Character
	flush := func() {
		if len(buf) > 0 {
			entries = append(entries, buf)
			buf = nil
		}
	}
	for _, chars := range paragraphs {
		switch {
		case len(chars) < minEntryChars:
			flush()
		case chars[0].Style.Bold && !s.isContinuation(chars[0].Rune):
			flush()
			buf = append([]Character(nil), chars...)
		default:
			buf = append(buf, Character{Rune: '\n'})
			buf = append(buf, chars...)
		}
	}
	flush()
	return entries
}

func (s *Segmenter) isContinuation(r rune) bool {
	for _, m := range s.continuations() {
		if r == m {
			return true
		}
	}
	return false
}

// Segment groups paragraphs into entries using the default continuation
// markers.
func Segment(paragraphs [][]Character) [][]Character {
	var s Segmenter
	return s.Segment(paragraphs)
}
