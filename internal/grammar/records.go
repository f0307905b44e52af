// Package grammar composes the matcher primitives and combinators into the
// concrete record shape of the dictionary being extracted. The engine
// itself is agnostic to these shapes; this package is its first consumer.
package grammar

import "github.com/korpuslab/docx2dict/internal/markup"

// Headword is the entry's head form.
type Headword struct {
	Value string
	// HomonymID distinguishes identically spelled entries. Zero when the
	// source carries no superscript index.
	HomonymID int
	// Assumed marks reconstructed head forms, written with a leading
	// asterisk in the source.
	Assumed bool
}

// Example is a usage example with its translation.
type Example struct {
	Source markup.Markup
	Text   markup.Markup
}

// Sense is one meaning of an entry.
type Sense struct {
	Translation markup.Markup
	Examples    []Example
}

// Entry is one parsed dictionary record.
type Entry struct {
	Headword      Headword
	Pronunciation markup.Markup
	Label         markup.Markup
	Senses        []Sense
}
