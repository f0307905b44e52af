package grammar

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/korpuslab/docx2dict/internal/diag"
	"github.com/korpuslab/docx2dict/internal/lexeme"
	"github.com/korpuslab/docx2dict/internal/markup"
	"github.com/korpuslab/docx2dict/internal/normalize"
	"github.com/korpuslab/docx2dict/internal/parse"
)

// exampleMarker introduces a usage example inside a sense.
const exampleMarker = '○'

// senseBreakers are the characters that terminate free-running sense and
// example text.
const senseBreakers = ";○"

// Grammar is the compiled combinator graph for one dictionary entry. It
// is built once at startup and is safe for concurrent use: parsers are
// pure functions of their inputs.
type Grammar struct {
	entry parse.Parser[map[string]any]
}

// New compiles the entry grammar. A pattern that fails to compile is a
// malformed grammar and is reported here, before any entry is processed.
func New() (*Grammar, error) {
	headword, err := parse.StyledRun(`\*?[^\s()0-9*]+`, parse.StyleOpts{Bold: parse.TriYes})
	if err != nil {
		return nil, err
	}
	homonym := parse.Opt(parse.StyleTest(func(c lexeme.Character) bool {
		return c.Style.Superscript && unicode.IsDigit(c.Rune)
	}, "homonym index"))

	pronBody, err := parse.StyledRun(`[^()]+`, parse.StyleOpts{})
	if err != nil {
		return nil, err
	}
	pronunciation := parse.Opt(parse.Map(parse.Seq(
		parse.Field{Name: "open", Parser: parse.Any(parse.Literal('('))},
		parse.Field{Name: "body", Parser: parse.Any(pronBody)},
		parse.Field{Name: "close", Parser: parse.Any(parse.Literal(')'))},
	), func(rec map[string]any) []lexeme.Character {
		return parse.Get[[]lexeme.Character](rec, "body")
	}))

	label, err := parse.StyledRun(`[\p{L}.][\p{L}. ]*`, parse.StyleOpts{Italic: parse.TriYes, Bold: parse.TriNo})
	if err != nil {
		return nil, err
	}

	// Translations keep their inline italics, so only boldness (which
	// would mean the next headword bled in) constrains the run.
	senseText, err := parse.StyledRun(`[^`+senseBreakers+`]+`, parse.StyleOpts{Bold: parse.TriNo})
	if err != nil {
		return nil, err
	}
	exampleSource, err := parse.StyledRun(`[^`+senseBreakers+`]+`, parse.StyleOpts{Italic: parse.TriYes})
	if err != nil {
		return nil, err
	}

	example := parse.Seq(
		parse.Field{Name: "marker", Parser: parse.Any(parse.Skip(parse.Literal(exampleMarker)))},
		parse.Field{Name: "source", Parser: parse.Any(exampleSource)},
		parse.Field{Name: "text", Parser: parse.Any(parse.Opt(senseText))},
	)
	sense := parse.Seq(
		parse.Field{Name: "translation", Parser: parse.Any(senseText)},
		parse.Field{Name: "examples", Parser: parse.Any(parse.Many(example))},
		parse.Field{Name: "sep", Parser: parse.Any(parse.Opt(parse.Skip(parse.Literal(';'))))},
	)

	entry := parse.Seq(
		parse.Field{Name: "headword", Parser: parse.Any(headword)},
		parse.Field{Name: "homonym", Parser: parse.Any(homonym)},
		parse.Field{Name: "pronunciation", Parser: parse.Any(pronunciation)},
		parse.Field{Name: "label", Parser: parse.Any(parse.Opt(label))},
		parse.Field{Name: "senses", Parser: parse.Any(parse.Many1(sense))},
	)
	return &Grammar{entry: entry}, nil
}

// Field collectors. The headword and translations are in the document's
// own orthography, so their script is detected per sequence; the
// pronunciation is always the Latin-based phonetic transcription.
var (
	collectHeadword = Collect{Script: normalize.ScriptDetect, Strip: true}
	collectPron     = Collect{Tags: []markup.Tag{markup.Sup, markup.Italic}, Script: normalize.ScriptLatin, Strip: true}
	collectLabel    = Collect{Tags: []markup.Tag{markup.Italic}, Strip: true}
	collectTrans    = Collect{Tags: []markup.Tag{markup.Italic, markup.Sup}, Script: normalize.ScriptDetect, Strip: true}
	collectSource   = Collect{Tags: []markup.Tag{markup.Sup}, Script: normalize.ScriptDetect, Strip: true}
)

// ParseEntry parses one entry buffer into a record.
//
// A *parse.Failure return means the grammar could not match; a
// *normalize.GlyphError means a character could not be read at all. Both
// are scoped to this entry and never affect sibling entries.
func (g *Grammar) ParseEntry(chars []lexeme.Character, sink diag.Sink) (*Entry, error) {
	record, failure := parse.Parse(g.entry, chars)
	if failure != nil {
		return nil, failure
	}
	return g.assemble(record, sink)
}

func (g *Grammar) assemble(record map[string]any, sink diag.Sink) (*Entry, error) {
	var entry Entry

	head, err := collectHeadword.Text(parse.Get[[]lexeme.Character](record, "headword"), sink)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(head, "*") {
		entry.Headword.Assumed = true
		head = strings.TrimPrefix(head, "*")
	}
	entry.Headword.Value = head
	if m := parse.Get[parse.Maybe[lexeme.Character]](record, "homonym"); m.Set && unicode.IsDigit(m.Value.Rune) {
		entry.Headword.HomonymID = int(m.Value.Rune - '0')
	}

	if m := parse.Get[parse.Maybe[[]lexeme.Character]](record, "pronunciation"); m.Set {
		entry.Pronunciation, err = collectPron.Tree(m.Value, sink)
		if err != nil {
			return nil, err
		}
	}
	if m := parse.Get[parse.Maybe[[]lexeme.Character]](record, "label"); m.Set {
		entry.Label, err = collectLabel.Tree(m.Value, sink)
		if err != nil {
			return nil, err
		}
	}

	for _, raw := range parse.Get[[]map[string]any](record, "senses") {
		sense, err := g.assembleSense(raw, sink)
		if err != nil {
			return nil, err
		}
		entry.Senses = append(entry.Senses, sense)
	}
	if entry.Headword.Value == "" {
		return nil, fmt.Errorf("entry with empty headword")
	}
	return &entry, nil
}

func (g *Grammar) assembleSense(record map[string]any, sink diag.Sink) (Sense, error) {
	var sense Sense
	var err error
	sense.Translation, err = collectTrans.Tree(parse.Get[[]lexeme.Character](record, "translation"), sink)
	if err != nil {
		return sense, err
	}
	for _, raw := range parse.Get[[]map[string]any](record, "examples") {
		source, err := collectSource.Tree(parse.Get[[]lexeme.Character](raw, "source"), sink)
		if err != nil {
			return sense, err
		}
		example := Example{Source: source}
		if m := parse.Get[parse.Maybe[[]lexeme.Character]](raw, "text"); m.Set {
			example.Text, err = collectTrans.Tree(m.Value, sink)
			if err != nil {
				return sense, err
			}
		}
		sense.Examples = append(sense.Examples, example)
	}
	return sense, nil
}
