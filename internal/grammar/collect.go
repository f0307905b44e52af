package grammar

import (
	"strings"

	"github.com/korpuslab/docx2dict/internal/diag"
	"github.com/korpuslab/docx2dict/internal/lexeme"
	"github.com/korpuslab/docx2dict/internal/markup"
	"github.com/korpuslab/docx2dict/internal/normalize"
)

// Collect turns matched character sequences into final field values. It
// is the mapping step between the combinator layer and the record types:
// the same options drive plain-text and markup collection.
type Collect struct {
	// Tags, when non-empty, requests a markup tree tracking exactly these
	// attributes; otherwise collection yields plain text.
	Tags []markup.Tag
	// Script selects the normalization table; ScriptDetect guesses from
	// the collected characters themselves.
	Script normalize.Script
	// Strip removes whitespace (or Cutset characters, when set) from both
	// ends before collection.
	Strip  bool
	Cutset string
}

func (c Collect) strip(chars []lexeme.Character) []lexeme.Character {
	if !c.Strip {
		return chars
	}
	if c.Cutset != "" {
		return lexeme.StripCutset(chars, c.Cutset)
	}
	return lexeme.Strip(chars)
}

// Text collects the characters into normalized plain text.
func (c Collect) Text(chars []lexeme.Character, sink diag.Sink) (string, error) {
	opts := normalize.Options{Script: c.Script, Sink: sink}
	opts = normalize.ResolveScript(chars, opts)
	text, err := normalize.Text(chars, opts)
	if err != nil {
		return "", err
	}
	if c.Strip {
		return stripString(text, c.Cutset), nil
	}
	return text, nil
}

// Tree collects the characters into a markup tree over c.Tags.
func (c Collect) Tree(chars []lexeme.Character, sink diag.Sink) (markup.Markup, error) {
	opts := normalize.Options{Script: c.Script, Sink: sink}
	opts = normalize.ResolveScript(chars, opts)
	return markup.Build(c.strip(chars), c.Tags, opts)
}

func stripString(s, cutset string) string {
	if cutset != "" {
		return strings.Trim(s, cutset)
	}
	return strings.TrimSpace(s)
}
