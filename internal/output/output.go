// Package output serializes parsed records for the user. Keys are emitted
// in a fixed reading order and keys with empty values are dropped, so the
// result stays close to what a lexicographer expects to scan.
package output

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/korpuslab/docx2dict/internal/grammar"
	"github.com/korpuslab/docx2dict/internal/markup"
)

// fieldOrder sorts record keys for the user's convenience. Keys absent
// from the table sort last.
var fieldOrder = map[string]int{
	// entry
	"headword":      0,
	"pronunciation": 1,
	"label":         2,
	"senses":        3,

	// headword
	"value":      10,
	"homonym_id": 20,
	"assumed":    30,

	// sense
	"translation": 50,
	"examples":    60,

	// example
	"source": 0,
	"text":   30,

	// kept failure
	"entry": 0,
	"error": 10,
}

const defaultOrder = 100

// EntryFailure is a failed entry kept in the output: its diagnostic label
// and the error that stopped it.
type EntryFailure struct {
	Label   string
	Message string
}

// Marshal renders the entries as a YAML sequence.
func Marshal(entries []*grammar.Entry) ([]byte, error) {
	return MarshalWithFailures(entries, nil)
}

// MarshalWithFailures renders the entries as a YAML sequence, followed by
// one record per failed entry carrying its label and error message.
func MarshalWithFailures(entries []*grammar.Entry, failures []EntryFailure) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range entries {
		seq.Content = append(seq.Content, entryNode(e))
	}
	for _, f := range failures {
		seq.Content = append(seq.Content, mapping([]field{
			{"entry", strNode(f.Label)},
			{"error", strNode(f.Message)},
		}))
	}
	data, err := yaml.Marshal(seq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}
	return data, nil
}

type field struct {
	key  string
	node *yaml.Node
}

// mapping builds a mapping node from the fields, dropping empty values
// and sorting keys by fieldOrder.
func mapping(fields []field) *yaml.Node {
	kept := fields[:0]
	for _, f := range fields {
		if f.node != nil {
			kept = append(kept, f)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return orderOf(kept[i].key) < orderOf(kept[j].key)
	})
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range kept {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.key},
			f.node)
	}
	return m
}

func orderOf(key string) int {
	if o, ok := fieldOrder[key]; ok {
		return o
	}
	return defaultOrder
}

func entryNode(e *grammar.Entry) *yaml.Node {
	return mapping([]field{
		{"headword", headwordNode(e.Headword)},
		{"pronunciation", markupNode(e.Pronunciation)},
		{"label", markupNode(e.Label)},
		{"senses", sensesNode(e.Senses)},
	})
}

func headwordNode(h grammar.Headword) *yaml.Node {
	return mapping([]field{
		{"value", strNode(h.Value)},
		{"homonym_id", intNode(h.HomonymID)},
		{"assumed", boolNode(h.Assumed)},
	})
}

func sensesNode(senses []grammar.Sense) *yaml.Node {
	if len(senses) == 0 {
		return nil
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range senses {
		seq.Content = append(seq.Content, mapping([]field{
			{"translation", markupNode(s.Translation)},
			{"examples", examplesNode(s.Examples)},
		}))
	}
	return seq
}

func examplesNode(examples []grammar.Example) *yaml.Node {
	if len(examples) == 0 {
		return nil
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, x := range examples {
		seq.Content = append(seq.Content, mapping([]field{
			{"source", markupNode(x.Source)},
			{"text", markupNode(x.Text)},
		}))
	}
	return seq
}

// markupNode renders markup in its canonical nested-tag text form.
func markupNode(m markup.Markup) *yaml.Node {
	if m.Empty() {
		return nil
	}
	return strNode(m.Render())
}

func strNode(s string) *yaml.Node {
	if s == "" {
		return nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func intNode(n int) *yaml.Node {
	if n == 0 {
		return nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

func boolNode(b bool) *yaml.Node {
	if !b {
		return nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
}
