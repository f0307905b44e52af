// Package markup reconstructs nested inline formatting from flat
// per-character styles and renders it as nested-tag text.
package markup

import (
	"html"
	"strings"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// Tag identifies a formatting attribute tracked by the tree builder.
type Tag string

const (
	Italic Tag = "italic"
	Bold   Tag = "bold"
	Sup    Tag = "sup"
	Sub    Tag = "sub"
	Color  Tag = "color"
)

// Node is one node of a markup tree: either a plain-text leaf or a tagged
// node with ordered children. Only Color nodes carry a payload.
type Node struct {
	// Text is the leaf content; set only when Tag is empty.
	Text string
	// Tag is empty for leaves.
	Tag Tag
	// ColorValue is set only on Color nodes.
	ColorValue *lexeme.RGB
	Children   []Node
}

// LeafNode builds a plain-text leaf.
func LeafNode(text string) Node {
	return Node{Text: text}
}

// IsLeaf reports whether the node is a plain-text leaf.
func (n Node) IsLeaf() bool { return n.Tag == "" }

// Markup is an ordered sequence of top-level markup nodes. A nil or empty
// sequence counts as no markup at all.
type Markup []Node

// Empty reports whether the markup carries no nodes.
func (m Markup) Empty() bool { return len(m) == 0 }

// tagNames maps tags to their external nested-tag names.
var tagNames = map[Tag]string{
	Italic: "i",
	Bold:   "b",
	Sup:    "sup",
	Sub:    "sub",
	Color:  "font",
}

// Render writes the markup in its canonical nested-tag text form. Leaves
// are escaped; the color tag renders as font with a color attribute.
func (m Markup) Render() string {
	var sb strings.Builder
	for _, n := range m {
		renderNode(&sb, n)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n Node) {
	if n.IsLeaf() {
		sb.WriteString(html.EscapeString(n.Text))
		return
	}
	name := tagNames[n.Tag]
	sb.WriteByte('<')
	sb.WriteString(name)
	if n.Tag == Color && n.ColorValue != nil {
		sb.WriteString(` color="`)
		sb.WriteString(n.ColorValue.Hex())
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	for _, child := range n.Children {
		renderNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

// PlainText concatenates the leaf text of the markup in order, dropping
// all tags.
func (m Markup) PlainText() string {
	var sb strings.Builder
	var walk func(n Node)
	walk = func(n Node) {
		if n.IsLeaf() {
			sb.WriteString(n.Text)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range m {
		walk(n)
	}
	return sb.String()
}
