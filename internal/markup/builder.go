package markup

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/korpuslab/docx2dict/internal/lexeme"
	"github.com/korpuslab/docx2dict/internal/normalize"
)

// asserted reports whether the style asserts the attribute.
func asserted(tag Tag, st lexeme.Style) bool {
	switch tag {
	case Italic:
		return st.Italic
	case Bold:
		return st.Bold
	case Sup:
		return st.Superscript
	case Sub:
		return st.Subscript
	case Color:
		return st.Color != nil
	default:
		return false
	}
}

// attrVal is a style's projection onto one tracked attribute.
type attrVal struct {
	on    bool
	color *lexeme.RGB // recorded only for the color attribute
}

func project(tracked []Tag, st lexeme.Style) []attrVal {
	proj := make([]attrVal, len(tracked))
	for i, tag := range tracked {
		proj[i].on = asserted(tag, st)
		if tag == Color {
			proj[i].color = st.Color
		}
	}
	return proj
}

func projEqual(a, b []attrVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].on != b[i].on || !rgbEqual(a[i].color, b[i].color) {
			return false
		}
	}
	return true
}

func rgbEqual(a, b *lexeme.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// frame is one open context on the builder stack. frame zero is the
// implicit untagged root.
type frame struct {
	tag      Tag
	color    *lexeme.RGB
	children []Node
}

// matches reports whether the frame's tag is still asserted by the style,
// with color frames additionally requiring the same color value.
func (f *frame) matches(st lexeme.Style) bool {
	if !asserted(f.tag, st) {
		return false
	}
	if f.tag == Color {
		return rgbEqual(f.color, st.Color)
	}
	return true
}

type builder struct {
	chars   []lexeme.Character
	tracked []Tag
	opts    normalize.Options
	i, j    int // pending segment start and scan position
	stack   []*frame
	err     error
}

// Build transforms a character sequence into a markup tree, accounting
// only for the given tracked attributes.
//
// The builder keeps a stack of open formatting contexts. Whitespace never
// opens or closes a context. When a character's projection onto the
// tracked attributes changes, the shallowest stack level no longer
// asserted closes first, taking every deeper level with it; attributes
// newly asserted then open fresh contexts. Trailing whitespace of the
// pending text stays outside the closing node and is carried into the next
// segment. Normalization composes each flushed leaf, never the text being
// accumulated, so character offsets stay valid during the scan.
func Build(chars []lexeme.Character, tracked []Tag, opts normalize.Options) (Markup, error) {
	opts = normalize.ResolveScript(chars, opts)
	opts.NoCompose = true
	b := &builder{
		chars:   chars,
		tracked: tracked,
		opts:    opts,
		stack:   []*frame{{}},
	}
	var active []attrVal
	for b.j < len(chars) {
		c := chars[b.j]
		if !c.IsSpace() {
			proj := project(tracked, c.Style)
			if active == nil || !projEqual(proj, active) {
				lowest := 0
				for l := len(b.stack) - 1; l >= 1; l-- {
					if !b.stack[l].matches(c.Style) {
						lowest = l
					}
				}
				if lowest > 0 {
					b.collapse(lowest)
				}
				for k, tag := range tracked {
					if !proj[k].on || b.open(tag) {
						continue
					}
					b.flush(false)
					f := &frame{tag: tag}
					if tag == Color {
						f.color = c.Style.Color
					}
					b.stack = append(b.stack, f)
				}
				active = proj
			}
		}
		if b.err != nil {
			return nil, b.err
		}
		b.j++
	}
	b.collapse(1)
	if b.err != nil {
		return nil, b.err
	}
	return Markup(b.stack[0].children), nil
}

// open reports whether a context with the tag is already on the stack.
func (b *builder) open(tag Tag) bool {
	for _, f := range b.stack[1:] {
		if f.tag == tag {
			return true
		}
	}
	return false
}

// flush appends the pending text segment as a leaf under the deepest open
// context. With closing set, trailing whitespace is excluded from the leaf
// and left for the next segment, so a closing node never ends with blank
// space it did not own.
func (b *builder) flush(closing bool) {
	if b.j == b.i || b.err != nil {
		return
	}
	text, err := normalize.Text(b.chars[b.i:b.j], b.opts)
	if err != nil {
		b.err = err
		return
	}
	if closing {
		stripped := strings.TrimRight(text, " ")
		b.i = b.j - (len(text) - len(stripped))
		text = stripped
	} else {
		b.i = b.j
	}
	if text == "" {
		return
	}
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, LeafNode(norm.NFC.String(text)))
}

// collapse flushes the pending segment and closes stack levels down to
// (and including) lowest, wrapping each popped level's children into its
// node under the new parent.
func (b *builder) collapse(lowest int) {
	b.flush(true)
	for len(b.stack) > lowest {
		f := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		top := b.stack[len(b.stack)-1]
		top.children = append(top.children, Node{
			Tag:        f.tag,
			ColorValue: f.color,
			Children:   f.children,
		})
	}
}
