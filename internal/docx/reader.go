package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// documentPath is the main document part inside the OOXML container.
const documentPath = "word/document.xml"

// Reader extracts styled paragraphs from a .docx file.
type Reader struct {
	path   string
	reader *zip.ReadCloser
}

// Open opens a Word document for paragraph extraction. Legacy binary .doc
// files are recognized and rejected with a descriptive error.
func Open(path string) (*Reader, error) {
	f, err := zip.OpenReader(path)
	if err != nil {
		// Not a zip; it may be the legacy OLE container.
		if plain, oerr := os.Open(path); oerr == nil {
			format, _ := DetectFormatFromReader(plain)
			plain.Close()
			if format == FormatDoc {
				return nil, checkLegacyDoc(path)
			}
		}
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return &Reader{path: path, reader: f}, nil
}

// Close releases resources.
func (r *Reader) Close() error {
	if r.reader != nil {
		return r.reader.Close()
	}
	return nil
}

// Paragraphs extracts the document's paragraphs, each as a sequence of
// single-codepoint characters carrying their run's style.
func (r *Reader) Paragraphs() ([][]lexeme.Character, error) {
	var docFile *zip.File
	for _, f := range r.reader.File {
		if f.Name == documentPath {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("no %s in container", documentPath)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", documentPath, err)
	}
	defer rc.Close()

	return extractParagraphs(rc)
}

// run is a maximal stretch of identically formatted text.
type run struct {
	Props *runProps `xml:"rPr"`
	Text  []runText `xml:"t"`
}

type runText struct {
	Value string `xml:",chardata"`
}

type runProps struct {
	Bold      *toggle  `xml:"b"`
	Italic    *toggle  `xml:"i"`
	VertAlign *valAttr `xml:"vertAlign"`
	Color     *valAttr `xml:"color"`
	Fonts     *rFonts  `xml:"rFonts"`
}

// toggle is an OOXML on/off property: present means on unless its val
// attribute disables it.
type toggle struct {
	Val string `xml:"val,attr"`
}

func (t *toggle) on() bool {
	if t == nil {
		return false
	}
	switch strings.ToLower(t.Val) {
	case "0", "false", "off":
		return false
	}
	return true
}

type valAttr struct {
	Val string `xml:"val,attr"`
}

type rFonts struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
	CS    string `xml:"cs,attr"`
}

// extractParagraphs walks the document XML token stream, decoding each
// paragraph's runs in order (including runs nested in hyperlinks and
// other inline wrappers).
func extractParagraphs(src io.Reader) ([][]lexeme.Character, error) {
	dec := xml.NewDecoder(src)
	var paragraphs [][]lexeme.Character
	var current []lexeme.Character
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current = nil
			case "r":
				if !inParagraph {
					continue
				}
				var rn run
				if err := dec.DecodeElement(&rn, &t); err != nil {
					return nil, fmt.Errorf("malformed run: %w", err)
				}
				current = append(current, runCharacters(rn)...)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, current)
				current = nil
				inParagraph = false
			}
		}
	}
	return paragraphs, nil
}

// runCharacters splits a run's text into styled single-codepoint
// characters. Multi-codepoint graphemes become multiple characters
// sharing the run's style.
func runCharacters(rn run) []lexeme.Character {
	style := runStyle(rn.Props)
	var chars []lexeme.Character
	for _, t := range rn.Text {
		for _, r := range t.Value {
			chars = append(chars, lexeme.Character{Rune: r, Style: style})
		}
	}
	return chars
}

func runStyle(props *runProps) lexeme.Style {
	if props == nil {
		return lexeme.Style{}
	}
	style := lexeme.Style{
		Bold:   props.Bold.on(),
		Italic: props.Italic.on(),
	}
	if props.VertAlign != nil {
		switch props.VertAlign.Val {
		case "superscript":
			style.Superscript = true
		case "subscript":
			style.Subscript = true
		}
	}
	if props.Color != nil {
		if c, ok := parseColor(props.Color.Val); ok {
			style.Color = &c
		}
	}
	if props.Fonts != nil {
		style.Font = firstNonEmpty(props.Fonts.ASCII, props.Fonts.HAnsi, props.Fonts.CS)
	}
	return style
}

// parseColor parses an OOXML rrggbb color value. "auto" and malformed
// values count as no explicit color.
func parseColor(v string) (lexeme.RGB, bool) {
	if len(v) != 6 {
		return lexeme.RGB{}, false
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return lexeme.RGB{}, false
	}
	return lexeme.RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
