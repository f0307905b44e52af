package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r>
        <w:rPr><w:b/></w:rPr>
        <w:t>head</w:t>
      </w:r>
      <w:r>
        <w:t xml:space="preserve"> tail</w:t>
      </w:r>
    </w:p>
    <w:p>
      <w:r>
        <w:rPr>
          <w:i/>
          <w:vertAlign w:val="superscript"/>
          <w:color w:val="ff0000"/>
          <w:rFonts w:ascii="Lingua"/>
        </w:rPr>
        <w:t>x</w:t>
      </w:r>
    </w:p>
  </w:body>
</w:document>`

func writeDocx(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to add document part: %v", err)
	}
	if _, err := w.Write([]byte(document)); err != nil {
		t.Fatalf("failed to write document part: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}
	return path
}

func TestReaderParagraphs(t *testing.T) {
	r, err := Open(writeDocx(t, documentXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer r.Close()

	paragraphs, err := r.Paragraphs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paragraphs))
	}

	first := paragraphs[0]
	if got := lexeme.Text(first); got != "head tail" {
		t.Errorf("expected paragraph text %q, got %q", "head tail", got)
	}
	for i := 0; i < 4; i++ {
		if !first[i].Style.Bold {
			t.Errorf("expected bold character at %d", i)
		}
	}
	if first[4].Style.Bold {
		t.Error("expected the second run to be plain")
	}

	second := paragraphs[1]
	if len(second) != 1 {
		t.Fatalf("expected 1 character, got %d", len(second))
	}
	st := second[0].Style
	if !st.Italic || !st.Superscript || st.Bold || st.Subscript {
		t.Errorf("unexpected style flags: %+v", st)
	}
	if st.Font != "Lingua" {
		t.Errorf("expected font %q, got %q", "Lingua", st.Font)
	}
	if st.Color == nil || (*st.Color != lexeme.RGB{R: 0xff}) {
		t.Errorf("expected red color, got %v", st.Color)
	}
}

func TestExtractParagraphsNestedRuns(t *testing.T) {
	// Runs inside hyperlinks still belong to the enclosing paragraph.
	doc := `<w:document xmlns:w="ns">
  <w:body>
    <w:p>
      <w:r><w:t>see </w:t></w:r>
      <w:hyperlink><w:r><w:t>there</w:t></w:r></w:hyperlink>
    </w:p>
  </w:body>
</w:document>`
	paragraphs, err := extractParagraphs(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paragraphs) != 1 || lexeme.Text(paragraphs[0]) != "see there" {
		t.Errorf("expected %q, got %v", "see there", paragraphs)
	}
}

func TestToggleValues(t *testing.T) {
	doc := `<w:document xmlns:w="ns">
  <w:body>
    <w:p><w:r><w:rPr><w:b w:val="0"/></w:rPr><w:t>a</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>b</w:t></w:r></w:p>
    <w:p><w:r><w:rPr><w:b w:val="1"/></w:rPr><w:t>c</w:t></w:r></w:p>
  </w:body>
</w:document>`
	paragraphs, err := extractParagraphs(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(paragraphs))
	}
	if paragraphs[0][0].Style.Bold || paragraphs[1][0].Style.Bold {
		t.Error("expected disabled toggles to stay off")
	}
	if !paragraphs[2][0].Style.Bold {
		t.Error("expected an explicit 1 to stay on")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  lexeme.RGB
		ok    bool
	}{
		{"ff0000", lexeme.RGB{R: 0xff}, true},
		{"00ff00", lexeme.RGB{G: 0xff}, true},
		{"123456", lexeme.RGB{R: 0x12, G: 0x34, B: 0x56}, true},
		{"auto", lexeme.RGB{}, false},
		{"fff", lexeme.RGB{}, false},
		{"zzzzzz", lexeme.RGB{}, false},
	}
	for _, tt := range tests {
		got, ok := parseColor(tt.value)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseColor(%q): expected %v %v, got %v %v", tt.value, tt.want, tt.ok, got, ok)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.docx", FormatDocx},
		{"a.DOCX", FormatDocx},
		{"a.doc", FormatDoc},
		{"a.txt", FormatUnknown},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q): expected %v, got %v", tt.path, tt.want, got)
		}
	}
}

func TestDetectFormatFromReader(t *testing.T) {
	zipMagic := bytes.NewReader([]byte("PK\x03\x04rest"))
	if f, err := DetectFormatFromReader(zipMagic); err != nil || f != FormatDocx {
		t.Errorf("expected docx, got %v %v", f, err)
	}
	oleMagic := bytes.NewReader([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	if f, err := DetectFormatFromReader(oleMagic); err != nil || f != FormatDoc {
		t.Errorf("expected doc, got %v %v", f, err)
	}
	text := bytes.NewReader([]byte("just text"))
	if f, err := DetectFormatFromReader(text); err != nil || f != FormatUnknown {
		t.Errorf("expected unknown, got %v %v", f, err)
	}
	tiny := bytes.NewReader([]byte("ab"))
	if _, err := DetectFormatFromReader(tiny); err == nil {
		t.Error("expected an error for a too-small file")
	}
}

func TestOpenRejectsNonZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.docx")
	if err := os.WriteFile(path, []byte("not a zip at all"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Error("expected an error opening a non-zip file")
	}
}
