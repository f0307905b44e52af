// Package docx extracts styled paragraphs from Word documents. It is the
// boundary between the document container and the parsing engine: the
// engine only ever sees sequences of styled characters per paragraph.
package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Format represents a document container format.
type Format int

const (
	FormatUnknown Format = iota
	FormatDocx           // OOXML zip container
	FormatDoc            // legacy Word binary (OLE compound file)
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDocx
	case ".doc":
		return FormatDoc
	default:
		return FormatUnknown
	}
}

// DetectFormatFromReader detects the format by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 4 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	// ZIP magic number (OOXML)
	if buf[0] == 'P' && buf[1] == 'K' {
		return FormatDocx, nil
	}

	// OLE/CFBF magic number (Word 97-2003)
	if buf[0] == 0xD0 && buf[1] == 0xCF && buf[2] == 0x11 && buf[3] == 0xE0 {
		return FormatDoc, nil
	}

	return FormatUnknown, nil
}

// checkLegacyDoc inspects an OLE compound file and returns a descriptive
// error. The legacy binary format is not supported, but naming the
// WordDocument stream confirms to the user what they actually have.
func checkLegacyDoc(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return fmt.Errorf("failed to read OLE container: %w", err)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name == "WordDocument" {
			return fmt.Errorf("%s is a legacy binary .doc (WordDocument stream present); re-save it as .docx", filepath.Base(path))
		}
	}
	return fmt.Errorf("%s is an OLE compound file but not a Word document", filepath.Base(path))
}
