package resume

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("Python and SQL engineer"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "Python and SQL engineer" {
		t.Errorf("got %q", got)
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.odt")
	var unsupported *ErrUnsupportedFormat
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if unsupported.Ext != ".odt" {
		t.Errorf("Ext = %q", unsupported.Ext)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestExtractDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	writeTestDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills: Python, </w:t></w:r><w:r><w:t>Docker</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(got, "Senior Engineer") {
		t.Errorf("missing heading in %q", got)
	}
	// Runs within one paragraph concatenate without separators.
	if !strings.Contains(got, "Skills: Python, Docker") {
		t.Errorf("run concatenation broken in %q", got)
	}
	// Paragraphs become separate lines.
	if !strings.Contains(got, "Senior Engineer\n") {
		t.Errorf("paragraph break missing in %q", got)
	}
}

func TestExtractDOCXWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()
	f.Close()

	if _, err := ExtractText(path); err == nil {
		t.Error("want error for docx without document.xml")
	}
}

func writeTestDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
