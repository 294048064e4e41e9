package session

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/render/sink"
	"github.com/matzehuels/wireframe/pkg/errors"
)

func TestNewSessionIDs(t *testing.T) {
	a, b := New(), New()
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session IDs %q and %q should be unique and non-empty", a.ID, b.ID)
	}
	if len(a.ID) != 36 {
		t.Errorf("ID %q is not a UUID string", a.ID)
	}
}

func TestNoDocument(t *testing.T) {
	s := New()
	if _, err := s.Document(); !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Document() error = %v, want NO_DOCUMENT", err)
	}
	if _, err := s.Layout(); !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Layout() error = %v, want NO_DOCUMENT", err)
	}
	if err := s.Render(sink.NewRecorder()); !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Render() error = %v, want NO_DOCUMENT", err)
	}
}

func TestParseReplacesDocument(t *testing.T) {
	s := New()
	first, err := s.Parse("wireframe\ntext\n")
	if err != nil {
		t.Fatal(err)
	}
	l1, _ := s.Layout()

	second, err := s.Parse("wireframe mobile\nrow\n  text\n  text\n")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("Parse should build a fresh document")
	}
	cur, _ := s.Document()
	if cur != second || s.Revision() != 2 {
		t.Errorf("current = %p (rev %d), want %p (rev 2)", cur, s.Revision(), second)
	}
	l2, _ := s.Layout()
	if l1.Width == l2.Width {
		t.Errorf("layout not recomputed after Parse: %v", l2.Width)
	}
	// The old document is untouched.
	if first.NodeCount() != 1 {
		t.Errorf("first document changed: %d nodes", first.NodeCount())
	}
}

func TestFailedParseClearsDocument(t *testing.T) {
	s := New()
	if _, err := s.Parse("wireframe\ntext\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Layout(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Parse("screen \"Foo\"\n"); !errors.Is(err, errors.ErrCodeMalformedHeader) {
		t.Fatalf("error = %v, want MALFORMED_HEADER", err)
	}

	if doc, err := s.Document(); doc != nil || !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Document() after failed parse = %v, %v; want NO_DOCUMENT", doc, err)
	}
	if _, err := s.Layout(); !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Layout() after failed parse: %v, want NO_DOCUMENT", err)
	}
	if err := s.Render(sink.NewRecorder()); !errors.Is(err, errors.ErrCodeNoDocument) {
		t.Errorf("Render() after failed parse: %v, want NO_DOCUMENT", err)
	}
	if s.Revision() != 1 {
		t.Errorf("revision = %d, want 1", s.Revision())
	}

	if _, err := s.Parse("wireframe\ntext\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Document(); err != nil {
		t.Errorf("next good parse should install a document: %v", err)
	}
}

func TestStrictSession(t *testing.T) {
	s := New(WithStrict())
	_, err := s.Parse("wireframe\ntext bogus\n")
	if !errors.Is(err, errors.ErrCodeUnrecognizedToken) {
		t.Errorf("error = %v, want UNRECOGNIZED_TOKEN", err)
	}
	if _, err := New().Parse("wireframe\ntext bogus\n"); err != nil {
		t.Errorf("lenient parse failed: %v", err)
	}
}

func TestLayoutOptions(t *testing.T) {
	s := New(WithLayoutOptions(layout.WithScreenHeight(300)))
	if _, err := s.Parse("wireframe\ncol\n  text\n"); err != nil {
		t.Fatal(err)
	}
	l, err := s.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if l.Height != 300 {
		t.Errorf("height = %v, want 300", l.Height)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := New(WithLogger(logger), WithRenderOptions(render.WithFontScale(2)))
	if _, err := s.Parse("wireframe\ntext \"Hi\"\n"); err != nil {
		t.Fatal(err)
	}
	rec := sink.NewRecorder()
	if err := s.Render(rec); err != nil {
		t.Fatal(err)
	}
	texts := rec.ByClass("text")
	if len(texts) != 1 || texts[0].Style.FontSize != 28 {
		t.Errorf("text commands = %+v", texts)
	}
	for _, want := range []string{"parsed document", "computed layout", "rendered document"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "login.wf")
	if err := os.WriteFile(path, []byte("wireframe\nbutton \"Go\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	doc, err := s.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.NodeCount() != 1 {
		t.Errorf("nodes = %d, want 1", doc.NodeCount())
	}

	if _, err := s.ParseFile(filepath.Join(dir, "missing.wf")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}
