package diagnostics

import (
	"strings"
	"testing"

	"github.com/reclipse/spicy/internal/token"
)

func span(line, col int) token.Span {
	pos := token.Position{Line: line, Column: col}
	return token.Span{Start: pos, End: pos}
}

func TestBagAddRespectsMaxDiagnostics(t *testing.T) {
	b := &Bag{}
	for i := 0; i < MaxDiagnostics+10; i++ {
		b.Errorf("X", span(1, 1), "dup")
	}
	if len(b.Items()) != MaxDiagnostics {
		t.Fatalf("expected %d items, got %d", MaxDiagnostics, len(b.Items()))
	}
	if !b.Overflowed() {
		t.Fatalf("expected Overflowed to report true past the cap")
	}
}

func TestBagHasErrors(t *testing.T) {
	b := &Bag{}
	b.Warnf("W", span(1, 1), "just a warning")
	if b.HasErrors() {
		t.Fatalf("a bag with only warnings must not report HasErrors")
	}
	b.Errorf("E", span(1, 1), "an error")
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors once an Error-severity diagnostic is added")
	}
}

func TestBagSortBySpanOrdersByLineThenColumn(t *testing.T) {
	b := &Bag{}
	b.Errorf("C", span(3, 1), "third")
	b.Errorf("A", span(1, 5), "first-ish")
	b.Errorf("B", span(1, 2), "first")
	b.SortBySpan()

	items := b.Items()
	if items[0].Code != "B" || items[1].Code != "A" || items[2].Code != "C" {
		t.Fatalf("expected order B, A, C; got %v", codesOf(items))
	}
}

func codesOf(items []Diagnostic) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.Code
	}
	return out
}

func TestFormatIncludesFileLineSeverityCodeAndCaret(t *testing.T) {
	d := Diagnostic{Severity: Error, Code: "Boom", Span: span(2, 3), Message: "kaboom"}
	source := "line one\nline two\n"
	out := Format(d, "test.spc", source, false)

	if !strings.Contains(out, "test.spc:2:3: error[Boom]: kaboom") {
		t.Fatalf("expected header line, got %q", out)
	}
	if !strings.Contains(out, "line two") {
		t.Fatalf("expected source snippet, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret pointer, got %q", out)
	}
}

func TestFormatAllSummarizesMultiple(t *testing.T) {
	items := []Diagnostic{
		{Severity: Error, Code: "A", Span: span(1, 1), Message: "a"},
		{Severity: Warning, Code: "B", Span: span(1, 1), Message: "b"},
	}
	out := FormatAll(items, "test.spc", "x\n", false)
	if !strings.Contains(out, "2 diagnostic(s):") {
		t.Fatalf("expected a summary line, got %q", out)
	}
}

func TestFormatAllEmptyReturnsEmptyString(t *testing.T) {
	if out := FormatAll(nil, "test.spc", "", false); out != "" {
		t.Fatalf("expected empty string for no diagnostics, got %q", out)
	}
}

func TestSeverityString(t *testing.T) {
	if Error.String() != "error" {
		t.Fatalf("expected \"error\", got %q", Error.String())
	}
	if Warning.String() != "warning" {
		t.Fatalf("expected \"warning\", got %q", Warning.String())
	}
}
