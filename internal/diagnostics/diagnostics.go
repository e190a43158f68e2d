// Package diagnostics implements the Diagnostic entity (§3) and the
// compiler's error-bag and pretty-printing: each diagnostic carries a
// severity, a stable code, and optional note frames.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reclipse/spicy/internal/token"
)

// Severity is how serious a Diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one compiler-emitted message attached to at least one span.
type Diagnostic struct {
	Severity Severity
	Code     string
	Span     token.Span
	Message  string
	Notes    []string
}

// MaxDiagnostics bounds the size of a single Bag (§5, advisory resource
// limit: "diagnostic count capped (e.g., 1000) to avoid runaway error
// floods").
const MaxDiagnostics = 1000

// Bag accumulates diagnostics for one Compilation. It is the single shared
// mutable resource in the pipeline (§5); phases append to it in the order
// they run and never remove entries.
type Bag struct {
	items    []Diagnostic
	overflow bool
}

// Add appends a diagnostic, unless the bag has already hit MaxDiagnostics.
func (b *Bag) Add(d Diagnostic) {
	if len(b.items) >= MaxDiagnostics {
		b.overflow = true
		return
	}
	b.items = append(b.items, d)
}

// Errorf appends an Error-severity diagnostic built from a format string.
func (b *Bag) Errorf(code string, span token.Span, format string, args ...any) {
	b.Add(Diagnostic{Severity: Error, Code: code, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Warnf appends a Warning-severity diagnostic built from a format string.
func (b *Bag) Warnf(code string, span token.Span, format string, args ...any) {
	b.Add(Diagnostic{Severity: Warning, Code: code, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Items returns the accumulated diagnostics in append order.
func (b *Bag) Items() []Diagnostic { return b.items }

// Overflowed reports whether MaxDiagnostics was reached and some
// diagnostics were silently dropped.
func (b *Bag) Overflowed() bool { return b.overflow }

// HasErrors reports whether any Error-severity diagnostic is present.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// SortBySpan orders diagnostics by span start, the stable ordering the
// Modifier Checker (§4.6) and the monotonic-diagnostics property (§8)
// require.
func (b *Bag) SortBySpan() {
	sort.SliceStable(b.items, func(i, j int) bool {
		a, c := b.items[i].Span.Start, b.items[j].Span.Start
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		return a.Column < c.Column
	})
}

// Format renders one diagnostic as
// `file:line:col: severity[CODE]: message`, followed by a caret-pointer
// source snippet and, when verbose, any note frames.
func Format(d Diagnostic, file, source string, verbose bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s[%s]: %s\n", file, d.Span.Start.Line, d.Span.Start.Column, d.Severity, d.Code, d.Message)

	if line := sourceLine(source, d.Span.Start.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Span.Start.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := d.Span.Start.Column
		if col < 1 {
			col = 1
		}
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		sb.WriteString("^\n")
	}

	if verbose {
		for _, note := range d.Notes {
			fmt.Fprintf(&sb, "  note: %s\n", note)
		}
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders every diagnostic in the bag, plus a summary line when
// there is more than one.
func FormatAll(items []Diagnostic, file, source string, verbose bool) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return Format(items[0], file, source, verbose)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d diagnostic(s):\n\n", len(items))
	for i, d := range items {
		sb.WriteString(Format(d, file, source, verbose))
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
