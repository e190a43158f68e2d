package parser

import (
	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/reclipse/spicy/internal/lexer"
	"github.com/reclipse/spicy/internal/token"
)

// fstringPart is one raw piece produced by splitFStringBody: either a
// literal text run, or the text of a brace-delimited interpolation
// (without its braces).
type fstringPart struct {
	isExpr bool
	text   string
}

// splitFStringBody splits an f-string's already brace-balanced body (as
// produced by lexer.Lexer.readFString) into literal and interpolation
// parts, unescaping the `{{`/`}}` doubled-brace forms along the way.
func splitFStringBody(body string) []fstringPart {
	var parts []fstringPart
	var lit []rune
	runes := []rune(body)
	i := 0
	flushLit := func() {
		if len(lit) > 0 {
			parts = append(parts, fstringPart{text: string(lit)})
			lit = nil
		}
	}
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '{' && i+1 < len(runes) && runes[i+1] == '{':
			lit = append(lit, '{')
			i += 2
		case ch == '}' && i+1 < len(runes) && runes[i+1] == '}':
			lit = append(lit, '}')
			i += 2
		case ch == '{':
			flushLit()
			depth := 1
			start := i + 1
			j := start
			for j < len(runes) && depth > 0 {
				switch runes[j] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						goto done
					}
				}
				j++
			}
		done:
			parts = append(parts, fstringPart{isExpr: true, text: string(runes[start:j])})
			i = j + 1
		default:
			lit = append(lit, ch)
			i++
		}
	}
	flushLit()
	return parts
}

// newSubLexer creates a lexer over the text of one interpolated expression.
// Spans inside the sub-expression are relative to that text, not the
// enclosing file; this is an accepted imprecision for nested f-string
// diagnostics (the outer FSTRING token's span still anchors the error to
// the right line).
func newSubLexer(src string, _ token.Position) *lexer.Lexer {
	return lexer.New(src)
}

// formatSpecGrammar is the tiny struct grammar for a format spec's text:
// either empty, or `.` digits followed optionally by `f` or `%` — format
// specs are `.Nf` (fixed-point), `.N%` (percent with N fractional digits),
// or bare. Parsed with participle rather than by hand since it is a small,
// self-contained grammar distinct from the brace-statement grammar the rest
// of this package hand-rolls.
type formatSpecGrammar struct {
	Precision *int    `parser:"( '.' @Int )?"`
	Kind      *string `parser:"@( 'f' | '%' )?"`
}

// formatSpecParser uses its own lexer so that `.2` is read as '.' then Int;
// participle's default text/scanner lexer would read it as one Float token.
var formatSpecParser = participle.MustBuild[formatSpecGrammar](
	participle.Lexer(plexer.MustSimple([]plexer.SimpleRule{
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[.f%]`},
	})),
)

// parseFormatSpec parses spec (the text after ':' in an f-string
// interpolation) into (precision, kind). kind is "" for a bare spec. ok is
// false when spec does not match the supported grammar (§9's Open
// Question: ".2%" support is accepted for v1; anything else is
// unsupported and reported by the caller).
func parseFormatSpec(spec string) (precision int, kind string, ok bool) {
	if spec == "" {
		return 0, "", true
	}
	var out formatSpecGrammar
	if err := formatSpecParser.ParseString("", spec, &out); err != nil {
		return 0, "", false
	}
	if out.Precision != nil {
		precision = *out.Precision
	}
	if out.Kind != nil {
		kind = *out.Kind
	}
	return precision, kind, true
}

// applyFormatSpecText resolves the raw spec text into its parsed form,
// reporting UnsupportedFormatSpec on failure (e.g. a spec the grammar
// above does not recognize).
func (p *Parser) applyFormatSpecText(spec string, span token.Span) (precision int, kind string) {
	precision, kind, ok := parseFormatSpec(spec)
	if !ok {
		p.Bag.Errorf("UnsupportedFormatSpec", span, "unsupported f-string format spec %q", spec)
	}
	return precision, kind
}
