package lexer

import (
	"testing"

	"github.com/reclipse/spicy/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `class Shape {
		def area() -> float { return 0.0; }
	}`

	tests := []struct {
		expectedLiteral string
		expectedKind    token.Kind
	}{
		{"class", token.CLASS},
		{"Shape", token.IDENT},
		{"{", token.LBRACE},
		{"def", token.DEF},
		{"area", token.IDENT},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"->", token.ARROW},
		{"float", token.IDENT},
		{"{", token.LBRACE},
		{"return", token.RETURN},
		{"0.0", token.FLOAT},
		{";", token.SEMICOLON},
		{"}", token.RBRACE},
		{"}", token.RBRACE},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (literal=%q)", i, tt.expectedKind, tok.Kind, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `interface class abstract final static extends implements def return
	if elif else for in while not and or is None True False self super pass raise import from`

	expected := []token.Kind{
		token.INTERFACE, token.CLASS, token.ABSTRACT, token.FINAL, token.STATIC, token.EXTENDS,
		token.IMPLEMENTS, token.DEF, token.RETURN, token.IF, token.ELIF, token.ELSE, token.FOR,
		token.IN, token.WHILE, token.NOT, token.AND, token.OR, token.IS, token.NONE, token.TRUE,
		token.FALSE, token.SELF, token.SUPER, token.PASS, token.RAISE, token.IMPORT, token.FROM,
		token.EOF,
	}

	l := New(input)
	for i, kind := range expected {
		tok := l.NextToken()
		if tok.Kind != kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (literal=%q)", i, kind, tok.Kind, tok.Literal)
		}
	}
}

func TestCaseSensitiveKeywords(t *testing.T) {
	// Spy is case-sensitive: "Class" and "IF" are plain identifiers.
	l := New(`Class IF none`)
	for _, want := range []string{"Class", "IF", "none"} {
		tok := l.NextToken()
		if tok.Kind != token.IDENT || tok.Literal != want {
			t.Fatalf("expected IDENT %q, got %s %q", want, tok.Kind, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % ** += -= *= /= = == != < <= > >= ->`
	expected := []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.POWER,
		token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.ASSIGN, token.EQ, token.NOT_EQ, token.LESS, token.LESS_EQ, token.GREATER,
		token.GREATER_EQ, token.ARROW, token.EOF,
	}
	l := New(input)
	for i, kind := range expected {
		tok := l.NextToken()
		if tok.Kind != kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (literal=%q)", i, kind, tok.Kind, tok.Literal)
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	l := New(`"a\nb\tc\\d\"e"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Kind)
	}
	want := "a\nb\tc\\d\"e"
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != "UnterminatedString" {
		t.Fatalf("expected one UnterminatedString error, got %v", errs)
	}
}

func TestFStringBraceBalancing(t *testing.T) {
	// A literal brace pair `{{`/`}}` must not be treated as interpolation,
	// and the raw body, including the `:.2f` format spec, is returned
	// unchanged.
	l := New(`f"{{literal}} {value:.2f}"`)
	tok := l.NextToken()
	if tok.Kind != token.FSTRING {
		t.Fatalf("expected FSTRING, got %s", tok.Kind)
	}
	want := `{{literal}} {value:.2f}`
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.INT},
		{"3.14", token.FLOAT},
		{"1e10", token.FLOAT},
		{"1e+10", token.FLOAT},
		{"2.5e-3", token.FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Kind != tt.kind || tok.Literal != tt.input {
			t.Fatalf("input %q: expected %s %q, got %s %q", tt.input, tt.kind, tt.input, tok.Kind, tok.Literal)
		}
	}
}

func TestNumberFollowedByIdentifierIsNotExponent(t *testing.T) {
	// "1e" with no digits after the 'e' must back out so 'e' re-tokenizes
	// as the start of a following identifier, not get swallowed into a
	// malformed exponent.
	l := New(`1e`)
	tok := l.NextToken()
	if tok.Kind != token.INT || tok.Literal != "1" {
		t.Fatalf("expected INT \"1\", got %s %q", tok.Kind, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "e" {
		t.Fatalf("expected IDENT \"e\", got %s %q", tok.Kind, tok.Literal)
	}
}

func TestBOMIsStripped(t *testing.T) {
	l := New("\xEF\xBB\xBFclass A {}")
	tok := l.NextToken()
	if tok.Kind != token.CLASS {
		t.Fatalf("expected CLASS as first token after BOM, got %s", tok.Kind)
	}
}

func TestLineComment(t *testing.T) {
	l := New("x # a comment\ny")
	tok := l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT x, got %s %q", tok.Kind, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Kind != token.IDENT || tok.Literal != "y" {
		t.Fatalf("expected IDENT y, got %s %q", tok.Kind, tok.Literal)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New(`a b c`)
	first := l.Peek(0)
	second := l.Peek(1)
	if first.Literal != "a" || second.Literal != "b" {
		t.Fatalf("unexpected peek results: %q, %q", first.Literal, second.Literal)
	}
	if got := l.NextToken(); got.Literal != "a" {
		t.Fatalf("expected NextToken to still return 'a', got %q", got.Literal)
	}
	if got := l.NextToken(); got.Literal != "b" {
		t.Fatalf("expected NextToken to return 'b' next, got %q", got.Literal)
	}
}

func TestPositionTracking(t *testing.T) {
	l := New("ab\ncd")
	tok := l.NextToken() // "ab"
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Fatalf("expected ab at 1:1, got %s", tok.Span.Start)
	}
	tok = l.NextToken() // "cd"
	if tok.Span.Start.Line != 2 {
		t.Fatalf("expected cd on line 2, got line %d", tok.Span.Start.Line)
	}
}

func TestStrayCharacter(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Code != "StrayCharacter" {
		t.Fatalf("expected one StrayCharacter error, got %v", errs)
	}
}
