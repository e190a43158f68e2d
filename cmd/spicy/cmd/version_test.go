package cmd

import "testing"

func TestGrammarCompatibleAcceptsNewerAndEqual(t *testing.T) {
	if !grammarCompatible("v1.0.0") {
		t.Fatalf("expected v1.0.0 to be compatible with itself")
	}
	if !grammarCompatible("v1.2.0") {
		t.Fatalf("expected a newer grammar version to be compatible")
	}
}

func TestGrammarCompatibleRejectsOlder(t *testing.T) {
	if grammarCompatible("v0.9.0") {
		t.Fatalf("expected an older grammar version to be rejected")
	}
}

func TestGrammarCompatibleIgnoresMalformedVersion(t *testing.T) {
	if !grammarCompatible("not-a-version") {
		t.Fatalf("expected a malformed declared version to be treated as compatible")
	}
}

func TestDeclaredGrammarVersionParsesPragma(t *testing.T) {
	v, ok := declaredGrammarVersion("# version: v1.2.0\nclass A {}")
	if !ok || v != "v1.2.0" {
		t.Fatalf("expected v1.2.0, got %q, %v", v, ok)
	}
}

func TestDeclaredGrammarVersionAbsent(t *testing.T) {
	_, ok := declaredGrammarVersion("class A {}")
	if ok {
		t.Fatalf("expected no declared version for a script without the pragma")
	}
}
