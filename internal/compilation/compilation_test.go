package compilation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reclipse/spicy/internal/interp"
)

// run compiles source and, if it checks clean, executes it, returning
// whatever the program printed to stdout.
func run(t *testing.T, source string) (*Compilation, string) {
	t.Helper()
	c := Compile("test.spc", source)
	if c.Graph == nil {
		return c, ""
	}
	rt := interp.New(c.Graph, c.Functions)
	var buf bytes.Buffer
	rt.Out = &buf
	if exc := rt.Run(c.Program); exc != nil {
		t.Fatalf("uncaught exception: %s", exc.String())
	}
	return c, buf.String()
}

func codes(c *Compilation) []string {
	var out []string
	for _, d := range c.Bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func hasCode(c *Compilation, code string) bool {
	for _, got := range codes(c) {
		if got == code {
			return true
		}
	}
	return false
}

// Scenario 1: overriding an abstract method in a concrete subclass and
// calling it produces the override's result with zero diagnostics.
func TestScenarioOverrideAbstractMethod(t *testing.T) {
	src := `
abstract class A { abstract def m() -> int; }
class B extends A { def m() -> int { return 1; } }
print(B().m());
`
	c, out := run(t, src)
	if c.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", codes(c))
	}
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("expected output \"1\", got %q", out)
	}
}

// Scenario 2: a concrete class that does not implement an inherited
// abstract method is ConcreteClassHasAbstractMembers.
func TestScenarioConcreteClassHasAbstractMembers(t *testing.T) {
	src := `
abstract class A { abstract def m() -> int; }
class B extends A {}
B();
`
	c := Compile("test.spc", src)
	if !hasCode(c, "ConcreteClassHasAbstractMembers") {
		t.Fatalf("expected ConcreteClassHasAbstractMembers, got %v", codes(c))
	}
}

// Scenario 3: extending a final class is ExtendsFinalClass.
func TestScenarioExtendsFinalClass(t *testing.T) {
	src := `
final class F {}
class G extends F {}
`
	c := Compile("test.spc", src)
	if !hasCode(c, "ExtendsFinalClass") {
		t.Fatalf("expected ExtendsFinalClass, got %v", codes(c))
	}
}

// Scenario 4: redefining a final method in a descendant is
// OverrideOfFinalMethod.
func TestScenarioOverrideOfFinalMethod(t *testing.T) {
	src := `
class P { final def m() -> int { return 1; } }
class C extends P { def m() -> int { return 2; } }
`
	c := Compile("test.spc", src)
	if !hasCode(c, "OverrideOfFinalMethod") {
		t.Fatalf("expected OverrideOfFinalMethod, got %v", codes(c))
	}
}

// Scenario 5: implementing an interface method with a mismatched return
// type is OverrideSignatureMismatch.
func TestScenarioInterfaceSignatureMismatch(t *testing.T) {
	src := `
interface I { def f() -> int; }
class K implements I { def f() -> str { return "x"; } }
`
	c := Compile("test.spc", src)
	if !hasCode(c, "OverrideSignatureMismatch") {
		t.Fatalf("expected OverrideSignatureMismatch, got %v", codes(c))
	}
}

func TestAbstractInstantiationDirect(t *testing.T) {
	src := `
abstract class A { abstract def m() -> int; }
A();
`
	c := Compile("test.spc", src)
	if !hasCode(c, "AbstractInstantiation") {
		t.Fatalf("expected AbstractInstantiation, got %v", codes(c))
	}
}

func TestSuperInitCallsParentConstructor(t *testing.T) {
	src := `
class Animal {
	def init(name) {
		self.name = name;
	}
}
class Dog extends Animal {
	def init(name) {
		super(name);
	}
}
d = Dog("Rex");
print(d.name);
`
	c, out := run(t, src)
	if c.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", codes(c))
	}
	if strings.TrimSpace(out) != "Rex" {
		t.Fatalf("expected \"Rex\", got %q", out)
	}
}

func TestMissingSuperInitIsErrorWhenParentTakesArgs(t *testing.T) {
	src := `
class Animal {
	def init(name) {
		self.name = name;
	}
}
class Dog extends Animal {
	def init(name) {
		self.breed = name;
	}
}
`
	c := Compile("test.spc", src)
	var sev string
	for _, d := range c.Bag.Items() {
		if d.Code == "MissingSuperInit" {
			sev = d.Severity.String()
		}
	}
	if sev != "error" {
		t.Fatalf("expected MissingSuperInit to be an error, got %q (diagnostics: %v)", sev, codes(c))
	}
}

func TestMissingSuperInitIsWarningWhenParentTakesNoArgs(t *testing.T) {
	src := `
class Animal {
	def init() {
		self.legs = 4;
	}
}
class Dog extends Animal {
	def init(name) {
		self.name = name;
	}
}
`
	c := Compile("test.spc", src)
	var sev string
	for _, d := range c.Bag.Items() {
		if d.Code == "MissingSuperInit" {
			sev = d.Severity.String()
		}
	}
	if sev != "warning" {
		t.Fatalf("expected MissingSuperInit to be a warning, got %q (diagnostics: %v)", sev, codes(c))
	}
}

func TestStaticMemberCannotReferenceSelf(t *testing.T) {
	src := `
class Counter {
	static def bump() {
		self.count = 1;
	}
}
`
	c := Compile("test.spc", src)
	if !hasCode(c, "StaticUsesSelf") {
		t.Fatalf("expected StaticUsesSelf, got %v", codes(c))
	}
}

func TestDuplicateDeclarationAtTopLevel(t *testing.T) {
	src := `
class A {}
class A {}
`
	c := Compile("test.spc", src)
	if !hasCode(c, "DuplicateDeclaration") {
		t.Fatalf("expected DuplicateDeclaration, got %v", codes(c))
	}
}
