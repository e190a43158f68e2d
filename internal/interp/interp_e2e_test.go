package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reclipse/spicy/internal/compilation"
	"github.com/reclipse/spicy/internal/interp"
)

func run(t *testing.T, source string) string {
	t.Helper()
	c := compilation.Compile("test.spc", source)
	if c.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", c.Bag.Items())
	}
	rt := interp.New(c.Graph, c.Functions)
	var buf bytes.Buffer
	rt.Out = &buf
	if exc := rt.Run(c.Program); exc != nil {
		t.Fatalf("uncaught exception: %s", exc.String())
	}
	return buf.String()
}

func TestStaticFieldIsSharedAcrossInstances(t *testing.T) {
	src := `
class Counter {
	static total: int = 0;
	def init() {
		Counter.total = Counter.total + 1;
	}
}
Counter();
Counter();
Counter();
print(Counter.total);
`
	out := run(t, src)
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("expected static field to accumulate to 3, got %q", out)
	}
}

func TestIsinstanceAcrossHierarchy(t *testing.T) {
	src := `
abstract class Animal { abstract def speak() -> str; }
class Dog extends Animal { def speak() -> str { return "woof"; } }
d = Dog();
print(isinstance(d, Dog));
print(isinstance(d, Animal));
`
	out := run(t, src)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "True" || lines[1] != "True" {
		t.Fatalf("expected [True True], got %v", lines)
	}
}

func TestIsinstanceAgainstInterface(t *testing.T) {
	src := `
interface Greeter { def greet() -> str; }
class Person implements Greeter { def greet() -> str { return "hi"; } }
p = Person();
print(isinstance(p, Greeter));
`
	out := run(t, src)
	if strings.TrimSpace(out) != "True" {
		t.Fatalf("expected True, got %q", out)
	}
}

func TestDynamicDispatchThroughOverrideTable(t *testing.T) {
	src := `
abstract class Shape { abstract def area() -> float; }
class Square extends Shape {
	def init(side) { self.side = side; }
	def area() -> float { return self.side * self.side; }
}
class Circle extends Shape {
	def init(r) { self.r = r; }
	def area() -> float { return 3.14159 * self.r * self.r; }
}
shapes = [Square(2), Circle(1)];
for s in shapes {
	print(s.area());
}
`
	out := run(t, src)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines of output, got %v", lines)
	}
	if lines[0] != "4" {
		t.Fatalf("expected Square area 4, got %q", lines[0])
	}
}

func TestListAndStringIndexingAndSlicing(t *testing.T) {
	src := `
xs = [1, 2, 3, 4, 5];
print(xs[1:3]);
print(xs[-1]);
s = "hello";
print(s[1:4]);
`
	out := run(t, src)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "[2, 3]" {
		t.Fatalf("expected [2, 3], got %q", lines[0])
	}
	if lines[1] != "5" {
		t.Fatalf("expected 5, got %q", lines[1])
	}
	if lines[2] != "ell" {
		t.Fatalf("expected \"ell\", got %q", lines[2])
	}
}

func TestDictLiteralAndIndex(t *testing.T) {
	src := `
d = {"a": 1, "b": 2};
print(d["b"]);
`
	out := run(t, src)
	if strings.TrimSpace(out) != "2" {
		t.Fatalf("expected 2, got %q", out)
	}
}

func TestRaiseAndUncaughtExceptionSurfaces(t *testing.T) {
	src := `raise ValueError("bad input");`
	c := compilation.Compile("test.spc", src)
	rt := interp.New(c.Graph, c.Functions)
	var buf bytes.Buffer
	rt.Out = &buf
	exc := rt.Run(c.Program)
	if exc == nil {
		t.Fatalf("expected an uncaught exception")
	}
	if exc.ClassName != "ValueError" {
		t.Fatalf("expected ValueError, got %q", exc.ClassName)
	}
}

func TestFStringFixedPointFormatting(t *testing.T) {
	src := `
r = 5;
area = 3.14159265 * r * r;
print(f"area: {area:.2f}");
`
	out := run(t, src)
	if strings.TrimSpace(out) != "area: 78.54" {
		t.Fatalf("expected \"area: 78.54\", got %q", out)
	}
}
