package codegen

import "testing"

func TestRenderIndentsNestedBlocks(t *testing.T) {
	stmts := []Stmt{
		Block("function f() {", "}",
			Line("const a = 1;"),
			Block("if (a) {", "}",
				Comment("nested"),
			),
		),
	}

	want := "function f() {\n" +
		"  const a = 1;\n" +
		"  if (a) {\n" +
		"    // nested\n" +
		"  }\n" +
		"}\n"
	if got := Render(stmts); got != want {
		t.Fatalf("unexpected rendering:\n%s", got)
	}
}

func TestRenderBlankAndComment(t *testing.T) {
	got := Render([]Stmt{Line("a;"), Blank(), Comment("done %d", 2)})
	want := "a;\n\n// done 2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestJSStringEscapes(t *testing.T) {
	if got := jsString(`he said "hi"`); got != `"he said \"hi\""` {
		t.Fatalf("unexpected escaping: %s", got)
	}
}

func TestJSLiteralSortsKeysDeterministically(t *testing.T) {
	value := map[string]any{"b": 1, "a": 2}
	first := jsLiteral(value)
	if first != `{"a":2,"b":1}` {
		t.Fatalf("expected sorted keys, got %s", first)
	}
	if second := jsLiteral(value); second != first {
		t.Fatalf("literal rendering must be stable")
	}
}
