package codegen

import (
	"fmt"

	"github.com/goliatone/go-botblock"
)

// controlStmts lowers one CONTROL block into handler statements.
// Unrecognized kinds degrade to a commented no-op; the boolean reports
// whether the kind was recognized.
func (g *Generator) controlStmts(data botblock.ControlData) ([]Stmt, bool) {
	switch data.Control {
	case "if":
		condition := data.Condition
		if condition == "" {
			condition = "true"
		}
		return []Stmt{Block(
			"if ("+condition+") {",
			"}",
			Comment("conditional branch"),
		)}, true
	case "loop":
		times := data.Times
		if times < 1 {
			times = 1
		}
		if max := g.limits.MaxLoopIterations; times > max {
			times = max
		}
		return []Stmt{Block(
			fmt.Sprintf("for (let i = 0; i < %d; i++) {", times),
			"}",
			Comment("repeated %d time(s)", times),
		)}, true
	case "delay":
		seconds := data.Seconds
		if seconds <= 0 {
			seconds = 1
		}
		millis := int(seconds * 1000)
		return []Stmt{Line(
			"await new Promise((resolve) => setTimeout(resolve, %d));", millis,
		)}, true
	case "try":
		return []Stmt{Block(
			"try {",
			"} catch (err) { console.error(err); }",
			Comment("guarded section"),
		)}, true
	case "function":
		// the stub itself is emitted top-level; the handler gets the call
		return []Stmt{Line("%s(event);", functionName(data))}, true
	}
	return []Stmt{Comment("unsupported control block: %s", data.Control)}, false
}

// functionStub emits the top-level stub for a named-function control
// block.
func functionStub(data botblock.ControlData) []Stmt {
	return []Stmt{
		Block(
			"function "+functionName(data)+"(event) {",
			"}",
			Comment("not implemented"),
		),
		Blank(),
	}
}

func functionName(data botblock.ControlData) string {
	name := data.Name
	if name == "" || !validIdentifier(name) {
		name = "customFunction"
	}
	return name
}

func validIdentifier(name string) bool {
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return name != ""
}
