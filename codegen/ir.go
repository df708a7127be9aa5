// Package codegen walks a block graph and emits the source text of a
// webhook server for the target platform. Emission goes through a small
// statement IR rendered by a single indentation-aware backend, so no
// call site ever threads an indent string by hand.
package codegen

import (
	"encoding/json"
	"fmt"
	"strings"
)

type stmtKind int

const (
	kindLine stmtKind = iota
	kindBlank
	kindComment
	kindBlock
)

// Stmt is one node of the emitted-source IR: a literal line, a blank
// separator, a comment, or a braced block with a nested body.
type Stmt struct {
	kind  stmtKind
	text  string
	close string
	body  []Stmt
}

// Line builds a literal statement line.
func Line(format string, args ...any) Stmt {
	if len(args) == 0 {
		return Stmt{kind: kindLine, text: format}
	}
	return Stmt{kind: kindLine, text: fmt.Sprintf(format, args...)}
}

// Blank builds an empty separator line.
func Blank() Stmt {
	return Stmt{kind: kindBlank}
}

// Comment builds a line comment.
func Comment(format string, args ...any) Stmt {
	if len(args) == 0 {
		return Stmt{kind: kindComment, text: format}
	}
	return Stmt{kind: kindComment, text: fmt.Sprintf(format, args...)}
}

// Block builds a braced block: the open line, an indented body, and the
// close line.
func Block(open, close string, body ...Stmt) Stmt {
	return Stmt{kind: kindBlock, text: open, close: close, body: body}
}

// Raw splits pre-rendered multi-line text into literal lines so the
// renderer can indent each one. Used to inline serialized JSON documents.
func Raw(text string) []Stmt {
	lines := strings.Split(text, "\n")
	out := make([]Stmt, 0, len(lines))
	for _, line := range lines {
		out = append(out, Line(line))
	}
	return out
}

const indentUnit = "  "

// Render lowers the IR to source text. Rendering is the only place
// indentation exists.
func Render(stmts []Stmt) string {
	var sb strings.Builder
	renderInto(&sb, stmts, 0)
	return sb.String()
}

func renderInto(sb *strings.Builder, stmts []Stmt, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	for _, s := range stmts {
		switch s.kind {
		case kindBlank:
			sb.WriteString("\n")
		case kindComment:
			sb.WriteString(indent)
			sb.WriteString("// ")
			sb.WriteString(s.text)
			sb.WriteString("\n")
		case kindBlock:
			sb.WriteString(indent)
			sb.WriteString(s.text)
			sb.WriteString("\n")
			renderInto(sb, s.body, depth+1)
			sb.WriteString(indent)
			sb.WriteString(s.close)
			sb.WriteString("\n")
		default:
			sb.WriteString(indent)
			sb.WriteString(s.text)
			sb.WriteString("\n")
		}
	}
}

// jsString renders a JavaScript string literal with JSON escaping rules.
func jsString(value string) string {
	encoded, _ := json.Marshal(value)
	return string(encoded)
}

// jsLiteral renders any JSON-marshalable value as a deterministic
// JavaScript literal (object keys sorted by the encoder).
func jsLiteral(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "null"
	}
	return string(encoded)
}

// jsLiteralIndented renders a nested literal across multiple lines for
// inlining in factory bodies.
func jsLiteralIndented(value any) string {
	encoded, err := json.MarshalIndent(value, "", indentUnit)
	if err != nil {
		return "null"
	}
	return string(encoded)
}
