package compat

import (
	"testing"

	"github.com/goliatone/go-botblock"
)

func logicBlock(id string, cat botblock.Category) botblock.Block {
	return botblock.Block{
		ID:       id,
		Category: cat,
		Contexts: []botblock.WorkspaceContext{botblock.ContextLogic},
	}
}

func flexBlock(id string, cat botblock.Category) botblock.Block {
	return botblock.Block{
		ID:       id,
		Category: cat,
		Contexts: []botblock.WorkspaceContext{botblock.ContextFlex},
	}
}

func hasErrorCode(result botblock.ValidationResult, code string) bool {
	for _, d := range result.Errors {
		if d.Code == code {
			return true
		}
	}
	return false
}

func hasWarningCode(result botblock.ValidationResult, code string) bool {
	for _, d := range result.Warnings {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheckRejectsUndeclaredContext(t *testing.T) {
	table := DefaultTable()
	block := logicBlock("evt", botblock.CategoryEvent)

	result := table.Check(block, botblock.ContextFlex, botblock.Graph{Blocks: []botblock.Block{block}})
	if result.Valid {
		t.Fatalf("expected rejection for undeclared context")
	}
	if !hasErrorCode(result, botblock.DiagCodeUnsupportedContext) {
		t.Fatalf("expected unsupported-context code, got %+v", result.Errors)
	}
	if len(result.Suggestions()) == 0 {
		t.Fatalf("expected a repair suggestion")
	}
}

func TestCheckFailsClosedWithoutRule(t *testing.T) {
	table := NewTable(nil)
	block := logicBlock("b1", botblock.CategoryEvent)

	result := table.Check(block, botblock.ContextLogic, botblock.Graph{Blocks: []botblock.Block{block}})
	if result.Valid {
		t.Fatalf("a category without a rule must be valid nowhere")
	}
	if !hasErrorCode(result, botblock.DiagCodeContextNotAllowed) {
		t.Fatalf("expected context-not-allowed code, got %+v", result.Errors)
	}
}

func TestCheckReplyRequiresEvent(t *testing.T) {
	table := DefaultTable()
	reply := logicBlock("r1", botblock.CategoryReply)

	result := table.Check(reply, botblock.ContextLogic, botblock.Graph{Blocks: []botblock.Block{reply}})
	if result.Valid {
		t.Fatalf("a reply without any event must fail")
	}
	if !hasErrorCode(result, botblock.DiagCodeMissingDependency) {
		t.Fatalf("expected missing-dependency code, got %+v", result.Errors)
	}

	event := logicBlock("e1", botblock.CategoryEvent)
	graph := botblock.Graph{Blocks: []botblock.Block{event, reply}}
	result = table.Check(reply, botblock.ContextLogic, graph)
	if !result.Valid {
		t.Fatalf("a reply with an event present should pass: %+v", result.Errors)
	}
}

func TestCheckLayoutRequiresParent(t *testing.T) {
	table := DefaultTable()
	container := flexBlock("c1", botblock.CategoryFlexContainer)
	box := flexBlock("box1", botblock.CategoryFlexLayout)

	graph := botblock.Graph{Blocks: []botblock.Block{container, box}}
	result := table.Check(box, botblock.ContextFlex, graph)
	if result.Valid {
		t.Fatalf("a top-level box must fail")
	}
	if !hasErrorCode(result, botblock.DiagCodeMissingParent) {
		t.Fatalf("expected missing-parent code, got %+v", result.Errors)
	}

	box.ParentID = "c1"
	graph = botblock.Graph{Blocks: []botblock.Block{container, box}}
	result = table.Check(box, botblock.ContextFlex, graph)
	if !result.Valid {
		t.Fatalf("a nested box should pass: %+v", result.Errors)
	}
}

func TestCheckContentRequiresLayout(t *testing.T) {
	table := DefaultTable()
	text := flexBlock("t1", botblock.CategoryFlexContent)
	text.ParentID = "box1"

	graph := botblock.Graph{Blocks: []botblock.Block{text}}
	result := table.Check(text, botblock.ContextFlex, graph)
	if result.Valid {
		t.Fatalf("content without any box in the graph must fail")
	}
	if !hasErrorCode(result, botblock.DiagCodeMissingDependency) {
		t.Fatalf("expected missing-dependency code, got %+v", result.Errors)
	}
}

func TestCheckSiblingContainersWarn(t *testing.T) {
	table := DefaultTable()
	a := flexBlock("c1", botblock.CategoryFlexContainer)
	b := flexBlock("c2", botblock.CategoryFlexContainer)

	graph := botblock.Graph{Blocks: []botblock.Block{a, b}}
	result := table.Check(a, botblock.ContextFlex, graph)
	if !result.Valid {
		t.Fatalf("sibling containers are a soft violation: %+v", result.Errors)
	}
	if !hasWarningCode(result, botblock.DiagCodeForbiddenSibling) {
		t.Fatalf("expected forbidden-sibling warning, got %+v", result.Warnings)
	}
}

func TestCheckSettingCountCapWarns(t *testing.T) {
	table := DefaultTable()
	event := logicBlock("e1", botblock.CategoryEvent)
	a := logicBlock("s1", botblock.CategorySetting)
	b := logicBlock("s2", botblock.CategorySetting)

	graph := botblock.Graph{Blocks: []botblock.Block{event, a, b}}
	result := table.Check(a, botblock.ContextLogic, graph)
	if !result.Valid {
		t.Fatalf("the count cap is a soft violation: %+v", result.Errors)
	}
	if !hasWarningCode(result, botblock.DiagCodeTooManySiblings) {
		t.Fatalf("expected too-many-siblings warning, got %+v", result.Warnings)
	}

	graph = botblock.Graph{Blocks: []botblock.Block{event, a}}
	result = table.Check(a, botblock.ContextLogic, graph)
	if len(result.Warnings) != 0 {
		t.Fatalf("a single setting should not warn: %+v", result.Warnings)
	}
}
