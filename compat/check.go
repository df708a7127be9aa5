package compat

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-botblock"
)

// Check decides whether block may occupy ctx within graph. The check is
// two-stage: the block's own declared contexts first, then the category
// rule. Hard violations (placement, dependency, parent) land in Errors;
// sibling co-occurrence and count violations are soft and land in
// Warnings so an editor can still render the drop while flagging it.
func (t *Table) Check(block botblock.Block, ctx botblock.WorkspaceContext, graph botblock.Graph) botblock.ValidationResult {
	result := botblock.OK()

	if !block.SupportsContext(ctx) {
		result.Add(botblock.Diagnostic{
			Code:       botblock.DiagCodeUnsupportedContext,
			Severity:   botblock.SeverityError,
			Message:    fmt.Sprintf("block %q does not support the %s workspace", block.Type, ctx),
			BlockID:    block.ID,
			Suggestion: supportSuggestion(block),
		})
		return result
	}

	rule, ok := t.Lookup(block.Category)
	if !ok {
		// fail closed: a category without a rule is valid nowhere
		result.Add(botblock.Diagnostic{
			Code:       botblock.DiagCodeContextNotAllowed,
			Severity:   botblock.SeverityError,
			Message:    fmt.Sprintf("no compatibility rule for category %s", block.Category),
			BlockID:    block.ID,
			Suggestion: "remove this block or register a compatibility rule for its category",
		})
		return result
	}

	if !rule.allows(ctx) {
		result.Add(botblock.Diagnostic{
			Code:       botblock.DiagCodeContextNotAllowed,
			Severity:   botblock.SeverityError,
			Message:    fmt.Sprintf("category %s is not allowed in the %s workspace", block.Category, ctx),
			BlockID:    block.ID,
			Suggestion: fmt.Sprintf("move this block to the %s workspace", contextList(rule.AllowedIn)),
		})
		return result
	}

	for _, dep := range rule.Dependencies {
		if !graphHasCategory(graph, dep, block.ID) {
			result.Add(botblock.Diagnostic{
				Code:       botblock.DiagCodeMissingDependency,
				Severity:   botblock.SeverityError,
				Message:    fmt.Sprintf("category %s requires a %s block in the same graph", block.Category, dep),
				BlockID:    block.ID,
				Suggestion: dependencySuggestion(dep),
			})
		}
	}

	if rule.Restrictions.RequiresParent && block.ParentID == "" {
		result.Add(botblock.Diagnostic{
			Code:       botblock.DiagCodeMissingParent,
			Severity:   botblock.SeverityError,
			Message:    fmt.Sprintf("category %s blocks cannot be placed at the top level", block.Category),
			BlockID:    block.ID,
			Suggestion: "place this block inside a Flex container",
		})
	}

	siblings := graph.SiblingsOf(block)
	for _, forbidden := range rule.Restrictions.ForbiddenWith {
		for _, sibling := range siblings {
			if sibling.Category == forbidden {
				result.Add(botblock.Diagnostic{
					Code:       botblock.DiagCodeForbiddenSibling,
					Severity:   botblock.SeverityWarning,
					Message:    fmt.Sprintf("category %s may not share a container with %s (block %q)", block.Category, forbidden, sibling.ID),
					BlockID:    block.ID,
					Suggestion: fmt.Sprintf("move the %s block to its own container", forbidden),
				})
				break
			}
		}
	}

	if max := rule.Restrictions.MaxCount; max > 0 {
		count := 1
		for _, sibling := range siblings {
			if sibling.Category == block.Category {
				count++
			}
		}
		if count > max {
			result.Add(botblock.Diagnostic{
				Code:       botblock.DiagCodeTooManySiblings,
				Severity:   botblock.SeverityWarning,
				Message:    fmt.Sprintf("at most %d %s block(s) allowed per container, found %d", max, block.Category, count),
				BlockID:    block.ID,
				Suggestion: fmt.Sprintf("remove the extra %s block(s)", block.Category),
			})
		}
	}

	return result
}

func graphHasCategory(graph botblock.Graph, cat botblock.Category, excludeID string) bool {
	for _, b := range graph.Blocks {
		if b.ID == excludeID {
			continue
		}
		if b.Category == cat {
			return true
		}
	}
	return false
}

func supportSuggestion(block botblock.Block) string {
	if len(block.Contexts) == 0 {
		return "this block declares no valid workspace; check its definition"
	}
	return fmt.Sprintf("move this block to the %s workspace", contextList(block.Contexts))
}

func dependencySuggestion(dep botblock.Category) string {
	switch dep {
	case botblock.CategoryEvent:
		return "add an event block so replies have a trigger"
	case botblock.CategoryFlexContainer:
		return "place this block inside a Flex container"
	case botblock.CategoryFlexLayout:
		return "place this block inside a box"
	}
	return fmt.Sprintf("add a %s block first", dep)
}

func contextList(contexts []botblock.WorkspaceContext) string {
	parts := make([]string, len(contexts))
	for i, c := range contexts {
		parts[i] = string(c)
	}
	return strings.Join(parts, " or ")
}
