// Package compat decides whether a block may legally occupy a workspace
// context, checking category placement, nesting requirements, and
// mutually exclusive combinations. Checks are pure; callers decide
// whether to reject a drop or paste.
package compat

import "github.com/goliatone/go-botblock"

// Restrictions narrows where and how often a category may appear.
type Restrictions struct {
	// RequiresParent rejects top-level placement.
	RequiresParent bool
	// ForbiddenWith lists categories that may not appear among the
	// block's siblings in the same container.
	ForbiddenWith []botblock.Category
	// MaxCount caps how many blocks of this category may share a
	// container (0 means unlimited).
	MaxCount int
}

// Rule is the per-category compatibility record.
type Rule struct {
	AllowedIn    []botblock.WorkspaceContext
	Dependencies []botblock.Category
	Restrictions Restrictions
}

func (r Rule) allows(ctx botblock.WorkspaceContext) bool {
	for _, c := range r.AllowedIn {
		if c == ctx {
			return true
		}
	}
	return false
}

// Table is an immutable category → rule lookup. Categories with no rule
// fail closed: they are valid nowhere.
type Table struct {
	rules map[botblock.Category]Rule
}

// NewTable builds a table from explicit rules.
func NewTable(rules map[botblock.Category]Rule) *Table {
	copied := make(map[botblock.Category]Rule, len(rules))
	for cat, rule := range rules {
		copied[cat] = rule
	}
	return &Table{rules: copied}
}

// DefaultTable returns the built-in compatibility rules.
func DefaultTable() *Table {
	logic := []botblock.WorkspaceContext{botblock.ContextLogic}
	flex := []botblock.WorkspaceContext{botblock.ContextFlex}
	return NewTable(map[botblock.Category]Rule{
		botblock.CategoryEvent: {AllowedIn: logic},
		botblock.CategoryReply: {
			AllowedIn:    logic,
			Dependencies: []botblock.Category{botblock.CategoryEvent},
		},
		botblock.CategoryControl: {AllowedIn: logic},
		botblock.CategorySetting: {
			AllowedIn:    logic,
			Restrictions: Restrictions{MaxCount: 1},
		},
		botblock.CategoryFlexContainer: {
			AllowedIn: flex,
			Restrictions: Restrictions{
				// containers never nest inside other containers
				ForbiddenWith: []botblock.Category{botblock.CategoryFlexContainer},
			},
		},
		botblock.CategoryFlexLayout: {
			AllowedIn:    flex,
			Dependencies: []botblock.Category{botblock.CategoryFlexContainer},
			Restrictions: Restrictions{RequiresParent: true},
		},
		botblock.CategoryFlexContent: {
			AllowedIn:    flex,
			Dependencies: []botblock.Category{botblock.CategoryFlexLayout},
			Restrictions: Restrictions{RequiresParent: true},
		},
	})
}

// Lookup returns the rule for a category.
func (t *Table) Lookup(cat botblock.Category) (Rule, bool) {
	rule, ok := t.rules[cat]
	return rule, ok
}
