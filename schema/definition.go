package schema

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-botblock"
)

// ValueKind classifies one configurable field of a block definition.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindNumber  ValueKind = "number"
	KindBoolean ValueKind = "boolean"
	KindEnum    ValueKind = "enum"
	KindColor   ValueKind = "color"
	KindURL     ValueKind = "url"
	KindActions ValueKind = "actions"
)

// ConfigOption is declarative metadata for one editable field: the editor
// renders it, the compiler validates against it. VisibleWhen is a
// "key=value" predicate over sibling option values; empty means always
// visible.
type ConfigOption struct {
	Key         string    `json:"key" yaml:"key"`
	Kind        ValueKind `json:"kind" yaml:"kind"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	VisibleWhen string    `json:"visibleWhen,omitempty" yaml:"visibleWhen,omitempty"`
}

// Visible evaluates the option's visibility predicate against the given
// payload values.
func (o ConfigOption) Visible(values map[string]any) bool {
	if strings.TrimSpace(o.VisibleWhen) == "" {
		return true
	}
	key, want, found := strings.Cut(o.VisibleWhen, "=")
	if !found {
		return true
	}
	got, ok := values[strings.TrimSpace(key)]
	if !ok {
		return false
	}
	return fmt.Sprintf("%v", got) == strings.TrimSpace(want)
}

// BlockDefinition is the static, registry-owned template for one block
// type. Immutable after registration; many block instances reference one
// definition by type id.
type BlockDefinition struct {
	Type        string                      `json:"type" yaml:"type"`
	Label       string                      `json:"label" yaml:"label"`
	Description string                      `json:"description,omitempty" yaml:"description,omitempty"`
	Category    botblock.Category           `json:"category" yaml:"category"`
	Contexts    []botblock.WorkspaceContext `json:"contexts" yaml:"contexts"`
	Defaults    map[string]any              `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Options     []ConfigOption              `json:"options,omitempty" yaml:"options,omitempty"`
	Tags        []string                    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (d BlockDefinition) validate() error {
	if strings.TrimSpace(d.Type) == "" {
		return fmt.Errorf("block definition requires a type id")
	}
	if d.Category == "" {
		return fmt.Errorf("block definition %q requires a category", d.Type)
	}
	if len(d.Contexts) == 0 {
		return fmt.Errorf("block definition %q must declare at least one context", d.Type)
	}
	seen := make(map[string]struct{}, len(d.Options))
	for _, opt := range d.Options {
		key := strings.TrimSpace(opt.Key)
		if key == "" {
			return fmt.Errorf("block definition %q has an option without a key", d.Type)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("block definition %q has duplicate option %q", d.Type, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// SupportsContext reports whether the definition allows placement in ctx.
func (d BlockDefinition) SupportsContext(ctx botblock.WorkspaceContext) bool {
	for _, c := range d.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}
