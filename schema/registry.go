package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-botblock"
	"github.com/google/uuid"
)

// Registry is an explicitly constructed, immutable lookup structure over
// block definitions. Build one per schema version and pass it into the
// pipeline; there is no global registry.
type Registry struct {
	defs  map[string]BlockDefinition
	order []string
}

// NewRegistry builds a registry from the given definitions. Duplicate
// type ids are a construction error.
func NewRegistry(defs ...BlockDefinition) (*Registry, error) {
	r := &Registry{defs: make(map[string]BlockDefinition, len(defs))}
	for _, def := range defs {
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.defs[def.Type]; exists {
			return nil, fmt.Errorf("duplicate block definition %q", def.Type)
		}
		r.defs[def.Type] = def
		r.order = append(r.order, def.Type)
	}
	return r, nil
}

// Default builds a registry over the built-in definition table.
func Default() *Registry {
	r, err := NewRegistry(DefaultDefinitions()...)
	if err != nil {
		// the built-in table is validated by tests; a failure here is a
		// programming error in the table itself
		panic(err)
	}
	return r
}

// Lookup returns the definition for a block type id.
func (r *Registry) Lookup(blockType string) (BlockDefinition, bool) {
	def, ok := r.defs[blockType]
	return def, ok
}

// Types returns every registered type id in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns the definitions of one category, sorted by type id.
func (r *Registry) ByCategory(cat botblock.Category) []BlockDefinition {
	var out []BlockDefinition
	for _, id := range r.order {
		if r.defs[id].Category == cat {
			out = append(out, r.defs[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Extend returns a new registry containing this registry's definitions
// plus the overlay. Overlay definitions may not redefine built-in types.
func (r *Registry) Extend(overlay ...BlockDefinition) (*Registry, error) {
	merged := make([]BlockDefinition, 0, len(r.order)+len(overlay))
	for _, id := range r.order {
		merged = append(merged, r.defs[id])
	}
	return NewRegistry(append(merged, overlay...)...)
}

// NewBlock instantiates a block of the given type, merging the payload
// over the definition defaults and decoding it into the typed variant.
// A fresh uuid is assigned when the payload carries no id.
func (r *Registry) NewBlock(blockType string, data map[string]any) (botblock.Block, error) {
	def, ok := r.Lookup(blockType)
	if !ok {
		return botblock.Block{}, fmt.Errorf("unknown block type %q", blockType)
	}

	merged := make(map[string]any, len(def.Defaults)+len(data))
	for k, v := range def.Defaults {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	id := ""
	if raw, ok := merged["id"].(string); ok {
		id = strings.TrimSpace(raw)
	}
	if id == "" {
		id = uuid.NewString()
	}
	delete(merged, "id")

	contexts := make([]botblock.WorkspaceContext, len(def.Contexts))
	copy(contexts, def.Contexts)

	return botblock.Block{
		ID:       id,
		Type:     def.Type,
		Category: def.Category,
		Data:     DecodeData(def, merged),
		Raw:      merged,
		Contexts: contexts,
	}, nil
}

// Resolve re-types an existing block against the registry: category and
// contexts come from the definition, the raw payload is decoded into the
// typed variant. Unknown types keep their id and degrade to RawData with
// CategoryUnknown rather than failing.
func (r *Registry) Resolve(block botblock.Block) botblock.Block {
	def, ok := r.Lookup(block.Type)
	if !ok {
		block.Category = botblock.CategoryUnknown
		block.Data = botblock.RawData{Fields: block.Raw}
		return block
	}
	block.Category = def.Category
	if len(block.Contexts) == 0 {
		contexts := make([]botblock.WorkspaceContext, len(def.Contexts))
		copy(contexts, def.Contexts)
		block.Contexts = contexts
	}
	merged := make(map[string]any, len(def.Defaults)+len(block.Raw))
	for k, v := range def.Defaults {
		merged[k] = v
	}
	for k, v := range block.Raw {
		merged[k] = v
	}
	block.Data = DecodeData(def, merged)
	return block
}
