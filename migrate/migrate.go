// Package migrate converts the older two-field block representation into
// the current unified one. Migration is deterministic, pure, and total
// for any non-nil input; already-current blocks map to themselves.
package migrate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-botblock"
	"github.com/goliatone/go-botblock/schema"
)

// Migrator resolves legacy blocks against one schema registry. Build one
// per pipeline; it holds no mutable state.
type Migrator struct {
	reg *schema.Registry
}

// New constructs a migrator over the given registry.
func New(reg *schema.Registry) *Migrator {
	if reg == nil {
		reg = schema.Default()
	}
	return &Migrator{reg: reg}
}

// Migrate converts one legacy block into the current shape. Nil input is
// a precondition violation and returns ErrNilInput; the legacy migration
// contract was inconsistent on this and the reimplementation makes it
// explicit. Unknown legacy types pass through with their identifier
// preserved and CategoryUnknown; the degenerate empty type maps to the
// empty type.
func (m *Migrator) Migrate(legacy *botblock.LegacyBlock) (botblock.Block, error) {
	if legacy == nil {
		return botblock.Block{}, botblock.ErrNilInput
	}

	canonical := CanonicalType(strings.TrimSpace(legacy.BlockType))

	block := botblock.Block{
		Type: canonical,
		Raw:  copyPayload(legacy.BlockData),
	}
	if id, ok := legacy.BlockData["id"].(string); ok {
		block.ID = strings.TrimSpace(id)
	}

	return m.resolve(block), nil
}

// MigrateBlock normalizes a block that may already be in the current
// shape: the type is re-canonicalized and the payload re-typed against
// the registry. Running it twice yields the same value as running it
// once.
func (m *Migrator) MigrateBlock(block botblock.Block) botblock.Block {
	block.Type = CanonicalType(block.Type)
	return m.resolve(block)
}

// MigrateAll migrates an ordered legacy list, assigning stable
// position-derived ids to blocks that carry none. Input order is
// preserved exactly.
func (m *Migrator) MigrateAll(legacy []botblock.LegacyBlock) ([]botblock.Block, error) {
	out := make([]botblock.Block, 0, len(legacy))
	for i := range legacy {
		block, err := m.Migrate(&legacy[i])
		if err != nil {
			return nil, err
		}
		if block.ID == "" {
			block.ID = fmt.Sprintf("block-%d", i)
		}
		out = append(out, block)
	}
	return out, nil
}

func (m *Migrator) resolve(block botblock.Block) botblock.Block {
	resolved := m.reg.Resolve(block)
	if resolved.Nested && resolved.ParentID == "" {
		// a block cannot be nested without a parent; demote rather than
		// carry a broken invariant forward
		resolved.Nested = false
	}
	return resolved
}

func copyPayload(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
