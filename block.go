package botblock

import "strings"

// Category groups block types by semantic role. It drives both
// compatibility rules and code-generation dispatch.
type Category string

const (
	CategoryEvent         Category = "EVENT"
	CategoryReply         Category = "REPLY"
	CategoryControl       Category = "CONTROL"
	CategorySetting       Category = "SETTING"
	CategoryFlexContainer Category = "FLEX_CONTAINER"
	CategoryFlexContent   Category = "FLEX_CONTENT"
	CategoryFlexLayout    Category = "FLEX_LAYOUT"
	CategoryUnknown       Category = "UNKNOWN"
)

// Categories lists every known category in stable order.
func Categories() []Category {
	return []Category{
		CategoryEvent,
		CategoryReply,
		CategoryControl,
		CategorySetting,
		CategoryFlexContainer,
		CategoryFlexContent,
		CategoryFlexLayout,
	}
}

// WorkspaceContext identifies which of the two editor graphs a block
// occupies: the bot behavior graph or the message layout graph.
type WorkspaceContext string

const (
	ContextLogic WorkspaceContext = "LOGIC"
	ContextFlex  WorkspaceContext = "FLEX"
)

// Block is one node in either the logic graph or the message-layout graph.
// Instances are owned by the graph that contains them; a nested block is
// additionally referenced by its parent's child list and has no independent
// lifetime.
type Block struct {
	ID       string           `json:"id" yaml:"id"`
	Type     string           `json:"blockType" yaml:"blockType"`
	Category Category         `json:"category" yaml:"category"`
	Data     BlockData        `json:"-" yaml:"-"`
	Raw      map[string]any   `json:"data,omitempty" yaml:"data,omitempty"`
	ParentID string           `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Children []string         `json:"children,omitempty" yaml:"children,omitempty"`
	Contexts []WorkspaceContext `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
	Nested   bool             `json:"isNested,omitempty" yaml:"isNested,omitempty"`
}

// SupportsContext reports whether the block's declared compatibility list
// includes ctx. Blocks with no declared list support nothing; declaring
// contexts is the registry's job during instantiation.
func (b Block) SupportsContext(ctx WorkspaceContext) bool {
	for _, c := range b.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

// LegacyBlock is the older two-field block shape. It lacks category,
// compatibility, and nesting metadata and is only ever read by the
// migrator; current code paths never produce it.
type LegacyBlock struct {
	BlockType string         `json:"blockType" yaml:"blockType"`
	BlockData map[string]any `json:"blockData,omitempty" yaml:"blockData,omitempty"`
}

// IsZero reports whether the legacy block carries no information at all.
func (l LegacyBlock) IsZero() bool {
	return strings.TrimSpace(l.BlockType) == "" && len(l.BlockData) == 0
}

// Graph is an ordered list of blocks belonging to one workspace context.
// Order is significant: it fixes handler order in generated source and
// top-to-bottom layout in converted documents.
type Graph struct {
	Context WorkspaceContext
	Blocks  []Block
}

// ByID returns the block with the given id, if present.
func (g Graph) ByID(id string) (Block, bool) {
	for _, b := range g.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// ChildrenOf returns the blocks listed as children of parent, in the
// parent's declared order. Missing ids are skipped.
func (g Graph) ChildrenOf(parent Block) []Block {
	if len(parent.Children) == 0 {
		return nil
	}
	out := make([]Block, 0, len(parent.Children))
	for _, id := range parent.Children {
		if child, ok := g.ByID(id); ok {
			out = append(out, child)
		}
	}
	return out
}

// SiblingsOf returns the blocks that share a parent with b, excluding b
// itself. Top-level blocks are siblings of other top-level blocks.
func (g Graph) SiblingsOf(b Block) []Block {
	var out []Block
	for _, other := range g.Blocks {
		if other.ID == b.ID {
			continue
		}
		if other.ParentID == b.ParentID {
			out = append(out, other)
		}
	}
	return out
}
