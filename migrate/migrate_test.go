package migrate

import (
	"errors"
	"sort"
	"testing"

	"github.com/goliatone/go-botblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateNilInput(t *testing.T) {
	m := New(nil)

	_, err := m.Migrate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, botblock.ErrNilInput))
}

func TestMigrateLegacyTextReply(t *testing.T) {
	m := New(nil)

	block, err := m.Migrate(&botblock.LegacyBlock{
		BlockType: "send_text",
		BlockData: map[string]any{"id": "b1", "text": "Welcome"},
	})
	require.NoError(t, err)

	assert.Equal(t, "b1", block.ID)
	assert.Equal(t, "reply-text", block.Type)
	assert.Equal(t, botblock.CategoryReply, block.Category)
	assert.Equal(t, []botblock.WorkspaceContext{botblock.ContextLogic}, block.Contexts)

	data, ok := block.Data.(botblock.ReplyData)
	require.True(t, ok)
	assert.Equal(t, "text", data.Reply)
	assert.Equal(t, "Welcome", data.Text)
}

func TestMigrateUnknownTypePreservesIdentifier(t *testing.T) {
	m := New(nil)

	block, err := m.Migrate(&botblock.LegacyBlock{
		BlockType: "vendor_custom_widget",
		BlockData: map[string]any{"foo": "bar"},
	})
	require.NoError(t, err)

	assert.Equal(t, "vendor_custom_widget", block.Type)
	assert.Equal(t, botblock.CategoryUnknown, block.Category)
	raw, ok := block.Data.(botblock.RawData)
	require.True(t, ok)
	assert.Equal(t, "bar", raw.Fields["foo"])
}

func TestMigrateEmptyTypeMapsToEmptyType(t *testing.T) {
	m := New(nil)

	block, err := m.Migrate(&botblock.LegacyBlock{BlockType: "  "})
	require.NoError(t, err)
	assert.Empty(t, block.Type)
	assert.Equal(t, botblock.CategoryUnknown, block.Category)
}

func TestMigrateBlockIsIdempotent(t *testing.T) {
	m := New(nil)

	input := botblock.Block{
		ID:   "b1",
		Type: "bubble", // historical alias
		Raw:  map[string]any{"container": "bubble", "altText": "Hi"},
	}

	once := m.MigrateBlock(input)
	twice := m.MigrateBlock(once)

	assert.Equal(t, "flex-bubble", once.Type)
	assert.Equal(t, once, twice, "migration must be a fixpoint on its own output")
}

func TestMigrateBlockDemotesOrphanedNesting(t *testing.T) {
	m := New(nil)

	block := m.MigrateBlock(botblock.Block{
		ID:     "b1",
		Type:   "flex-text",
		Nested: true,
	})
	assert.False(t, block.Nested, "nested without a parent is a broken invariant")

	block = m.MigrateBlock(botblock.Block{
		ID:       "b2",
		Type:     "flex-text",
		ParentID: "box-1",
		Nested:   true,
	})
	assert.True(t, block.Nested)
}

func TestMigrateAllAssignsPositionalIDsAndKeepsOrder(t *testing.T) {
	m := New(nil)

	blocks, err := m.MigrateAll([]botblock.LegacyBlock{
		{BlockType: "text_message_event"},
		{BlockType: "send_text", BlockData: map[string]any{"id": "keep-me"}},
		{BlockType: "send_sticker"},
	})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "block-0", blocks[0].ID)
	assert.Equal(t, "keep-me", blocks[1].ID)
	assert.Equal(t, "block-2", blocks[2].ID)

	assert.Equal(t, "event-text-message", blocks[0].Type)
	assert.Equal(t, "reply-text", blocks[1].Type)
	assert.Equal(t, "reply-sticker", blocks[2].Type)
}

func TestCanonicalTypePassesUnknownThrough(t *testing.T) {
	assert.Equal(t, "event-text-message", CanonicalType("on_text_message"))
	assert.Equal(t, "reply-flex", CanonicalType("flex_reply"))
	assert.Equal(t, "something-else", CanonicalType("something-else"))
}

func TestAliasesReturnsSortedCopy(t *testing.T) {
	aliases := Aliases("event-text-message")
	require.NotEmpty(t, aliases)
	assert.True(t, sort.StringsAreSorted(aliases))
	assert.Contains(t, aliases, "text_message_event")
	assert.Contains(t, aliases, "on_text_message")

	aliases[0] = "mutated"
	assert.NotContains(t, Aliases("event-text-message"), "mutated", "callers get a copy")
}
