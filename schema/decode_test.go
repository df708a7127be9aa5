package schema

import (
	"testing"

	"github.com/goliatone/go-botblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataIsPermissive(t *testing.T) {
	def := BlockDefinition{Type: "reply-text", Category: botblock.CategoryReply}

	data := DecodeData(def, map[string]any{
		"reply":    "text",
		"text":     42, // mistyped: falls back to zero, never errors
		"duration": 2.0,
	})
	reply, ok := data.(botblock.ReplyData)
	require.True(t, ok)
	assert.Equal(t, "text", reply.Reply)
	assert.Empty(t, reply.Text)
	assert.Equal(t, 2, reply.Duration)
}

func TestDecodeDataContentFlexPointerDistinguishesBlank(t *testing.T) {
	def := BlockDefinition{Type: "flex-text", Category: botblock.CategoryFlexContent}

	blank := DecodeData(def, map[string]any{"element": "text"}).(botblock.ContentData)
	assert.Nil(t, blank.Flex, "absent flex stays nil")

	zero := DecodeData(def, map[string]any{"element": "text", "flex": 0}).(botblock.ContentData)
	require.NotNil(t, zero.Flex)
	assert.Equal(t, 0, *zero.Flex, "explicit zero survives")
}

func TestDecodeActionAcceptsLegacyTypeKey(t *testing.T) {
	def := BlockDefinition{Type: "flex-button", Category: botblock.CategoryFlexContent}

	data := DecodeData(def, map[string]any{
		"element": "button",
		"action":  map[string]any{"type": "uri", "label": "Open", "uri": "https://example.com"},
	}).(botblock.ContentData)

	require.NotNil(t, data.Action)
	assert.Equal(t, "uri", data.Action.Kind, "older payloads key the kind as 'type'")
	assert.Equal(t, "Open", data.Action.Label)
}

func TestDecodeDataActionsList(t *testing.T) {
	def := BlockDefinition{Type: "reply-template", Category: botblock.CategoryReply}

	data := DecodeData(def, map[string]any{
		"reply": "template",
		"actions": []any{
			map[string]any{"kind": "message", "label": "Yes", "text": "yes"},
			map[string]any{"kind": "postback", "label": "No", "data": "action=no"},
			"not-an-object",
		},
	}).(botblock.ReplyData)

	require.Len(t, data.Actions, 2, "non-object entries are skipped")
	assert.Equal(t, "message", data.Actions[0].Kind)
	assert.Equal(t, "action=no", data.Actions[1].Data)
}

func TestDecodeDataUnknownCategoryFallsBackToRaw(t *testing.T) {
	def := BlockDefinition{Type: "mystery", Category: botblock.CategoryUnknown}

	data := DecodeData(def, map[string]any{"foo": "bar"})
	raw, ok := data.(botblock.RawData)
	require.True(t, ok)
	assert.Equal(t, "bar", raw.Fields["foo"])
}
