package flex

import (
	"testing"

	"github.com/goliatone/go-botblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textBlock(id, parent, text string) botblock.Block {
	return botblock.Block{
		ID:       id,
		Type:     "flex-text",
		Category: botblock.CategoryFlexContent,
		ParentID: parent,
		Data:     botblock.ContentData{Element: "text", Text: text},
	}
}

func TestConvertBoxPreservesChildOrder(t *testing.T) {
	c := NewConverter()

	box := botblock.Block{
		ID:       "box1",
		Type:     "flex-box",
		Category: botblock.CategoryFlexLayout,
		Data:     botblock.BoxData{Layout: "vertical"},
		Children: []string{"t3", "t1", "t2"},
	}
	graph := botblock.Graph{Blocks: []botblock.Block{
		box,
		textBlock("t1", "box1", "first"),
		textBlock("t2", "box1", "second"),
		textBlock("t3", "box1", "third"),
	}}

	out := c.Convert(box, graph)
	contents, ok := out["contents"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, contents, 3)
	assert.Equal(t, "third", contents[0]["text"], "declared child order decides layout order")
	assert.Equal(t, "first", contents[1]["text"])
	assert.Equal(t, "second", contents[2]["text"])
}

func TestConvertTextOmitsDefaultAttributes(t *testing.T) {
	c := NewConverter()

	out := c.convertText(botblock.ContentData{Element: "text", Text: "hi", Size: "md"})
	_, present := out["size"]
	assert.False(t, present, "the default size is never emitted")
	_, present = out["weight"]
	assert.False(t, present)

	out = c.convertText(botblock.ContentData{Element: "text", Text: "hi", Size: "lg", Weight: "bold"})
	assert.Equal(t, "lg", out["size"])
	assert.Equal(t, "bold", out["weight"])
}

func TestConvertUnknownElementDegradesToPlaceholder(t *testing.T) {
	c := NewConverter()

	out := c.convertContent(botblock.ContentData{Element: "hologram"})
	assert.Equal(t, "text", out["type"])
	assert.Equal(t, "[unsupported block: hologram]", out["text"])
}

func TestConvertActionFallbacks(t *testing.T) {
	c := NewConverter()

	out := c.ConvertAction(nil)
	assert.Equal(t, "message", out["type"])
	assert.Equal(t, "Button", out["label"])
	assert.Equal(t, "Button", out["text"])

	out = c.ConvertAction(&botblock.ActionData{Kind: "teleport", Label: "Go"})
	assert.Equal(t, "message", out["type"], "unrecognized kinds degrade to a message action")
	assert.Equal(t, "Go", out["label"])
	assert.Equal(t, "Go", out["text"])
}

func TestConvertActionKinds(t *testing.T) {
	c := NewConverter()

	uri := c.ConvertAction(&botblock.ActionData{Kind: "uri", Label: "Open", URI: "https://example.com/x"})
	assert.Equal(t, "uri", uri["type"])
	assert.Equal(t, "https://example.com/x", uri["uri"])

	pb := c.ConvertAction(&botblock.ActionData{Kind: "postback", Label: "Buy", Data: "action=buy", Text: "Buying"})
	assert.Equal(t, "postback", pb["type"])
	assert.Equal(t, "action=buy", pb["data"])
	assert.Equal(t, "Buying", pb["displayText"])

	roll := c.ConvertAction(&botblock.ActionData{Kind: "camera-roll", Label: "Pick"})
	assert.Equal(t, "cameraRoll", roll["type"], "hyphenated kinds map to wire casing")

	dt := c.ConvertAction(&botblock.ActionData{Kind: "datetime-picker", Label: "When"})
	assert.Equal(t, "datetimepicker", dt["type"])
	assert.Equal(t, "datetime", dt["mode"], "mode defaults to datetime")
}

func TestConvertContainerCarousel(t *testing.T) {
	c := NewConverter()

	root := botblock.Block{
		ID:       "car",
		Type:     "flex-carousel",
		Category: botblock.CategoryFlexContainer,
		Data:     botblock.ContainerData{Container: "carousel", AltText: "Deals"},
		Children: []string{"b1", "b2"},
	}
	graph := botblock.Graph{Blocks: []botblock.Block{
		root,
		{ID: "b1", Type: "flex-bubble", Category: botblock.CategoryFlexContainer, ParentID: "car",
			Data: botblock.ContainerData{Container: "bubble"}},
		{ID: "b2", Type: "flex-bubble", Category: botblock.CategoryFlexContainer, ParentID: "car",
			Data: botblock.ContainerData{Container: "bubble"}},
	}}

	doc := c.ConvertContainer(root, graph)
	assert.Equal(t, "Deals", doc.AltText)
	assert.Equal(t, "carousel", doc.Root["type"])
	contents, ok := doc.Root["contents"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, contents, 2)
	assert.Equal(t, "bubble", contents[0]["type"])
}

func TestConvertContainerBubbleSectionsAndHero(t *testing.T) {
	c := NewConverter()

	root := botblock.Block{
		ID:       "bub",
		Type:     "flex-bubble",
		Category: botblock.CategoryFlexContainer,
		Data:     botblock.ContainerData{Container: "bubble", AltText: "Card"},
		Children: []string{"hero", "body"},
	}
	graph := botblock.Graph{Blocks: []botblock.Block{
		root,
		{ID: "hero", Type: "flex-image", Category: botblock.CategoryFlexContent, ParentID: "bub",
			Data: botblock.ContentData{Element: "image", URL: "https://example.com/a.png"}},
		{ID: "body", Type: "flex-box", Category: botblock.CategoryFlexLayout, ParentID: "bub",
			Data: botblock.BoxData{Layout: "vertical"}},
	}}

	doc := c.ConvertContainer(root, graph)
	assert.Equal(t, "bubble", doc.Root["type"])

	hero, ok := doc.Root["hero"].(map[string]any)
	require.True(t, ok, "a leading image child becomes the hero")
	assert.Equal(t, "image", hero["type"])

	body, ok := doc.Root["body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "box", body["type"])
}

func TestConvertContainerNonContainerRootWrapsInBubble(t *testing.T) {
	c := NewConverter()

	root := textBlock("t1", "", "loose")
	doc := c.ConvertContainer(root, botblock.Graph{Blocks: []botblock.Block{root}})

	assert.Equal(t, "Flex message", doc.AltText, "the documented fallback alt text")
	assert.Equal(t, "bubble", doc.Root["type"])
	body := doc.Root["body"].(map[string]any)
	contents := body["contents"].([]map[string]any)
	require.Len(t, contents, 1)
	assert.Equal(t, "loose", contents[0]["text"])
}
