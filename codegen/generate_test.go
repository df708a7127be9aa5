package codegen

import (
	"strings"
	"testing"

	"github.com/goliatone/go-botblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventBlock(id, kind, match string) botblock.Block {
	return botblock.Block{
		ID:       id,
		Type:     "event-" + kind + "-message",
		Category: botblock.CategoryEvent,
		Data:     botblock.EventData{Event: kind, Match: match},
	}
}

func replyBlock(id string, data botblock.ReplyData) botblock.Block {
	return botblock.Block{
		ID:       id,
		Type:     "reply-" + data.Reply,
		Category: botblock.CategoryReply,
		Data:     data,
	}
}

func TestGenerateTextEventWithTextReply(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", "hello"),
		replyBlock("r1", botblock.ReplyData{Reply: "text", Text: "Hello back!"}),
	}}

	source, result := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.True(t, result.Valid)

	assert.Contains(t, source, "'use strict';")
	assert.Contains(t, source, "const line = require('@line/bot-sdk');")
	assert.Contains(t, source, "async function handleTextMessage(event) {")
	assert.Contains(t, source, "const text = event.message.text;")
	assert.Contains(t, source, `if (!text.includes("hello")) {`)
	assert.Contains(t, source, `replies.push({ type: 'text', text: "Hello back!" });`)
	assert.Contains(t, source, "if (replies.length > 0) {")
	assert.Contains(t, source, "return client.replyMessage(event.replyToken, replies);")
	assert.Contains(t, source, "case 'text':")
}

func TestGenerateUnfollowHandlerNeverReplies(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		{ID: "e1", Type: "event-unfollow", Category: botblock.CategoryEvent,
			Data: botblock.EventData{Event: "unfollow"}},
		replyBlock("r1", botblock.ReplyData{Reply: "text", Text: "Bye"}),
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})

	start := strings.Index(source, "async function handleUnfollow(event) {")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(source[start:], "\n}")
	require.GreaterOrEqual(t, end, 0)
	handler := source[start : start+end]

	assert.Contains(t, handler, "const userId = event.source.userId;")
	assert.NotContains(t, handler, "replyMessage", "the peer is gone; nothing is sent")
	assert.NotContains(t, handler, "replies.push")
}

func TestGenerateSynthesizesDefaultHandlerWhenNoEvents(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		replyBlock("r1", botblock.ReplyData{Reply: "text", Text: "Hi"}),
	}}

	source, result := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.True(t, result.Valid)
	assert.Contains(t, source, "async function handleTextMessage(event) {")
	assert.Contains(t, source, `replies.push({ type: 'text', text: "Hi" });`)
}

func TestGenerateEmptyReplyFallsBackToGreeting(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", ""),
		replyBlock("r1", botblock.ReplyData{Reply: "text"}),
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.Contains(t, source, `replies.push({ type: 'text', text: "Hello!" });`)
}

func TestGenerateUnknownReplyKindDegradesToComment(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", ""),
		replyBlock("r1", botblock.ReplyData{Reply: "carrier-pigeon"}),
		replyBlock("r2", botblock.ReplyData{Reply: "text", Text: "still here"}),
	}}

	source, result := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.True(t, result.Valid, "degradation is a warning, not an error")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, botblock.DiagCodeGenerationFallback, result.Warnings[0].Code)

	assert.Contains(t, source, "// unsupported reply block: carrier-pigeon")
	assert.Contains(t, source, `replies.push({ type: 'text', text: "still here" });`,
		"a malformed block never aborts the rest of the run")
}

func TestGenerateSettingsBecomeConstants(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		{ID: "s1", Type: "setting-constant", Category: botblock.CategorySetting,
			Data: botblock.SettingData{Setting: "GREETING", Value: "Welcome"}},
		eventBlock("e1", "text", ""),
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.Contains(t, source, `const GREETING = "Welcome";`)
}

func TestGenerateControlBlocks(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", ""),
		{ID: "c1", Type: "control-loop", Category: botblock.CategoryControl,
			Data: botblock.ControlData{Control: "loop", Times: 500}},
		{ID: "c2", Type: "control-delay", Category: botblock.CategoryControl,
			Data: botblock.ControlData{Control: "delay", Seconds: 1.5}},
		{ID: "c3", Type: "control-function", Category: botblock.CategoryControl,
			Data: botblock.ControlData{Control: "function", Name: "notifyOps"}},
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})

	assert.Contains(t, source, "for (let i = 0; i < 100; i++) {", "iterations clamp to the ceiling")
	assert.Contains(t, source, "await new Promise((resolve) => setTimeout(resolve, 1500));")
	assert.Contains(t, source, "notifyOps(event);")
	assert.Contains(t, source, "function notifyOps(event) {")
}

func TestGenerateFlexReplyCallsFactory(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", ""),
		replyBlock("r1", botblock.ReplyData{Reply: "flex", AltText: "Deals", FlexID: "bub"}),
	}}
	message := botblock.Graph{Context: botblock.ContextFlex, Blocks: []botblock.Block{
		{ID: "bub", Type: "flex-bubble", Category: botblock.CategoryFlexContainer,
			Data: botblock.ContainerData{Container: "bubble", AltText: "Deals"}},
	}}

	source, _ := g.Generate(logic, message)

	name := factoryName("bub")
	assert.Contains(t, source, "function "+name+"() {")
	assert.Contains(t, source, `replies.push({ type: 'flex', altText: "Deals", contents: `+name+`() });`)
	assert.Contains(t, source, `"type": "bubble"`)
}

func TestGenerateFlexReplyWithoutContainerFallsBackToText(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", ""),
		replyBlock("r1", botblock.ReplyData{Reply: "flex", AltText: "Deals"}),
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.Contains(t, source, "// no flex container found for this reply")
	assert.Contains(t, source, `replies.push({ type: 'text', text: "Deals" });`)
}

func TestGenerateIsByteIdentical(t *testing.T) {
	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", "order"),
		replyBlock("r1", botblock.ReplyData{Reply: "sticker"}),
		replyBlock("r2", botblock.ReplyData{Reply: "flex", FlexID: "bub"}),
	}}
	message := botblock.Graph{Context: botblock.ContextFlex, Blocks: []botblock.Block{
		{ID: "bub", Type: "flex-bubble", Category: botblock.CategoryFlexContainer,
			Data: botblock.ContainerData{Container: "bubble", AltText: "Hi"}},
	}}

	first, _ := New().Generate(logic, message)
	second, _ := New().Generate(logic, message)
	require.Equal(t, first, second, "identical input graphs must emit identical source")
}

func TestGenerateDuplicateEventKindsGetDistinctNames(t *testing.T) {
	g := New()

	logic := botblock.Graph{Context: botblock.ContextLogic, Blocks: []botblock.Block{
		eventBlock("e1", "text", "a"),
		eventBlock("e2", "text", "b"),
	}}

	source, _ := g.Generate(logic, botblock.Graph{Context: botblock.ContextFlex})
	assert.Contains(t, source, "async function handleTextMessage(event) {")
	assert.Contains(t, source, "async function handleTextMessage2(event) {")
	assert.Contains(t, source, "return Promise.all([handleTextMessage(event), handleTextMessage2(event)]);")
}

func TestFactoryNameIsStableContentHash(t *testing.T) {
	a := factoryName("block-1")
	b := factoryName("block-1")
	c := factoryName("block-2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "flexMessage"))
	assert.Len(t, a, len("flexMessage")+8)
}
