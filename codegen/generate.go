package codegen

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/goliatone/go-botblock"
	"github.com/goliatone/go-botblock/flex"
)

// Generator emits webhook server source from a block graph. It is a
// single-pass emitter: logic blocks are partitioned by category and
// lowered through per-kind dispatch tables, layout blocks are lowered
// recursively through the flex converter. Given the same ordered input
// graphs the output text is byte-identical; factory names derive from a
// content hash of the block id, never from clocks or random ids.
type Generator struct {
	conv   *flex.Converter
	limits flex.Limits
	logger botblock.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLimits overrides the platform limits table.
func WithLimits(limits flex.Limits) Option {
	return func(g *Generator) { g.limits = limits }
}

// WithLogger wires a logger for per-phase tracing.
func WithLogger(logger botblock.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New constructs a generator with the documented defaults.
func New(opts ...Option) *Generator {
	g := &Generator{
		conv:   flex.NewConverter(),
		limits: flex.DefaultLimits(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = botblock.NormalizeLogger(g.logger)
	return g
}

type handlerDef struct {
	spec  eventSpec
	name  string
	match string
}

type flexFactory struct {
	blockID string
	name    string
	doc     flex.Document
}

// Generate walks the logic and message graphs and returns the complete
// server source plus a result collecting every degraded block. A single
// malformed block never aborts the run.
func (g *Generator) Generate(logic, message botblock.Graph) (string, botblock.ValidationResult) {
	result := botblock.OK()

	events, replies, controls, settings := g.partition(logic, &result)
	factories := g.buildFactories(message)
	handlers := g.buildHandlers(events, &result)

	g.logger.Debug("generating source: %d handler(s), %d reply block(s), %d factory(ies)",
		len(handlers), len(replies), len(factories))

	var stmts []Stmt
	stmts = append(stmts, preamble()...)
	stmts = append(stmts, settingStmts(settings)...)
	stmts = append(stmts, g.dispatcherStmts(handlers)...)
	for _, h := range handlers {
		stmts = append(stmts, g.handlerStmts(h, replies, controls, factories, &result)...)
	}
	stmts = append(stmts, g.functionStubStmts(controls)...)
	for _, f := range factories {
		stmts = append(stmts, factoryStmts(f)...)
	}
	stmts = append(stmts, epilogue()...)

	result.Sort()
	return Render(stmts), result
}

func (g *Generator) partition(logic botblock.Graph, result *botblock.ValidationResult) (events, replies, controls, settings []botblock.Block) {
	for _, block := range logic.Blocks {
		switch block.Category {
		case botblock.CategoryEvent:
			events = append(events, block)
		case botblock.CategoryReply:
			replies = append(replies, block)
		case botblock.CategoryControl:
			controls = append(controls, block)
		case botblock.CategorySetting:
			settings = append(settings, block)
		default:
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  fmt.Sprintf("block type %q has no generator; skipped", block.Type),
				BlockID:  block.ID,
			})
		}
	}
	return events, replies, controls, settings
}

func (g *Generator) buildHandlers(events []botblock.Block, result *botblock.ValidationResult) []handlerDef {
	if len(events) == 0 {
		// replies must never be orphaned: synthesize the default
		// text-message handler
		return []handlerDef{{spec: defaultEventSpec(), name: defaultEventSpec().handler}}
	}

	handlers := make([]handlerDef, 0, len(events))
	seen := make(map[string]int, len(events))
	for _, block := range events {
		data, ok := block.Data.(botblock.EventData)
		if !ok {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  "event block carries no event payload; defaulting to text message",
				BlockID:  block.ID,
			})
			data = botblock.EventData{Event: "text"}
		}
		spec, ok := lookupEvent(data.Event)
		if !ok {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  fmt.Sprintf("unknown event kind %q; defaulting to text message", data.Event),
				BlockID:  block.ID,
			})
			spec = defaultEventSpec()
		}
		name := spec.handler
		seen[spec.kind]++
		if n := seen[spec.kind]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		handlers = append(handlers, handlerDef{spec: spec, name: name, match: data.Match})
	}
	return handlers
}

func (g *Generator) buildFactories(message botblock.Graph) []flexFactory {
	var out []flexFactory
	for _, block := range message.Blocks {
		if block.Category != botblock.CategoryFlexContainer || block.ParentID != "" {
			continue
		}
		out = append(out, flexFactory{
			blockID: block.ID,
			name:    factoryName(block.ID),
			doc:     g.conv.ConvertContainer(block, message),
		})
	}
	return out
}

// factoryName derives a stable identifier from the block id so repeated
// generation from identical input is byte-identical.
func factoryName(blockID string) string {
	h := fnv.New32a()
	h.Write([]byte(blockID))
	return fmt.Sprintf("flexMessage%08x", h.Sum32())
}

func (g *Generator) dispatcherStmts(handlers []handlerDef) []Stmt {
	var messageCases, eventCases []Stmt
	for _, spec := range eventTable {
		calls := handlerCalls(handlers, spec.kind)
		if len(calls) == 0 {
			continue
		}
		target := Line("return %s(event);", calls[0])
		if len(calls) > 1 {
			invocations := make([]string, len(calls))
			for i, name := range calls {
				invocations[i] = name + "(event)"
			}
			target = Line("return Promise.all([%s]);", strings.Join(invocations, ", "))
		}
		if spec.trigger == "message" {
			messageCases = append(messageCases, Line("case '%s':", spec.message), target)
		} else {
			eventCases = append(eventCases, Line("case '%s':", spec.trigger), target)
		}
	}

	body := []Stmt{}
	if len(messageCases) > 0 {
		body = append(body, Block(
			"if (event.type === 'message') {",
			"}",
			Block("switch (event.message.type) {", "}", messageCases...),
		))
	}
	if len(eventCases) > 0 {
		body = append(body, Block("switch (event.type) {", "}", eventCases...))
	}
	body = append(body, Line("return Promise.resolve(null);"))

	return []Stmt{
		Block("async function handleEvent(event) {", "}", body...),
		Blank(),
	}
}

func handlerCalls(handlers []handlerDef, kind string) []string {
	var out []string
	for _, h := range handlers {
		if h.spec.kind == kind {
			out = append(out, h.name)
		}
	}
	return out
}

func (g *Generator) handlerStmts(h handlerDef, replies, controls []botblock.Block, factories []flexFactory, result *botblock.ValidationResult) []Stmt {
	body := append([]Stmt{}, h.spec.payload...)

	if h.spec.terminal {
		// the peer unfollowed; there is nobody to reply to
		body = append(body,
			Line("console.log('unfollowed by ' + userId);"),
			Line("return Promise.resolve(null);"),
		)
		return []Stmt{
			Block("async function "+h.name+"(event) {", "}", body...),
			Blank(),
		}
	}

	if h.match != "" && h.spec.kind == "text" {
		body = append(body, Block(
			fmt.Sprintf("if (!text.includes(%s)) {", jsString(h.match)),
			"}",
			Line("return Promise.resolve(null);"),
		))
	}

	body = append(body, Line("const replies = [];"))

	for _, block := range replies {
		data, ok := block.Data.(botblock.ReplyData)
		if !ok {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  "reply block carries no reply payload; skipped",
				BlockID:  block.ID,
			})
			body = append(body, Comment("skipped reply block %s", block.ID))
			continue
		}
		stmts, known := g.replyStmts(data, g.factoryFor(data, factories))
		if !known {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  fmt.Sprintf("unknown reply kind %q; emitted as comment", data.Reply),
				BlockID:  block.ID,
			})
		}
		body = append(body, stmts...)
	}

	for _, block := range controls {
		data, ok := block.Data.(botblock.ControlData)
		if !ok {
			continue
		}
		stmts, known := g.controlStmts(data)
		if !known {
			result.Add(botblock.Diagnostic{
				Code:     botblock.DiagCodeGenerationFallback,
				Severity: botblock.SeverityWarning,
				Message:  fmt.Sprintf("unknown control kind %q; emitted as comment", data.Control),
				BlockID:  block.ID,
			})
		}
		body = append(body, stmts...)
	}

	body = append(body,
		Block(
			"if (replies.length > 0) {",
			"}",
			Line("return client.replyMessage(event.replyToken, replies);"),
		),
		Line("return Promise.resolve(null);"),
	)

	return []Stmt{
		Block("async function "+h.name+"(event) {", "}", body...),
		Blank(),
	}
}

// factoryFor resolves the flex factory a flex reply should call: its
// referenced container when declared, else the first factory.
func (g *Generator) factoryFor(data botblock.ReplyData, factories []flexFactory) string {
	if data.Reply != "flex" || len(factories) == 0 {
		return ""
	}
	if data.FlexID != "" {
		for _, f := range factories {
			if f.blockID == data.FlexID {
				return f.name
			}
		}
		return ""
	}
	return factories[0].name
}

func (g *Generator) functionStubStmts(controls []botblock.Block) []Stmt {
	var out []Stmt
	for _, block := range controls {
		data, ok := block.Data.(botblock.ControlData)
		if !ok || data.Control != "function" {
			continue
		}
		out = append(out, functionStub(data)...)
	}
	return out
}

func factoryStmts(f flexFactory) []Stmt {
	lines := strings.Split(jsLiteralIndented(f.doc.Root), "\n")
	lines[0] = "return " + lines[0]
	lines[len(lines)-1] += ";"
	body := make([]Stmt, 0, len(lines))
	for _, line := range lines {
		body = append(body, Line(line))
	}
	return []Stmt{
		Block("function "+f.name+"() {", "}", body...),
		Blank(),
	}
}

func settingStmts(settings []botblock.Block) []Stmt {
	var out []Stmt
	for _, block := range settings {
		data, ok := block.Data.(botblock.SettingData)
		if !ok || data.Setting == "" {
			continue
		}
		out = append(out, Line("const %s = %s;", data.Setting, jsString(data.Value)))
	}
	if len(out) > 0 {
		out = append(out, Blank())
	}
	return out
}

// preamble is the fixed framework bootstrap; it is identical for every
// invocation.
func preamble() []Stmt {
	return []Stmt{
		Line("'use strict';"),
		Blank(),
		Line("const express = require('express');"),
		Line("const line = require('@line/bot-sdk');"),
		Blank(),
		Block("const config = {", "};",
			Line("channelAccessToken: process.env.CHANNEL_ACCESS_TOKEN,"),
			Line("channelSecret: process.env.CHANNEL_SECRET,"),
		),
		Blank(),
		Line("const client = new line.Client(config);"),
		Line("const app = express();"),
		Blank(),
		Block("app.post('/webhook', line.middleware(config), (req, res) => {", "});",
			Line("Promise.all(req.body.events.map(handleEvent))"),
			Line("  .then((result) => res.json(result))"),
			Line("  .catch((err) => { console.error(err); res.status(500).end(); });"),
		),
		Blank(),
	}
}

func epilogue() []Stmt {
	return []Stmt{
		Line("const port = process.env.PORT || 3000;"),
		Block("app.listen(port, () => {", "});",
			Line("console.log('bot server listening on port ' + port);"),
		),
	}
}
