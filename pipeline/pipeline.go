// Package pipeline composes the compiler stages: legacy migration,
// compatibility checks, wire-format validation, and artifact emission.
// A Pipeline is a pure function of (block graph, target); hosts own
// persistence, transport, and presentation.
package pipeline

import (
	"github.com/goliatone/go-botblock"
	"github.com/goliatone/go-botblock/codegen"
	"github.com/goliatone/go-botblock/compat"
	"github.com/goliatone/go-botblock/flex"
	"github.com/goliatone/go-botblock/migrate"
	"github.com/goliatone/go-botblock/schema"
)

// Target selects which artifact a compile run produces.
type Target string

const (
	TargetSource   Target = "generate-source"
	TargetDocument Target = "generate-document"
)

// Request carries the ordered input graphs. Logic and Message hold
// current-shape blocks; LegacyLogic and LegacyMessage hold old-shape
// blocks, which are migrated and appended after the current ones.
type Request struct {
	Target        Target
	Logic         []botblock.Block
	Message       []botblock.Block
	LegacyLogic   []botblock.LegacyBlock
	LegacyMessage []botblock.LegacyBlock
}

// Artifact is the outcome of one compile run. Source is set for the
// source target; Document for the document target unless an
// error-severity violation blocked emission. Result always carries the
// collected diagnostics.
type Artifact struct {
	Source   string
	Document *flex.Document
	Result   botblock.ValidationResult
}

// Pipeline wires the stages over one schema registry, one rule table,
// and one limits table. It retains no per-compile state; concurrent
// Compile calls on independent requests are safe.
type Pipeline struct {
	registry  *schema.Registry
	rules     *compat.Table
	limits    flex.Limits
	migrator  *migrate.Migrator
	validator *flex.Validator
	converter *flex.Converter
	generator *codegen.Generator
	logger    botblock.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRegistry substitutes the schema registry.
func WithRegistry(reg *schema.Registry) Option {
	return func(p *Pipeline) { p.registry = reg }
}

// WithRules substitutes the compatibility rule table.
func WithRules(rules *compat.Table) Option {
	return func(p *Pipeline) { p.rules = rules }
}

// WithLimits substitutes the platform limits table.
func WithLimits(limits flex.Limits) Option {
	return func(p *Pipeline) { p.limits = limits }
}

// WithLogger wires a logger; the fmt fallback is used otherwise.
func WithLogger(logger botblock.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New constructs a pipeline over the built-in registry, rules, and
// limits unless options substitute them.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{limits: flex.DefaultLimits()}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = schema.Default()
	}
	if p.rules == nil {
		p.rules = compat.DefaultTable()
	}
	p.logger = botblock.NormalizeLogger(p.logger)
	p.migrator = migrate.New(p.registry)
	p.validator = flex.NewValidator(p.limits)
	p.converter = flex.NewConverter()
	p.generator = codegen.New(
		codegen.WithLimits(p.limits),
		codegen.WithLogger(p.logger),
	)
	return p
}

// Compile runs the full pipeline for one request. Validation failures
// are collected in the artifact's Result, never returned as errors; the
// error return is reserved for contract violations such as an unknown
// target.
func (p *Pipeline) Compile(req Request) (Artifact, error) {
	logic, err := p.normalize(req.Logic, req.LegacyLogic)
	if err != nil {
		return Artifact{}, err
	}
	message, err := p.normalize(req.Message, req.LegacyMessage)
	if err != nil {
		return Artifact{}, err
	}

	logicGraph := botblock.Graph{Context: botblock.ContextLogic, Blocks: logic}
	messageGraph := botblock.Graph{Context: botblock.ContextFlex, Blocks: message}

	result := botblock.OK()
	result.Merge(p.checkGraph(logicGraph))
	result.Merge(p.checkGraph(messageGraph))
	result.Merge(p.validateWire(messageGraph))

	switch req.Target {
	case TargetSource:
		source, genResult := p.generator.Generate(logicGraph, messageGraph)
		result.Merge(genResult)
		result.Sort()
		return Artifact{Source: source, Result: result}, nil
	case TargetDocument:
		return p.compileDocument(messageGraph, result)
	}
	return Artifact{}, botblock.ErrUnknownTarget
}

func (p *Pipeline) compileDocument(message botblock.Graph, result botblock.ValidationResult) (Artifact, error) {
	root, ok := rootContainer(message)
	if !ok {
		return Artifact{}, botblock.ErrNoContainer
	}

	doc := p.converter.ConvertContainer(root, message)
	result.Merge(p.validator.ValidateDocument(doc))
	result.Sort()

	artifact := Artifact{Result: result}
	if result.Valid {
		// error-severity violations block emission; warnings do not
		artifact.Document = &doc
	}
	return artifact, nil
}

func (p *Pipeline) normalize(current []botblock.Block, legacy []botblock.LegacyBlock) ([]botblock.Block, error) {
	out := make([]botblock.Block, 0, len(current)+len(legacy))
	for _, block := range current {
		out = append(out, p.migrator.MigrateBlock(block))
	}
	migrated, err := p.migrator.MigrateAll(legacy)
	if err != nil {
		return nil, err
	}
	return append(out, migrated...), nil
}

func (p *Pipeline) checkGraph(graph botblock.Graph) botblock.ValidationResult {
	result := botblock.OK()
	for _, block := range graph.Blocks {
		result.Merge(p.rules.Check(block, graph.Context, graph))
	}
	return result
}

func (p *Pipeline) validateWire(message botblock.Graph) botblock.ValidationResult {
	result := botblock.OK()
	for _, block := range message.Blocks {
		switch data := block.Data.(type) {
		case botblock.ContainerData:
			result.Merge(p.validator.ValidateContainer(block.ID, data, len(block.Children)))
		case botblock.BoxData:
			result.Merge(p.validator.ValidateBox(block.ID, data))
		case botblock.ContentData:
			result.Merge(p.validator.ValidateContent(block.ID, data))
		}
	}
	return result
}

func rootContainer(message botblock.Graph) (botblock.Block, bool) {
	for _, block := range message.Blocks {
		if block.Category == botblock.CategoryFlexContainer && block.ParentID == "" {
			return block, true
		}
	}
	return botblock.Block{}, false
}
