// Command blockgen compiles a saved bot project into webhook server
// source or a wire-format message document. It is the I/O host around
// the pure compiler core: it reads the project file, runs the pipeline,
// and writes the artifact.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goliatone/go-botblock"
	"github.com/goliatone/go-botblock/pipeline"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type cli struct {
	Project string `help:"Path to the project file (YAML or JSON)." required:"" type:"existingfile" env:"BLOCKGEN_PROJECT"`
	Target  string `help:"Artifact to produce." enum:"source,document" default:"source" env:"BLOCKGEN_TARGET"`
	Out     string `help:"Output path; '-' writes to stdout." default:"-" env:"BLOCKGEN_OUT"`
	Every   string `help:"Cron expression; recompile the project on this schedule." env:"BLOCKGEN_EVERY"`
	Debug   bool   `help:"Enable debug logging."`
}

// projectFile is the persisted editor document: name, version, and the
// two block lists, possibly still in the legacy shape.
type projectFile struct {
	Name          string                 `yaml:"name" json:"name"`
	Version       string                 `yaml:"version,omitempty" json:"version,omitempty"`
	Logic         []botblock.Block       `yaml:"logic,omitempty" json:"logic,omitempty"`
	Message       []botblock.Block       `yaml:"message,omitempty" json:"message,omitempty"`
	LegacyLogic   []botblock.LegacyBlock `yaml:"legacyLogic,omitempty" json:"legacyLogic,omitempty"`
	LegacyMessage []botblock.LegacyBlock `yaml:"legacyMessage,omitempty" json:"legacyMessage,omitempty"`
}

func main() {
	// .env values feed the env-tagged flags below
	_ = godotenv.Load()

	var flags cli
	ctx := kong.Parse(&flags,
		kong.Name("blockgen"),
		kong.Description("Compile visual bot-builder block graphs into webhook source or message documents."),
	)

	level := zerolog.InfoLevel
	if flags.Debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	logger := zerologLogger{log: zlog}

	run := func() error { return compileOnce(flags, logger) }

	if flags.Every != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(flags.Every, func() {
			if err := run(); err != nil {
				logger.Error("scheduled compile failed: %v", err)
			}
		}); err != nil {
			ctx.FatalIfErrorf(fmt.Errorf("invalid schedule %q: %w", flags.Every, err))
		}
		logger.Info("recompiling %s on schedule %q", flags.Project, flags.Every)
		scheduler.Run()
		return
	}

	ctx.FatalIfErrorf(run())
}

func compileOnce(flags cli, logger botblock.Logger) error {
	raw, err := os.ReadFile(flags.Project)
	if err != nil {
		return fmt.Errorf("read project: %w", err)
	}

	var project projectFile
	if err := yaml.Unmarshal(raw, &project); err != nil {
		return fmt.Errorf("decode project: %w", err)
	}

	target := pipeline.TargetSource
	if flags.Target == "document" {
		target = pipeline.TargetDocument
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	artifact, err := p.Compile(pipeline.Request{
		Target:        target,
		Logic:         project.Logic,
		Message:       project.Message,
		LegacyLogic:   project.LegacyLogic,
		LegacyMessage: project.LegacyMessage,
	})
	if err != nil {
		return fmt.Errorf("compile %s: %w", project.Name, err)
	}

	reportDiagnostics(logger, artifact.Result)

	var output []byte
	switch target {
	case pipeline.TargetSource:
		output = []byte(artifact.Source)
	case pipeline.TargetDocument:
		if artifact.Document == nil {
			return fmt.Errorf("document emission blocked by %d error(s)", len(artifact.Result.Errors))
		}
		output, err = json.MarshalIndent(artifact.Document.Message(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
		output = append(output, '\n')
	}

	if flags.Out == "-" {
		_, err = os.Stdout.Write(output)
		return err
	}
	if err := os.WriteFile(flags.Out, output, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote %s (%d bytes)", flags.Out, len(output))
	return nil
}

func reportDiagnostics(logger botblock.Logger, result botblock.ValidationResult) {
	for _, d := range result.Warnings {
		logger.Warn("%s", d.String())
	}
	for _, d := range result.Errors {
		logger.Error("%s", d.String())
	}
}
