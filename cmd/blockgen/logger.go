package main

import (
	"context"

	"github.com/goliatone/go-botblock"
	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the compiler's Logger
// interface so pipeline diagnostics share the host's log stream.
type zerologLogger struct {
	log zerolog.Logger
}

var _ botblock.Logger = zerologLogger{}

func (l zerologLogger) Trace(format string, args ...any) {
	l.log.Trace().Msgf(format, args...)
}

func (l zerologLogger) Debug(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l zerologLogger) Info(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l zerologLogger) Warn(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l zerologLogger) Error(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

func (l zerologLogger) Fatal(format string, args ...any) {
	l.log.Fatal().Msgf(format, args...)
}

func (l zerologLogger) WithContext(ctx context.Context) botblock.Logger {
	if lg := zerolog.Ctx(ctx); lg.GetLevel() != zerolog.Disabled {
		return zerologLogger{log: *lg}
	}
	return l
}
