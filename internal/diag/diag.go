// Package diag provides the advisory diagnostics channel for the parsing
// engine. Normalization and script detection report non-fatal findings
// (substituted glyphs, unexpected scripts) through an injected Sink so that
// messages stay attributable to the entry being processed even when many
// entries are parsed concurrently.
package diag

import (
	"fmt"
	"log/slog"
)

// Sink receives advisory messages. Implementations must be safe for use
// from a single parse at a time; concurrent parses get separate sinks.
type Sink interface {
	// Infof reports a finding the user should probably see, such as a
	// possibly erroneous symbol that was substituted.
	Infof(format string, args ...any)
	// Debugf reports low-value detail, such as script detection results.
	Debugf(format string, args ...any)
}

type discard struct{}

func (discard) Infof(string, ...any)  {}
func (discard) Debugf(string, ...any) {}

// Discard returns a sink that drops all messages.
func Discard() Sink {
	return discard{}
}

type slogSink struct {
	l *slog.Logger
}

func (s slogSink) Infof(format string, args ...any) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s slogSink) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

// NewSlog returns a sink backed by the given structured logger.
func NewSlog(l *slog.Logger) Sink {
	return slogSink{l: l}
}

// ForEntry returns a sink that labels every message with the entry it
// belongs to, typically the entry's headword text or ordinal.
func ForEntry(base Sink, label string) Sink {
	return entrySink{base: base, label: label}
}

type entrySink struct {
	base  Sink
	label string
}

func (s entrySink) Infof(format string, args ...any) {
	s.base.Infof("[%s] %s", s.label, fmt.Sprintf(format, args...))
}

func (s entrySink) Debugf(format string, args ...any) {
	s.base.Debugf("[%s] %s", s.label, fmt.Sprintf(format, args...))
}
