package main

import (
	"context"
	"io"
	"qrscanner/pkg/domain"
	"sync"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// terminalSink prints signals and notifications. It also reports the last
// signal so commands can decide their exit status.
type terminalSink struct {
	mu   sync.Mutex
	out  io.Writer
	last domain.Signal
	// changed is signalled after every emitted signal.
	changed chan struct{}

	result *color.Color
	fail   *color.Color
	note   *color.Color
}

func newTerminalSink(out io.Writer) *terminalSink {
	return &terminalSink{
		out:     out,
		last:    domain.Clear(),
		changed: make(chan struct{}, 1),
		result:  color.New(color.FgGreen, color.Bold),
		fail:    color.New(color.FgRed),
		note:    color.New(color.FgCyan),
	}
}

func (s *terminalSink) Emit(_ context.Context, signal domain.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = signal
	switch signal.Kind {
	case domain.SignalShowResult:
		_, _ = s.result.Fprintf(s.out, "✔ %s\n", signal.URL)
	case domain.SignalShowError:
		_, _ = s.fail.Fprintf(s.out, "✘ %s (%s)\n", signal.Message, signal.Code)
	case domain.SignalClear:
	}

	select {
	case s.changed <- struct{}{}:
	default:
	}
}

func (s *terminalSink) Notify(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.Body != "" {
		_, err := s.note.Fprintf(s.out, "• %s: %s\n", n.Title, n.Body)

		return err
	}
	_, err := s.note.Fprintf(s.out, "• %s\n", n.Title)

	return err
}

func (s *terminalSink) Last() domain.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

func printBanner(out io.Writer, domainName string) {
	_, _ = io.WriteString(out, figure.NewFigure("QRSCAN", "small", true).String())
	_, _ = color.New(color.FgCyan).Fprintf(out, "trusted domain: %s\n", domainName)
}
