package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// NewMarkdownRenderer returns a function that renders markdown cell source
// using glamour, auto-detecting the terminal background.
func NewMarkdownRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ColorizeOutcome styles a result message by its outcome: green for
// success, red for error, dim for info.
func ColorizeOutcome(outcome domain.Outcome, message string) string {
	p := termenv.ColorProfile()
	s := termenv.String(message)
	switch outcome {
	case domain.OutcomeSuccess:
		return s.Foreground(p.Color("#34d399")).String()
	case domain.OutcomeError:
		return s.Foreground(p.Color("#f87171")).String()
	default:
		return s.Faint().String()
	}
}
