package graphbuild

import (
	"strings"

	"github.com/aretw0/cellgrid/pkg/domain"
)

const summaryMaxRunes = 60

// Summarize derives the human-readable node label for a cell. Markdown
// cells use their first heading or line; code cells use their first
// non-empty effective line.
func Summarize(cell domain.Cell, state domain.CellState) string {
	source := cell.Source
	if cell.Type == domain.CellTypeCode {
		source = domain.EffectiveSource(cell, state)
	}

	line := firstNonEmptyLine(source)
	if line == "" {
		if cell.Type == domain.CellTypeMarkdown {
			return "(empty markdown)"
		}
		return "(empty cell)"
	}

	if cell.Type == domain.CellTypeMarkdown {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line == "" {
			return "(empty markdown)"
		}
	}

	return truncate(line, summaryMaxRunes)
}

func firstNonEmptyLine(source string) string {
	for _, line := range strings.Split(source, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
