package command

import (
	"regexp"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Default content templates substituted when an add command carries no
// explicit content clause.
const (
	DefaultMarkdownContent = "## Notes\n\nWrite your notes here."
	DefaultCodeContent     = "# new cell"
	DefaultSummaryContent  = "## Summary\n\nSummarize the notebook here."
)

// contentClauseRe pulls user-supplied content out of the original text so
// its casing and punctuation survive normalization.
var contentClauseRe = regexp.MustCompile(`(?is)\b(?:saying|that says|with|containing)\s+(.+)$|:\s*(.+)$`)

// buildRules returns the rule table in its fixed priority order:
// help, clear-selection, zoom-in, zoom-out, zoom-reset, run-selected,
// stop-selected, stop-all, stop-index, run-all, run-range, run-cell,
// select-cell, open-cell, add-summary, add-cell.
func buildRules() []rule {
	return []rule{
		{
			name:    "help",
			pattern: regexp.MustCompile(`^(?:help|h|\?|commands?|what can i (?:say|do))$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandHelp}, true
			},
		},
		{
			name:    "clear-selection",
			pattern: regexp.MustCompile(`^(?:clear(?: the)? selection|deselect(?: cell| all)?|unselect)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandClearSelection}, true
			},
		},
		{
			name:    "zoom-in",
			pattern: regexp.MustCompile(`^(?:zoom ?in|\+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandZoom, Direction: domain.ZoomIn}, true
			},
		},
		{
			name:    "zoom-out",
			pattern: regexp.MustCompile(`^(?:zoom ?out|-)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandZoom, Direction: domain.ZoomOut}, true
			},
		},
		{
			name:    "zoom-reset",
			pattern: regexp.MustCompile(`^(?:zoom reset|reset (?:zoom|view)|fit(?: view)?)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandZoom, Direction: domain.ZoomReset}, true
			},
		},
		{
			name:    "run-selected",
			pattern: regexp.MustCompile(`^(?:run|execute) (?:the )?(?:selected|this)(?: cell)?$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandRunSelected}, true
			},
		},
		{
			name:    "stop-selected",
			pattern: regexp.MustCompile(`^(?:stop|cancel|kill) (?:the )?(?:selected|this)(?: cell)?$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandStopCell, Scope: domain.StopScopeSelected}, true
			},
		},
		{
			name:    "stop-all",
			pattern: regexp.MustCompile(`^(?:stop|cancel|kill) (?:all(?: cells)?|everything)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandStopCell, Scope: domain.StopScopeAll}, true
			},
		},
		{
			name:    "stop-index",
			pattern: regexp.MustCompile(`^(?:stop|cancel|kill) (?:cell )?#?(\d+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				idx, ok := parseIndex(m[1])
				if !ok {
					return domain.Command{}, false
				}
				return domain.Command{Kind: domain.CommandStopCell, Scope: domain.StopScopeIndex, Index: idx}, true
			},
		},
		{
			name:    "run-all",
			pattern: regexp.MustCompile(`^(?:run|execute) (?:all(?: cells)?|everything|the (?:whole )?notebook)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{Kind: domain.CommandRunAll}, true
			},
		},
		{
			name:    "run-range",
			pattern: regexp.MustCompile(`^(?:run|execute) (?:cells? )?#?(\d+) ?(?:-|to|through|thru|until|up to) ?#?(\d+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				start, ok1 := parseIndex(m[1])
				end, ok2 := parseIndex(m[2])
				if !ok1 || !ok2 {
					return domain.Command{}, false
				}
				return domain.Command{Kind: domain.CommandRunRange, Start: start, End: end}, true
			},
		},
		{
			name:    "run-cell",
			pattern: regexp.MustCompile(`^(?:run|execute) (?:cell )?#?(\d+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				idx, ok := parseIndex(m[1])
				if !ok {
					return domain.Command{}, false
				}
				return domain.Command{Kind: domain.CommandRunCell, Index: idx}, true
			},
		},
		{
			name:    "select-cell",
			pattern: regexp.MustCompile(`^(?:select|highlight|focus) (?:cell )?#?(\d+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				idx, ok := parseIndex(m[1])
				if !ok {
					return domain.Command{}, false
				}
				return domain.Command{Kind: domain.CommandSelectCell, Index: idx}, true
			},
		},
		{
			name:    "open-cell",
			pattern: regexp.MustCompile(`^(?:open|show|view|inspect) (?:cell )?#?(\d+)$`),
			build: func(m []string, original string) (domain.Command, bool) {
				idx, ok := parseIndex(m[1])
				if !ok {
					return domain.Command{}, false
				}
				return domain.Command{Kind: domain.CommandOpenCell, Index: idx}, true
			},
		},
		{
			name:    "add-summary",
			pattern: regexp.MustCompile(`^(?:add|create|insert) (?:an? )?summary(?: (?:note|cell))?$`),
			build: func(m []string, original string) (domain.Command, bool) {
				return domain.Command{
					Kind:     domain.CommandAddCell,
					CellType: domain.CellTypeMarkdown,
					Content:  DefaultSummaryContent,
				}, true
			},
		},
		{
			name:    "add-cell",
			pattern: regexp.MustCompile(`^(?:add|create|insert) (?:an? )?(?:new )?(markdown|md|note|text|code)(?: cell| note)?(?: .+|:.*)?$`),
			build: func(m []string, original string) (domain.Command, bool) {
				cellType := domain.CellTypeMarkdown
				content := DefaultMarkdownContent
				if m[1] == "code" {
					cellType = domain.CellTypeCode
					content = DefaultCodeContent
				}
				if extracted, ok := extractContent(original); ok {
					content = extracted
				}
				return domain.Command{
					Kind:     domain.CommandAddCell,
					CellType: cellType,
					Content:  content,
				}, true
			},
		},
	}
}

// extractContent pulls the free-text content clause out of the original,
// non-normalized command text.
func extractContent(original string) (string, bool) {
	m := contentClauseRe.FindStringSubmatch(original)
	if m == nil {
		return "", false
	}
	for _, group := range m[1:] {
		if group != "" {
			return group, true
		}
	}
	return "", false
}
