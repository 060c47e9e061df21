package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Interpreter holds the ordered rule table. It is immutable after New and
// safe for concurrent use.
type Interpreter struct {
	rules []rule
}

// rule pairs one structural pattern with the builder that produces its
// command. A builder may reject a match (for example on a non-positive
// index), in which case evaluation falls through to later rules.
type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string, original string) (domain.Command, bool)
}

// New creates an Interpreter with the fixed rule priority order.
func New() *Interpreter {
	return &Interpreter{rules: buildRules()}
}

// Interpret maps text to exactly one command. It never fails; anything
// unrecognized resolves to a CommandUnknown.
func (it *Interpreter) Interpret(text string) domain.Command {
	original := strings.TrimSpace(text)
	if original == "" {
		return domain.Command{Kind: domain.CommandUnknown, Reason: "empty input"}
	}

	normalized := normalize(original)

	for _, r := range it.rules {
		m := r.pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		if cmd, ok := r.build(m, original); ok {
			return cmd
		}
	}

	return domain.Command{Kind: domain.CommandUnknown, Reason: "no rule matched"}
}

// RuleNames returns the rule names in priority order.
func (it *Interpreter) RuleNames() []string {
	names := make([]string, len(it.rules))
	for i, r := range it.rules {
		names[i] = r.name
	}
	return names
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalize produces the case-insensitive, whitespace-collapsed form used
// for structural matching.
func normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(text), " ")
}

// parseIndex converts a captured digit sequence from the 1-based
// user-facing numbering to the 0-based internal one. A non-positive or
// non-numeric capture reports false so the rule is treated as
// non-matching.
func parseIndex(capture string) (int, bool) {
	n, err := strconv.Atoi(capture)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n - 1, true
}
