package extract

import (
	"regexp"
	"strings"

	"github.com/aretw0/cellgrid/pkg/domain"
)

// Extractor is the default lexical symbol extractor.
// The zero value is ready to use.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

var (
	identRe  = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	defRe    = regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)`)
	classRe  = regexp.MustCompile(`^\s*class\s+([A-Za-z_][A-Za-z0-9_]*)`)
	importRe = regexp.MustCompile(`^\s*import\s+(.+)$`)
	fromRe   = regexp.MustCompile(`^\s*from\s+[A-Za-z_][A-Za-z0-9_.]*\s+import\s+(.+)$`)

	// assignRe matches the left-hand side of a plain, augmented, tuple,
	// subscript or attribute assignment. The value side is ignored.
	assignRe = regexp.MustCompile(`^\s*\(?\s*([A-Za-z_][A-Za-z0-9_]*(?:\s*(?:\.[A-Za-z_][A-Za-z0-9_]*|\[[^\]]*\]))*(?:\s*,\s*\(?\s*[A-Za-z_][A-Za-z0-9_]*(?:\s*(?:\.[A-Za-z_][A-Za-z0-9_]*|\[[^\]]*\]))*\s*\)?)*)\s*\)?\s*(?:[+\-*/%&|^@]|//|\*\*|>>|<<)?=(?:[^=]|$)`)
)

// Extract scans source and returns its symbol and resource usage. It never
// fails; malformed or empty source yields an empty extraction.
func (e *Extractor) Extract(source string) domain.Extraction {
	if strings.TrimSpace(source) == "" {
		return domain.Extraction{}
	}

	code, literals := blankStringsAndComments(source)

	outputs := newOrderedSet()
	aliases := newOrderedSet()

	codeLines := strings.Split(code, "\n")
	for _, line := range codeLines {
		if names, ok := importTargets(line); ok {
			for _, n := range names {
				aliases.add(n)
			}
			continue
		}
		if m := defRe.FindStringSubmatch(line); m != nil {
			outputs.add(m[1])
			continue
		}
		if m := classRe.FindStringSubmatch(line); m != nil {
			outputs.add(m[1])
			continue
		}
		if m := assignRe.FindStringSubmatch(line); m != nil {
			for _, target := range strings.Split(m[1], ",") {
				name := rootIdentifier(target)
				if name != "" {
					outputs.add(name)
				}
			}
		}
	}

	inputs := newOrderedSet()
	for _, loc := range identRe.FindAllStringIndex(code, -1) {
		name := code[loc[0]:loc[1]]
		// Attribute names after a dot are not free identifiers; the root
		// of the dotted access is captured on its own.
		if loc[0] > 0 && code[loc[0]-1] == '.' {
			continue
		}
		if pythonKeywords[name] || pythonBuiltins[name] {
			continue
		}
		if outputs.has(name) || aliases.has(name) {
			continue
		}
		inputs.add(name)
	}

	// Classification looks at the raw line so mode strings like the "w"
	// in open(path, "w") are still visible.
	reads, writes := classifyResources(strings.Split(source, "\n"), literals)

	return domain.Extraction{
		Outputs:        outputs.values(),
		Inputs:         inputs.values(),
		ImportAliases:  aliases.values(),
		ResourceReads:  reads,
		ResourceWrites: writes,
	}
}

// importTargets returns the names bound by an import line, if it is one.
func importTargets(line string) ([]string, bool) {
	if m := fromRe.FindStringSubmatch(line); m != nil {
		clause := strings.TrimSpace(m[1])
		clause = strings.Trim(clause, "()")
		if strings.Contains(clause, "*") {
			return nil, true
		}
		var names []string
		for _, part := range strings.Split(clause, ",") {
			names = append(names, boundName(part))
		}
		return compact(names), true
	}
	if m := importRe.FindStringSubmatch(line); m != nil {
		var names []string
		for _, part := range strings.Split(m[1], ",") {
			names = append(names, boundName(part))
		}
		return compact(names), true
	}
	return nil, false
}

// boundName resolves "module.sub as alias" / "module.sub" to the name the
// statement binds: the alias when present, else the root component.
func boundName(part string) string {
	part = strings.TrimSpace(part)
	if part == "" {
		return ""
	}
	if fields := strings.Fields(part); len(fields) == 3 && fields[1] == "as" {
		return fields[2]
	}
	if dot := strings.IndexByte(part, '.'); dot >= 0 {
		part = part[:dot]
	}
	return strings.TrimSpace(part)
}

// rootIdentifier returns the leading identifier of an assignment target,
// so "df.loc[0]" and "cache['k']" both resolve to their root name.
func rootIdentifier(target string) string {
	target = strings.TrimSpace(target)
	target = strings.TrimLeft(target, "(")
	m := identRe.FindString(target)
	if m == "" || !strings.HasPrefix(strings.TrimSpace(target), m) {
		return ""
	}
	return m
}

func compact(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// literal is one string literal with the line it appeared on, kept for
// read/write classification of file paths.
type literal struct {
	text string
	line int
}

// blankStringsAndComments replaces string literal contents and comments
// with spaces so the identifier scan cannot match inside them, and
// collects the literals for resource classification. Triple-quoted and
// single-quoted strings are handled; escapes are honored naively.
func blankStringsAndComments(source string) (string, []literal) {
	var (
		out      = []byte(source)
		literals []literal
		line     = 0
	)

	i := 0
	for i < len(out) {
		c := out[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == '#':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '"' || c == '\'':
			quote := c
			triple := i+2 < len(out) && out[i+1] == quote && out[i+2] == quote
			width := 1
			if triple {
				width = 3
			}
			start := i + width
			j := start
			for j < len(out) {
				if out[j] == '\\' {
					j += 2
					continue
				}
				if out[j] == quote {
					if !triple {
						break
					}
					if j+2 < len(out) && out[j+1] == quote && out[j+2] == quote {
						break
					}
				}
				j++
			}
			end := j
			if end > len(out) {
				end = len(out)
			}
			literals = append(literals, literal{text: source[start:min(end, len(source))], line: line})
			for k := start; k < end && k < len(out); k++ {
				if out[k] == '\n' {
					line++
					continue
				}
				out[k] = ' '
			}
			i = end + width
		default:
			i++
		}
	}

	return string(out), literals
}

// orderedSet preserves first-appearance order with O(1) membership.
type orderedSet struct {
	seen  map[string]bool
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(name string) {
	if name == "" || s.seen[name] {
		return
	}
	s.seen[name] = true
	s.order = append(s.order, name)
}

func (s *orderedSet) has(name string) bool { return s.seen[name] }

func (s *orderedSet) values() []string { return s.order }
