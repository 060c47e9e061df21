package ports

import "github.com/aretw0/cellgrid/pkg/domain"

// SymbolExtractor is the lexical analysis capability consumed by the graph
// builder. The default implementation is a token/regex heuristic; keeping
// it behind this interface means a real parser can replace it without
// touching the builder.
//
// Extract must never fail: malformed or empty source yields an empty
// Extraction.
type SymbolExtractor interface {
	Extract(source string) domain.Extraction
}
