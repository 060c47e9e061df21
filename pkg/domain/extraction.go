package domain

// Extraction is the result of scanning one code cell's source text.
// All fields are lexical heuristics, not parser output: false positives
// and negatives on dynamic or unusual code are an accepted limitation.
type Extraction struct {
	// Outputs holds names bound by def, class, plain / tuple-unpacking /
	// subscript / attribute / augmented assignment. Import targets are
	// excluded (see ImportAliases).
	Outputs []string

	// Inputs holds every identifier consumed by the cell: tokens that are
	// not keywords, builtins, already in Outputs, or import aliases, plus
	// the root identifier of every dotted access. These are raw inputs;
	// the graph builder resolves them against earlier producers.
	Inputs []string

	// ImportAliases holds names introduced by import statements, tracked
	// separately so they justify neither outputs nor inputs.
	ImportAliases []string

	// ResourceReads and ResourceWrites hold normalized file paths the
	// cell appears to read from or write to.
	ResourceReads  []string
	ResourceWrites []string
}
