/*
Package extract implements the default ports.SymbolExtractor: a lexical
heuristic that scans one cell's source text for defined names, consumed
names, import aliases and file-path usage.

This is deliberately not a parser. It works on tokens and line patterns,
so dynamic or unusual code produces false positives and negatives; that is
an accepted limitation of the design, not a defect. Callers that need
exact semantics should supply a real parser behind the same interface.
*/
package extract
