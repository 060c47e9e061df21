// Package domain contains the core types of the cellgrid engine: notebook
// cells, dependency-graph nodes and edges, parsed commands, session state
// and the intents exchanged with external collaborators.
//
// The package is dependency-free by design. Behavior lives in the internal
// packages; adapters translate these types to and from the outside world.
package domain
