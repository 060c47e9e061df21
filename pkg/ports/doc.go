/*
Package ports defines the driven ports (interfaces) for the cellgrid engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with different notebook sources, persistence
backends and executors.

# Key Interfaces

  - NotebookLoader: supplies the ordered cells and their live state.
  - IntentDispatcher: receives fire-and-forget run/stop/add intents.
  - SessionStore: persists per-notebook session State.
  - SymbolExtractor: the lexical analysis capability behind the graph builder.
*/
package ports
