/*
Package cellgrid turns a computational notebook into a navigable dependency
graph and drives it with plain-language commands.

It analyzes each code cell lexically (no interpreter required) to find the
variables it defines and consumes and the data files it reads and writes,
links cells with forward-only dependency edges, lays the graph out in
columns by dependency depth, and interprets commands like "run cells 2 to
5" against the resulting view.

# Concept

The engine never executes notebook code itself. Run and stop commands are
translated into fire-and-forget intents handed to an external executor
through the IntentDispatcher port; the executor reports back with
idempotent acknowledgements. The engine owns only the session state:
selection, running set, drag overrides, viewport and command history.
This hexagonal split lets the same core serve a CLI, an HTTP host or an
embedding editor.

# Key Features

  - Lexical extraction: definitions, uses, imports and file resources are
    found by line-level scanning, tolerant of code that would not parse.
  - Forward-only graph: every edge points from an earlier cell to a later
    one, so the graph is acyclic by construction.
  - Total command interpretation: any input maps to exactly one command,
    with an ordered first-match rule list and an unknown fallback.
  - Pluggable persistence: sessions survive restarts via the SessionStore
    port (in-memory and Redis adapters included).

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cellgrid"
	)

	func main() {
		eng := cellgrid.New()

		ctx := context.Background()
		session, err := eng.Open(ctx, "analysis.ipynb")
		if err != nil {
			log.Fatal(err)
		}

		result, err := session.Submit(ctx, "run cells 2 to 5")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(result.Message)
	}
*/
package cellgrid
