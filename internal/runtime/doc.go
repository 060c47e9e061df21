/*
Package runtime applies interpreted commands to session state. Handlers
either mutate local state (selection, viewport, history) or emit
fire-and-forget intents to the external executor through the dispatcher
port, and every command resolves to a success, error or info outcome.

The executor acknowledges completions and stops asynchronously; Ack
removes the index from the running set idempotently, tolerating races
between a stop intent and an in-flight completion.
*/
package runtime
