/*
Package command maps free-form user text onto the closed command
vocabulary. Matching is an ordered list of (pattern, builder) rules
evaluated top to bottom; the first rule whose pattern matches the
normalized text wins, and later rules are never consulted.

The normalized form (trimmed, lower-cased, whitespace-collapsed) drives
structural matching; user-supplied content such as a note's wording is
extracted from the original text so its casing survives. Interpretation
is total: every string maps to exactly one command, with unknown as the
catch-all.
*/
package command
