/*
Package layout assigns 2-D positions to graph nodes: a topological level
derived from data edges only, then row/column packing within each level.

Layout is a pure function of the graph. Position overrides from user drags
are layered on top at read time and never mutate the computed values.
*/
package layout
