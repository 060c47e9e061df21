/*
Package graphbuild turns an ordered cell sequence into the dependency
graph: one node per cell plus data edges (shared variable names) and
resource edges (shared normalized file paths).

Cells are processed strictly in ascending index order against two running
maps (last producer per name, last writer per path), so every edge points
forward by construction and the graph is acyclic with no cycle-detection
pass.
*/
package graphbuild
