// Package crucible is an in-memory route planner for vehicles that cannot
// turn freely: the cheapest path across a grid of entry costs when the mover
// never reverses and must hold each heading for a bounded number of cells.
//
// Under the hood, everything is organized under two subpackages:
//
//	gridgraph/ — immutable, validated grid of per-cell entry costs
//	crucible/  — (cell, heading, run) best-first search with dominance pruning
//
// Quick example:
//
//	g, _ := gridgraph.From2D([][]int{{2, 4, 1}, {3, 2, 1}})
//	cost, err := crucible.MinHeatLoss(g, crucible.Standard)
//
// A runnable program lives in examples/.
//
//	go get github.com/katalvlaran/crucible
package crucible
