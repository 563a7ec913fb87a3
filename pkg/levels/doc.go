// Package levels finds Eulerian paths through a directed multigraph of game
// levels joined by one-way teleporters.
//
// # Overview
//
// A game has levels numbered 1..N. Each teleporter leads from one level to
// another (possibly the same one, possibly in parallel with other
// teleporters). The player starts at level 1, must finish at level N and must
// use every teleporter exactly once. That is an Eulerian path from 1 to N.
//
// # Basic Usage
//
// [Solve] is the single entry point most callers need:
//
//	p, err := levels.Solve(3, []levels.Edge{{From: 1, To: 2}, {From: 2, To: 3}})
//	if err != nil {
//	    // malformed input: level count < 1 or an endpoint outside [1, N]
//	}
//	fmt.Println(p) // 1 -> 2 -> 3
//
// A graph without a valid route is not an error: Solve returns [Impossible],
// which prints as "IMPOSSIBLE".
//
// # Lifecycle
//
// [Graph] exposes the individual steps and enforces a small state machine:
//
//	StateUnbuilt --Build--> StateBuilt --FindEulerianPath--> StatePathComputed
//
// [Graph.Visualize] is only valid once the path is computed. [Graph.Reset]
// rewinds a solved graph to StateBuilt so it can be traversed again, for
// example with a different [Order].
//
// # Algorithm
//
// [Graph.HasEulerianPath] checks the degree balance: only level 1 may have
// one more outgoing than incoming teleporter, only level N may have one more
// incoming than outgoing, every other level is balanced. [Graph.FindEulerianPath]
// then runs Hierholzer's algorithm with an explicit stack and accepts the
// result only if it has EdgeCount()+1 entries, which rejects graphs that pass
// the degree check but are not connected.
//
// Connections live in a single arena indexed by position. Levels hold
// indices into that arena and a traversal cursor, so the adjacency itself is
// never consumed by the search and stays inspectable afterwards.
//
// # Edge Order
//
// When a level has several unused outgoing teleporters the choice decides
// which of the valid paths is returned. [OrderLIFO] (the default) takes the
// most recently added teleporter first; [OrderInsertion] and
// [OrderLowestDestination] are also available via [WithOrder].
//
// # Observing
//
// An [Observer] installed with [WithObserver] is told about every state
// transition and every traversal step. It cannot change the outcome.
//
// # Concurrency
//
// A Graph is not safe for concurrent use. Separate graphs are independent.
package levels
