// Package pkg provides the libraries behind the eulerpath command.
//
// # Overview
//
// Eulerpath solves a small routing puzzle: a game has levels 1..N joined by
// one-way teleporters, and the player must start on level 1, finish on level
// N and use every teleporter exactly once. In graph terms that is an Eulerian
// path from a fixed source to a fixed sink in a directed multigraph.
//
// The pkg directory is organized into:
//
//  1. [levels] - The level graph, its lifecycle and the path search
//  2. [testcase] - JSON/TOML batch files of cases
//  3. [pipeline] - Orchestration (load → solve → report)
//  4. [render] - DOT and SVG diagrams of a solved case
//  5. [runlog] - Per-run log files with every traversal step
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	cases.json / cases.toml
//	         ↓
//	    [testcase] package (decode + structural validation)
//	         ↓
//	    [pipeline] package (one [levels.Graph] per case)
//	         ↓
//	    solution path / IMPOSSIBLE, run log, optional diagram
//
// # Quick Start
//
// Solve a single graph directly:
//
//	p, err := levels.Solve(3, []levels.Edge{{From: 1, To: 2}, {From: 2, To: 3}})
//	if err != nil {
//	    log.Fatal(err) // malformed input only
//	}
//	fmt.Println(p) // 1 -> 2 -> 3
//
// Or run a whole file:
//
//	res, err := pipeline.NewRunner(nil).Run(ctx, pipeline.Options{Path: "cases.json"})
//
// [levels]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/levels
// [levels.Graph]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/levels#Graph
// [testcase]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/testcase
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/render
// [runlog]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/runlog
// [errors]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/eulerpath/pkg/buildinfo
package pkg
