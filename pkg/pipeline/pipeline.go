// Package pipeline runs batches of level-graph test cases through the solver.
//
// This package implements the load → solve → report flow shared by the
// `solve` and `render` commands, so both treat files, logging, hooks and
// cancellation the same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Run(ctx, pipeline.Options{Path: "cases.json"})
//	if err != nil {
//	    log.Fatal(err) // file or parse problem
//	}
//	for _, c := range res.Cases {
//	    fmt.Println(c.Index, c.Path) // c.Err is set for malformed cases
//	}
//
// A malformed case (teleporter endpoint out of range) does not stop the
// batch: its [CaseResult] carries the error and the next case runs. Context
// cancellation is checked between cases.
package pipeline

import (
	"github.com/matzehuels/eulerpath/pkg/levels"
	"github.com/matzehuels/eulerpath/pkg/runlog"
	"github.com/matzehuels/eulerpath/pkg/testcase"
)

// Options configures a batch run.
type Options struct {
	// Path is the test-case file (JSON or TOML).
	Path string

	// Order is the edge-choice order for every case.
	Order levels.Order

	// Only, when non-nil, restricts the run to the case with this index.
	Only *int

	// RunLog receives run, case and step records. Nil disables run logging.
	RunLog *runlog.Log
}

// Validate checks the options before any I/O.
func (o Options) Validate() error {
	return validatePath(o.Path)
}

// Cases returns the cases of suite selected by Only, or all of them.
func (o Options) Cases(suite *testcase.Suite) ([]testcase.Case, error) {
	if o.Only == nil {
		return suite.Cases, nil
	}
	c, err := suite.Select(*o.Only)
	if err != nil {
		return nil, err
	}
	return []testcase.Case{c}, nil
}
