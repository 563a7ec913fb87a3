package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/levels"
	"github.com/matzehuels/eulerpath/pkg/observability"
	"github.com/matzehuels/eulerpath/pkg/testcase"
)

// Runner encapsulates batch execution with logging and hooks.
//
// The Runner is stateless except for the logger; multiple goroutines can
// use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run loads opts.Path and solves every case (or just opts.Only).
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	suite, err := r.Load(ctx, opts.Path)
	if err != nil {
		return nil, err
	}

	cases, err := opts.Cases(suite)
	if err != nil {
		return nil, err
	}
	return r.Solve(ctx, suite, cases, opts)
}

// Load reads a test-case file. Warnings are returned on the suite and
// logged at debug level.
func (r *Runner) Load(ctx context.Context, path string) (*testcase.Suite, error) {
	hooks := observability.Solver()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	suite, err := testcase.Load(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, len(suite.Cases), time.Since(start), nil)

	for _, w := range suite.Warnings {
		r.Logger.Debug(w, "file", path)
	}
	r.Logger.Debug("loaded test cases", "file", path, "cases", len(suite.Cases))
	return suite, nil
}

// Solve runs the given cases in order, stopping early only if ctx is
// cancelled. An interrupted run still records its partial tally.
func (r *Runner) Solve(ctx context.Context, suite *testcase.Suite, cases []testcase.Case, opts Options) (*Result, error) {
	res := &Result{Source: suite.Source, Warnings: suite.Warnings}
	if opts.RunLog != nil {
		res.RunID = opts.RunLog.ID
		res.RunLogPath = opts.RunLog.Path
	}
	opts.RunLog.Start(suite.Source, len(cases))
	start := time.Now()

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			res.Stats.Duration = time.Since(start)
			opts.RunLog.Interrupted(len(cases)-len(res.Cases), err)
			opts.RunLog.Finish(res.Stats.Found, res.Stats.Impossible, res.Stats.Failed)
			r.Logger.Warn("run interrupted", "solved", len(res.Cases), "remaining", len(cases)-len(res.Cases))
			return res, err
		}
		cr := r.SolveCase(ctx, c, opts)
		res.Cases = append(res.Cases, cr)
		res.Stats.add(cr)
	}
	res.Stats.Duration = time.Since(start)

	opts.RunLog.Finish(res.Stats.Found, res.Stats.Impossible, res.Stats.Failed)
	r.Logger.Info("solved test cases",
		"cases", len(res.Cases),
		"found", res.Stats.Found,
		"impossible", res.Stats.Impossible,
		"failed", res.Stats.Failed,
		"duration", res.Stats.Duration.Round(time.Microsecond))
	return res, nil
}

// SolveCase solves a single case. Malformed input is reported in
// CaseResult.Err rather than returned.
func (r *Runner) SolveCase(ctx context.Context, c testcase.Case, opts Options) CaseResult {
	hooks := observability.Solver()
	hooks.OnCaseStart(ctx, c.Index, c.NumLevels, len(c.Teleporters))
	opts.RunLog.CaseStart(c.Index, c.NumLevels, len(c.Teleporters))
	start := time.Now()

	cr := CaseResult{Case: c}
	g, err := levels.New(c.NumLevels,
		levels.WithOrder(opts.Order),
		levels.WithObserver(opts.RunLog.Observer(c.Index)))
	if err == nil {
		err = g.Build(c.Teleporters)
	}
	if err == nil {
		cr.Path, err = g.FindEulerianPath()
	}
	cr.Graph = g
	cr.Err = err
	cr.Duration = time.Since(start)

	hooks.OnCaseComplete(ctx, c.Index, cr.Path.Found, cr.Duration, err)
	opts.RunLog.CaseFinish(c.Index, cr.Path, cr.Duration, err)

	if err != nil {
		r.Logger.Error("malformed test case", "case", c.Index, "code", apperrors.GetCode(err), "err", apperrors.UserMessage(err))
	} else {
		r.Logger.Debug("solved test case",
			"case", c.Index,
			"levels", c.NumLevels,
			"teleporters", len(c.Teleporters),
			"found", cr.Path.Found,
			"duration", cr.Duration)
	}
	return cr
}
