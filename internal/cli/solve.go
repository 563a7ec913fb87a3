package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/levels"
	"github.com/matzehuels/eulerpath/pkg/pipeline"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	order   string // edge choice order; empty means the config value
	step    bool   // page through results with the interactive viewer
	noLog   bool   // skip writing a run log
	caseIdx int    // solve only this case; -1 means all
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{caseIdx: -1}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the Eulerian path of every test case in a file",
		Long: `Solve reads a JSON or TOML test-case file and prints, for each case, a route
from level 1 to level N that uses every teleporter exactly once, or IMPOSSIBLE.

Malformed cases (a teleporter endpoint outside the level range) are reported
and skipped; the rest of the batch still runs.`,
		Example: `  eulerpath solve cases.json
  eulerpath solve cases.toml --order insertion --case 2
  eulerpath solve cases.json --step`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("order") {
				opts.order = c.cfg.Order
			}
			if !cmd.Flags().Changed("step") {
				opts.step = c.cfg.Step
			}
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.order, "order", "", "edge choice order: lifo (default), insertion, lowest")
	cmd.Flags().BoolVar(&opts.step, "step", false, "step through cases one at a time")
	cmd.Flags().BoolVar(&opts.noLog, "no-log", false, "do not write a run log")
	cmd.Flags().IntVar(&opts.caseIdx, "case", -1, "solve only the case with this zero-based index")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, path string, opts solveOpts) error {
	order, err := levels.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	popts := pipeline.Options{Path: path, Order: order}
	if opts.caseIdx >= 0 {
		popts.Only = &opts.caseIdx
	}
	if err := popts.Validate(); err != nil {
		return err
	}

	runner := c.newRunner()
	suite, err := runner.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}
	cases, err := popts.Cases(suite)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}

	// The run log is opened only once there is something to solve.
	popts.RunLog = c.openRunLog(opts.noLog)
	defer popts.RunLog.Close()

	res, err := runner.Solve(ctx, suite, cases, popts)
	if err != nil {
		return fmt.Errorf("solve %s: %w", path, err)
	}

	for _, w := range res.Warnings {
		printWarning("%s", w)
	}

	if opts.step {
		if err := runStepper(ctx, res); err != nil {
			return err
		}
	} else {
		printResults(res)
	}

	printNewline()
	printStats(res.Stats)
	if res.RunLogPath != "" {
		printDetail("run log %s", res.RunLogPath)
		printNextStep("List run logs", appName+" logs list")
	}
	return nil
}

// printResults prints one status line per case.
func printResults(res *pipeline.Result) {
	printInfo("%s %s", StyleTitle.Render("Solution paths"), StyleDim.Render(res.Source))
	for _, cr := range res.Cases {
		fmt.Println(caseLine(cr))
	}
}

// caseLine is caseSummary with a status icon and styling.
func caseLine(cr pipeline.CaseResult) string {
	label := fmt.Sprintf("Case %d:", cr.Index())
	switch {
	case cr.Err != nil:
		return styleIconError.Render(iconError) + " " + label + " " + renderPath(cr)
	case cr.Path.Found:
		return styleIconSuccess.Render(iconSuccess) + " " + label + " " + renderPath(cr)
	}
	return styleIconWarning.Render(iconWarning) + " " + label + " " + renderPath(cr)
}

// runStepper shows one case at a time until the user quits or runs past
// the last case.
func runStepper(ctx context.Context, res *pipeline.Result) error {
	if len(res.Cases) == 0 {
		printInfo("No test cases")
		return nil
	}
	p := tea.NewProgram(newStepModel(res.Cases), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "interactive viewer")
	}
	return nil
}
