package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/eulerpath/pkg/levels"
	"github.com/matzehuels/eulerpath/pkg/pipeline"
	"github.com/matzehuels/eulerpath/pkg/render"
	"github.com/matzehuels/eulerpath/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file; empty writes to stdout
	format   string // "dot" or "svg"
	caseIdx  int    // case to draw
	order    string // edge choice order; empty means the config value
	detailed bool   // show degrees in level labels
}

// renderCommand creates the render command for drawing one case.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a test case and its path as a node-link diagram",
		Long: `Render solves one case and draws it with Graphviz. Teleporters on the path
are labelled with the step at which they are taken; if the case has no path,
every teleporter is drawn dashed.`,
		Example: `  eulerpath render cases.json --case 1 -o case1.svg
  eulerpath render cases.json -f dot | dot -Tpng > case0.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("order") {
				opts.order = c.cfg.Order
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().IntVar(&opts.caseIdx, "case", 0, "zero-based index of the case to draw")
	cmd.Flags().StringVar(&opts.order, "order", "", "edge choice order: lifo (default), insertion, lowest")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show in/out degrees on levels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	order, err := levels.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	res, err := c.newRunner().Run(ctx, pipeline.Options{Path: path, Order: order, Only: &opts.caseIdx})
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	cr := res.Cases[0]
	if cr.Err != nil {
		return fmt.Errorf("render %s: case %d: %w", path, cr.Index(), cr.Err)
	}

	prog := newProgress(c.Logger)
	dot := nodelink.ToDOT(cr.Graph, cr.Path, nodelink.Options{
		Detailed: opts.detailed,
		Title:    caseSummary(cr),
	})

	var spinner *Spinner
	if opts.format == render.FormatSVG && opts.output != "" {
		spinner = newSpinnerWithContext(ctx, "Rendering...")
		spinner.Start()
	}
	data, err := render.Render(ctx, dot, opts.format)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered case %d", cr.Index()))
	printSuccess("Rendered case %d", cr.Index())
	printFile(opts.output)
	return nil
}
