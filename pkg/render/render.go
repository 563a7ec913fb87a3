package render

import (
	"context"
	"fmt"
	"slices"
	"time"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/observability"
	"github.com/matzehuels/eulerpath/pkg/render/nodelink"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Formats lists the supported output formats.
var Formats = []string{FormatDOT, FormatSVG}

// ValidateFormat returns an INVALID_FORMAT error for anything but
// "dot" or "svg".
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported output format %q (want one of %v)", format, Formats)
	}
	return nil
}

// Render converts DOT source to the requested format.
func Render(ctx context.Context, dot string, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	var (
		out []byte
		err error
	)
	switch format {
	case FormatDOT:
		out = []byte(dot)
	case FormatSVG:
		out, err = nodelink.RenderSVG(ctx, dot)
	}
	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return out, nil
}
