package pipeline

import (
	"time"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/levels"
	"github.com/matzehuels/eulerpath/pkg/testcase"
)

// Result holds everything a batch run produced.
type Result struct {
	Source     string
	Cases      []CaseResult
	Warnings   []string
	RunID      string
	RunLogPath string
	Stats      Stats
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Case     testcase.Case
	Path     levels.Path
	Err      error
	Duration time.Duration

	// Graph is the solved graph, kept for rendering. It is nil when the
	// level count was invalid and unbuilt when an edge was.
	Graph *levels.Graph
}

// Index returns the case's position in its file.
func (c CaseResult) Index() int { return c.Case.Index }

// Stats summarizes a batch.
type Stats struct {
	Found      int
	Impossible int
	Failed     int
	Duration   time.Duration
}

func (s *Stats) add(c CaseResult) {
	switch {
	case c.Err != nil:
		s.Failed++
	case c.Path.Found:
		s.Found++
	default:
		s.Impossible++
	}
}

func validatePath(path string) error {
	if err := apperrors.ValidatePath(path); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "test-case file")
	}
	return nil
}
