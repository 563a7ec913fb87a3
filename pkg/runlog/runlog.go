// Package runlog writes transient, per-run log files for batch solving.
//
// Each run gets its own file named after a random run ID. Lines are logfmt,
// written with charmbracelet/log, and record the run header, every case, every
// traversal step of the solver and the final tally:
//
//	time=... level=INFO msg="run started" run=3f0c... source=cases.json cases=2 version=v1.0.0
//	time=... level=INFO msg="case started" case=0 levels=3 teleporters=2
//	time=... level=INFO msg=traverse case=0 level=2 connection=0 depth=2
//	time=... level=INFO msg=backtrack case=0 level=2 depth=1
//	time=... level=INFO msg="case finished" case=0 found=true path="1 -> 2 -> 3"
//
// Run logs are not read back by eulerpath; `eulerpath logs` only lists and
// clears them.
package runlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/eulerpath/pkg/buildinfo"
	"github.com/matzehuels/eulerpath/pkg/levels"
)

const (
	appName = "eulerpath"
	ext     = ".log"
)

// Dir returns the run-log directory following XDG conventions
// ($XDG_STATE_HOME/eulerpath/runs, default ~/.local/state/eulerpath/runs).
func Dir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName, "runs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName, "runs"), nil
}

// Log is one run's log file. A nil *Log or one returned by [Discard]
// accepts every call and writes nothing.
type Log struct {
	ID   string
	Path string

	file   *os.File
	logger *log.Logger
	start  time.Time
}

// Open creates dir if needed and starts a new log file in it.
func Open(dir string) (*Log, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create run-log dir: %w", err)
	}
	id := uuid.NewString()
	path := filepath.Join(dir, id+ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create run log: %w", err)
	}
	l := newLog(f, id)
	l.file = f
	l.Path = path
	return l, nil
}

// Discard returns a log that drops everything.
func Discard() *Log {
	return newLog(io.Discard, "")
}

func newLog(w io.Writer, id string) *Log {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Formatter:       log.LogfmtFormatter,
		Level:           log.InfoLevel,
	})
	if id != "" {
		logger = logger.With("run", id)
	}
	return &Log{ID: id, logger: logger, start: time.Now()}
}

// Start records the run header.
func (l *Log) Start(source string, cases int) {
	if l == nil {
		return
	}
	l.logger.Info("run started", "source", source, "cases", cases, "version", buildinfo.Version)
}

// CaseStart records the beginning of a case.
func (l *Log) CaseStart(index, numLevels, numEdges int) {
	if l == nil {
		return
	}
	l.logger.Info("case started", "case", index, "levels", numLevels, "teleporters", numEdges)
}

// CaseFinish records a case result. err is set for malformed cases.
func (l *Log) CaseFinish(index int, p levels.Path, d time.Duration, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.logger.Error("case failed", "case", index, "err", err, "duration", d)
		return
	}
	l.logger.Info("case finished", "case", index, "found", p.Found, "path", p.String(), "duration", d)
}

// Interrupted records that the run stopped with remaining cases unsolved.
func (l *Log) Interrupted(remaining int, err error) {
	if l == nil {
		return
	}
	l.logger.Warn("run interrupted", "remaining", remaining, "err", err)
}

// Finish records the run tally.
func (l *Log) Finish(found, impossible, failed int) {
	if l == nil {
		return
	}
	l.logger.Info("run finished",
		"found", found,
		"impossible", impossible,
		"failed", failed,
		"duration", time.Since(l.start).Round(time.Microsecond))
}

// Observer returns a [levels.Observer] that logs every transition and
// traversal step of the given case.
func (l *Log) Observer(index int) levels.Observer {
	if l == nil {
		return levels.NoopObserver{}
	}
	return &caseObserver{logger: l.logger.With("case", index)}
}

// Close flushes and closes the file, if any.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

type caseObserver struct {
	logger *log.Logger
}

func (o *caseObserver) OnTransition(from, to levels.State) {
	o.logger.Info("state", "from", from, "to", to)
}

func (o *caseObserver) OnStep(s levels.Step) {
	if s.Kind == levels.StepTraverse {
		o.logger.Info("traverse", "level", s.Level, "connection", s.Connection, "depth", s.Depth)
		return
	}
	o.logger.Info("backtrack", "level", s.Level, "depth", s.Depth)
}
