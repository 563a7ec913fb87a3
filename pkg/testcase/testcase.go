package testcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/levels"
)

// Case is one level graph to solve.
type Case struct {
	// Index is the zero-based position of the case in its file.
	Index          int
	NumLevels      int
	NumTeleporters int
	Teleporters    []levels.Edge
}

// Suite is the decoded content of a test-case file.
type Suite struct {
	Source   string
	Cases    []Case
	Warnings []string
}

// ParseError describes a structural problem in a test-case file.
type ParseError struct {
	Path  string // file path, empty for readers
	Case  int    // zero-based case index, -1 for file-level problems
	Field string // offending field, empty if unknown
	Err   error
}

func (e *ParseError) Error() string {
	var loc string
	if e.Path != "" {
		loc = e.Path + ": "
	}
	switch {
	case e.Case >= 0 && e.Field != "":
		return fmt.Sprintf("%scase %d: %s: %v", loc, e.Case, e.Field, e.Err)
	case e.Case >= 0:
		return fmt.Sprintf("%scase %d: %v", loc, e.Case, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s%s: %v", loc, e.Field, e.Err)
	}
	return loc + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errMissing = errors.New("missing required field")
	errRange   = errors.New("must be at least 1")
)

// Wire shapes. Pointers distinguish absent fields from zero values.
type file struct {
	TestCases []rawCase `json:"test_cases" toml:"test_cases"`
}

type rawCase struct {
	NumLevels      *int            `json:"num_levels" toml:"num_levels"`
	NumTeleporters *int            `json:"num_teleporters" toml:"num_teleporters"`
	Teleporters    []rawTeleporter `json:"teleporters" toml:"teleporters"`
}

type rawTeleporter struct {
	From *int `json:"from_level" toml:"from_level"`
	To   *int `json:"to_level" toml:"to_level"`
}

// Read decodes a suite in the given format ("json" or "toml") from r.
// Read does not close r.
func Read(r io.Reader, format string) (*Suite, error) {
	return read(r, format, "")
}

// Load reads the test-case file at path, choosing the format from its
// extension. A missing file yields a FILE_NOT_FOUND error.
func Load(path string) (*Suite, error) {
	if err := apperrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "test-case file not found")
		}
		return nil, fmt.Errorf("read test cases: %w", err)
	}
	defer f.Close()
	return read(f, apperrors.FormatFromPath(path), path)
}

func read(r io.Reader, format, path string) (*Suite, error) {
	if err := apperrors.ValidateFormat(format); err != nil {
		return nil, err
	}

	var raw file
	present, err := decode(r, format, &raw)
	if err != nil {
		return nil, invalid(&ParseError{Path: path, Case: -1, Err: err})
	}
	if !present {
		return nil, invalid(&ParseError{Path: path, Case: -1, Field: "test_cases", Err: errMissing})
	}

	s := &Suite{Source: path, Cases: make([]Case, 0, len(raw.TestCases))}
	for i, rc := range raw.TestCases {
		c, err := convert(i, rc)
		if err != nil {
			err.Path = path
			return nil, invalid(err)
		}
		if c.NumTeleporters != len(c.Teleporters) {
			s.Warnings = append(s.Warnings, fmt.Sprintf(
				"case %d: num_teleporters is %d but %d teleporters are listed",
				i, c.NumTeleporters, len(c.Teleporters)))
		}
		s.Cases = append(s.Cases, c)
	}
	return s, nil
}

// decode fills v and reports whether the test_cases key was present.
func decode(r io.Reader, format string, v *file) (bool, error) {
	if format == apperrors.FormatTOML {
		md, err := toml.NewDecoder(r).Decode(v)
		if err != nil {
			return false, err
		}
		return md.IsDefined("test_cases"), nil
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return false, err
	}
	return v.TestCases != nil, nil
}

func convert(i int, rc rawCase) (Case, *ParseError) {
	if rc.NumLevels == nil {
		return Case{}, &ParseError{Case: i, Field: "num_levels", Err: errMissing}
	}
	if *rc.NumLevels < 1 {
		return Case{}, &ParseError{Case: i, Field: "num_levels", Err: errRange}
	}
	c := Case{
		Index:       i,
		NumLevels:   *rc.NumLevels,
		Teleporters: make([]levels.Edge, 0, len(rc.Teleporters)),
	}
	if rc.NumTeleporters != nil {
		c.NumTeleporters = *rc.NumTeleporters
	} else {
		c.NumTeleporters = len(rc.Teleporters)
	}
	for j, t := range rc.Teleporters {
		if t.From == nil {
			return Case{}, &ParseError{Case: i, Field: fmt.Sprintf("teleporters[%d].from_level", j), Err: errMissing}
		}
		if t.To == nil {
			return Case{}, &ParseError{Case: i, Field: fmt.Sprintf("teleporters[%d].to_level", j), Err: errMissing}
		}
		c.Teleporters = append(c.Teleporters, levels.Edge{From: *t.From, To: *t.To})
	}
	return c, nil
}

func invalid(err *ParseError) error {
	return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parse test cases")
}

// Select returns the case with the given zero-based index.
func (s *Suite) Select(index int) (Case, error) {
	if index < 0 || index >= len(s.Cases) {
		return Case{}, apperrors.New(apperrors.ErrCodeCaseNotFound,
			"case %d not found (file has %d cases)", index, len(s.Cases))
	}
	return s.Cases[index], nil
}
