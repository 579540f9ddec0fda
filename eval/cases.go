package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PlaceholderName is used for cases submitted without a test name.
const PlaceholderName = "unnamed_test"

// Case represents a single test case in an evaluation.
// It is immutable once constructed; the runner only reads it.
type Case struct {
	// Prompt is the text sent to the language model. Required.
	Prompt string `json:"prompt"`

	// Expected is the reference output to compare against. Required.
	Expected string `json:"expected_output"`

	// Name is a human-readable label for the case.
	// Optional. Defaults to PlaceholderName.
	Name string `json:"test_name,omitempty"`
}

// Cases is an iterator interface for test cases.
// This allows lazy loading of cases without requiring them all in memory.
// Implementations must return io.EOF when iteration is complete.
type Cases interface {
	// Next returns the next case, or io.EOF if there are no more cases.
	Next() (Case, error)
}

// NewCases creates a Cases iterator from a slice of cases.
// This is a convenience function for the common case of having all cases in memory.
func NewCases(cases []Case) Cases {
	return &sliceCases{
		cases: cases,
		index: 0,
	}
}

// sliceCases implements the Cases interface for a slice of cases.
type sliceCases struct {
	cases []Case
	index int
}

// Next returns the next case, or io.EOF if there are no more cases.
func (s *sliceCases) Next() (Case, error) {
	if s.index >= len(s.cases) {
		return Case{}, io.EOF
	}

	c := s.cases[s.index]
	s.index++
	return c, nil
}

// LoadCases opens a JSONL dataset file and returns an iterator over its
// cases, one JSON object per line. Blank lines are skipped. The returned
// iterator owns the file and closes it when iteration completes or fails.
func LoadCases(path string) (Cases, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return &fileCases{
		f:       f,
		scanner: bufio.NewScanner(f),
	}, nil
}

type fileCases struct {
	f       *os.File
	scanner *bufio.Scanner
	line    int
}

func (fc *fileCases) Next() (Case, error) {
	for fc.scanner.Scan() {
		fc.line++
		raw := fc.scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var c Case
		if err := json.Unmarshal(raw, &c); err != nil {
			_ = fc.f.Close()
			return Case{}, fmt.Errorf("dataset line %d: %w", fc.line, err)
		}
		return c, nil
	}

	err := fc.scanner.Err()
	_ = fc.f.Close()
	if err != nil {
		return Case{}, err
	}
	return Case{}, io.EOF
}
