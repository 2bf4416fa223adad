package stream

import (
	"errors"
	"fmt"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Stats summarizes one run.
type Stats struct {
	// Lines counts every input line, continuation lines included.
	Lines      int
	Emitted    int
	Suppressed int
	// Recovered counts lines whose renderer panicked.
	Recovered int
	Warnings  int
	Errors    int
	// TestsPassed and TestsFailed count test case results.
	TestsPassed int
	TestsFailed int
	Captures    map[capture.Category]int
}

func (s *Stats) record(c capture.Capture) {
	cat := c.Category()
	s.Captures[cat]++
	switch {
	case isTestFailure(cat):
		s.TestsFailed++
	case isTestPass(cat):
		s.TestsPassed++
	case cat.Severity() == capture.SeverityError:
		s.Errors++
	case cat.Severity() == capture.SeverityWarning:
		s.Warnings++
	}
}

// Failed reports whether any error or test failure was seen.
func (s Stats) Failed() bool {
	return s.Errors > 0 || s.TestsFailed > 0
}

// ExitCode returns 1 when the run failed, 0 otherwise.
func (s Stats) ExitCode() int {
	if s.Failed() {
		return 1
	}
	return 0
}

func isTestFailure(c capture.Category) bool {
	switch c {
	case capture.FailingTest, capture.UIFailingTest, capture.ParallelTestCaseFailed:
		return true
	}
	return false
}

func isTestPass(c capture.Category) bool {
	switch c {
	case capture.TestCasePassed, capture.ParallelTestCasePassed, capture.ParallelTestCaseAppKitPassed:
		return true
	}
	return false
}

// CategorySet is a set of categories. The zero value is empty and usable.
type CategorySet map[capture.Category]bool

// NewCategorySet returns a set holding cats.
func NewCategorySet(cats ...capture.Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s[c] = true
	}
	return s
}

// ParseCategorySet resolves category names such as "compile_warning".
func ParseCategorySet(names []string) (CategorySet, error) {
	s := make(CategorySet, len(names))
	for _, n := range names {
		c, err := capture.ParseCategory(n)
		if err != nil {
			return nil, err
		}
		s[c] = true
	}
	return s, nil
}

func (s CategorySet) Has(c capture.Category) bool { return s[c] }

// Union returns a new set with the members of s and o.
func (s CategorySet) Union(o CategorySet) CategorySet {
	u := make(CategorySet, len(s)+len(o))
	for c := range s {
		u[c] = true
	}
	for c := range o {
		u[c] = true
	}
	return u
}

// QuietLevel trims output to what needs attention.
type QuietLevel int

const (
	QuietOff QuietLevel = iota
	// QuietWarnings keeps warnings, errors and test failures.
	QuietWarnings
	// QuietErrors keeps errors and test failures.
	QuietErrors
)

// ErrUnknownQuiet is returned by ParseQuiet for names it does not know.
var ErrUnknownQuiet = errors.New("unknown quiet level")

// ParseQuiet accepts "", "quiet" and "quieter".
func ParseQuiet(s string) (QuietLevel, error) {
	switch s {
	case "":
		return QuietOff, nil
	case "quiet":
		return QuietWarnings, nil
	case "quieter":
		return QuietErrors, nil
	}
	return QuietOff, fmt.Errorf("%w: %q", ErrUnknownQuiet, s)
}

func (q QuietLevel) String() string {
	switch q {
	case QuietWarnings:
		return "quiet"
	case QuietErrors:
		return "quieter"
	default:
		return ""
	}
}

// SuppressForQuiet returns the categories hidden at level q. Any quiet level
// also hides unrecognized lines.
func SuppressForQuiet(q QuietLevel) CategorySet {
	s := CategorySet{}
	if q == QuietOff {
		return s
	}
	for _, c := range capture.Categories() {
		switch c.Severity() {
		case capture.SeverityError:
			continue
		case capture.SeverityWarning:
			if q == QuietWarnings {
				continue
			}
		}
		s[c] = true
	}
	return s
}
