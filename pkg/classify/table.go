package classify

import (
	"sync"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Table is an ordered, read-only list of rules. Classification is
// first-match-wins in table order, so more specific rules come first.
type Table struct {
	rules []*Rule
}

// Match is the result of classifying one line.
type Match struct {
	Capture capture.Capture
	// Continuation is the number of following lines the renderer may pull.
	Continuation int
	// Rule is nil when no rule matched.
	Rule *Rule
}

// NewTable returns a table that evaluates rules in the given order.
func NewTable(rules ...*Rule) *Table {
	cp := make([]*Rule, len(rules))
	copy(cp, rules)
	return &Table{rules: cp}
}

// Rules returns the rules in priority order.
func (t *Table) Rules() []*Rule {
	cp := make([]*Rule, len(t.rules))
	copy(cp, t.rules)
	return cp
}

// Classify returns the capture of the first rule that matches line, or an
// Unrecognized capture holding the line unchanged.
func (t *Table) Classify(line string) Match {
	for _, r := range t.rules {
		if c, ok := r.Extract(line); ok {
			return Match{Capture: c, Continuation: r.Continuation, Rule: r}
		}
	}
	return Match{Capture: &capture.UnrecognizedCapture{Line: line}}
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the table for xcodebuild, XCTest and SwiftPM output.
// It is built on first use and shared afterwards.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(DefaultRules()...)
	})
	return defaultTable
}
