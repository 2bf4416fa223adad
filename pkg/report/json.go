package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version     string           `json:"version"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	Tests       jsonTests        `json:"tests"`
	Counts      map[string]int   `json:"counts"`
}

type jsonDiagnostic struct {
	Category string `json:"category"`
	capture.Diagnostic
}

type jsonTests struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

// JSON summarizes a run for automation: every diagnostic, test totals and a
// count per category.
type JSON struct {
	out jsonOutput
}

// NewJSON returns an empty JSON reporter.
func NewJSON(toolVersion string) *JSON {
	return &JSON{out: jsonOutput{
		Version:     toolVersion,
		Diagnostics: []jsonDiagnostic{},
		Counts:      make(map[string]int),
	}}
}

func (j *JSON) Observe(c capture.Capture) {
	cat := c.Category()
	j.out.Counts[cat.String()]++
	switch cat {
	case capture.TestCasePassed, capture.ParallelTestCasePassed, capture.ParallelTestCaseAppKitPassed:
		j.out.Tests.Passed++
	case capture.FailingTest, capture.UIFailingTest, capture.ParallelTestCaseFailed:
		j.out.Tests.Failed++
	case capture.TestCasePending:
		j.out.Tests.Pending++
	}
	if d, ok := capture.DiagnosticOf(c); ok {
		j.out.Diagnostics = append(j.out.Diagnostics, jsonDiagnostic{Category: cat.String(), Diagnostic: d})
	}
}

// WriteTo writes the summary as indented JSON.
func (j *JSON) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(j.out, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode json report: %w", err)
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
