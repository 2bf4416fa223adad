package report

import (
	"io"

	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/sarif"
)

// SARIF turns diagnostics into SARIF results. Rule IDs are category names.
type SARIF struct {
	b      *sarif.Builder
	errors int
}

// NewSARIF returns an empty SARIF reporter.
func NewSARIF(toolVersion string) *SARIF {
	return &SARIF{
		b: sarif.NewBuilder("xcfo", toolVersion).
			WithInformationURI("https://github.com/dkoosis/xcfo"),
	}
}

func sarifLevel(l capture.Level) string {
	switch l {
	case capture.LevelError:
		return sarif.LevelError
	case capture.LevelWarning:
		return sarif.LevelWarning
	default:
		return sarif.LevelNote
	}
}

func (s *SARIF) Observe(c capture.Capture) {
	d, ok := capture.DiagnosticOf(c)
	if !ok {
		return
	}
	if d.Level == capture.LevelError {
		s.errors++
	}
	s.b.AddResult(c.Category().String(), sarifLevel(d.Level), d.Message,
		d.Location.File, d.Location.Line, d.Location.Column)
}

// WriteTo writes the SARIF document. The run counts as successful when no
// error-level result was recorded.
func (s *SARIF) WriteTo(w io.Writer) (int64, error) {
	return s.b.SetExecutionSuccessful(s.errors == 0).WriteTo(w)
}
