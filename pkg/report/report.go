// Package report builds end-of-run reports from the captures a stream
// produced: JUnit XML for test results, SARIF for diagnostics and a JSON
// summary of both.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Report kinds.
const (
	KindJUnit = "junit"
	KindSARIF = "sarif"
	KindJSON  = "json"
)

// ErrUnknownReport is returned for report kinds that do not exist.
var ErrUnknownReport = errors.New("unknown report")

// Reporter accumulates captures and writes a report at the end of a run.
// Observe is called from the stream driver and must not block.
type Reporter interface {
	Observe(c capture.Capture)
	io.WriterTo
}

// Kinds lists the report kinds in display order.
func Kinds() []string {
	return []string{KindJUnit, KindSARIF, KindJSON}
}

// ByName returns an empty reporter of the given kind. toolVersion is
// recorded in reports that carry tool metadata.
func ByName(kind, toolVersion string) (Reporter, error) {
	switch kind {
	case KindJUnit:
		return NewJUnit(), nil
	case KindSARIF:
		return NewSARIF(toolVersion), nil
	case KindJSON:
		return NewJSON(toolVersion), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

// FileName returns the default file name for a report kind.
func FileName(kind string) (string, error) {
	switch kind {
	case KindJUnit:
		return "junit.xml", nil
	case KindSARIF:
		return "xcfo.sarif", nil
	case KindJSON:
		return "xcfo.json", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}

// WriteFile writes r to dir under the default file name for kind and
// returns the path written.
func WriteFile(dir, kind string, r Reporter) (string, error) {
	name, err := FileName(kind)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s report: %w", kind, err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s report: %w", kind, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s report: %w", kind, err)
	}
	return path, nil
}
