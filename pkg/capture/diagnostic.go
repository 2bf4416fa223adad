package capture

import (
	"strconv"
	"strings"
)

// Level is the annotation level of a diagnostic.
type Level int

const (
	LevelNotice Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "notice"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Location points into a source file. Zero Line or Column means unknown.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// ParseLocation splits a compiler location such as "/a/b.swift:10:5" into
// its parts. Trailing components that are missing or not numeric are left
// unset, so "/a/b.swift" and "/a/b.swift:10" both parse.
func ParseLocation(s string) Location {
	parts := strings.Split(s, ":")
	nums := 0
	for i := len(parts) - 1; i > 0 && nums < 2; i-- {
		if _, err := strconv.Atoi(parts[i]); err != nil {
			break
		}
		nums++
	}
	loc := Location{File: strings.Join(parts[:len(parts)-nums], ":")}
	if nums >= 1 {
		loc.Line, _ = strconv.Atoi(parts[len(parts)-nums])
	}
	if nums == 2 {
		loc.Column, _ = strconv.Atoi(parts[len(parts)-1])
	}
	return loc
}

// Diagnostic is the actionable view of a capture: what went wrong and where.
type Diagnostic struct {
	Level    Level    `json:"level"`
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

// Diagnosed is implemented by captures that carry a diagnostic.
type Diagnosed interface {
	Capture
	Diagnostic() Diagnostic
}

// DiagnosticOf returns the diagnostic carried by c, if any.
func DiagnosticOf(c Capture) (Diagnostic, bool) {
	if d, ok := c.(Diagnosed); ok {
		return d.Diagnostic(), true
	}
	return Diagnostic{}, false
}

func (c *CompileErrorCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Location: ParseLocation(c.FilePath), Message: c.Reason}
}

func (c *CompileWarningCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Location: ParseLocation(c.FilePath), Message: c.Reason}
}

func (c *FileMissingErrorCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Location: Location{File: c.FilePath}, Message: c.Reason}
}

func (c *LinkerDuplicateSymbolsCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Message: c.Reason}
}

func (c *LinkerUndefinedSymbolsCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Message: c.Reason}
}

func (c *LDWarningCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Message: c.Prefix + c.Message}
}

func (c *WarningCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Message: c.Message}
}

func (c *WillNotBeCodeSignedCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Message: c.Message}
}

func (c *DuplicateLocalizedStringKeyCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Message: c.Message}
}

func (c *ErrorCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Message: c.Message}
}

func (c *FailingTestCapture) Diagnostic() Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Location: ParseLocation(c.File),
		Message:  c.Suite + "." + c.TestCase + ": " + c.Reason,
	}
}

func (c *UIFailingTestCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelError, Location: ParseLocation(c.File), Message: c.Reason}
}

func (c *ParallelTestCaseFailedCapture) Diagnostic() Diagnostic {
	return Diagnostic{
		Level:   LevelError,
		Message: c.Suite + "." + c.TestCase + " failed on '" + c.Device + "' (" + c.Time + " seconds)",
	}
}

func (c *RestartingTestCapture) Diagnostic() Diagnostic {
	return Diagnostic{Level: LevelWarning, Message: c.Line}
}
