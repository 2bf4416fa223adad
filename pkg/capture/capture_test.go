package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_RoundTripsThroughName(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, got)
	}
}

func TestParseCategory_AcceptsDashesAndCase(t *testing.T) {
	t.Parallel()

	got, err := ParseCategory("Compile-Warning")
	require.NoError(t, err)
	assert.Equal(t, CompileWarning, got)
}

func TestParseCategory_RejectsUnknownName(t *testing.T) {
	t.Parallel()

	_, err := ParseCategory("compiling")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategory_NamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]Category{}
	for _, c := range Categories() {
		name := c.String()
		assert.NotEmpty(t, name)
		if prev, dup := seen[name]; dup {
			t.Errorf("categories %d and %d share name %q", prev, c, name)
		}
		seen[name] = c
	}
}

func TestCategory_Severity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     Severity
	}{
		{CompileError, SeverityError},
		{FailingTest, SeverityError},
		{CompileWarning, SeverityWarning},
		{RestartingTest, SeverityWarning},
		{TestCasePassed, SeveritySuccess},
		{Compile, SeverityInfo},
		{Unrecognized, SeverityInfo},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.category.Severity(), tc.category.String())
	}
}

func TestParseLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Location
	}{
		{name: "file line column", in: "/a/b.swift:10:5", want: Location{File: "/a/b.swift", Line: 10, Column: 5}},
		{name: "file line", in: "/a/b.swift:10", want: Location{File: "/a/b.swift", Line: 10}},
		{name: "file only", in: "/a/b.swift", want: Location{File: "/a/b.swift"}},
		{name: "drive letter", in: `C:\src\b.swift:3`, want: Location{File: `C:\src\b.swift`, Line: 3}},
		{name: "empty", in: "", want: Location{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ParseLocation(tc.in))
		})
	}
}

func TestDiagnosticOf(t *testing.T) {
	t.Parallel()

	d, ok := DiagnosticOf(&CompileErrorCapture{FilePath: "/a/b.swift:10:5", Reason: "missing return"})
	require.True(t, ok)
	assert.Equal(t, LevelError, d.Level)
	assert.Equal(t, Location{File: "/a/b.swift", Line: 10, Column: 5}, d.Location)
	assert.Equal(t, "missing return", d.Message)

	d, ok = DiagnosticOf(&FailingTestCapture{File: "/t/FooTests.swift:42", Suite: "FooTests", TestCase: "testBar", Reason: "XCTAssertTrue failed"})
	require.True(t, ok)
	assert.Equal(t, 42, d.Location.Line)
	assert.Equal(t, "FooTests.testBar: XCTAssertTrue failed", d.Message)

	_, ok = DiagnosticOf(&CompileCapture{Filename: "a.swift", Target: "App"})
	assert.False(t, ok)
}

func TestDiagnostic_LevelMatchesSeverity(t *testing.T) {
	t.Parallel()

	want := map[Severity]Level{SeverityError: LevelError, SeverityWarning: LevelWarning}
	for _, c := range []Capture{
		&CompileErrorCapture{}, &CompileWarningCapture{}, &FileMissingErrorCapture{},
		&LinkerDuplicateSymbolsCapture{}, &LinkerUndefinedSymbolsCapture{}, &LDWarningCapture{},
		&WarningCapture{}, &WillNotBeCodeSignedCapture{}, &DuplicateLocalizedStringKeyCapture{},
		&ErrorCapture{}, &FailingTestCapture{}, &UIFailingTestCapture{},
		&ParallelTestCaseFailedCapture{}, &RestartingTestCapture{Line: "Restarting after unexpected exit"},
	} {
		d, ok := DiagnosticOf(c)
		require.True(t, ok, c.Category().String())
		assert.Equal(t, want[c.Category().Severity()], d.Level, c.Category().String())
	}
}
