package render

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/capture"
)

func asciiRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

// lines returns a continuation supplier over the given lines that also
// reports how many were pulled.
func lines(ls ...string) (capture.Next, *int) {
	pulled := 0
	return func() (string, bool) {
		if pulled >= len(ls) {
			pulled++
			return "", false
		}
		pulled++
		return ls[pulled-1], true
	}, &pulled
}

func TestTerminal_RendersCompileWithTarget(t *testing.T) {
	t.Parallel()

	r := NewTerminal(DefaultTheme(asciiRenderer()), Options{})
	out, ok := Render(r, &capture.CompileCapture{Filename: "MyFile.swift", Target: "App"}, nil)
	require.True(t, ok)
	assert.Equal(t, "[App] Compiling MyFile.swift", out)
}

func TestTerminal_CompileErrorPullsTwoLines(t *testing.T) {
	t.Parallel()

	r := NewTerminal(MonoTheme(asciiRenderer()), Options{})
	next, pulled := lines("return", "    ^", "unrelated")
	out, ok := Render(r, &capture.CompileErrorCapture{FilePath: "/a/b.swift:10:5", Reason: "missing return"}, next)
	require.True(t, ok)
	assert.Equal(t, "✖ /a/b.swift:10:5: missing return\nreturn\n    ^", out)
	assert.Equal(t, 2, *pulled)
}

func TestPlain_CompileWarningFillsMissingLinesAtEOF(t *testing.T) {
	t.Parallel()

	next, _ := lines("let x = 1")
	out, ok := Render(NewPlain(Options{}), &capture.CompileWarningCapture{FilePath: "/a/b.swift:3:7", Reason: "unused"}, next)
	require.True(t, ok)
	assert.Equal(t, "warning: /a/b.swift:3:7: unused\nlet x = 1\n", out)
}

func TestPlain_TestResultMarkers(t *testing.T) {
	t.Parallel()

	p := NewPlain(Options{})
	tests := []struct {
		name string
		c    capture.Capture
		want string
	}{
		{"passed", &capture.TestCasePassedCapture{Suite: "S", TestCase: "testA", Time: "0.003"}, "    ✓ testA (0.003 seconds)"},
		{"failed", &capture.FailingTestCapture{File: "/t.swift:4", Suite: "S", TestCase: "testB", Reason: "boom"}, "    ✗ testB, boom"},
		{"pending", &capture.TestCasePendingCapture{Suite: "S", TestCase: "testC"}, "    ○ testC [PENDING]"},
		{"measured", &capture.TestCaseMeasuredCapture{Suite: "S", TestCase: "testD", Name: "Time", Unit: "seconds", Value: "0.5", Deviation: "3"}, "    ◷ testD measured (0.5 seconds ±3% -- Time)"},
		{"parallel failed", &capture.ParallelTestCaseFailedCapture{Suite: "S", TestCase: "testE", Device: "iPhone", Time: "1.0"}, "    ✗ testE on 'iPhone' (1.0 seconds)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, ok := Render(p, tc.c, nil)
			require.True(t, ok)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestText_StepFormats(t *testing.T) {
	t.Parallel()

	p := NewPlain(Options{})
	tests := []struct {
		c    capture.Capture
		want string
	}{
		{&capture.BuildTargetCapture{TargetGroup: capture.TargetGroup{Target: "App", Project: "P", Configuration: "Debug"}}, "Build target App of project P with configuration Debug"},
		{&capture.CopyCapture{File: "/src/res/icon.png", Target: "App"}, "[App] Copying icon.png"},
		{&capture.CodeSignCapture{File: "/Build/Debug/App.app"}, "Signing App.app"},
		{&capture.PhaseScriptExecutionCapture{PhaseName: `Run\ Script`, Target: "App"}, "[App] Running script Run Script"},
		{&capture.PhaseSuccessCapture{Phase: "BUILD"}, "Build Succeeded"},
		{&capture.ProcessInfoPlistCapture{FilePath: "/src/Info.plist", Filename: "Info.plist"}, "Processing Info.plist"},
		{&capture.LinkingCapture{BinaryFilename: "App", Target: "App"}, "[App] Linking"},
		{&capture.ExecutedCapture{Tests: "3", Failures: "1", Unexpected: "0", Seconds: "0.012"}, "Executed 3 tests, with 1 failures (0 unexpected) in 0.012 seconds"},
		{&capture.PackageCheckingOutCapture{Package: "Alpha", Version: "1.2.0"}, "Checking out Alpha @ 1.2.0"},
		{&capture.PackageGraphResolvedItemCapture{Name: "Alpha", URL: "https://x/alpha.git", Version: "1.2.0"}, "Alpha - https://x/alpha.git @ 1.2.0"},
		{&capture.LDWarningCapture{Prefix: "ld: ", Message: "dir not found"}, "warning: ld: dir not found"},
		{&capture.ErrorCapture{Message: "no such module 'Foo'"}, "error: no such module 'Foo'"},
		{&capture.UnrecognizedCapture{Line: "chatter"}, "chatter"},
	}
	for _, tc := range tests {
		out, ok := Render(p, tc.c, nil)
		require.True(t, ok, tc.c.Category().String())
		assert.Equal(t, tc.want, out, tc.c.Category().String())
	}
}

func TestText_LinkingIncludesBinaryName_When_Enabled(t *testing.T) {
	t.Parallel()

	out, _ := Render(NewPlain(Options{IncludeBinaryName: true}), &capture.LinkingCapture{BinaryFilename: "AppBin", Target: "App"}, nil)
	assert.Equal(t, "[App] Linking AppBin", out)
}

func TestText_SuppressesNoise(t *testing.T) {
	t.Parallel()

	p := NewPlain(Options{})
	for _, c := range []capture.Capture{
		&capture.CompileCommandCapture{Command: "clang -c a.m", FilePath: "a.m"},
		&capture.ShellCommandCapture{Command: "cd", Arguments: "/src"},
		&capture.WriteFileCapture{Path: "/tmp/x"},
		&capture.WriteAuxiliaryFilesCapture{},
		&capture.TestCaseStartedCapture{Suite: "S", TestCase: "t"},
	} {
		_, ok := Render(p, c, nil)
		assert.False(t, ok, c.Category().String())
	}
}

func TestTerminal_EmitsColor_When_ProfileSupportsIt(t *testing.T) {
	t.Parallel()

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	out, _ := Render(NewTerminal(DefaultTheme(r), Options{}), &capture.ErrorCapture{Message: "boom"}, nil)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "boom")

	out, _ = Render(NewPlain(Options{}), &capture.ErrorCapture{Message: "boom"}, nil)
	assert.NotContains(t, out, "\x1b[")
}

func TestASCIITheme_UsesASCIIIcons(t *testing.T) {
	t.Parallel()

	r := NewTerminal(ASCIITheme(asciiRenderer()), Options{})
	out, _ := Render(r, &capture.TestCasePassedCapture{Suite: "S", TestCase: "testA", Time: "0.1"}, nil)
	assert.Equal(t, "    + testA (0.1 seconds)", out)
	out, _ = Render(r, &capture.WarningCapture{Message: "careful"}, nil)
	assert.Equal(t, "[!] careful", out)
}

func TestGitHubActions_GracefulOmission(t *testing.T) {
	t.Parallel()

	ci := NewCI(GitHubActions{})
	tests := []struct {
		name string
		c    capture.Capture
		want string
	}{
		{"full location", &capture.CompileErrorCapture{FilePath: "/a/b.swift:10:5", Reason: "missing return"}, "::error file=/a/b.swift,line=10,col=5::missing return"},
		{"no column", &capture.CompileWarningCapture{FilePath: "/a/b.swift:10", Reason: "unused"}, "::warning file=/a/b.swift,line=10::unused"},
		{"file only", &capture.FileMissingErrorCapture{FilePath: "/a/missing.swift", Reason: "error: no such file"}, "::error file=/a/missing.swift::error: no such file"},
		{"no location", &capture.LinkerUndefinedSymbolsCapture{Reason: "Undefined symbols for architecture arm64"}, "::error ::Undefined symbols for architecture arm64"},
		{"restarting test", &capture.RestartingTestCapture{Line: "Restarting after unexpected exit"}, "::warning ::Restarting after unexpected exit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, pulled := lines("src", "caret")
			out, ok := Render(ci, tc.c, next)
			require.True(t, ok)
			assert.Equal(t, tc.want, out)
			assert.Zero(t, *pulled)
		})
	}
}

func TestGitHubActions_EscapesMessageAndProperties(t *testing.T) {
	t.Parallel()

	got := GitHubActions{}.Annotate(capture.Diagnostic{
		Level:    capture.LevelError,
		Location: capture.Location{File: "a,b.swift", Line: 1},
		Message:  "100% bad\nreally",
	})
	assert.Equal(t, "::error file=a%2Cb.swift,line=1::100%25 bad%0Areally", got)
}

func TestCI_SuppressesNonDiagnostics(t *testing.T) {
	t.Parallel()

	ci := NewCI(GitHubActions{})
	for _, c := range []capture.Capture{
		&capture.CompileCapture{Filename: "a.swift", Target: "App"},
		&capture.TestCasePassedCapture{Suite: "S", TestCase: "t", Time: "0.1"},
		&capture.PhaseSuccessCapture{Phase: "BUILD"},
	} {
		_, ok := Render(ci, c, nil)
		assert.False(t, ok, c.Category().String())
	}
	out, ok := Render(ci, &capture.UnrecognizedCapture{Line: "raw"}, nil)
	assert.True(t, ok)
	assert.Equal(t, "raw", out)
}

func TestAzureDevOps_Annotate(t *testing.T) {
	t.Parallel()

	a := AzureDevOps{}
	assert.Equal(t,
		"##vso[task.logissue type=error;sourcepath=/a/b.swift;linenumber=10;columnnumber=5]missing return",
		a.Annotate(capture.Diagnostic{Level: capture.LevelError, Location: capture.Location{File: "/a/b.swift", Line: 10, Column: 5}, Message: "missing return"}))
	assert.Equal(t,
		"##vso[task.logissue type=warning]50%AZP25 done",
		a.Annotate(capture.Diagnostic{Level: capture.LevelNotice, Message: "50% done"}))
}

func TestTeamCity_Annotate(t *testing.T) {
	t.Parallel()

	tc := TeamCity{}
	assert.Equal(t,
		"##teamcity[buildProblem description='/a/b.swift:10:5: missing |'return|'']",
		tc.Annotate(capture.Diagnostic{Level: capture.LevelError, Location: capture.Location{File: "/a/b.swift", Line: 10, Column: 5}, Message: "missing 'return'"}))
	assert.Equal(t,
		"##teamcity[message text='unused |[x|]' status='WARNING']",
		tc.Annotate(capture.Diagnostic{Level: capture.LevelWarning, Message: "unused [x]"}))
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		r, err := ByName(name, MonoTheme(asciiRenderer()), Options{})
		require.NoError(t, err, name)
		assert.Equal(t, name, r.Name())
		assert.Equal(t, IsCI(name), name != RendererTerminal && name != RendererPlain)
	}
	_, err := ByName("fancy", DefaultTheme(nil), Options{})
	assert.ErrorIs(t, err, ErrUnknownRenderer)
}

func TestThemeByName_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orca", ThemeByName("orca", asciiRenderer()).Name)
	assert.Equal(t, "default", ThemeByName("nope", asciiRenderer()).Name)
	assert.Equal(t, []string{"ascii", "default", "mono", "orca"}, ThemeNames())
}
