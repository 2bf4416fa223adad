package stream

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/render"
)

// runLines feeds lines through the driver and returns the emitted output.
func runLines(t *testing.T, opts Options, lines ...string) (string, Stats) {
	t.Helper()
	var buf bytes.Buffer
	stats, err := Run(context.Background(), NewSliceSource(lines...), NewWriterSink(&buf), opts)
	require.NoError(t, err)
	return buf.String(), stats
}

func plainOpts() Options {
	return Options{Renderer: render.NewPlain(render.Options{}), Passthrough: true}
}

func TestRun_CompileErrorConsumesSourceAndCaret(t *testing.T) {
	t.Parallel()

	out, stats := runLines(t, plainOpts(),
		"/a/b.swift:10:5: error: missing return",
		"return",
		"    ^",
		"** BUILD FAILED **",
	)
	assert.Equal(t, "error: /a/b.swift:10:5: missing return\nreturn\n    ^\n** BUILD FAILED **\n", out)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.Captures[capture.Unrecognized])
}

func TestRun_FillsMissingContinuationAtEOF(t *testing.T) {
	t.Parallel()

	out, stats := runLines(t, plainOpts(), "/a/b.swift:3:7: warning: unused variable")
	assert.Equal(t, "warning: /a/b.swift:3:7: unused variable\n\n\n", out)
	assert.Equal(t, 1, stats.Lines)
}

func TestRun_DrainsContinuation_When_RendererDoesNotPull(t *testing.T) {
	t.Parallel()

	opts := Options{Renderer: render.NewCI(render.GitHubActions{})}
	out, stats := runLines(t, opts,
		"/a/b.swift:10:5: error: missing return",
		"error: this looks like an error but is source text",
		"    ^",
		"/a/c.swift:1:1: warning: shadowed",
	)
	assert.Equal(t,
		"::error file=/a/b.swift,line=10,col=5::missing return\n"+
			"::warning file=/a/c.swift,line=1,col=1::shadowed\n", out)
	assert.Equal(t, 1, stats.Errors)
	assert.Zero(t, stats.Captures[capture.Error])
}

func TestRun_DrainAbsorbsDiagnosticsInsideContinuationWindow(t *testing.T) {
	t.Parallel()

	// A compile diagnostic always owns the next two lines, whatever they are.
	opts := Options{Renderer: render.NewCI(render.GitHubActions{})}
	out, stats := runLines(t, opts,
		"/a/b.swift:10: warning: x",
		"warning: bare",
		"/a/b.swift: error: nolines",
		"/a/c.swift:2:1: warning: after",
	)
	assert.Equal(t,
		"::warning file=/a/b.swift,line=10::x\n"+
			"::warning file=/a/c.swift,line=2,col=1::after\n", out)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 2, stats.Warnings)
	assert.Zero(t, stats.Errors)
}

func TestRun_SuppressedCaptureStillDrains(t *testing.T) {
	t.Parallel()

	opts := plainOpts()
	opts.Suppress = NewCategorySet(capture.CompileWarning)
	out, stats := runLines(t, opts,
		"/a/c.swift:1:1: warning: shadowed",
		"let x = 1",
		"    ^",
		"** BUILD SUCCEEDED **",
	)
	assert.Equal(t, "Build Succeeded\n", out)
	assert.Equal(t, 1, stats.Suppressed)
	assert.Equal(t, 1, stats.Warnings)
}

func TestRun_Passthrough(t *testing.T) {
	t.Parallel()

	opts := plainOpts()
	out, _ := runLines(t, opts, "random chatter")
	assert.Equal(t, "random chatter\n", out)

	opts.Passthrough = false
	out, stats := runLines(t, opts, "random chatter")
	assert.Empty(t, out)
	assert.Equal(t, 1, stats.Suppressed)
}

func TestRun_ObserversSeeSuppressedCaptures(t *testing.T) {
	t.Parallel()

	var seen []capture.Category
	opts := plainOpts()
	opts.Suppress = SuppressForQuiet(QuietErrors)
	opts.Observers = []Observer{func(c capture.Capture) { seen = append(seen, c.Category()) }}
	out, _ := runLines(t, opts,
		"[1/4] Compiling App MyFile.swift",
		"/a/b.swift:10:5: error: missing return",
		"return",
		"    ^",
	)
	assert.Equal(t, []capture.Category{capture.Compile, capture.CompileError}, seen)
	assert.True(t, strings.HasPrefix(out, "error: /a/b.swift:10:5"))
}

type panickyRenderer struct {
	*render.Text
}

func (panickyRenderer) FormatCompile(*capture.CompileCapture) (string, bool) {
	panic("boom")
}

func TestRun_RecoversRendererPanic(t *testing.T) {
	t.Parallel()

	opts := Options{Renderer: panickyRenderer{render.NewPlain(render.Options{})}, Passthrough: true}
	out, stats := runLines(t, opts,
		"[1/4] Compiling App MyFile.swift",
		"** BUILD SUCCEEDED **",
	)
	assert.Equal(t, "[1/4] Compiling App MyFile.swift\nBuild Succeeded\n", out)
	assert.Equal(t, 1, stats.Recovered)
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, NewSliceSource("a", "b"), NewWriterSink(io.Discard), plainOpts())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RequiresRenderer(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), NewSliceSource("a"), NewWriterSink(io.Discard), Options{})
	assert.ErrorIs(t, err, errNoRenderer)
}

func TestRun_ReaderSource(t *testing.T) {
	t.Parallel()

	in := "Test Case '-[FooTests testA]' passed (0.003 seconds).\r\n" +
		"/src/FooTests.m:42: error: -[FooTests testB] : XCTAssertTrue failed\n" +
		"Executed 2 tests, with 1 failure (0 unexpected) in 0.010 (0.012) seconds\n"
	var buf bytes.Buffer
	stats, err := Run(context.Background(), NewReaderSource(strings.NewReader(in)), NewWriterSink(&buf), plainOpts())
	require.NoError(t, err)
	assert.Equal(t,
		"    ✓ testA (0.003 seconds)\n"+
			"    ✗ testB, XCTAssertTrue failed\n"+
			"Executed 2 tests, with 1 failures (0 unexpected) in 0.012 seconds\n", buf.String())
	assert.Equal(t, 1, stats.TestsPassed)
	assert.Equal(t, 1, stats.TestsFailed)
	assert.Equal(t, 1, stats.ExitCode())
}

func TestReaderSource_ClosesReaderOnCancel(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()
	src := NewReaderSource(pr)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok := src.Next(ctx)
	assert.False(t, ok)
	_, err := pw.Write([]byte("x\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestFollowFile_ReadsAppendedLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "build.log")
	require.NoError(t, os.WriteFile(path, []byte("** BUILD SUCCEEDED **\n"), 0o600))

	f, err := FollowFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Stop() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	line, ok := f.Next(ctx)
	require.True(t, ok)
	assert.Equal(t, "** BUILD SUCCEEDED **", line)
}

func TestFollowFile_FailsForMissingFile(t *testing.T) {
	t.Parallel()

	_, err := FollowFile(filepath.Join(t.TempDir(), "nope.log"))
	assert.Error(t, err)
}

func TestSuppressForQuiet(t *testing.T) {
	t.Parallel()

	quiet := SuppressForQuiet(QuietWarnings)
	assert.False(t, quiet.Has(capture.CompileWarning))
	assert.False(t, quiet.Has(capture.FailingTest))
	assert.True(t, quiet.Has(capture.Compile))
	assert.True(t, quiet.Has(capture.Unrecognized))

	quieter := SuppressForQuiet(QuietErrors)
	assert.True(t, quieter.Has(capture.CompileWarning))
	assert.False(t, quieter.Has(capture.CompileError))

	assert.Empty(t, SuppressForQuiet(QuietOff))
}

func TestParseQuiet(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "quiet", "quieter"} {
		q, err := ParseQuiet(name)
		require.NoError(t, err)
		assert.Equal(t, name, q.String())
	}
	_, err := ParseQuiet("silent")
	assert.ErrorIs(t, err, ErrUnknownQuiet)
}

func TestParseCategorySet(t *testing.T) {
	t.Parallel()

	s, err := ParseCategorySet([]string{"compile", "shell-command"})
	require.NoError(t, err)
	assert.True(t, s.Has(capture.Compile))
	assert.True(t, s.Has(capture.ShellCommand))

	_, err = ParseCategorySet([]string{"compiling"})
	assert.ErrorIs(t, err, capture.ErrUnknownCategory)
}
