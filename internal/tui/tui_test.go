package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/render"
	"github.com/dkoosis/xcfo/pkg/stream"
)

func asciiTheme() render.Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return render.ASCIITheme(r)
}

func update(t *testing.T, m model, msgs ...any) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestModel_TracksStepAndCounts(t *testing.T) {
	t.Parallel()

	m := update(t, newModel(asciiTheme()),
		captureMsg{&capture.CompileCapture{Filename: "a.swift", Target: "App"}},
		captureMsg{&capture.CompileWarningCapture{FilePath: "/a.swift:1", Reason: "unused"}},
		captureMsg{&capture.CompileErrorCapture{FilePath: "/a.swift:2", Reason: "bad"}},
		captureMsg{&capture.TestCasePassedCapture{Suite: "S", TestCase: "t1", Time: "0.1"}},
		captureMsg{&capture.FailingTestCapture{File: "/t.swift:3", Suite: "S", TestCase: "t2", Reason: "nope"}},
		captureMsg{&capture.UnrecognizedCapture{Line: "noise"}},
	)

	assert.Equal(t, counts{warnings: 1, errors: 1, passed: 1, failed: 1}, m.counts)
	assert.Equal(t, "[App] Compiling a.swift", m.step)

	view := m.View()
	assert.Contains(t, view, "[App] Compiling a.swift")
	assert.Contains(t, view, "[!] 1")
	assert.Contains(t, view, "[x] 1")
	assert.Contains(t, view, "+ 1")
}

func TestModel_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	m := update(t, newModel(asciiTheme()),
		tea.WindowSizeMsg{Width: 40, Height: 10},
		captureMsg{&capture.CompileCapture{Filename: "AVeryLongFileNameThatCannotFit.swift", Target: "App"}},
	)
	view := m.View()
	assert.LessOrEqual(t, runewidth.StringWidth(view), 40)
	assert.Contains(t, view, "…")
}

func TestModel_QuitsWhenDone(t *testing.T) {
	t.Parallel()

	next, cmd := newModel(asciiTheme()).Update(doneMsg{})
	require.NotNil(t, cmd)
	assert.Empty(t, next.(model).View())
}

func TestRun_PrintsRenderedLines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	src := stream.NewSliceSource(
		"CompileSwift normal arm64 /src/a.swift (in target 'App' from project 'App')",
		"/src/a.swift:3:1: error: oops",
		"let x",
		"^",
	)
	stats, err := Run(ctx, src, Options{
		Out:    &out,
		Theme:  asciiTheme(),
		Stream: stream.Options{Renderer: render.NewPlain(render.Options{IncludeBinaryName: true})},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 1, stats.Errors)
	assert.True(t, strings.Contains(out.String(), "oops"), out.String())
}
