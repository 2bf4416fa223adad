// Package tui shows a live status line under the rendered build log.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/render"
	"github.com/dkoosis/xcfo/pkg/stream"
)

// Options configure Run.
type Options struct {
	Out    io.Writer
	Theme  render.Theme
	Stream stream.Options
}

// Run drives src through the stream while a bubbletea program keeps a
// status line at the bottom of the terminal. Rendered lines are printed
// above it. The program never reads stdin, which carries the build log.
func Run(ctx context.Context, src stream.Source, opts Options) (stream.Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(opts.Theme),
		tea.WithContext(ctx),
		tea.WithOutput(opts.Out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	sink := stream.SinkFunc(func(text string) error {
		p.Println(text)
		return nil
	})
	sopts := opts.Stream
	sopts.Observers = append(append([]stream.Observer(nil), sopts.Observers...), func(c capture.Capture) {
		p.Send(captureMsg{c})
	})

	var stats stream.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer p.Send(doneMsg{})
		var err error
		stats, err = stream.Run(gctx, src, sink, sopts)
		return err
	})
	g.Go(func() error {
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("live view: %w", err)
		}
		return nil
	})
	err := g.Wait()
	return stats, err
}

type captureMsg struct{ c capture.Capture }
type doneMsg struct{}

type counts struct {
	warnings, errors, passed, failed int
}

type model struct {
	spinner spinner.Model
	plain   *render.Text
	theme   render.Theme
	width   int
	step    string
	counts  counts
	done    bool
}

func newModel(theme render.Theme) model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Primary))
	return model{
		spinner: s,
		plain:   render.NewPlain(render.Options{IncludeBinaryName: true}),
		theme:   theme,
		width:   80,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case captureMsg:
		m.observe(msg.c)
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) observe(c capture.Capture) {
	cat := c.Category()
	switch sev := cat.Severity(); {
	case cat.IsTestResult() && sev == capture.SeverityError:
		m.counts.failed++
	case cat.IsTestResult() && sev == capture.SeveritySuccess:
		m.counts.passed++
	case sev == capture.SeverityError:
		m.counts.errors++
	case sev == capture.SeverityWarning:
		m.counts.warnings++
	case sev == capture.SeverityInfo && cat != capture.Unrecognized:
		if text, ok := render.Render(m.plain, c, nil); ok {
			first, _, _ := strings.Cut(text, "\n")
			m.step = strings.TrimSpace(first)
		}
	}
}

// View renders one line: spinner, current step and counters. The step is
// truncated so the line fits the terminal width.
func (m model) View() string {
	if m.done {
		return ""
	}
	icons := m.theme.Icons
	parts := []struct {
		text  string
		style lipgloss.Style
	}{
		{fmt.Sprintf("%s %d", icons.Warning, m.counts.warnings), m.theme.Warning},
		{fmt.Sprintf("%s %d", icons.Error, m.counts.errors), m.theme.Error},
		{fmt.Sprintf("%s %d", icons.Pass, m.counts.passed), m.theme.Success},
		{fmt.Sprintf("%s %d", icons.Fail, m.counts.failed), m.theme.Error},
	}

	used := runewidth.StringWidth(m.spinner.Spinner.Frames[0]) + 1
	styled := make([]string, 0, len(parts))
	for _, p := range parts {
		used += runewidth.StringWidth(p.text) + 2
		styled = append(styled, p.style.Render(p.text))
	}

	step := m.step
	if step == "" {
		step = "Waiting for build output"
	}
	room := m.width - used - 1
	if room < 1 {
		step = ""
	} else {
		step = runewidth.Truncate(step, room, "…")
	}
	return m.spinner.View() + " " + m.theme.Muted.Render(step) + "  " + strings.Join(styled, "  ")
}
