// xcfo formats xcodebuild and swift build output as readable terminal text
// or CI annotations.
//
// Usage:
//
//	xcodebuild test -scheme App | xcfo
//	set -o pipefail && xcodebuild build | xcfo --renderer github-actions
//	swift build 2>&1 | xcfo -q --report junit --report sarif
//	xcfo --follow build.log --live
//
// Renderers (auto-detected):
//
//	terminal        styled output (default when stdout is a TTY)
//	plain           uncolored text (default when piped)
//	github-actions  workflow commands (default on GitHub Actions)
//	azure-devops    logging commands (default on Azure Pipelines)
//	teamcity        service messages (default on TeamCity)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/dkoosis/xcfo/internal/config"
	"github.com/dkoosis/xcfo/internal/tui"
	"github.com/dkoosis/xcfo/internal/version"
	"github.com/dkoosis/xcfo/pkg/render"
	"github.com/dkoosis/xcfo/pkg/report"
	"github.com/dkoosis/xcfo/pkg/stream"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runEnv(args, stdin, stdout, stderr, os.Getenv)
}

// runEnv is run with an injectable environment.
func runEnv(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr, getenv: getenv}
	root := c.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "xcfo: %v\n", err)
		return 2
	}
	return c.exitCode
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	flags      config.Flags
	configPath string
	quiet      int
	quieter    bool
	color      string
	follow     string
	live       bool

	exitCode int
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "xcfo",
		Short: "Format xcodebuild and swift build output",
		Long: `xcfo reads build output on stdin, one line at a time, classifies each line
and prints it in a compact form: styled text on a terminal, plain text in a
pipe, or annotations that CI systems turn into inline errors and warnings.

Examples:
	# Format a build
	xcodebuild -scheme App build | xcfo

	# Only warnings and errors, fail the step when something broke
	xcodebuild test -scheme App | xcfo -q --fail-on-error

	# Write JUnit and SARIF reports to build/reports
	xcodebuild test -scheme App | xcfo --report junit --report sarif

Configuration:
	Flags override XCFO_* environment variables, which override .xcfo.yaml
	(working directory, then $XDG_CONFIG_HOME/xcfo/.xcfo.yaml).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := c.pipe(cmd)
			c.exitCode = code
			return err
		},
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	fl := root.Flags()
	fl.StringVar(&c.flags.Renderer, "renderer", "", "Output renderer: "+strings.Join(render.Names(), ", "))
	fl.StringVar(&c.flags.Theme, "theme", "", "Terminal theme: "+strings.Join(render.ThemeNames(), ", "))
	fl.BoolVar(&c.flags.NoColor, "no-color", false, "Disable colored output")
	fl.StringVar(&c.color, "color", "auto", "Color output: always, auto, never")
	fl.CountVarP(&c.quiet, "quiet", "q", "Only print warnings and errors (-qq: errors only)")
	fl.BoolVar(&c.quieter, "quieter", false, "Only print errors")
	fl.StringSliceVar(&c.flags.Suppress, "suppress", nil, "Categories to hide, see `xcfo categories`")
	fl.BoolVar(&c.flags.PreserveUnbeautified, "preserve-unbeautified", false, "Print lines xcfo does not recognize")
	fl.BoolVar(&c.flags.OmitBinaryName, "omit-binary-name", false, "Drop the binary name from linking lines")
	fl.StringSliceVar(&c.flags.Reports, "report", nil, "Reports to write: "+strings.Join(report.Kinds(), ", "))
	fl.StringVar(&c.flags.ReportPath, "report-path", "", "Directory for reports (default "+config.DefaultReportPath+")")
	fl.StringVar(&c.follow, "follow", "", "Follow a growing log file instead of reading stdin")
	fl.BoolVar(&c.live, "live", false, "Show a live status line (terminal only)")
	fl.BoolVar(&c.flags.FailOnError, "fail-on-error", false, "Exit 1 when an error or test failure was seen")
	fl.BoolVar(&c.flags.Debug, "debug", false, "Log configuration and stream statistics to stderr")
	fl.BoolVar(&c.flags.IsCI, "is-ci", false, "Treat the environment as CI")
	fl.StringVar(&c.configPath, "config", "", "Config file (default: search for "+config.FileName+")")
	fl.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "disable-colored-output" {
			name = "no-color"
		}
		return pflag.NormalizedName(name)
	})

	root.AddCommand(c.versionCmd(), c.categoriesCmd(), c.rulesCmd())
	return root
}

// resolve turns parsed flags into a configuration.
func (c *cli) resolve(cmd *cobra.Command) (*config.Resolved, string, error) {
	fl := cmd.Flags()
	flags := c.flags
	flags.RendererSet = fl.Changed("renderer")
	flags.ThemeSet = fl.Changed("theme")
	flags.NoColorSet = fl.Changed("no-color")
	flags.SuppressSet = fl.Changed("suppress")
	flags.PreserveUnbeautifiedSet = fl.Changed("preserve-unbeautified")
	flags.OmitBinaryNameSet = fl.Changed("omit-binary-name")
	flags.ReportsSet = fl.Changed("report")
	flags.ReportPathSet = fl.Changed("report-path")
	flags.FailOnErrorSet = fl.Changed("fail-on-error")
	flags.DebugSet = fl.Changed("debug")
	flags.IsCISet = fl.Changed("is-ci")

	switch {
	case c.quieter || c.quiet >= 2:
		flags.Quiet, flags.QuietSet = "quieter", true
	case c.quiet == 1:
		flags.Quiet, flags.QuietSet = "quiet", true
	}

	switch c.color {
	case "auto":
	case "never":
		flags.NoColor, flags.NoColorSet = true, true
	case "always":
		if !flags.NoColorSet {
			flags.NoColor, flags.NoColorSet = false, true
		}
	default:
		return nil, "", fmt.Errorf("invalid --color %q (want always, auto, never)", c.color)
	}

	path := c.configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("working directory: %w", err)
		}
		path = config.FindConfigPath(cwd, c.getenv)
	}
	file, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	env := config.Environment{Getenv: c.getenv, TTY: isTTYWriter(c.stdout) || c.color == "always"}
	res, err := config.Resolve(flags, env, file)
	if err != nil {
		return nil, "", err
	}
	return res, path, nil
}

// pipe runs the formatter over stdin or a followed file. It returns the
// process exit code; a non-nil error always comes with code 2.
func (c *cli) pipe(cmd *cobra.Command) (int, error) {
	res, path, err := c.resolve(cmd)
	if err != nil {
		return 2, err
	}
	log := newLogger(c.stderr, res.Debug)
	log.Debug("config resolved",
		"file", path,
		"renderer", res.Renderer, "renderer_source", res.RendererSource,
		"theme", res.Theme, "theme_source", res.ThemeSource,
		"no_color", res.NoColor, "no_color_source", res.NoColorSource,
		"quiet", res.Quiet.String(), "quiet_source", res.QuietSource,
		"passthrough", res.Passthrough, "passthrough_source", res.PassthroughSource,
		"ci", res.CI.String())

	lr := lipgloss.NewRenderer(c.stdout)
	switch {
	case c.color == "always" && !res.NoColor:
		lr.SetColorProfile(termenv.ANSI256)
	case res.NoColor:
		lr.SetColorProfile(termenv.Ascii)
	}
	theme := render.ThemeByName(res.Theme, lr)
	rend, err := render.ByName(res.Renderer, theme, render.Options{IncludeBinaryName: res.IncludeBinaryName})
	if err != nil {
		return 2, err
	}

	opts := stream.Options{
		Renderer:    rend,
		Suppress:    res.Suppress,
		Passthrough: res.Passthrough,
		Logger:      log,
	}
	reporters := make([]report.Reporter, 0, len(res.Reports))
	for _, kind := range res.Reports {
		r, err := report.ByName(kind, version.Version)
		if err != nil {
			return 2, err
		}
		reporters = append(reporters, r)
		opts.Observers = append(opts.Observers, r.Observe)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, cleanup, err := c.source()
	if err != nil {
		return 2, err
	}
	defer cleanup()

	live := c.live && isTTYWriter(c.stdout) && !render.IsCI(res.Renderer)
	if c.live && !live {
		log.Warn("live view needs a terminal and a text renderer, ignoring --live")
	}

	var stats stream.Stats
	if live {
		stats, err = tui.Run(ctx, src, tui.Options{Out: c.stdout, Theme: theme, Stream: opts})
	} else {
		stats, err = stream.Run(ctx, src, stream.NewWriterSink(c.stdout), opts)
	}
	log.Debug("stream finished",
		"lines", stats.Lines, "emitted", stats.Emitted, "suppressed", stats.Suppressed,
		"recovered", stats.Recovered, "warnings", stats.Warnings, "errors", stats.Errors,
		"tests_passed", stats.TestsPassed, "tests_failed", stats.TestsFailed)

	code := 0
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		code = 2
	}
	for i, kind := range res.Reports {
		written, werr := report.WriteFile(res.ReportPath, kind, reporters[i])
		if werr != nil {
			code = 2
			err = errors.Join(err, werr)
			continue
		}
		log.Debug("report written", "kind", kind, "path", written)
	}
	if code != 0 {
		return code, err
	}
	if res.FailOnError {
		return stats.ExitCode(), nil
	}
	return 0, nil
}

func (c *cli) source() (stream.Source, func(), error) {
	if c.follow != "" {
		f, err := stream.FollowFile(c.follow)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Stop() }, nil
	}
	return stream.NewReaderSource(c.stdin), func() {}, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
