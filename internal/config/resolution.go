package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/internal/detect"
	"github.com/dkoosis/xcfo/pkg/render"
	"github.com/dkoosis/xcfo/pkg/report"
	"github.com/dkoosis/xcfo/pkg/stream"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDetect  Source = "detect"
	SourceDefault Source = "default"
)

var (
	ErrUnknownRenderer = render.ErrUnknownRenderer
	ErrUnknownQuiet    = stream.ErrUnknownQuiet
	ErrUnknownTheme    = errors.New("unknown theme")
)

// Flags holds the values of command-line flags. Each XSet field records
// whether the user gave the flag explicitly.
type Flags struct {
	Renderer             string
	Theme                string
	NoColor              bool
	Quiet                string
	Suppress             []string
	PreserveUnbeautified bool
	OmitBinaryName       bool
	Reports              []string
	ReportPath           string
	FailOnError          bool
	Debug                bool
	IsCI                 bool

	RendererSet             bool
	ThemeSet                bool
	NoColorSet              bool
	QuietSet                bool
	SuppressSet             bool
	PreserveUnbeautifiedSet bool
	OmitBinaryNameSet       bool
	ReportsSet              bool
	ReportPathSet           bool
	FailOnErrorSet          bool
	DebugSet                bool
	IsCISet                 bool
}

// Environment is what Resolve may observe about the process.
type Environment struct {
	Getenv func(string) string
	// TTY reports whether stdout is a terminal.
	TTY bool
}

func (e Environment) get(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

// Resolved holds the final configuration after applying all priority rules.
type Resolved struct {
	Renderer          string
	Theme             string
	NoColor           bool
	Quiet             stream.QuietLevel
	Suppress          stream.CategorySet
	Passthrough       bool
	IncludeBinaryName bool
	Reports           []string
	ReportPath        string
	FailOnError       bool
	Debug             bool
	CI                detect.CI

	// Resolution metadata (for debugging)
	RendererSource    Source
	ThemeSource       Source
	NoColorSource     Source
	QuietSource       Source
	PassthroughSource Source
}

// DefaultReportPath is where reports go when no path is configured.
const DefaultReportPath = "build/reports"

// Resolve merges flags, environment and file config. file may be nil.
func Resolve(flags Flags, env Environment, file *FileConfig) (*Resolved, error) {
	if file == nil {
		file = &FileConfig{}
	}
	r := &Resolved{}

	r.CI = detect.Sniff(env.Getenv)
	forceCI := flags.IsCI && flags.IsCISet
	if !flags.IsCISet {
		if b, ok := envBool(env, "XCFO_CI"); ok {
			forceCI = b
		}
	}
	if forceCI && r.CI == detect.None {
		r.CI = detect.Generic
	}

	r.Debug = flags.Debug && flags.DebugSet
	if !flags.DebugSet {
		if env.get("XCFO_DEBUG") != "" {
			r.Debug = true
		} else if file.Debug != nil {
			r.Debug = *file.Debug
		}
	}

	resolveNoColor(r, flags, env, file)
	resolveRenderer(r, flags, env, file)
	if !slices.Contains(render.Names(), r.Renderer) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownRenderer, r.Renderer, strings.Join(render.Names(), ", "))
	}

	r.Theme, r.ThemeSource = pick(
		choice{flags.Theme, flags.ThemeSet, SourceCLI},
		choice{env.get("XCFO_THEME"), true, SourceEnv},
		choice{file.Theme, true, SourceFile},
		choice{"default", true, SourceDefault},
	)
	if !slices.Contains(render.ThemeNames(), r.Theme) {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTheme, r.Theme, strings.Join(render.ThemeNames(), ", "))
	}

	var quiet string
	quiet, r.QuietSource = pick(
		choice{flags.Quiet, flags.QuietSet, SourceCLI},
		choice{env.get("XCFO_QUIET"), true, SourceEnv},
		choice{file.Quiet, true, SourceFile},
	)
	q, err := stream.ParseQuiet(quiet)
	if err != nil {
		return nil, err
	}
	r.Quiet = q

	names := file.Suppress
	if flags.SuppressSet {
		names = flags.Suppress
	}
	suppress, err := stream.ParseCategorySet(names)
	if err != nil {
		return nil, fmt.Errorf("suppress: %w", err)
	}
	r.Suppress = suppress.Union(stream.SuppressForQuiet(r.Quiet))

	switch {
	case flags.PreserveUnbeautifiedSet:
		r.Passthrough, r.PassthroughSource = flags.PreserveUnbeautified, SourceCLI
	case file.PreserveUnbeautified != nil:
		r.Passthrough, r.PassthroughSource = *file.PreserveUnbeautified, SourceFile
	default:
		r.Passthrough = !render.IsCI(r.Renderer) && r.Quiet == stream.QuietOff
		r.PassthroughSource = SourceDefault
	}

	r.IncludeBinaryName = true
	if flags.OmitBinaryNameSet {
		r.IncludeBinaryName = !flags.OmitBinaryName
	} else if file.IncludeBinaryName != nil {
		r.IncludeBinaryName = *file.IncludeBinaryName
	}

	r.Reports = file.Report
	if flags.ReportsSet {
		r.Reports = flags.Reports
	}
	for _, kind := range r.Reports {
		if _, err := report.FileName(kind); err != nil {
			return nil, err
		}
	}
	r.ReportPath, _ = pick(
		choice{flags.ReportPath, flags.ReportPathSet, SourceCLI},
		choice{file.ReportPath, true, SourceFile},
		choice{DefaultReportPath, true, SourceDefault},
	)

	if flags.FailOnErrorSet {
		r.FailOnError = flags.FailOnError
	} else if file.FailOnError != nil {
		r.FailOnError = *file.FailOnError
	}
	return r, nil
}

func resolveNoColor(r *Resolved, flags Flags, env Environment, file *FileConfig) {
	if flags.NoColorSet {
		r.NoColor, r.NoColorSource = flags.NoColor, SourceCLI
		return
	}
	if b, ok := envBool(env, "XCFO_NO_COLOR"); ok {
		r.NoColor, r.NoColorSource = b, SourceEnv
		return
	}
	if env.get("NO_COLOR") != "" {
		r.NoColor, r.NoColorSource = true, SourceEnv
		return
	}
	if file.NoColor != nil {
		r.NoColor, r.NoColorSource = *file.NoColor, SourceFile
		return
	}
	if r.CI != detect.None {
		r.NoColor, r.NoColorSource = true, SourceDetect
		return
	}
	r.NoColorSource = SourceDefault
}

func resolveRenderer(r *Resolved, flags Flags, env Environment, file *FileConfig) {
	fallback, fallbackSource := render.RendererPlain, SourceDefault
	switch {
	case r.CI != detect.None:
		fallback, fallbackSource = r.CI.Renderer(), SourceDetect
	case env.TTY:
		fallback = render.RendererTerminal
	}
	r.Renderer, r.RendererSource = pick(
		choice{flags.Renderer, flags.RendererSet, SourceCLI},
		choice{env.get("XCFO_RENDERER"), true, SourceEnv},
		choice{file.Renderer, true, SourceFile},
		choice{fallback, true, fallbackSource},
	)
	if r.NoColor && r.Renderer == render.RendererTerminal {
		r.Renderer = render.RendererPlain
	}
}

type choice struct {
	value string
	set   bool
	src   Source
}

// pick returns the first choice that is set and non-empty.
func pick(choices ...choice) (string, Source) {
	for _, c := range choices {
		if c.set && c.value != "" {
			return c.value, c.src
		}
	}
	return "", SourceDefault
}

func envBool(env Environment, key string) (bool, bool) {
	v := env.get(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
