package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/xcfo/internal/detect"
	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/render"
	"github.com/dkoosis/xcfo/pkg/report"
	"github.com/dkoosis/xcfo/pkg/stream"
)

func boolPtr(b bool) *bool { return &b }

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	r, err := Resolve(Flags{}, Environment{Getenv: envOf(nil), TTY: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, render.RendererTerminal, r.Renderer)
	assert.Equal(t, SourceDefault, r.RendererSource)
	assert.Equal(t, "default", r.Theme)
	assert.False(t, r.NoColor)
	assert.Equal(t, stream.QuietOff, r.Quiet)
	assert.True(t, r.Passthrough)
	assert.True(t, r.IncludeBinaryName)
	assert.Equal(t, DefaultReportPath, r.ReportPath)
	assert.Equal(t, detect.None, r.CI)
	assert.Empty(t, r.Suppress)

	r, err = Resolve(Flags{}, Environment{Getenv: envOf(nil)}, nil)
	require.NoError(t, err)
	assert.Equal(t, render.RendererPlain, r.Renderer, "piped output defaults to plain")
}

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	file := &FileConfig{Renderer: "plain", Theme: "mono", Quiet: "quiet"}
	tests := []struct {
		name            string
		flags           Flags
		env             map[string]string
		wantRenderer    string
		wantSource      Source
		wantTheme       string
		wantThemeSource Source
		wantQuietSource Source
	}{
		{
			name:            "file beats defaults",
			wantRenderer:    "plain",
			wantSource:      SourceFile,
			wantTheme:       "mono",
			wantThemeSource: SourceFile,
			wantQuietSource: SourceFile,
		},
		{
			name:            "env beats file",
			env:             map[string]string{"XCFO_RENDERER": "teamcity", "XCFO_THEME": "ascii", "XCFO_QUIET": "quieter"},
			wantRenderer:    "teamcity",
			wantSource:      SourceEnv,
			wantTheme:       "ascii",
			wantThemeSource: SourceEnv,
			wantQuietSource: SourceEnv,
		},
		{
			name: "cli beats env",
			flags: Flags{
				Renderer: "github-actions", RendererSet: true,
				Theme: "orca", ThemeSet: true,
				Quiet: "quieter", QuietSet: true,
			},
			env:             map[string]string{"XCFO_RENDERER": "teamcity", "XCFO_THEME": "ascii"},
			wantRenderer:    "github-actions",
			wantSource:      SourceCLI,
			wantTheme:       "orca",
			wantThemeSource: SourceCLI,
			wantQuietSource: SourceCLI,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := Resolve(tt.flags, Environment{Getenv: envOf(tt.env), TTY: true}, file)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRenderer, r.Renderer)
			assert.Equal(t, tt.wantSource, r.RendererSource)
			assert.Equal(t, tt.wantTheme, r.Theme)
			assert.Equal(t, tt.wantThemeSource, r.ThemeSource)
			assert.Equal(t, tt.wantQuietSource, r.QuietSource)
		})
	}
}

func TestResolve_CIDetection(t *testing.T) {
	t.Parallel()

	r, err := Resolve(Flags{}, Environment{Getenv: envOf(map[string]string{"GITHUB_ACTIONS": "true"}), TTY: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, detect.GitHubActions, r.CI)
	assert.Equal(t, render.RendererGitHubActions, r.Renderer)
	assert.Equal(t, SourceDetect, r.RendererSource)
	assert.True(t, r.NoColor)
	assert.Equal(t, SourceDetect, r.NoColorSource)
	assert.False(t, r.Passthrough, "annotation renderers drop unrecognized lines")
}

func TestResolve_ForcedCIWithoutVendor(t *testing.T) {
	t.Parallel()

	r, err := Resolve(Flags{IsCI: true, IsCISet: true}, Environment{Getenv: envOf(nil), TTY: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, detect.Generic, r.CI)
	assert.Equal(t, render.RendererPlain, r.Renderer)
	assert.True(t, r.NoColor)

	r, err = Resolve(Flags{}, Environment{Getenv: envOf(map[string]string{"XCFO_CI": "1"}), TTY: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, detect.Generic, r.CI)
}

func TestResolve_NoColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flags      Flags
		env        map[string]string
		file       *FileConfig
		want       bool
		wantSource Source
	}{
		{"NO_COLOR any value", Flags{}, map[string]string{"NO_COLOR": "yes"}, nil, true, SourceEnv},
		{"XCFO_NO_COLOR false wins over NO_COLOR", Flags{}, map[string]string{"XCFO_NO_COLOR": "false", "NO_COLOR": "1"}, nil, false, SourceEnv},
		{"file", Flags{}, nil, &FileConfig{NoColor: boolPtr(true)}, true, SourceFile},
		{"cli false beats env", Flags{NoColor: false, NoColorSet: true}, map[string]string{"NO_COLOR": "1"}, nil, false, SourceCLI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := Resolve(tt.flags, Environment{Getenv: envOf(tt.env), TTY: true}, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.NoColor)
			assert.Equal(t, tt.wantSource, r.NoColorSource)
			if tt.want {
				assert.Equal(t, render.RendererPlain, r.Renderer, "no color turns the terminal renderer into plain")
			}
		})
	}
}

func TestResolve_QuietSuppressesAndDisablesPassthrough(t *testing.T) {
	t.Parallel()

	r, err := Resolve(Flags{Quiet: "quiet", QuietSet: true, Suppress: []string{"compile_warning"}, SuppressSet: true},
		Environment{Getenv: envOf(nil), TTY: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, stream.QuietWarnings, r.Quiet)
	assert.False(t, r.Passthrough)
	assert.True(t, r.Suppress.Has(capture.Compile))
	assert.True(t, r.Suppress.Has(capture.CompileWarning), "explicit suppression adds to the quiet set")
	assert.False(t, r.Suppress.Has(capture.CompileError))

	r, err = Resolve(Flags{Quiet: "quiet", QuietSet: true, PreserveUnbeautified: true, PreserveUnbeautifiedSet: true},
		Environment{Getenv: envOf(nil)}, nil)
	require.NoError(t, err)
	assert.True(t, r.Passthrough)
	assert.Equal(t, SourceCLI, r.PassthroughSource)
}

func TestResolve_FileBooleans(t *testing.T) {
	t.Parallel()

	file := &FileConfig{
		PreserveUnbeautified: boolPtr(false),
		IncludeBinaryName:    boolPtr(false),
		FailOnError:          boolPtr(true),
		Debug:                boolPtr(true),
		Report:               []string{"junit"},
		ReportPath:           "out",
	}
	r, err := Resolve(Flags{}, Environment{Getenv: envOf(nil), TTY: true}, file)
	require.NoError(t, err)
	assert.False(t, r.Passthrough)
	assert.Equal(t, SourceFile, r.PassthroughSource)
	assert.False(t, r.IncludeBinaryName)
	assert.True(t, r.FailOnError)
	assert.True(t, r.Debug)
	assert.Equal(t, []string{"junit"}, r.Reports)
	assert.Equal(t, "out", r.ReportPath)

	r, err = Resolve(Flags{OmitBinaryName: false, OmitBinaryNameSet: true, Reports: []string{"json"}, ReportsSet: true},
		Environment{Getenv: envOf(map[string]string{"XCFO_DEBUG": "1"})}, file)
	require.NoError(t, err)
	assert.True(t, r.IncludeBinaryName)
	assert.Equal(t, []string{"json"}, r.Reports)
	assert.True(t, r.Debug)
}

func TestResolve_Validation(t *testing.T) {
	t.Parallel()

	env := Environment{Getenv: envOf(nil)}
	tests := []struct {
		name    string
		flags   Flags
		file    *FileConfig
		wantErr error
	}{
		{"renderer", Flags{Renderer: "html", RendererSet: true}, nil, ErrUnknownRenderer},
		{"theme", Flags{}, &FileConfig{Theme: "neon"}, ErrUnknownTheme},
		{"quiet", Flags{Quiet: "silent", QuietSet: true}, nil, ErrUnknownQuiet},
		{"suppress", Flags{Suppress: []string{"compiling"}, SuppressSet: true}, nil, capture.ErrUnknownCategory},
		{"report", Flags{Reports: []string{"html"}, ReportsSet: true}, nil, report.ErrUnknownReport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.flags, env, tt.file)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
