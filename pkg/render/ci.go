package render

import (
	"strconv"
	"strings"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Dialect formats one diagnostic as a CI workflow command.
type Dialect interface {
	Name() string
	Annotate(d capture.Diagnostic) string
}

// CI renders diagnostics as CI annotations and suppresses everything else.
type CI struct {
	silent
	dialect Dialect
}

var _ capture.Formatter = (*CI)(nil)

// NewCI creates a CI renderer for the given dialect.
func NewCI(d Dialect) *CI {
	return &CI{dialect: d}
}

// Name returns the dialect name.
func (r *CI) Name() string { return r.dialect.Name() }

func (r *CI) annotate(c capture.Diagnosed) (string, bool) {
	return r.dialect.Annotate(c.Diagnostic()), true
}

func (r *CI) FormatCompileError(c *capture.CompileErrorCapture, _ capture.Next) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatCompileWarning(c *capture.CompileWarningCapture, _ capture.Next) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatFileMissingError(c *capture.FileMissingErrorCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatLinkerDuplicateSymbols(c *capture.LinkerDuplicateSymbolsCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatLinkerUndefinedSymbols(c *capture.LinkerUndefinedSymbolsCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatLDWarning(c *capture.LDWarningCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatWarning(c *capture.WarningCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatWillNotBeCodeSigned(c *capture.WillNotBeCodeSignedCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatDuplicateLocalizedStringKey(c *capture.DuplicateLocalizedStringKeyCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatError(c *capture.ErrorCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatFailingTest(c *capture.FailingTestCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatUIFailingTest(c *capture.UIFailingTestCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatParallelTestCaseFailed(c *capture.ParallelTestCaseFailedCapture) (string, bool) {
	return r.annotate(c)
}

func (r *CI) FormatRestartingTest(c *capture.RestartingTestCapture) (string, bool) {
	return r.annotate(c)
}

// GitHubActions emits ::error/::warning/::notice workflow commands.
type GitHubActions struct{}

func (GitHubActions) Name() string { return RendererGitHubActions }

// Annotate renders "::<level> file=<f>,line=<l>,col=<c>::<msg>". Location
// properties are dropped from the right when unknown; with no file the
// property list is empty ("::error ::msg").
func (GitHubActions) Annotate(d capture.Diagnostic) string {
	var props []string
	if loc := d.Location; loc.File != "" {
		props = append(props, "file="+ghEscapeProperty(loc.File))
		if loc.Line > 0 {
			props = append(props, "line="+strconv.Itoa(loc.Line))
			if loc.Column > 0 {
				props = append(props, "col="+strconv.Itoa(loc.Column))
			}
		}
	}
	return "::" + d.Level.String() + " " + strings.Join(props, ",") + "::" + ghEscapeData(d.Message)
}

var (
	ghDataEscaper     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	ghPropertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

func ghEscapeData(s string) string     { return ghDataEscaper.Replace(s) }
func ghEscapeProperty(s string) string { return ghPropertyEscaper.Replace(s) }

// AzureDevOps emits ##vso[task.logissue] logging commands. Azure has no
// notice level, so notices are logged as warnings.
type AzureDevOps struct{}

func (AzureDevOps) Name() string { return RendererAzureDevOps }

func (AzureDevOps) Annotate(d capture.Diagnostic) string {
	typ := "warning"
	if d.Level == capture.LevelError {
		typ = "error"
	}
	var b strings.Builder
	b.WriteString("##vso[task.logissue type=" + typ)
	if loc := d.Location; loc.File != "" {
		b.WriteString(";sourcepath=" + azEscapeProperty(loc.File))
		if loc.Line > 0 {
			b.WriteString(";linenumber=" + strconv.Itoa(loc.Line))
			if loc.Column > 0 {
				b.WriteString(";columnnumber=" + strconv.Itoa(loc.Column))
			}
		}
	}
	b.WriteString("]")
	b.WriteString(azDataEscaper.Replace(d.Message))
	return b.String()
}

var (
	azDataEscaper     = strings.NewReplacer("%", "%AZP25", "\r", "%0D", "\n", "%0A")
	azPropertyEscaper = strings.NewReplacer("%", "%AZP25", "\r", "%0D", "\n", "%0A", ";", "%3B", "]", "%5D")
)

func azEscapeProperty(s string) string { return azPropertyEscaper.Replace(s) }

// TeamCity emits service messages. Errors become build problems, everything
// else a warning message. The location, when known, prefixes the text.
type TeamCity struct{}

func (TeamCity) Name() string { return RendererTeamCity }

func (TeamCity) Annotate(d capture.Diagnostic) string {
	text := d.Message
	if loc := d.Location; loc.File != "" {
		prefix := loc.File
		if loc.Line > 0 {
			prefix += ":" + strconv.Itoa(loc.Line)
			if loc.Column > 0 {
				prefix += ":" + strconv.Itoa(loc.Column)
			}
		}
		text = prefix + ": " + text
	}
	text = tcEscaper.Replace(text)
	if d.Level == capture.LevelError {
		return "##teamcity[buildProblem description='" + text + "']"
	}
	return "##teamcity[message text='" + text + "' status='WARNING']"
}

var tcEscaper = strings.NewReplacer(
	"|", "||",
	"'", "|'",
	"\n", "|n",
	"\r", "|r",
	"[", "|[",
	"]", "|]",
)
