package render

import (
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Options tune the text renderers.
type Options struct {
	// IncludeBinaryName appends the binary name to linking lines.
	IncludeBinaryName bool
}

// Text renders captures as human-readable lines. The terminal variant styles
// them with a Theme; the plain variant emits no escape sequences.
type Text struct {
	theme Theme
	plain bool
	opts  Options
	title cases.Caser
}

var _ capture.Formatter = (*Text)(nil)

// NewTerminal creates a styled text renderer.
func NewTerminal(theme Theme, opts Options) *Text {
	return &Text{theme: theme, opts: opts, title: cases.Title(language.English)}
}

// NewPlain creates an unstyled text renderer.
func NewPlain(opts Options) *Text {
	return &Text{theme: plainTheme(), plain: true, opts: opts, title: cases.Title(language.English)}
}

// Name returns "terminal" or "plain".
func (t *Text) Name() string {
	if t.plain {
		return RendererPlain
	}
	return RendererTerminal
}

func (t *Text) paint(s lipgloss.Style, text string) string {
	if t.plain || text == "" {
		return text
	}
	return s.Render(text)
}

// step renders "[target] Verb subject", leaving out empty parts.
func (t *Text) step(target, verb, subject string) string {
	var b strings.Builder
	if target != "" {
		b.WriteString("[")
		b.WriteString(t.paint(t.theme.Primary, target))
		b.WriteString("] ")
	}
	b.WriteString(t.paint(t.theme.Bold, verb))
	if subject != "" {
		b.WriteString(" ")
		b.WriteString(subject)
	}
	return b.String()
}

func (t *Text) targetBanner(verb string, g capture.TargetGroup) (string, bool) {
	return t.paint(t.theme.Bold, verb+" target "+g.Target) +
		t.paint(t.theme.Muted, " of project "+g.Project+" with configuration "+g.Configuration), true
}

const testIndent = "    "

func (t *Text) testLine(icon string, style lipgloss.Style, text string) string {
	return testIndent + t.paint(style, icon) + " " + text
}

func (t *Text) errorLine(text string) string {
	return t.paint(t.theme.Error, t.theme.Icons.Error) + " " + text
}

func (t *Text) warningLine(text string) string {
	return t.paint(t.theme.Warning, t.theme.Icons.Warning) + " " + text
}

// withContext appends the source line and caret line that follow a compiler
// diagnostic. Both are pulled even at EOF, where they come back empty.
func withContext(header string, next capture.Next) string {
	src, _ := next()
	caret, _ := next()
	return header + "\n" + src + "\n" + caret
}

func (t *Text) FormatBuildTarget(c *capture.BuildTargetCapture) (string, bool) {
	return t.targetBanner("Build", c.TargetGroup)
}

func (t *Text) FormatAggregateTarget(c *capture.AggregateTargetCapture) (string, bool) {
	return t.targetBanner("Aggregate", c.TargetGroup)
}

func (t *Text) FormatAnalyzeTarget(c *capture.AnalyzeTargetCapture) (string, bool) {
	return t.targetBanner("Analyze", c.TargetGroup)
}

func (t *Text) FormatCleanTarget(c *capture.CleanTargetCapture) (string, bool) {
	return t.targetBanner("Clean", c.TargetGroup)
}

func (t *Text) FormatAnalyze(c *capture.AnalyzeCapture) (string, bool) {
	return t.step(c.Target, "Analyzing", c.Filename), true
}

func (t *Text) FormatCheckDependencies(*capture.CheckDependenciesCapture) (string, bool) {
	return t.step("", "Check Dependencies", ""), true
}

func (t *Text) FormatCleanRemove(c *capture.CleanRemoveCapture) (string, bool) {
	return t.step("", "Cleaning", path.Base(c.Directory)), true
}

func (t *Text) FormatCodeSign(c *capture.CodeSignCapture) (string, bool) {
	return t.step("", "Signing", path.Base(c.File)), true
}

func (t *Text) FormatCodeSignFramework(c *capture.CodeSignFrameworkCapture) (string, bool) {
	return t.step("", "Signing", c.FrameworkPath), true
}

func (t *Text) FormatCompile(c *capture.CompileCapture) (string, bool) {
	return t.step(c.Target, "Compiling", c.Filename), true
}

func (t *Text) FormatCompileCommand(*capture.CompileCommandCapture) (string, bool) {
	return "", false
}

func (t *Text) FormatCompileXib(c *capture.CompileXibCapture) (string, bool) {
	return t.step(c.Target, "Compiling", c.Filename), true
}

func (t *Text) FormatCompileStoryboard(c *capture.CompileStoryboardCapture) (string, bool) {
	return t.step(c.Target, "Compiling", c.Filename), true
}

func (t *Text) FormatCopy(c *capture.CopyCapture) (string, bool) {
	return t.step(c.Target, "Copying", path.Base(c.File)), true
}

func (t *Text) FormatGenerateDsym(c *capture.GenerateDsymCapture) (string, bool) {
	return t.step(c.Target, "Generating", c.Dsym), true
}

func (t *Text) FormatLibtool(c *capture.LibtoolCapture) (string, bool) {
	return t.step(c.Target, "Building library", c.Filename), true
}

func (t *Text) FormatLinking(c *capture.LinkingCapture) (string, bool) {
	if t.opts.IncludeBinaryName {
		return t.step(c.Target, "Linking", c.BinaryFilename), true
	}
	return t.step(c.Target, "Linking", ""), true
}

func (t *Text) FormatPhaseScriptExecution(c *capture.PhaseScriptExecutionCapture) (string, bool) {
	return t.step(c.Target, "Running script", strings.ReplaceAll(c.PhaseName, `\ `, " ")), true
}

func (t *Text) FormatPhaseSuccess(c *capture.PhaseSuccessCapture) (string, bool) {
	return t.paint(t.theme.Success, t.title.String(strings.ToLower(c.Phase))+" Succeeded"), true
}

func (t *Text) FormatProcessPch(c *capture.ProcessPchCapture) (string, bool) {
	return t.step(c.Target, "Processing", c.File), true
}

func (t *Text) FormatProcessPchCommand(c *capture.ProcessPchCommandCapture) (string, bool) {
	return t.step("", "Preprocessing", c.FilePath), true
}

func (t *Text) FormatProcessInfoPlist(c *capture.ProcessInfoPlistCapture) (string, bool) {
	return t.step(c.Target, "Processing", c.Filename), true
}

func (t *Text) FormatTouch(c *capture.TouchCapture) (string, bool) {
	return t.step(c.Target, "Touching", c.Filename), true
}

func (t *Text) FormatShellCommand(*capture.ShellCommandCapture) (string, bool) {
	return "", false
}

func (t *Text) FormatWriteFile(*capture.WriteFileCapture) (string, bool) {
	return "", false
}

func (t *Text) FormatWriteAuxiliaryFiles(*capture.WriteAuxiliaryFilesCapture) (string, bool) {
	return "", false
}

func (t *Text) FormatGenerateCoverageData(*capture.GenerateCoverageDataCapture) (string, bool) {
	return t.step("", "Generating code coverage data...", ""), true
}

func (t *Text) FormatGeneratedCoverageReport(c *capture.GeneratedCoverageReportCapture) (string, bool) {
	return t.step("", "Generated code coverage report:", t.paint(t.theme.Muted, c.Path)), true
}

func (t *Text) FormatTestSuiteStart(c *capture.TestSuiteStartCapture) (string, bool) {
	return t.paint(t.theme.Bold, c.Suite), true
}

func (t *Text) FormatTestSuiteStarted(c *capture.TestSuiteStartedCapture) (string, bool) {
	return t.paint(t.theme.Bold, "Test Suite "+c.Suite+" started"), true
}

func (t *Text) FormatParallelTestSuiteStarted(c *capture.ParallelTestSuiteStartedCapture) (string, bool) {
	return t.paint(t.theme.Bold, "Test Suite "+c.Suite+" started on '"+c.Device+"'"), true
}

func (t *Text) FormatTestCaseStarted(*capture.TestCaseStartedCapture) (string, bool) {
	return "", false
}

func (t *Text) FormatTestCasePassed(c *capture.TestCasePassedCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Pass, t.theme.Success,
		c.TestCase+" "+t.paint(t.theme.Muted, "("+c.Time+" seconds)")), true
}

func (t *Text) FormatTestCasePending(c *capture.TestCasePendingCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Pending, t.theme.Warning, c.TestCase+" [PENDING]"), true
}

func (t *Text) FormatTestCaseMeasured(c *capture.TestCaseMeasuredCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Measure, t.theme.Warning,
		c.TestCase+" measured ("+c.Value+" "+c.Unit+" ±"+c.Deviation+"% -- "+c.Name+")"), true
}

func (t *Text) FormatFailingTest(c *capture.FailingTestCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Fail, t.theme.Error,
		c.TestCase+", "+t.paint(t.theme.Error, c.Reason)), true
}

func (t *Text) FormatUIFailingTest(c *capture.UIFailingTestCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Fail, t.theme.Error,
		c.File+", "+t.paint(t.theme.Error, c.Reason)), true
}

func (t *Text) FormatRestartingTest(c *capture.RestartingTestCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Fail, t.theme.Warning, c.Line), true
}

func (t *Text) FormatParallelTestCasePassed(c *capture.ParallelTestCasePassedCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Pass, t.theme.Success,
		c.TestCase+" on '"+c.Device+"' "+t.paint(t.theme.Muted, "("+c.Time+" seconds)")), true
}

func (t *Text) FormatParallelTestCaseAppKitPassed(c *capture.ParallelTestCaseAppKitPassedCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Pass, t.theme.Success,
		c.TestCase+" on '"+c.Device+"' "+t.paint(t.theme.Muted, "("+c.Time+" seconds)")), true
}

func (t *Text) FormatParallelTestCaseFailed(c *capture.ParallelTestCaseFailedCapture) (string, bool) {
	return t.testLine(t.theme.Icons.Fail, t.theme.Error,
		c.TestCase+" on '"+c.Device+"' "+t.paint(t.theme.Muted, "("+c.Time+" seconds)")), true
}

func (t *Text) FormatParallelTestingStarted(c *capture.ParallelTestingStartedCapture) (string, bool) {
	return t.paint(t.theme.Bold, c.Line), true
}

func (t *Text) FormatParallelTestingPassed(c *capture.ParallelTestingPassedCapture) (string, bool) {
	return t.paint(t.theme.Success, c.Line), true
}

func (t *Text) FormatParallelTestingFailed(c *capture.ParallelTestingFailedCapture) (string, bool) {
	return t.paint(t.theme.Error, c.Line), true
}

func (t *Text) FormatExecuted(c *capture.ExecutedCapture) (string, bool) {
	style := t.theme.Success
	if c.Failures != "0" {
		style = t.theme.Error
	}
	return t.paint(style, "Executed "+c.Tests+" tests, with "+c.Failures+" failures ("+
		c.Unexpected+" unexpected) in "+c.Seconds+" seconds"), true
}

func (t *Text) FormatCompileError(c *capture.CompileErrorCapture, next capture.Next) (string, bool) {
	header := t.errorLine(t.paint(t.theme.Bold, c.FilePath+":") + " " + t.paint(t.theme.Error, c.Reason))
	return withContext(header, next), true
}

func (t *Text) FormatCompileWarning(c *capture.CompileWarningCapture, next capture.Next) (string, bool) {
	header := t.warningLine(t.paint(t.theme.Bold, c.FilePath+":") + " " + t.paint(t.theme.Warning, c.Reason))
	return withContext(header, next), true
}

func (t *Text) FormatFileMissingError(c *capture.FileMissingErrorCapture) (string, bool) {
	return t.errorLine(t.paint(t.theme.Bold, c.FilePath+":") + " " + t.paint(t.theme.Error, c.Reason)), true
}

func (t *Text) FormatLinkerDuplicateSymbols(c *capture.LinkerDuplicateSymbolsCapture) (string, bool) {
	return t.errorLine(t.paint(t.theme.Error, c.Reason)), true
}

func (t *Text) FormatLinkerUndefinedSymbols(c *capture.LinkerUndefinedSymbolsCapture) (string, bool) {
	return t.errorLine(t.paint(t.theme.Error, c.Reason)), true
}

func (t *Text) FormatLDWarning(c *capture.LDWarningCapture) (string, bool) {
	return t.warningLine(t.paint(t.theme.Warning, c.Prefix+c.Message)), true
}

func (t *Text) FormatWarning(c *capture.WarningCapture) (string, bool) {
	return t.warningLine(t.paint(t.theme.Warning, c.Message)), true
}

func (t *Text) FormatWillNotBeCodeSigned(c *capture.WillNotBeCodeSignedCapture) (string, bool) {
	return t.warningLine(t.paint(t.theme.Warning, c.Message)), true
}

func (t *Text) FormatDuplicateLocalizedStringKey(c *capture.DuplicateLocalizedStringKeyCapture) (string, bool) {
	return t.warningLine(t.paint(t.theme.Warning, c.Message)), true
}

func (t *Text) FormatError(c *capture.ErrorCapture) (string, bool) {
	return t.errorLine(t.paint(t.theme.Error, c.Message)), true
}

func (t *Text) FormatPackageFetching(c *capture.PackageFetchingCapture) (string, bool) {
	return t.step("", "Fetching", c.Source), true
}

func (t *Text) FormatPackageUpdating(c *capture.PackageUpdatingCapture) (string, bool) {
	return t.step("", "Updating", c.Source), true
}

func (t *Text) FormatPackageCheckingOut(c *capture.PackageCheckingOutCapture) (string, bool) {
	return t.step("", "Checking out", c.Package+" @ "+t.paint(t.theme.Success, c.Version)), true
}

func (t *Text) FormatPackageGraphResolvingStart(*capture.PackageGraphResolvingStartCapture) (string, bool) {
	return t.step("", "Resolving Package Graph", ""), true
}

func (t *Text) FormatPackageGraphResolvingEnded(*capture.PackageGraphResolvingEndedCapture) (string, bool) {
	return t.step("", "Resolved source packages", ""), true
}

func (t *Text) FormatPackageGraphResolvedItem(c *capture.PackageGraphResolvedItemCapture) (string, bool) {
	return t.paint(t.theme.Primary, c.Name) + " - " + c.URL + " @ " + t.paint(t.theme.Success, c.Version), true
}

func (t *Text) FormatUnrecognized(c *capture.UnrecognizedCapture) (string, bool) {
	return c.Line, true
}
