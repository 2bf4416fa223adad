// Package capture defines the typed result of classifying one line of build
// output, and the Formatter capability set every renderer implements.
package capture

// Capture is the structured result of matching one input line against one
// rule. The set of implementations is closed: one struct per Category.
type Capture interface {
	Category() Category
	// Format dispatches to the Formatter method for this capture's category.
	Format(f Formatter, next Next) (string, bool)
}

// Next supplies continuation lines. It returns false at end of input or once
// the continuation budget for the current capture is spent.
type Next func() (string, bool)

// Formatter renders each category. A false result suppresses output.
//
// Adding a category adds a method here, so every renderer must handle it
// before the module compiles again.
type Formatter interface {
	FormatBuildTarget(c *BuildTargetCapture) (string, bool)
	FormatAggregateTarget(c *AggregateTargetCapture) (string, bool)
	FormatAnalyzeTarget(c *AnalyzeTargetCapture) (string, bool)
	FormatCleanTarget(c *CleanTargetCapture) (string, bool)
	FormatAnalyze(c *AnalyzeCapture) (string, bool)
	FormatCheckDependencies(c *CheckDependenciesCapture) (string, bool)
	FormatCleanRemove(c *CleanRemoveCapture) (string, bool)
	FormatCodeSign(c *CodeSignCapture) (string, bool)
	FormatCodeSignFramework(c *CodeSignFrameworkCapture) (string, bool)
	FormatCompile(c *CompileCapture) (string, bool)
	FormatCompileCommand(c *CompileCommandCapture) (string, bool)
	FormatCompileXib(c *CompileXibCapture) (string, bool)
	FormatCompileStoryboard(c *CompileStoryboardCapture) (string, bool)
	FormatCopy(c *CopyCapture) (string, bool)
	FormatGenerateDsym(c *GenerateDsymCapture) (string, bool)
	FormatLibtool(c *LibtoolCapture) (string, bool)
	FormatLinking(c *LinkingCapture) (string, bool)
	FormatPhaseScriptExecution(c *PhaseScriptExecutionCapture) (string, bool)
	FormatPhaseSuccess(c *PhaseSuccessCapture) (string, bool)
	FormatProcessPch(c *ProcessPchCapture) (string, bool)
	FormatProcessPchCommand(c *ProcessPchCommandCapture) (string, bool)
	FormatProcessInfoPlist(c *ProcessInfoPlistCapture) (string, bool)
	FormatTouch(c *TouchCapture) (string, bool)
	FormatShellCommand(c *ShellCommandCapture) (string, bool)
	FormatWriteFile(c *WriteFileCapture) (string, bool)
	FormatWriteAuxiliaryFiles(c *WriteAuxiliaryFilesCapture) (string, bool)
	FormatGenerateCoverageData(c *GenerateCoverageDataCapture) (string, bool)
	FormatGeneratedCoverageReport(c *GeneratedCoverageReportCapture) (string, bool)
	FormatTestSuiteStart(c *TestSuiteStartCapture) (string, bool)
	FormatTestSuiteStarted(c *TestSuiteStartedCapture) (string, bool)
	FormatParallelTestSuiteStarted(c *ParallelTestSuiteStartedCapture) (string, bool)
	FormatTestCaseStarted(c *TestCaseStartedCapture) (string, bool)
	FormatTestCasePassed(c *TestCasePassedCapture) (string, bool)
	FormatTestCasePending(c *TestCasePendingCapture) (string, bool)
	FormatTestCaseMeasured(c *TestCaseMeasuredCapture) (string, bool)
	FormatFailingTest(c *FailingTestCapture) (string, bool)
	FormatUIFailingTest(c *UIFailingTestCapture) (string, bool)
	FormatRestartingTest(c *RestartingTestCapture) (string, bool)
	FormatParallelTestCasePassed(c *ParallelTestCasePassedCapture) (string, bool)
	FormatParallelTestCaseAppKitPassed(c *ParallelTestCaseAppKitPassedCapture) (string, bool)
	FormatParallelTestCaseFailed(c *ParallelTestCaseFailedCapture) (string, bool)
	FormatParallelTestingStarted(c *ParallelTestingStartedCapture) (string, bool)
	FormatParallelTestingPassed(c *ParallelTestingPassedCapture) (string, bool)
	FormatParallelTestingFailed(c *ParallelTestingFailedCapture) (string, bool)
	FormatExecuted(c *ExecutedCapture) (string, bool)
	FormatCompileError(c *CompileErrorCapture, next Next) (string, bool)
	FormatCompileWarning(c *CompileWarningCapture, next Next) (string, bool)
	FormatFileMissingError(c *FileMissingErrorCapture) (string, bool)
	FormatLinkerDuplicateSymbols(c *LinkerDuplicateSymbolsCapture) (string, bool)
	FormatLinkerUndefinedSymbols(c *LinkerUndefinedSymbolsCapture) (string, bool)
	FormatLDWarning(c *LDWarningCapture) (string, bool)
	FormatWarning(c *WarningCapture) (string, bool)
	FormatWillNotBeCodeSigned(c *WillNotBeCodeSignedCapture) (string, bool)
	FormatDuplicateLocalizedStringKey(c *DuplicateLocalizedStringKeyCapture) (string, bool)
	FormatError(c *ErrorCapture) (string, bool)
	FormatPackageFetching(c *PackageFetchingCapture) (string, bool)
	FormatPackageUpdating(c *PackageUpdatingCapture) (string, bool)
	FormatPackageCheckingOut(c *PackageCheckingOutCapture) (string, bool)
	FormatPackageGraphResolvingStart(c *PackageGraphResolvingStartCapture) (string, bool)
	FormatPackageGraphResolvingEnded(c *PackageGraphResolvingEndedCapture) (string, bool)
	FormatPackageGraphResolvedItem(c *PackageGraphResolvedItemCapture) (string, bool)
	FormatUnrecognized(c *UnrecognizedCapture) (string, bool)
}

// TargetGroup is shared by the "=== ... TARGET ... ===" banner lines.
type TargetGroup struct {
	Target        string `json:"target"`
	Project       string `json:"project"`
	Configuration string `json:"configuration"`
}

type BuildTargetCapture struct{ TargetGroup }

type AggregateTargetCapture struct{ TargetGroup }

type AnalyzeTargetCapture struct{ TargetGroup }

type CleanTargetCapture struct{ TargetGroup }

type AnalyzeCapture struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

type CheckDependenciesCapture struct{}

type CleanRemoveCapture struct {
	Directory string `json:"directory"`
}

type CodeSignCapture struct {
	File string `json:"file"`
}

type CodeSignFrameworkCapture struct {
	FrameworkPath string `json:"framework_path"`
}

// CompileCapture covers xcodebuild compile steps and SwiftPM "Compiling"
// lines. FilePath is empty for SwiftPM, which only prints file names.
type CompileCapture struct {
	FilePath string `json:"file_path,omitempty"`
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

type CompileCommandCapture struct {
	Command  string `json:"command"`
	FilePath string `json:"file_path"`
}

type CompileXibCapture struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

type CompileStoryboardCapture struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

// CopyCapture covers CpHeader, CopyPlistFile, CopyStringsFile, CpResource
// and PBXCp.
type CopyCapture struct {
	File   string `json:"file"`
	Target string `json:"target"`
}

type GenerateDsymCapture struct {
	Dsym   string `json:"dsym"`
	Target string `json:"target"`
}

type LibtoolCapture struct {
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

type LinkingCapture struct {
	BinaryFilename string `json:"binary_filename"`
	Target         string `json:"target"`
}

type PhaseScriptExecutionCapture struct {
	PhaseName string `json:"phase_name"`
	Target    string `json:"target"`
}

type PhaseSuccessCapture struct {
	Phase string `json:"phase"`
}

type ProcessPchCapture struct {
	File   string `json:"file"`
	Target string `json:"target"`
}

type ProcessPchCommandCapture struct {
	FilePath string `json:"file_path"`
}

// ProcessInfoPlistCapture has an empty Target for output from Xcode
// versions that did not print one.
type ProcessInfoPlistCapture struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
	Target   string `json:"target,omitempty"`
}

type TouchCapture struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
	Target   string `json:"target"`
}

type ShellCommandCapture struct {
	Command   string `json:"command"`
	Arguments string `json:"arguments,omitempty"`
}

type WriteFileCapture struct {
	Path string `json:"path"`
}

type WriteAuxiliaryFilesCapture struct{}

type GenerateCoverageDataCapture struct{}

type GeneratedCoverageReportCapture struct {
	Path string `json:"path"`
}

type TestSuiteStartCapture struct {
	Suite string `json:"suite"`
}

type TestSuiteStartedCapture struct {
	Suite string `json:"suite"`
	Time  string `json:"time,omitempty"`
}

type ParallelTestSuiteStartedCapture struct {
	Suite  string `json:"suite"`
	Device string `json:"device"`
}

type TestCaseStartedCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
}

type TestCasePassedCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
	Time     string `json:"time"`
}

type TestCasePendingCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
}

type TestCaseMeasuredCapture struct {
	Suite     string `json:"suite"`
	TestCase  string `json:"test_case"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Value     string `json:"value"`
	Deviation string `json:"deviation"`
}

// FailingTestCapture holds an XCTest assertion failure. File includes the
// line number ("Tests.swift:42").
type FailingTestCapture struct {
	File     string `json:"file"`
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
	Reason   string `json:"reason"`
}

type UIFailingTestCapture struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// RestartingTestCapture keeps the whole line; Suite and TestCase are set
// only when the line names the test that crashed.
type RestartingTestCapture struct {
	Line     string `json:"line"`
	Suite    string `json:"suite,omitempty"`
	TestCase string `json:"test_case,omitempty"`
}

type ParallelTestCasePassedCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
	Device   string `json:"device"`
	Time     string `json:"time"`
}

type ParallelTestCaseAppKitPassedCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
	Device   string `json:"device"`
	Time     string `json:"time"`
}

type ParallelTestCaseFailedCapture struct {
	Suite    string `json:"suite"`
	TestCase string `json:"test_case"`
	Device   string `json:"device"`
	Time     string `json:"time"`
}

type ParallelTestingStartedCapture struct {
	Line   string `json:"line"`
	Device string `json:"device"`
}

type ParallelTestingPassedCapture struct {
	Line   string `json:"line"`
	Device string `json:"device"`
}

type ParallelTestingFailedCapture struct {
	Line   string `json:"line"`
	Device string `json:"device"`
}

type ExecutedCapture struct {
	Tests      string `json:"tests"`
	Failures   string `json:"failures"`
	Unexpected string `json:"unexpected"`
	Seconds    string `json:"seconds"`
}

// CompileErrorCapture's FilePath carries the location suffix as printed by
// the compiler ("/a/b.swift:10:5"); see ParseLocation.
type CompileErrorCapture struct {
	FilePath string `json:"file_path"`
	Reason   string `json:"reason"`
}

type CompileWarningCapture struct {
	FilePath string `json:"file_path"`
	Reason   string `json:"reason"`
}

type FileMissingErrorCapture struct {
	FilePath string `json:"file_path"`
	Reason   string `json:"reason"`
}

type LinkerDuplicateSymbolsCapture struct {
	Reason string `json:"reason"`
}

type LinkerUndefinedSymbolsCapture struct {
	Reason string `json:"reason"`
}

type LDWarningCapture struct {
	Prefix  string `json:"prefix"`
	Message string `json:"message"`
}

type WarningCapture struct {
	Message string `json:"message"`
}

type WillNotBeCodeSignedCapture struct {
	Message string `json:"message"`
}

type DuplicateLocalizedStringKeyCapture struct {
	Message string `json:"message"`
}

type ErrorCapture struct {
	Message string `json:"message"`
}

type PackageFetchingCapture struct {
	Source string `json:"source"`
}

type PackageUpdatingCapture struct {
	Source string `json:"source"`
}

type PackageCheckingOutCapture struct {
	Package string `json:"package"`
	Version string `json:"version"`
}

type PackageGraphResolvingStartCapture struct{}

type PackageGraphResolvingEndedCapture struct{}

type PackageGraphResolvedItemCapture struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Version string `json:"version"`
}

// UnrecognizedCapture is produced when no rule matches.
type UnrecognizedCapture struct {
	Line string `json:"line"`
}
