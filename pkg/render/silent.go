package render

import "github.com/dkoosis/xcfo/pkg/capture"

// silent suppresses every category except unrecognized lines. Renderers
// that only care about a few categories embed it and override those.
type silent struct{}

func (silent) FormatBuildTarget(*capture.BuildTargetCapture) (string, bool) {
	return "", false
}

func (silent) FormatAggregateTarget(*capture.AggregateTargetCapture) (string, bool) {
	return "", false
}

func (silent) FormatAnalyzeTarget(*capture.AnalyzeTargetCapture) (string, bool) {
	return "", false
}

func (silent) FormatCleanTarget(*capture.CleanTargetCapture) (string, bool) {
	return "", false
}

func (silent) FormatAnalyze(*capture.AnalyzeCapture) (string, bool) {
	return "", false
}

func (silent) FormatCheckDependencies(*capture.CheckDependenciesCapture) (string, bool) {
	return "", false
}

func (silent) FormatCleanRemove(*capture.CleanRemoveCapture) (string, bool) {
	return "", false
}

func (silent) FormatCodeSign(*capture.CodeSignCapture) (string, bool) {
	return "", false
}

func (silent) FormatCodeSignFramework(*capture.CodeSignFrameworkCapture) (string, bool) {
	return "", false
}

func (silent) FormatCompile(*capture.CompileCapture) (string, bool) {
	return "", false
}

func (silent) FormatCompileCommand(*capture.CompileCommandCapture) (string, bool) {
	return "", false
}

func (silent) FormatCompileXib(*capture.CompileXibCapture) (string, bool) {
	return "", false
}

func (silent) FormatCompileStoryboard(*capture.CompileStoryboardCapture) (string, bool) {
	return "", false
}

func (silent) FormatCopy(*capture.CopyCapture) (string, bool) {
	return "", false
}

func (silent) FormatGenerateDsym(*capture.GenerateDsymCapture) (string, bool) {
	return "", false
}

func (silent) FormatLibtool(*capture.LibtoolCapture) (string, bool) {
	return "", false
}

func (silent) FormatLinking(*capture.LinkingCapture) (string, bool) {
	return "", false
}

func (silent) FormatPhaseScriptExecution(*capture.PhaseScriptExecutionCapture) (string, bool) {
	return "", false
}

func (silent) FormatPhaseSuccess(*capture.PhaseSuccessCapture) (string, bool) {
	return "", false
}

func (silent) FormatProcessPch(*capture.ProcessPchCapture) (string, bool) {
	return "", false
}

func (silent) FormatProcessPchCommand(*capture.ProcessPchCommandCapture) (string, bool) {
	return "", false
}

func (silent) FormatProcessInfoPlist(*capture.ProcessInfoPlistCapture) (string, bool) {
	return "", false
}

func (silent) FormatTouch(*capture.TouchCapture) (string, bool) {
	return "", false
}

func (silent) FormatShellCommand(*capture.ShellCommandCapture) (string, bool) {
	return "", false
}

func (silent) FormatWriteFile(*capture.WriteFileCapture) (string, bool) {
	return "", false
}

func (silent) FormatWriteAuxiliaryFiles(*capture.WriteAuxiliaryFilesCapture) (string, bool) {
	return "", false
}

func (silent) FormatGenerateCoverageData(*capture.GenerateCoverageDataCapture) (string, bool) {
	return "", false
}

func (silent) FormatGeneratedCoverageReport(*capture.GeneratedCoverageReportCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestSuiteStart(*capture.TestSuiteStartCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestSuiteStarted(*capture.TestSuiteStartedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestSuiteStarted(*capture.ParallelTestSuiteStartedCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestCaseStarted(*capture.TestCaseStartedCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestCasePassed(*capture.TestCasePassedCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestCasePending(*capture.TestCasePendingCapture) (string, bool) {
	return "", false
}

func (silent) FormatTestCaseMeasured(*capture.TestCaseMeasuredCapture) (string, bool) {
	return "", false
}

func (silent) FormatFailingTest(*capture.FailingTestCapture) (string, bool) {
	return "", false
}

func (silent) FormatUIFailingTest(*capture.UIFailingTestCapture) (string, bool) {
	return "", false
}

func (silent) FormatRestartingTest(*capture.RestartingTestCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestCasePassed(*capture.ParallelTestCasePassedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestCaseAppKitPassed(*capture.ParallelTestCaseAppKitPassedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestCaseFailed(*capture.ParallelTestCaseFailedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestingStarted(*capture.ParallelTestingStartedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestingPassed(*capture.ParallelTestingPassedCapture) (string, bool) {
	return "", false
}

func (silent) FormatParallelTestingFailed(*capture.ParallelTestingFailedCapture) (string, bool) {
	return "", false
}

func (silent) FormatExecuted(*capture.ExecutedCapture) (string, bool) {
	return "", false
}

func (silent) FormatCompileError(*capture.CompileErrorCapture, capture.Next) (string, bool) {
	return "", false
}

func (silent) FormatCompileWarning(*capture.CompileWarningCapture, capture.Next) (string, bool) {
	return "", false
}

func (silent) FormatFileMissingError(*capture.FileMissingErrorCapture) (string, bool) {
	return "", false
}

func (silent) FormatLinkerDuplicateSymbols(*capture.LinkerDuplicateSymbolsCapture) (string, bool) {
	return "", false
}

func (silent) FormatLinkerUndefinedSymbols(*capture.LinkerUndefinedSymbolsCapture) (string, bool) {
	return "", false
}

func (silent) FormatLDWarning(*capture.LDWarningCapture) (string, bool) {
	return "", false
}

func (silent) FormatWarning(*capture.WarningCapture) (string, bool) {
	return "", false
}

func (silent) FormatWillNotBeCodeSigned(*capture.WillNotBeCodeSignedCapture) (string, bool) {
	return "", false
}

func (silent) FormatDuplicateLocalizedStringKey(*capture.DuplicateLocalizedStringKeyCapture) (string, bool) {
	return "", false
}

func (silent) FormatError(*capture.ErrorCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageFetching(*capture.PackageFetchingCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageUpdating(*capture.PackageUpdatingCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageCheckingOut(*capture.PackageCheckingOutCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageGraphResolvingStart(*capture.PackageGraphResolvingStartCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageGraphResolvingEnded(*capture.PackageGraphResolvingEndedCapture) (string, bool) {
	return "", false
}

func (silent) FormatPackageGraphResolvedItem(*capture.PackageGraphResolvedItemCapture) (string, bool) {
	return "", false
}

func (silent) FormatUnrecognized(c *capture.UnrecognizedCapture) (string, bool) {
	return c.Line, true
}
