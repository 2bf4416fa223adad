package capture

// Each capture type reports its category and dispatches to its Formatter method.

func (*BuildTargetCapture) Category() Category {
	return BuildTarget
}

func (c *BuildTargetCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatBuildTarget(c)
}

func (*AggregateTargetCapture) Category() Category {
	return AggregateTarget
}

func (c *AggregateTargetCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatAggregateTarget(c)
}

func (*AnalyzeTargetCapture) Category() Category {
	return AnalyzeTarget
}

func (c *AnalyzeTargetCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatAnalyzeTarget(c)
}

func (*CleanTargetCapture) Category() Category {
	return CleanTarget
}

func (c *CleanTargetCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCleanTarget(c)
}

func (*AnalyzeCapture) Category() Category {
	return Analyze
}

func (c *AnalyzeCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatAnalyze(c)
}

func (*CheckDependenciesCapture) Category() Category {
	return CheckDependencies
}

func (c *CheckDependenciesCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCheckDependencies(c)
}

func (*CleanRemoveCapture) Category() Category {
	return CleanRemove
}

func (c *CleanRemoveCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCleanRemove(c)
}

func (*CodeSignCapture) Category() Category {
	return CodeSign
}

func (c *CodeSignCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCodeSign(c)
}

func (*CodeSignFrameworkCapture) Category() Category {
	return CodeSignFramework
}

func (c *CodeSignFrameworkCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCodeSignFramework(c)
}

func (*CompileCapture) Category() Category {
	return Compile
}

func (c *CompileCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCompile(c)
}

func (*CompileCommandCapture) Category() Category {
	return CompileCommand
}

func (c *CompileCommandCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCompileCommand(c)
}

func (*CompileXibCapture) Category() Category {
	return CompileXib
}

func (c *CompileXibCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCompileXib(c)
}

func (*CompileStoryboardCapture) Category() Category {
	return CompileStoryboard
}

func (c *CompileStoryboardCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCompileStoryboard(c)
}

func (*CopyCapture) Category() Category {
	return Copy
}

func (c *CopyCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatCopy(c)
}

func (*GenerateDsymCapture) Category() Category {
	return GenerateDsym
}

func (c *GenerateDsymCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatGenerateDsym(c)
}

func (*LibtoolCapture) Category() Category {
	return Libtool
}

func (c *LibtoolCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatLibtool(c)
}

func (*LinkingCapture) Category() Category {
	return Linking
}

func (c *LinkingCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatLinking(c)
}

func (*PhaseScriptExecutionCapture) Category() Category {
	return PhaseScriptExecution
}

func (c *PhaseScriptExecutionCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPhaseScriptExecution(c)
}

func (*PhaseSuccessCapture) Category() Category {
	return PhaseSuccess
}

func (c *PhaseSuccessCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPhaseSuccess(c)
}

func (*ProcessPchCapture) Category() Category {
	return ProcessPch
}

func (c *ProcessPchCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatProcessPch(c)
}

func (*ProcessPchCommandCapture) Category() Category {
	return ProcessPchCommand
}

func (c *ProcessPchCommandCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatProcessPchCommand(c)
}

func (*ProcessInfoPlistCapture) Category() Category {
	return ProcessInfoPlist
}

func (c *ProcessInfoPlistCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatProcessInfoPlist(c)
}

func (*TouchCapture) Category() Category {
	return Touch
}

func (c *TouchCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTouch(c)
}

func (*ShellCommandCapture) Category() Category {
	return ShellCommand
}

func (c *ShellCommandCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatShellCommand(c)
}

func (*WriteFileCapture) Category() Category {
	return WriteFile
}

func (c *WriteFileCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatWriteFile(c)
}

func (*WriteAuxiliaryFilesCapture) Category() Category {
	return WriteAuxiliaryFiles
}

func (c *WriteAuxiliaryFilesCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatWriteAuxiliaryFiles(c)
}

func (*GenerateCoverageDataCapture) Category() Category {
	return GenerateCoverageData
}

func (c *GenerateCoverageDataCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatGenerateCoverageData(c)
}

func (*GeneratedCoverageReportCapture) Category() Category {
	return GeneratedCoverageReport
}

func (c *GeneratedCoverageReportCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatGeneratedCoverageReport(c)
}

func (*TestSuiteStartCapture) Category() Category {
	return TestSuiteStart
}

func (c *TestSuiteStartCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestSuiteStart(c)
}

func (*TestSuiteStartedCapture) Category() Category {
	return TestSuiteStarted
}

func (c *TestSuiteStartedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestSuiteStarted(c)
}

func (*ParallelTestSuiteStartedCapture) Category() Category {
	return ParallelTestSuiteStarted
}

func (c *ParallelTestSuiteStartedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestSuiteStarted(c)
}

func (*TestCaseStartedCapture) Category() Category {
	return TestCaseStarted
}

func (c *TestCaseStartedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestCaseStarted(c)
}

func (*TestCasePassedCapture) Category() Category {
	return TestCasePassed
}

func (c *TestCasePassedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestCasePassed(c)
}

func (*TestCasePendingCapture) Category() Category {
	return TestCasePending
}

func (c *TestCasePendingCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestCasePending(c)
}

func (*TestCaseMeasuredCapture) Category() Category {
	return TestCaseMeasured
}

func (c *TestCaseMeasuredCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatTestCaseMeasured(c)
}

func (*FailingTestCapture) Category() Category {
	return FailingTest
}

func (c *FailingTestCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatFailingTest(c)
}

func (*UIFailingTestCapture) Category() Category {
	return UIFailingTest
}

func (c *UIFailingTestCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatUIFailingTest(c)
}

func (*RestartingTestCapture) Category() Category {
	return RestartingTest
}

func (c *RestartingTestCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatRestartingTest(c)
}

func (*ParallelTestCasePassedCapture) Category() Category {
	return ParallelTestCasePassed
}

func (c *ParallelTestCasePassedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestCasePassed(c)
}

func (*ParallelTestCaseAppKitPassedCapture) Category() Category {
	return ParallelTestCaseAppKitPassed
}

func (c *ParallelTestCaseAppKitPassedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestCaseAppKitPassed(c)
}

func (*ParallelTestCaseFailedCapture) Category() Category {
	return ParallelTestCaseFailed
}

func (c *ParallelTestCaseFailedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestCaseFailed(c)
}

func (*ParallelTestingStartedCapture) Category() Category {
	return ParallelTestingStarted
}

func (c *ParallelTestingStartedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestingStarted(c)
}

func (*ParallelTestingPassedCapture) Category() Category {
	return ParallelTestingPassed
}

func (c *ParallelTestingPassedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestingPassed(c)
}

func (*ParallelTestingFailedCapture) Category() Category {
	return ParallelTestingFailed
}

func (c *ParallelTestingFailedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatParallelTestingFailed(c)
}

func (*ExecutedCapture) Category() Category {
	return Executed
}

func (c *ExecutedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatExecuted(c)
}

func (*CompileErrorCapture) Category() Category {
	return CompileError
}

func (c *CompileErrorCapture) Format(f Formatter, next Next) (string, bool) {
	return f.FormatCompileError(c, next)
}

func (*CompileWarningCapture) Category() Category {
	return CompileWarning
}

func (c *CompileWarningCapture) Format(f Formatter, next Next) (string, bool) {
	return f.FormatCompileWarning(c, next)
}

func (*FileMissingErrorCapture) Category() Category {
	return FileMissingError
}

func (c *FileMissingErrorCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatFileMissingError(c)
}

func (*LinkerDuplicateSymbolsCapture) Category() Category {
	return LinkerDuplicateSymbols
}

func (c *LinkerDuplicateSymbolsCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatLinkerDuplicateSymbols(c)
}

func (*LinkerUndefinedSymbolsCapture) Category() Category {
	return LinkerUndefinedSymbols
}

func (c *LinkerUndefinedSymbolsCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatLinkerUndefinedSymbols(c)
}

func (*LDWarningCapture) Category() Category {
	return LDWarning
}

func (c *LDWarningCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatLDWarning(c)
}

func (*WarningCapture) Category() Category {
	return Warning
}

func (c *WarningCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatWarning(c)
}

func (*WillNotBeCodeSignedCapture) Category() Category {
	return WillNotBeCodeSigned
}

func (c *WillNotBeCodeSignedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatWillNotBeCodeSigned(c)
}

func (*DuplicateLocalizedStringKeyCapture) Category() Category {
	return DuplicateLocalizedStringKey
}

func (c *DuplicateLocalizedStringKeyCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatDuplicateLocalizedStringKey(c)
}

func (*ErrorCapture) Category() Category {
	return Error
}

func (c *ErrorCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatError(c)
}

func (*PackageFetchingCapture) Category() Category {
	return PackageFetching
}

func (c *PackageFetchingCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageFetching(c)
}

func (*PackageUpdatingCapture) Category() Category {
	return PackageUpdating
}

func (c *PackageUpdatingCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageUpdating(c)
}

func (*PackageCheckingOutCapture) Category() Category {
	return PackageCheckingOut
}

func (c *PackageCheckingOutCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageCheckingOut(c)
}

func (*PackageGraphResolvingStartCapture) Category() Category {
	return PackageGraphResolvingStart
}

func (c *PackageGraphResolvingStartCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageGraphResolvingStart(c)
}

func (*PackageGraphResolvingEndedCapture) Category() Category {
	return PackageGraphResolvingEnded
}

func (c *PackageGraphResolvingEndedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageGraphResolvingEnded(c)
}

func (*PackageGraphResolvedItemCapture) Category() Category {
	return PackageGraphResolvedItem
}

func (c *PackageGraphResolvedItemCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatPackageGraphResolvedItem(c)
}

func (*UnrecognizedCapture) Category() Category {
	return Unrecognized
}

func (c *UnrecognizedCapture) Format(f Formatter, _ Next) (string, bool) {
	return f.FormatUnrecognized(c)
}

