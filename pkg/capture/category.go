package capture

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for names that do not
// correspond to any Category.
var ErrUnknownCategory = errors.New("unknown category")

// Category tags a Capture with the kind of build output line it came from.
type Category int

const (
	Unrecognized Category = iota

	// Target commands.
	BuildTarget
	AggregateTarget
	AnalyzeTarget
	CleanTarget

	// Build steps.
	Analyze
	CheckDependencies
	CleanRemove
	CodeSign
	CodeSignFramework
	Compile
	CompileCommand
	CompileXib
	CompileStoryboard
	Copy
	GenerateDsym
	Libtool
	Linking
	PhaseScriptExecution
	PhaseSuccess
	ProcessPch
	ProcessPchCommand
	ProcessInfoPlist
	Touch
	ShellCommand
	WriteFile
	WriteAuxiliaryFiles
	GenerateCoverageData
	GeneratedCoverageReport

	// Tests.
	TestSuiteStart
	TestSuiteStarted
	ParallelTestSuiteStarted
	TestCaseStarted
	TestCasePassed
	TestCasePending
	TestCaseMeasured
	FailingTest
	UIFailingTest
	RestartingTest
	ParallelTestCasePassed
	ParallelTestCaseAppKitPassed
	ParallelTestCaseFailed
	ParallelTestingStarted
	ParallelTestingPassed
	ParallelTestingFailed
	Executed

	// Diagnostics.
	CompileError
	CompileWarning
	FileMissingError
	LinkerDuplicateSymbols
	LinkerUndefinedSymbols
	LDWarning
	Warning
	WillNotBeCodeSigned
	DuplicateLocalizedStringKey
	Error

	// Swift packages.
	PackageFetching
	PackageUpdating
	PackageCheckingOut
	PackageGraphResolvingStart
	PackageGraphResolvingEnded
	PackageGraphResolvedItem

	numCategories
)

var categoryNames = [numCategories]string{
	Unrecognized:                 "unrecognized",
	BuildTarget:                  "build_target",
	AggregateTarget:              "aggregate_target",
	AnalyzeTarget:                "analyze_target",
	CleanTarget:                  "clean_target",
	Analyze:                      "analyze",
	CheckDependencies:            "check_dependencies",
	CleanRemove:                  "clean_remove",
	CodeSign:                     "code_sign",
	CodeSignFramework:            "code_sign_framework",
	Compile:                      "compile",
	CompileCommand:               "compile_command",
	CompileXib:                   "compile_xib",
	CompileStoryboard:            "compile_storyboard",
	Copy:                         "copy",
	GenerateDsym:                 "generate_dsym",
	Libtool:                      "libtool",
	Linking:                      "linking",
	PhaseScriptExecution:         "phase_script_execution",
	PhaseSuccess:                 "phase_success",
	ProcessPch:                   "process_pch",
	ProcessPchCommand:            "process_pch_command",
	ProcessInfoPlist:             "process_info_plist",
	Touch:                        "touch",
	ShellCommand:                 "shell_command",
	WriteFile:                    "write_file",
	WriteAuxiliaryFiles:          "write_auxiliary_files",
	GenerateCoverageData:         "generate_coverage_data",
	GeneratedCoverageReport:      "generated_coverage_report",
	TestSuiteStart:               "test_suite_start",
	TestSuiteStarted:             "test_suite_started",
	ParallelTestSuiteStarted:     "parallel_test_suite_started",
	TestCaseStarted:              "test_case_started",
	TestCasePassed:               "test_case_passed",
	TestCasePending:              "test_case_pending",
	TestCaseMeasured:             "test_case_measured",
	FailingTest:                  "failing_test",
	UIFailingTest:                "ui_failing_test",
	RestartingTest:               "restarting_test",
	ParallelTestCasePassed:       "parallel_test_case_passed",
	ParallelTestCaseAppKitPassed: "parallel_test_case_appkit_passed",
	ParallelTestCaseFailed:       "parallel_test_case_failed",
	ParallelTestingStarted:       "parallel_testing_started",
	ParallelTestingPassed:        "parallel_testing_passed",
	ParallelTestingFailed:        "parallel_testing_failed",
	Executed:                     "executed",
	CompileError:                 "compile_error",
	CompileWarning:               "compile_warning",
	FileMissingError:             "file_missing_error",
	LinkerDuplicateSymbols:       "linker_duplicate_symbols",
	LinkerUndefinedSymbols:       "linker_undefined_symbols",
	LDWarning:                    "ld_warning",
	Warning:                      "warning",
	WillNotBeCodeSigned:          "will_not_be_code_signed",
	DuplicateLocalizedStringKey:  "duplicate_localized_string_key",
	Error:                        "error",
	PackageFetching:              "package_fetching",
	PackageUpdating:              "package_updating",
	PackageCheckingOut:           "package_checking_out",
	PackageGraphResolvingStart:   "package_graph_resolving_start",
	PackageGraphResolvingEnded:   "package_graph_resolving_ended",
	PackageGraphResolvedItem:     "package_graph_resolved_item",
}

// String returns the stable snake_case name used in config files and reports.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the Category with the given name. Matching ignores
// case and accepts dashes in place of underscores.
func ParseCategory(name string) (Category, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range categoryNames {
		if n == norm {
			return Category(i), nil
		}
	}
	return Unrecognized, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Severity ranks categories for quiet filtering and styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Severity reports how serious output of this category is. Test failures
// count as errors.
func (c Category) Severity() Severity {
	switch c {
	case CompileError, FileMissingError, LinkerDuplicateSymbols, LinkerUndefinedSymbols, Error,
		FailingTest, UIFailingTest, ParallelTestCaseFailed, ParallelTestingFailed:
		return SeverityError
	case CompileWarning, LDWarning, Warning, WillNotBeCodeSigned, DuplicateLocalizedStringKey,
		RestartingTest:
		return SeverityWarning
	case TestCasePassed, ParallelTestCasePassed, ParallelTestCaseAppKitPassed, ParallelTestingPassed,
		PhaseSuccess:
		return SeveritySuccess
	default:
		return SeverityInfo
	}
}

// IsTestResult reports whether the category records the outcome of a single
// test case.
func (c Category) IsTestResult() bool {
	switch c {
	case TestCasePassed, TestCasePending, TestCaseMeasured, FailingTest, UIFailingTest,
		ParallelTestCasePassed, ParallelTestCaseAppKitPassed, ParallelTestCaseFailed:
		return true
	}
	return false
}
