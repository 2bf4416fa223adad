package classify

import (
	"strings"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// inTarget matches both target suffixes xcodebuild has printed over the
// years. It contributes two groups; fields list both.
const inTarget = `\((?:in target: (.*)|in target '(.*)' from project '.*')\)`

// DefaultRules returns the built-in rules in priority order.
//
// Order matters wherever two shapes overlap:
//   - failing_test before compile_error ("path:12: error: -[Suite test] : ...")
//   - clang/xcodebuild errors, file_missing_error and ld_warning before
//     compile_error/compile_warning ("clang: error: ..." has the same shape)
//   - linker_duplicate_symbols and ld_warning before the generic "ld:" error
//   - code_sign_framework before code_sign
//   - compile_xib and compile_storyboard before compile
//   - test_case_pending before test_case_passed
//   - parallel_test_suite_started and test_suite_started before test_suite_start
//   - the generic "error:" rule before the provisioning rule, which also
//     matches lines that start with "error:"
//   - shell_command last, since any indented command line matches it
func DefaultRules() []*Rule {
	return []*Rule{
		// Target banners.
		NewRule("analyze_target", capture.AnalyzeTarget,
			`^=== ANALYZE TARGET\s(.*)\sOF PROJECT\s(.*)\sWITH.*CONFIGURATION\s(.*)\s===`,
			func(v Values) capture.Capture {
				return &capture.AnalyzeTargetCapture{TargetGroup: targetGroup(v)}
			},
			Req("target", 1), Req("project", 2), Req("configuration", 3)),
		NewRule("build_target", capture.BuildTarget,
			`^=== BUILD TARGET\s(.*)\sOF PROJECT\s(.*)\sWITH.*CONFIGURATION\s(.*)\s===`,
			func(v Values) capture.Capture {
				return &capture.BuildTargetCapture{TargetGroup: targetGroup(v)}
			},
			Req("target", 1), Req("project", 2), Req("configuration", 3)),
		NewRule("aggregate_target", capture.AggregateTarget,
			`^=== BUILD AGGREGATE TARGET\s(.*)\sOF PROJECT\s(.*)\sWITH.*CONFIGURATION\s(.*)\s===`,
			func(v Values) capture.Capture {
				return &capture.AggregateTargetCapture{TargetGroup: targetGroup(v)}
			},
			Req("target", 1), Req("project", 2), Req("configuration", 3)),
		NewRule("clean_target", capture.CleanTarget,
			`^=== CLEAN TARGET\s(.*)\sOF PROJECT\s(.*)\sWITH CONFIGURATION\s(.*)\s===`,
			func(v Values) capture.Capture {
				return &capture.CleanTargetCapture{TargetGroup: targetGroup(v)}
			},
			Req("target", 1), Req("project", 2), Req("configuration", 3)),

		// Build steps.
		NewRule("analyze", capture.Analyze,
			`^Analyze(?:Shallow)?\s(.*\/(.*\.(?:m|mm|cc|cpp|c|cxx)))\s.*`+inTarget,
			func(v Values) capture.Capture {
				return &capture.AnalyzeCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
			},
			Req("path", 1), Req("filename", 2), Req("target", 3, 4)),
		NewRule("check_dependencies", capture.CheckDependencies, `^Check dependencies`,
			func(Values) capture.Capture { return &capture.CheckDependenciesCapture{} }),
		NewRule("clean_remove", capture.CleanRemove, `^Clean\.Remove\s+(?:clean\s+)?(.+)$`,
			func(v Values) capture.Capture {
				return &capture.CleanRemoveCapture{Directory: v["directory"]}
			},
			Req("directory", 1)),
		NewRule("code_sign_framework", capture.CodeSignFramework,
			`^CodeSign\s((?:\\ |[^ ])*\.framework)\/Versions\/A`,
			func(v Values) capture.Capture {
				return &capture.CodeSignFrameworkCapture{FrameworkPath: v["path"]}
			},
			Req("path", 1)),
		NewRule("code_sign", capture.CodeSign,
			`^CodeSign\s((?:\\ |[^ ])*?)(?:\s\((?:in target: .*|in target '.*' from project '.*')\))?$`,
			func(v Values) capture.Capture {
				return &capture.CodeSignCapture{File: v["file"]}
			},
			Req("file", 1)),
		NewRule("compile_xib", capture.CompileXib,
			`^CompileXIB\s(.*\/(.*\.xib))\s.*`+inTarget,
			func(v Values) capture.Capture {
				return &capture.CompileXibCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
			},
			Req("path", 1), Req("filename", 2), Req("target", 3, 4)),
		NewRule("compile_storyboard", capture.CompileStoryboard,
			`^CompileStoryboard\s(.*\/([^\/].*\.storyboard))\s.*`+inTarget,
			func(v Values) capture.Capture {
				return &capture.CompileStoryboardCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
			},
			Req("path", 1), Req("filename", 2), Req("target", 3, 4)),
		NewRule("compile", capture.Compile,
			`^(?:Compile[\w]+|SwiftCompile)\s.+?\s((?:\\.|[^ ])+\/((?:\\.|[^ ])+\.(?:m|mm|c|cc|cpp|cxx|swift)))\s.*`+inTarget,
			buildCompile,
			Req("path", 1), Req("filename", 2), Req("target", 3, 4)),
		NewRule("swiftpm_compile", capture.Compile, `^\[\d+\/\d+\]\sCompiling\s(\S+)\s(.+)$`,
			buildCompile,
			Req("target", 1), Req("filename", 2)),
		NewRule("compile_command", capture.CompileCommand,
			`^\s*(.*clang\s.*\s\-c\s(.*\.(?:m|mm|c|cc|cpp|cxx))\s.*\-o\s.*\.o)$`,
			func(v Values) capture.Capture {
				return &capture.CompileCommandCapture{Command: v["command"], FilePath: v["path"]}
			},
			Req("command", 1), Req("path", 2)),
		NewRule("cp_header", capture.Copy, `^CpHeader\s(.*\.h)\s(.*\.h)\s`+inTarget,
			buildCopy, Req("file", 1), Req("target", 3, 4)),
		NewRule("copy_plist_file", capture.Copy, `^CopyPlistFile\s(.*\.plist)\s(.*\.plist)\s`+inTarget,
			buildCopy, Req("file", 1), Req("target", 3, 4)),
		NewRule("copy_strings_file", capture.Copy, `^CopyStringsFile\s(.*\.strings)\s(.*\.strings)\s`+inTarget,
			buildCopy, Req("file", 1), Req("target", 3, 4)),
		NewRule("cp_resource", capture.Copy, `^CpResource\s(.*)\s\/(.*)\s`+inTarget,
			buildCopy, Req("file", 1), Req("target", 3, 4)),
		NewRule("pbxcp", capture.Copy, `^PBXCp\s(.*)\s\/(.*)\s`+inTarget,
			buildCopy, Req("file", 1), Req("target", 3, 4)),
		NewRule("generate_dsym", capture.GenerateDsym, `^GenerateDSYMFile \/.*\/(.*\.dSYM) \/.* `+inTarget,
			func(v Values) capture.Capture {
				return &capture.GenerateDsymCapture{Dsym: v["dsym"], Target: v["target"]}
			},
			Req("dsym", 1), Req("target", 2, 3)),
		NewRule("libtool", capture.Libtool, `^Libtool.*\/(.*) .* .* `+inTarget,
			func(v Values) capture.Capture {
				return &capture.LibtoolCapture{Filename: v["filename"], Target: v["target"]}
			},
			Req("filename", 1), Req("target", 2, 3)),
		NewRule("linking", capture.Linking, `^Ld \/?.*\/(.*?) normal(?: .*)? `+inTarget,
			buildLinking, Req("binary", 1), Req("target", 2, 3)),
		NewRule("swiftpm_linking", capture.Linking, `^\[\d+\/\d+\]\sLinking\s(\S+)$`,
			buildLinking, Req("binary", 1), Req("target", 1)),
		NewRule("phase_script_execution", capture.PhaseScriptExecution,
			`^PhaseScriptExecution\s(.*)\s\/.*\.sh\s`+inTarget,
			func(v Values) capture.Capture {
				return &capture.PhaseScriptExecutionCapture{PhaseName: v["phase"], Target: v["target"]}
			},
			Req("phase", 1), Req("target", 2, 3)),
		NewRule("phase_success", capture.PhaseSuccess, `^\*\*\s(.*)\sSUCCEEDED\s\*\*`,
			func(v Values) capture.Capture {
				return &capture.PhaseSuccessCapture{Phase: v["phase"]}
			},
			Req("phase", 1)),
		NewRule("process_pch", capture.ProcessPch,
			`^ProcessPCH(?:\+\+)?\s.*\s\/.*\/(.*\.pch) normal .* .* .* `+inTarget,
			func(v Values) capture.Capture {
				return &capture.ProcessPchCapture{File: v["file"], Target: v["target"]}
			},
			Req("file", 1), Req("target", 2, 3)),
		NewRule("process_pch_command", capture.ProcessPchCommand,
			`^\s*.*\/usr\/bin\/clang\s.*\s\-c\s(.*\.pch)\s.*\-o\s.*`,
			func(v Values) capture.Capture {
				return &capture.ProcessPchCommandCapture{FilePath: v["path"]}
			},
			Req("path", 1)),
		NewRule("process_info_plist", capture.ProcessInfoPlist,
			`^ProcessInfoPlistFile\s.*\.plist\s(.*\/+(.*\.plist))(?: `+inTarget+`)?$`,
			func(v Values) capture.Capture {
				return &capture.ProcessInfoPlistCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
			},
			Req("path", 1), Req("filename", 2), Opt("target", 3, 4)),
		NewRule("touch", capture.Touch, `^Touch\s(.*\/(.+))\s`+inTarget,
			func(v Values) capture.Capture {
				return &capture.TouchCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
			},
			Req("path", 1), Req("filename", 2), Req("target", 3, 4)),
		NewRule("write_file", capture.WriteFile, `^write-file\s(.*)`,
			func(v Values) capture.Capture {
				return &capture.WriteFileCapture{Path: v["path"]}
			},
			Req("path", 1)),
		NewRule("write_auxiliary_files", capture.WriteAuxiliaryFiles, `^Write auxiliary files`,
			func(Values) capture.Capture { return &capture.WriteAuxiliaryFilesCapture{} }),
		NewRule("generate_coverage_data", capture.GenerateCoverageData, `^generating\s+coverage\s+data\.*`,
			func(Values) capture.Capture { return &capture.GenerateCoverageDataCapture{} }),
		NewRule("generated_coverage_report", capture.GeneratedCoverageReport, `^generated\s+coverage\s+report:\s+(.+)`,
			func(v Values) capture.Capture {
				return &capture.GeneratedCoverageReportCapture{Path: v["path"]}
			},
			Req("path", 1)),

		// Tests.
		NewRule("failing_test", capture.FailingTest,
			`^\s*(.+:\d+):\serror:\s[\+\-]\[(.*?)\s(.*)\]\s:(?:\s'.*'\s\[FAILED\],)?\s(.*)`,
			buildFailingTest,
			Req("file", 1), Req("suite", 2), Req("test", 3), Req("reason", 4)),
		NewRule("failing_test_swift", capture.FailingTest,
			`^\s*(.+:\d+):\serror:\s(\S+)\.(\S+?)\s:\s(.*)$`,
			buildFailingTest,
			Req("file", 1), Req("suite", 2), Req("test", 3), Req("reason", 4)),
		NewRule("ui_failing_test", capture.UIFailingTest,
			`^\s{4}t = \s+\d+\.\d+s\s+Assertion Failure: (.*:\d+): (.*)$`,
			func(v Values) capture.Capture {
				return &capture.UIFailingTestCapture{File: v["file"], Reason: v["reason"]}
			},
			Req("file", 1), Req("reason", 2)),
		NewRule("restarting_test_named", capture.RestartingTest,
			`^(Restarting after unexpected exit, crash, or test timeout in (.+)\.(.+)\(\); summary will include totals from previous launches\.)$`,
			buildRestarting,
			Req("line", 1), Req("suite", 2), Req("test", 3)),
		NewRule("restarting_test", capture.RestartingTest, `^(Restarting after unexpected exit.+)$`,
			buildRestarting, Req("line", 1)),
		NewRule("test_case_started", capture.TestCaseStarted, `^Test Case '-\[(.*?) (.*)\]' started\.$`,
			buildTestCaseStarted, Req("suite", 1), Req("test", 2)),
		NewRule("test_case_started_swift", capture.TestCaseStarted, `^Test Case '(.*)\.(.*)' started at .*$`,
			buildTestCaseStarted, Req("suite", 1), Req("test", 2)),
		NewRule("test_case_pending", capture.TestCasePending, `^Test Case\s'-\[(.*?)\s(.*)PENDING\]'\spassed`,
			func(v Values) capture.Capture {
				return &capture.TestCasePendingCapture{Suite: v["suite"], TestCase: v["test"]}
			},
			Req("suite", 1), Req("test", 2)),
		NewRule("test_case_passed", capture.TestCasePassed,
			`^\s*Test Case\s'-\[(.*?)\s(.*)\]'\spassed\s\((\d*\.\d+)\sseconds\)`,
			buildTestCasePassed, Req("suite", 1), Req("test", 2), Req("time", 3)),
		NewRule("test_case_passed_swift", capture.TestCasePassed,
			`^\s*Test Case\s'(.*)\.(.*)'\spassed\s\((\d*\.\d+)\sseconds\)`,
			buildTestCasePassed, Req("suite", 1), Req("test", 2), Req("time", 3)),
		NewRule("test_case_measured", capture.TestCaseMeasured,
			`^[^:]*:[^:]*:\sTest Case\s'-\[(.*?)\s(.*)\]'\smeasured\s\[([^,]*),\s([^\]]*)\]\saverage:\s(\d*\.\d+),\srelative\sstandard\sdeviation:\s(\d*\.\d+)`,
			func(v Values) capture.Capture {
				return &capture.TestCaseMeasuredCapture{
					Suite: v["suite"], TestCase: v["test"], Name: v["name"],
					Unit: v["unit"], Value: v["value"], Deviation: v["deviation"],
				}
			},
			Req("suite", 1), Req("test", 2), Req("name", 3), Req("unit", 4), Req("value", 5), Req("deviation", 6)),
		NewRule("parallel_test_case_passed", capture.ParallelTestCasePassed,
			`^Test\s+case\s+'(.*)\.(.*)\(\)'\s+passed\s+on\s+'(.*)'\s+\((\d*\.\d+)\s+seconds\)`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestCasePassedCapture{Suite: v["suite"], TestCase: v["test"], Device: v["device"], Time: v["time"]}
			},
			Req("suite", 1), Req("test", 2), Req("device", 3), Req("time", 4)),
		NewRule("parallel_test_case_appkit_passed", capture.ParallelTestCaseAppKitPassed,
			`^\s*Test case\s'-\[(.*?)\s(.*)\]'\spassed\son\s'(.*)'\s\((\d*\.\d+)\sseconds\)`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestCaseAppKitPassedCapture{Suite: v["suite"], TestCase: v["test"], Device: v["device"], Time: v["time"]}
			},
			Req("suite", 1), Req("test", 2), Req("device", 3), Req("time", 4)),
		NewRule("parallel_test_case_failed", capture.ParallelTestCaseFailed,
			`^Test\s+case\s+'(.*)\.(.*)\(\)'\s+failed\s+on\s+'(.*)'\s+\((\d*\.\d+)\s+seconds\)`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestCaseFailedCapture{Suite: v["suite"], TestCase: v["test"], Device: v["device"], Time: v["time"]}
			},
			Req("suite", 1), Req("test", 2), Req("device", 3), Req("time", 4)),
		NewRule("parallel_testing_started", capture.ParallelTestingStarted, `^(Testing\s+started\s+on\s+'(.*)'.*)$`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestingStartedCapture{Line: v["line"], Device: v["device"]}
			},
			Req("line", 1), Req("device", 2)),
		NewRule("parallel_testing_passed", capture.ParallelTestingPassed, `^(Testing\s+passed\s+on\s+'(.*)'.*)$`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestingPassedCapture{Line: v["line"], Device: v["device"]}
			},
			Req("line", 1), Req("device", 2)),
		NewRule("parallel_testing_failed", capture.ParallelTestingFailed, `^(Testing\s+failed\s+on\s+'(.*)'.*)$`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestingFailedCapture{Line: v["line"], Device: v["device"]}
			},
			Req("line", 1), Req("device", 2)),
		NewRule("parallel_test_suite_started", capture.ParallelTestSuiteStarted,
			`^\s*Test\s+Suite\s+'(.*)'\s+started\s+on\s+'(.*)'`,
			func(v Values) capture.Capture {
				return &capture.ParallelTestSuiteStartedCapture{Suite: v["suite"], Device: v["device"]}
			},
			Req("suite", 1), Req("device", 2)),
		NewRule("test_suite_started", capture.TestSuiteStarted,
			`^\s*Test Suite '(?:.*\/)?(.*[ox]ctest.*)' started at(.*)`,
			func(v Values) capture.Capture {
				return &capture.TestSuiteStartedCapture{Suite: v["suite"], Time: strings.TrimSpace(v["time"])}
			},
			Req("suite", 1), Opt("time", 2)),
		NewRule("test_suite_start", capture.TestSuiteStart, `^\s*Test Suite '(.*)' started at`,
			func(v Values) capture.Capture {
				return &capture.TestSuiteStartCapture{Suite: v["suite"]}
			},
			Req("suite", 1)),
		NewRule("executed", capture.Executed,
			`^\s*Executed\s(\d+)\stests?,\swith\s(\d+)\sfailures?\s\((\d+)\sunexpected\)\sin\s\d+\.\d+\s\((\d+\.\d+)\)\sseconds`,
			func(v Values) capture.Capture {
				return &capture.ExecutedCapture{Tests: v["tests"], Failures: v["failures"], Unexpected: v["unexpected"], Seconds: v["seconds"]}
			},
			Req("tests", 1), Req("failures", 2), Req("unexpected", 3), Req("seconds", 4)),

		// Diagnostics.
		NewRule("file_missing_error", capture.FileMissingError,
			`^<unknown>:0:\s(error:\s.*)\s'(\/.+\/.*\..*)'$`,
			func(v Values) capture.Capture {
				return &capture.FileMissingErrorCapture{Reason: v["reason"], FilePath: v["path"]}
			},
			Req("reason", 1), Req("path", 2)),
		NewRule("tool_error", capture.Error, `^((?:clang|xcodebuild): error:.*)$`,
			buildError, Req("message", 1)),
		NewRule("linker_duplicate_symbols", capture.LinkerDuplicateSymbols,
			`^(?:ld: )?((?:\d+ )?duplicate symbols?\b.*?):?$`,
			func(v Values) capture.Capture {
				return &capture.LinkerDuplicateSymbolsCapture{Reason: v["reason"]}
			},
			Req("reason", 1)),
		NewRule("linker_undefined_symbols", capture.LinkerUndefinedSymbols,
			`^(Undefined symbols? for architecture .*):$`,
			func(v Values) capture.Capture {
				return &capture.LinkerUndefinedSymbolsCapture{Reason: v["reason"]}
			},
			Req("reason", 1)),
		NewRule("ld_warning", capture.LDWarning, `^(ld: )warning: (.*)`,
			func(v Values) capture.Capture {
				return &capture.LDWarningCapture{Prefix: v["prefix"], Message: v["message"]}
			},
			Req("prefix", 1), Req("message", 2)),
		NewRule("ld_error", capture.Error, `^(ld:.*)$`,
			buildError, Req("message", 1)),
		NewRule("will_not_be_code_signed", capture.WillNotBeCodeSigned,
			`^(.* will not be code signed because .*)$`,
			func(v Values) capture.Capture {
				return &capture.WillNotBeCodeSignedCapture{Message: v["message"]}
			},
			Req("message", 1)),
		NewRule("duplicate_localized_string_key", capture.DuplicateLocalizedStringKey,
			`^[\d\s\-:]+ --- WARNING: (Key ".*" used with multiple values\. Value ".*" kept\. Value ".*" ignored\.)$`,
			func(v Values) capture.Capture {
				return &capture.DuplicateLocalizedStringKeyCapture{Message: v["message"]}
			},
			Req("message", 1)),
		NewRule("compile_warning", capture.CompileWarning,
			`^(([^:]*):*\d*:*\d*):\swarning:\s(.*)$`,
			func(v Values) capture.Capture {
				return &capture.CompileWarningCapture{FilePath: v["path"], Reason: v["reason"]}
			},
			Req("path", 1), Req("reason", 3)).WithContinuation(2),
		NewRule("compile_error", capture.CompileError,
			`^(([^:]*):*\d*:*\d*):\s(?:fatal\s)?error:\s(.*)$`,
			func(v Values) capture.Capture {
				return &capture.CompileErrorCapture{FilePath: v["path"], Reason: v["reason"]}
			},
			Req("path", 1), Req("reason", 3)).WithContinuation(2),
		NewRule("fatal_error", capture.Error, `^(fatal error:.*)$`,
			buildError, Req("message", 1)),
		NewRule("error", capture.Error, `^error:\s(.*)$`,
			buildError, Req("message", 1)),
		NewRule("signing_error", capture.Error,
			`^(Code\s?Sign error:.*|Code signing is required for product type .* in SDK .*|No profile matching .* found:.*|Provisioning profile .* doesn't .*|Swift is unavailable on .*|.?Use Legacy Swift Language Version.*)$`,
			buildError, Req("message", 1)),
		NewRule("provisioning_profile_required", capture.Error, `^(.*requires a provisioning profile.*)$`,
			buildError, Req("message", 1)),
		NewRule("no_certificate", capture.Error, `^(No certificate matching.*)$`,
			buildError, Req("message", 1)),
		NewRule("warning", capture.Warning, `^warning:\s(.*)$`,
			func(v Values) capture.Capture {
				return &capture.WarningCapture{Message: v["message"]}
			},
			Req("message", 1)),

		// Swift packages.
		NewRule("package_fetching", capture.PackageFetching, `^Fetching (?:from )?(.+?)$`,
			func(v Values) capture.Capture {
				return &capture.PackageFetchingCapture{Source: v["source"]}
			},
			Req("source", 1)),
		NewRule("package_updating", capture.PackageUpdating, `^Updating (?:from )?(.+?)$`,
			func(v Values) capture.Capture {
				return &capture.PackageUpdatingCapture{Source: v["source"]}
			},
			Req("source", 1)),
		NewRule("package_checking_out", capture.PackageCheckingOut, `^Checking out (.+?) of package (.+?)$`,
			func(v Values) capture.Capture {
				return &capture.PackageCheckingOutCapture{Version: v["version"], Package: v["package"]}
			},
			Req("version", 1), Req("package", 2)),
		NewRule("package_graph_resolving_start", capture.PackageGraphResolvingStart, `^\s*Resolve Package Graph\s*$`,
			func(Values) capture.Capture {
				return &capture.PackageGraphResolvingStartCapture{}
			}),
		NewRule("package_graph_resolving_ended", capture.PackageGraphResolvingEnded, `^Resolved source packages:$`,
			func(Values) capture.Capture {
				return &capture.PackageGraphResolvingEndedCapture{}
			}),
		NewRule("package_graph_resolved_item", capture.PackageGraphResolvedItem,
			`^\s*([^\s:]+):\s([^ ]+)\s@\s(\d+\.\d+\.\d+)`,
			func(v Values) capture.Capture {
				return &capture.PackageGraphResolvedItemCapture{Name: v["name"], URL: v["url"], Version: v["version"]}
			},
			Req("name", 1), Req("url", 2), Req("version", 3)),

		NewRule("shell_command", capture.ShellCommand,
			`^\s{4}(cd|setenv|(?:[\w\/:\s\-.]+?\/)?[\w\-]+)\s(.*)$`,
			func(v Values) capture.Capture {
				return &capture.ShellCommandCapture{Command: v["command"], Arguments: v["arguments"]}
			},
			Req("command", 1), Opt("arguments", 2)),
	}
}

func targetGroup(v Values) capture.TargetGroup {
	return capture.TargetGroup{Target: v["target"], Project: v["project"], Configuration: v["configuration"]}
}

func buildCompile(v Values) capture.Capture {
	return &capture.CompileCapture{FilePath: v["path"], Filename: v["filename"], Target: v["target"]}
}

func buildCopy(v Values) capture.Capture {
	return &capture.CopyCapture{File: v["file"], Target: v["target"]}
}

func buildLinking(v Values) capture.Capture {
	return &capture.LinkingCapture{BinaryFilename: v["binary"], Target: v["target"]}
}

func buildFailingTest(v Values) capture.Capture {
	return &capture.FailingTestCapture{File: v["file"], Suite: v["suite"], TestCase: v["test"], Reason: v["reason"]}
}

func buildRestarting(v Values) capture.Capture {
	return &capture.RestartingTestCapture{Line: v["line"], Suite: v["suite"], TestCase: v["test"]}
}

func buildTestCaseStarted(v Values) capture.Capture {
	return &capture.TestCaseStartedCapture{Suite: v["suite"], TestCase: v["test"]}
}

func buildTestCasePassed(v Values) capture.Capture {
	return &capture.TestCasePassedCapture{Suite: v["suite"], TestCase: v["test"], Time: v["time"]}
}

func buildError(v Values) capture.Capture {
	return &capture.ErrorCapture{Message: v["message"]}
}
