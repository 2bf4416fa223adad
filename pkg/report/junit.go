package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/dkoosis/xcfo/pkg/capture"
)

type junitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Name     string           `xml:"name,attr"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Skipped  int              `xml:"skipped,attr"`
	Time     string           `xml:"time,attr,omitempty"`
	Suites   []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Time     string          `xml:"time,attr,omitempty"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr,omitempty"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	Skipped   *junitSkipped `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

type junitSkipped struct{}

type caseKey struct{ suite, name string }

// JUnit collects test results into a JUnit XML report. Several failures of
// one test case are merged into one failure element.
type JUnit struct {
	suites      []string
	cases       map[string][]*junitTestCase
	index       map[caseKey]*junitTestCase
	lastStarted caseKey
	totalTime   string
}

// NewJUnit returns an empty JUnit reporter.
func NewJUnit() *JUnit {
	return &JUnit{cases: make(map[string][]*junitTestCase), index: make(map[caseKey]*junitTestCase)}
}

func (j *JUnit) suite(name string) {
	if _, ok := j.cases[name]; !ok {
		j.suites = append(j.suites, name)
		j.cases[name] = nil
	}
}

func (j *JUnit) testCase(suite, name string) *junitTestCase {
	k := caseKey{suite, name}
	if tc, ok := j.index[k]; ok {
		return tc
	}
	j.suite(suite)
	tc := &junitTestCase{Name: name, Classname: suite}
	j.cases[suite] = append(j.cases[suite], tc)
	j.index[k] = tc
	return tc
}

func (j *JUnit) fail(suite, name, message, body string) {
	tc := j.testCase(suite, name)
	if tc.Failure == nil {
		tc.Failure = &junitFailure{Message: message, Body: body}
		return
	}
	tc.Failure.Body += "\n" + body
}

// Observe records test captures and ignores everything else.
func (j *JUnit) Observe(c capture.Capture) {
	switch c := c.(type) {
	case *capture.TestSuiteStartCapture:
		j.suite(c.Suite)
	case *capture.ParallelTestSuiteStartedCapture:
		j.suite(c.Suite)
	case *capture.TestCaseStartedCapture:
		j.lastStarted = caseKey{c.Suite, c.TestCase}
	case *capture.TestCasePassedCapture:
		j.testCase(c.Suite, c.TestCase).Time = c.Time
	case *capture.ParallelTestCasePassedCapture:
		j.testCase(c.Suite, c.TestCase).Time = c.Time
	case *capture.ParallelTestCaseAppKitPassedCapture:
		j.testCase(c.Suite, c.TestCase).Time = c.Time
	case *capture.TestCasePendingCapture:
		j.testCase(c.Suite, c.TestCase).Skipped = &junitSkipped{}
	case *capture.FailingTestCapture:
		j.fail(c.Suite, c.TestCase, c.Reason, c.File+": "+c.Reason)
	case *capture.ParallelTestCaseFailedCapture:
		msg := "failed on '" + c.Device + "'"
		j.fail(c.Suite, c.TestCase, msg, msg)
		j.testCase(c.Suite, c.TestCase).Time = c.Time
	case *capture.UIFailingTestCapture:
		k := j.lastStarted
		if k.name == "" {
			k = caseKey{suite: "UITests", name: c.File}
		}
		j.fail(k.suite, k.name, c.Reason, c.File+": "+c.Reason)
	case *capture.ExecutedCapture:
		j.totalTime = c.Seconds
	}
}

func (j *JUnit) document() junitTestSuites {
	doc := junitTestSuites{Name: "xcfo", Time: j.totalTime}
	for _, name := range j.suites {
		s := junitTestSuite{Name: name}
		var total float64
		for _, tc := range j.cases[name] {
			s.Cases = append(s.Cases, *tc)
			s.Tests++
			switch {
			case tc.Failure != nil:
				s.Failures++
			case tc.Skipped != nil:
				s.Skipped++
			}
			if f, err := strconv.ParseFloat(tc.Time, 64); err == nil {
				total += f
			}
		}
		if total > 0 {
			s.Time = strconv.FormatFloat(total, 'f', 3, 64)
		}
		doc.Tests += s.Tests
		doc.Failures += s.Failures
		doc.Skipped += s.Skipped
		doc.Suites = append(doc.Suites, s)
	}
	return doc
}

// WriteTo writes the report as indented XML with a declaration.
func (j *JUnit) WriteTo(w io.Writer) (int64, error) {
	data, err := xml.MarshalIndent(j.document(), "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode junit: %w", err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
