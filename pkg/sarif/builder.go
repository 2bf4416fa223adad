package sarif

import (
	"encoding/json"
	"fmt"
	"io"
)

const schemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"

// Result levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelNote    = "note"
)

// Builder constructs valid SARIF 2.1.0 documents with a single run. Rules
// are registered on first use, so every result's ruleIndex is valid.
type Builder struct {
	run       Run
	ruleIndex map[string]int
	success   *bool
}

// NewBuilder creates a SARIF builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		run: Run{
			Tool:    Tool{Driver: Driver{Name: toolName, Version: toolVersion}},
			Results: []Result{},
		},
		ruleIndex: make(map[string]int),
	}
}

// WithInformationURI sets the tool's home page.
func (b *Builder) WithInformationURI(uri string) *Builder {
	b.run.Tool.Driver.InformationURI = uri
	return b
}

// AddRule registers a rule with a description. Adding a known rule is a no-op.
func (b *Builder) AddRule(id, description string) *Builder {
	b.rule(id, description)
	return b
}

func (b *Builder) rule(id, description string) int {
	if i, ok := b.ruleIndex[id]; ok {
		return i
	}
	d := ReportingDescriptor{ID: id}
	if description != "" {
		d.ShortDescription = &Message{Text: description}
	}
	b.run.Tool.Driver.Rules = append(b.run.Tool.Driver.Rules, d)
	i := len(b.run.Tool.Driver.Rules) - 1
	b.ruleIndex[id] = i
	return i
}

// AddResult adds a diagnostic result. An empty file omits the location; zero
// line or column omits the region or start column.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	r := Result{
		RuleID:    ruleID,
		RuleIndex: b.rule(ruleID, ""),
		Level:     level,
		Message:   Message{Text: message},
	}
	if file != "" {
		loc := Location{PhysicalLocation: PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: file}}}
		if line > 0 {
			loc.PhysicalLocation.Region = &Region{StartLine: line, StartColumn: col}
		}
		r.Locations = []Location{loc}
	}
	b.run.Results = append(b.run.Results, r)
	return b
}

// SetExecutionSuccessful records whether the build the results came from
// succeeded.
func (b *Builder) SetExecutionSuccessful(ok bool) *Builder {
	b.success = &ok
	return b
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	run := b.run
	if b.success != nil {
		run.Invocations = []Invocation{{ExecutionSuccessful: *b.success}}
	}
	return &Document{Version: "2.1.0", Schema: schemaURI, Runs: []Run{run}}
}

// WriteTo writes the SARIF document as JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.Document(), "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode sarif: %w", err)
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
