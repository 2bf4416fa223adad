// Package classify matches lines of build output against an ordered table of
// rules and extracts typed captures.
package classify

import (
	"fmt"
	"regexp"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// MaxContinuation is the largest number of following lines a rule may ask
// the driver to hand to its renderer.
const MaxContinuation = 2

// Field maps a capture field name to the submatch groups that may hold it.
// The first non-empty group wins, which lets one field cover alternative
// spellings such as "in target: X" and "in target 'X' from project 'Y'".
type Field struct {
	Name     string
	Groups   []int
	Optional bool
}

// Req declares a required field.
func Req(name string, groups ...int) Field {
	return Field{Name: name, Groups: groups}
}

// Opt declares a field that may be empty.
func Opt(name string, groups ...int) Field {
	return Field{Name: name, Groups: groups, Optional: true}
}

// Values holds the extracted fields of one match, keyed by field name.
type Values map[string]string

// Builder turns extracted values into a capture.
type Builder func(v Values) capture.Capture

// Rule is one entry of the pattern table. Anchoring is part of the
// expression: most rules start with ^, some tolerate leading indentation.
type Rule struct {
	Name         string
	Category     capture.Category
	Re           *regexp.Regexp
	Fields       []Field
	Continuation int
	build        Builder
}

// NewRule compiles expr and returns a rule. It panics if expr is invalid or
// a field refers to a group the expression does not have; rules are built
// once at startup, so this is a programming error.
func NewRule(name string, category capture.Category, expr string, build Builder, fields ...Field) *Rule {
	re := regexp.MustCompile(expr)
	for _, f := range fields {
		if len(f.Groups) == 0 {
			panic(fmt.Sprintf("classify: rule %q: field %q has no groups", name, f.Name))
		}
		for _, g := range f.Groups {
			if g < 0 || g > re.NumSubexp() {
				panic(fmt.Sprintf("classify: rule %q: field %q refers to group %d, expression has %d",
					name, f.Name, g, re.NumSubexp()))
			}
		}
	}
	return &Rule{Name: name, Category: category, Re: re, Fields: fields, build: build}
}

// WithContinuation sets how many following raw lines the renderer of this
// rule's captures consumes.
func (r *Rule) WithContinuation(n int) *Rule {
	if n < 0 || n > MaxContinuation {
		panic(fmt.Sprintf("classify: rule %q: continuation %d out of range", r.Name, n))
	}
	r.Continuation = n
	return r
}

// Extract applies the rule to line. It reports false when the line does not
// have the rule's shape, or when it does but a required field came out
// empty; both cases mean "try the next rule".
func (r *Rule) Extract(line string) (capture.Capture, bool) {
	m := r.Re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	vals := make(Values, len(r.Fields))
	for _, f := range r.Fields {
		var v string
		for _, g := range f.Groups {
			if m[g] != "" {
				v = m[g]
				break
			}
		}
		if v == "" && !f.Optional {
			return nil, false
		}
		vals[f.Name] = v
	}
	return r.build(vals), true
}
