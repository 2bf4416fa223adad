// Package render turns captures into output lines. Every renderer implements
// capture.Formatter, so a new category cannot be added without each renderer
// deciding how to show it.
package render

import (
	"errors"
	"fmt"

	"github.com/dkoosis/xcfo/pkg/capture"
)

// Renderer names accepted by ByName.
const (
	RendererTerminal      = "terminal"
	RendererPlain         = "plain"
	RendererGitHubActions = "github-actions"
	RendererAzureDevOps   = "azure-devops"
	RendererTeamCity      = "teamcity"
)

// ErrUnknownRenderer is returned by ByName for names it does not know.
var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderer is a capture.Formatter with a name for logs.
type Renderer interface {
	capture.Formatter
	Name() string
}

// Names lists the renderer names in display order.
func Names() []string {
	return []string{RendererTerminal, RendererPlain, RendererGitHubActions, RendererAzureDevOps, RendererTeamCity}
}

// ByName resolves a renderer. The theme only applies to the terminal renderer.
func ByName(name string, theme Theme, opts Options) (Renderer, error) {
	switch name {
	case RendererTerminal:
		return NewTerminal(theme, opts), nil
	case RendererPlain:
		return NewPlain(opts), nil
	case RendererGitHubActions:
		return NewCI(GitHubActions{}), nil
	case RendererAzureDevOps:
		return NewCI(AzureDevOps{}), nil
	case RendererTeamCity:
		return NewCI(TeamCity{}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
}

// IsCI reports whether name is one of the CI annotation renderers.
func IsCI(name string) bool {
	switch name {
	case RendererGitHubActions, RendererAzureDevOps, RendererTeamCity:
		return true
	}
	return false
}

// Render formats c with f. A nil next behaves as end of input.
func Render(f capture.Formatter, c capture.Capture, next capture.Next) (string, bool) {
	if next == nil {
		next = endOfInput
	}
	return c.Format(f, next)
}

func endOfInput() (string, bool) { return "", false }
