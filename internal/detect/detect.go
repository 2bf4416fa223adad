// Package detect sniffs the environment to determine which CI system, if
// any, is running the build.
package detect

import (
	"strconv"

	"github.com/dkoosis/xcfo/pkg/render"
)

// CI represents a recognized continuous integration system.
type CI int

const (
	None          CI = iota
	GitHubActions    // GITHUB_ACTIONS=true
	AzureDevOps      // TF_BUILD=True
	TeamCity         // TEAMCITY_VERSION set
	Generic          // CI=true with no known vendor
)

func (c CI) String() string {
	switch c {
	case GitHubActions:
		return "github-actions"
	case AzureDevOps:
		return "azure-devops"
	case TeamCity:
		return "teamcity"
	case Generic:
		return "generic"
	default:
		return "none"
	}
}

// Renderer returns the annotation renderer for c. Generic CI has no
// annotation dialect, so it falls back to plain output.
func (c CI) Renderer() string {
	switch c {
	case GitHubActions:
		return render.RendererGitHubActions
	case AzureDevOps:
		return render.RendererAzureDevOps
	case TeamCity:
		return render.RendererTeamCity
	default:
		return render.RendererPlain
	}
}

// Sniff examines environment variables through getenv and returns the CI
// system. Vendor variables win over the generic CI flag.
func Sniff(getenv func(string) string) CI {
	if getenv == nil {
		return None
	}
	if truthy(getenv("GITHUB_ACTIONS")) {
		return GitHubActions
	}
	if truthy(getenv("TF_BUILD")) {
		return AzureDevOps
	}
	if getenv("TEAMCITY_VERSION") != "" {
		return TeamCity
	}
	if truthy(getenv("CI")) {
		return Generic
	}
	return None
}

func truthy(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
