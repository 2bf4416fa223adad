package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/xcfo/pkg/render"
)

func envOf(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want CI
	}{
		{"empty", nil, None},
		{"github", map[string]string{"GITHUB_ACTIONS": "true", "CI": "true"}, GitHubActions},
		{"azure", map[string]string{"TF_BUILD": "True"}, AzureDevOps},
		{"teamcity", map[string]string{"TEAMCITY_VERSION": "2024.03"}, TeamCity},
		{"generic", map[string]string{"CI": "1"}, Generic},
		{"ci false", map[string]string{"CI": "false"}, None},
		{"garbage", map[string]string{"GITHUB_ACTIONS": "yes please"}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Sniff(envOf(tt.env)))
		})
	}
}

func TestSniff_NilGetenv(t *testing.T) {
	t.Parallel()
	assert.Equal(t, None, Sniff(nil))
}

func TestCI_Renderer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.RendererGitHubActions, GitHubActions.Renderer())
	assert.Equal(t, render.RendererAzureDevOps, AzureDevOps.Renderer())
	assert.Equal(t, render.RendererTeamCity, TeamCity.Renderer())
	assert.Equal(t, render.RendererPlain, Generic.Renderer())
	assert.Equal(t, render.RendererPlain, None.Renderer())
	assert.Equal(t, "azure-devops", AzureDevOps.String())
}
