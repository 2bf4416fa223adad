package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_IncludesAllFields(t *testing.T) {
	t.Parallel()

	s := String()
	assert.Contains(t, s, Version)
	assert.Contains(t, s, CommitHash)
	assert.Contains(t, s, BuildDate)
}
