package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burggraaff/pcse/version"
)

func TestString(t *testing.T) {
	t.Parallel()

	got := version.String()

	assert.Contains(t, got, version.Version)
	assert.Contains(t, got, version.Revision)
	assert.Contains(t, got, version.GoVersion)
	assert.Contains(t, got, version.Platform)
}
