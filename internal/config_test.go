package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point the config lookup at an empty directory so machine-local config
	// cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, 90, cfg.JPEGQuality)
	assert.False(t, cfg.UseExifTool)
}
