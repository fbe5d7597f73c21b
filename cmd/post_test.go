package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mallorn/internal"
)

func TestPostCommandRejectsBadDate(t *testing.T) {
	err := postCmd.RunE(postCmd, []string{"01/02/2024"})
	require.Error(t, err)
	assert.True(t, internal.IsInvalidInput(err))
}

func TestPostCommandRejectsTuesday(t *testing.T) {
	t.Chdir(t.TempDir())

	err := postCmd.RunE(postCmd, []string{"2024-01-02"})
	require.Error(t, err)
	assert.True(t, internal.IsInvalidInput(err))
}
