package cmd_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/users/cmd"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	// runtime/debug.ReadBuildInfo()'s info.Settings called from a Go test is always empty,
	// so only the fallback of a binary without vcs information can be tested here.

	t.Run("show version", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.Version("users"))
		assert.NoError(t, err)
		assert.Contains(t, output, "users version: @latest", "should start with program name and `version:`")
		assert.Contains(t, output, " from ", "should contain a date indicator")
		assert.Contains(t, output, runtime.Version())
	})

	t.Run("no program name", func(t *testing.T) {
		t.Parallel()

		t.Run("command output", func(t *testing.T) {
			t.Parallel()

			output, err := cmd.TestExecute(t, cmd.Version("  "))
			assert.NoError(t, err)
			assert.Equal(t, "version:", output[:8], "should not start with leading space")
			assert.NotContains(t, output, "%!(EXTRA", "should not contain fmt placeholder count mismatch error")
		})

		t.Run("help output", func(t *testing.T) {
			t.Parallel()

			output, err := cmd.TestExecute(t, cmd.Version(""), "-h")
			assert.NoError(t, err)
			assert.Contains(t, output, "Print version")
			assert.NotContains(t, output, "[flags]")
		})
	})

	t.Run("don't allow arguments", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, cmd.Version(""), "sub-command")
		assert.Error(t, err)
	})
}

func TestReadBuildInfo(t *testing.T) {
	t.Parallel()

	info := cmd.ReadBuildInfo()
	assert.Equal(t, "@latest", info.Hash)
	assert.NotEmpty(t, info.Time)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
