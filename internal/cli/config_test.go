package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingExplicitFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)

	assert.Error(t, err)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"gsh> \"\nbanner: false\n"), 0644))

	cfg, err := LoadConfig(path, true)

	require.NoError(t, err)
	assert.Equal(t, "gsh> ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.False(t, cfg.Plain)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0644))

	_, err := LoadConfig(path, true)

	assert.Error(t, err)
}
