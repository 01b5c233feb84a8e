package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_NotExist(t *testing.T) {
	m, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("# comment\nA=1\nB=two\n"), 0o600))

	m, err := LoadDotEnv(root)
	require.NoError(t, err)
	assert.Equal(t, "1", m["A"])
	assert.Equal(t, "two", m["B"])
}

func TestEnvLookup_EnvOverridesDotEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("DEVGUIDE_TEST_K=fromdotenv\n"), 0o600))
	t.Setenv("DEVGUIDE_TEST_K", "fromenv")

	lookup, err := EnvLookup(root)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", lookup("DEVGUIDE_TEST_K"))
}

func TestEnvLookup_ReadsDotEnvOnce(t *testing.T) {
	root := t.TempDir()
	envPath := filepath.Join(root, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DEVGUIDE_TEST_A=a\nDEVGUIDE_TEST_B=b\n"), 0o600))

	lookup, err := EnvLookup(root)
	require.NoError(t, err)
	require.NoError(t, os.Remove(envPath))

	assert.Equal(t, "a", lookup("DEVGUIDE_TEST_A"))
	assert.Equal(t, "b", lookup("DEVGUIDE_TEST_B"))
	assert.Empty(t, lookup("DEVGUIDE_TEST_MISSING"))
}
