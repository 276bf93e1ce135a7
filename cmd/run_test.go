package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	internalApp "github.com/smalllvcommm/Software-System-Analysis-and-Design/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaultConfig(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "config", "config.yaml"))
	require.NoError(t, err)
	configDefault = string(data)
}

func TestResolveConfig_WritesDefaultWithRandomKey(t *testing.T) {
	loadDefaultConfig(t)
	t.Chdir(t.TempDir())

	path, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, "config/config.yaml", path)

	cfg, _, err := internalApp.LoadConfig(path)
	require.NoError(t, err)
	assert.NotEqual(t, authTokenPlaceholder, cfg.Security.AuthTokenKey)
	assert.Len(t, cfg.Security.AuthTokenKey, 32)

	// second run keeps the generated key
	again, err := resolveConfig("")
	require.NoError(t, err)
	cfg2, _, err := internalApp.LoadConfig(again)
	require.NoError(t, err)
	assert.Equal(t, cfg.Security.AuthTokenKey, cfg2.Security.AuthTokenKey)
}

func TestResolveConfig_Candidates(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("security:\n  auth-token-key: k\n"), 0644))

	path, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", path)

	path, err = resolveConfig("custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", path)
}

func TestNewServer_StartAndStop(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
server:
  http-port: "127.0.0.1:0"
  private-http-listen: ""
log:
  file: ""
  production: false
database:
  path: `+filepath.Join(dir, "pim.sqlite3")+`
security:
  auth-token-key: server-test-key
`), 0644))

	s, err := NewServer(&runFlags{config: cfgPath, runMode: "test"})
	require.NoError(t, err)
	require.NotNil(t, s.GetApp())
	assert.NoError(t, s.Stop())
}

func TestNewServer_InvalidRunMode(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("security:\n  auth-token-key: k\n"), 0644))

	_, err := NewServer(&runFlags{config: cfgPath, runMode: "turbo"})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), internalApp.Version)
}
