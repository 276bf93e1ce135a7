package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	c, err := ParseConfig([]byte("security:\n  auth-token-key: secret\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.HttpPort)
	assert.Equal(t, "sqlite", c.Database.Type)
	assert.True(t, c.Database.AutoMigrate)
	assert.Equal(t, 10, c.App.DefaultPageSize)
	assert.Equal(t, 100, c.App.MaxPageSize)
	assert.True(t, c.User.RegisterIsEnable)
	assert.Equal(t, "X-Trace-ID", c.Tracer.Header)
	assert.Equal(t, 24*time.Hour, c.GetTokenExpiry())
	assert.Equal(t, 60*time.Second, c.GetContextTimeout())
}

func TestParseConfig_ExplicitFalseKept(t *testing.T) {
	c, err := ParseConfig([]byte(`
security:
  auth-token-key: secret
  token-expiry: 7d
user:
  register-is-enable: false
log:
  production: false
`))
	require.NoError(t, err)
	assert.False(t, c.User.RegisterIsEnable)
	assert.False(t, c.Log.Production)
	assert.Equal(t, 7*24*time.Hour, c.GetTokenExpiry())
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing key", "server:\n  http-port: \":9000\"\n", "auth-token-key"},
		{"bad expiry", "security:\n  auth-token-key: k\n  token-expiry: soon\n", "token-expiry"},
		{"bad database", "security:\n  auth-token-key: k\ndatabase:\n  type: oracle\n", "oracle"},
		{"page sizes", "security:\n  auth-token-key: k\napp:\n  default-page-size: 50\n  max-page-size: 20\n", "max-page-size"},
		{"run mode", "security:\n  auth-token-key: k\nserver:\n  run-mode: fast\n", "run-mode"},
		{"not yaml", "security: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("security:\n  auth-token-key: first\n"), 0644))

	c, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	c.Security.AuthTokenKey = "second"
	require.NoError(t, c.Save())

	again, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "second", again.Security.AuthTokenKey)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
