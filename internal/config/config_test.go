package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, "careerpath", cfg.Store.Namespace)
	assert.Equal(t, 5, cfg.Progress.RecentLimit)
	assert.Equal(t, "1/2/2006", cfg.Progress.DateLayout)
	assert.Equal(t, time.Local, cfg.Progress.Location())
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 9000
store:
  backend: redis
  namespace: test
redis:
  address: redis:6379
progress:
  recent_limit: 3
  timezone: UTC
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("REDIS_ADDRESS", "override:6380")
	t.Setenv("SERVER_PORT", "9100")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "test", cfg.Store.Namespace)
	assert.Equal(t, "override:6380", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Progress.RecentLimit)
	assert.Equal(t, time.UTC, cfg.Progress.Location())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Store: StoreConfig{Backend: StoreBackendMemory}}, false},
		{"unknown backend", Config{Store: StoreConfig{Backend: "etcd"}}, true},
		{"sql sqlite", Config{Store: StoreConfig{Backend: StoreBackendSQL}, DB: DBConfig{Driver: "sqlite"}}, false},
		{"sql unknown driver", Config{Store: StoreConfig{Backend: StoreBackendSQL}, DB: DBConfig{Driver: "mysql"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, tt.cfg.Progress.RecentLimit)
		})
	}
}

func TestProgressConfig_LocationFallback(t *testing.T) {
	p := ProgressConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.Local, p.Location())
}
