package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	ResetDataDir()
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvHTTPPort, "")
	t.Setenv(EnvCheckInterval, "")

	cfg := NewConfig()
	assert.Equal(t, "127.0.0.1:19970", cfg.Server.HTTPPort, "默认仅监听回环地址")
	assert.Equal(t, 60*time.Second, cfg.Scheduler.CheckInterval)
	assert.Empty(t, cfg.Database.Path)
	assert.Equal(t, 1024, cfg.WebSocket.ReadBufferSize)
}

func TestNewConfig_EnvOverride(t *testing.T) {
	ResetDataDir()
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvHTTPPort, ":29970")
	t.Setenv(EnvCheckInterval, "5s")

	cfg := NewConfig()
	assert.Equal(t, ":29970", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.CheckInterval)
}

func TestNewConfig_InvalidIntervalIgnored(t *testing.T) {
	ResetDataDir()
	t.Setenv(EnvDataDir, t.TempDir())
	t.Setenv(EnvCheckInterval, "not-a-duration")

	cfg := NewConfig()
	assert.Equal(t, 60*time.Second, cfg.Scheduler.CheckInterval, "非法间隔应回退到默认值")
}

func TestNewConfig_FromFile(t *testing.T) {
	dataDir := t.TempDir()
	ResetDataDir()
	t.Setenv(EnvDataDir, dataDir)
	t.Setenv(EnvHTTPPort, "")
	t.Setenv(EnvCheckInterval, "")

	content := "server:\n  http_port: \":39970\"\nscheduler:\n  check_interval: 30s\n"
	err := os.WriteFile(filepath.Join(dataDir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)

	cfg := NewConfig()
	assert.Equal(t, ":39970", cfg.Server.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.CheckInterval)
}

func TestNewConfig_EnvBeatsFile(t *testing.T) {
	dataDir := t.TempDir()
	ResetDataDir()
	t.Setenv(EnvDataDir, dataDir)
	t.Setenv(EnvCheckInterval, "10s")

	content := "scheduler:\n  check_interval: 30s\n"
	err := os.WriteFile(filepath.Join(dataDir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)

	cfg := NewConfig()
	assert.Equal(t, 10*time.Second, cfg.Scheduler.CheckInterval, "环境变量应覆盖配置文件")
}
