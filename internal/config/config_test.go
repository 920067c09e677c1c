package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogiWatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: logiwatch
  version: 0.1.0
postgres:
  max_pool_size: 4
  url: postgres://u:p@localhost:5432/db
http:
  port: "8080"
grpc:
  port: "9090"
prometheus:
  port: "9000"
monitor:
  path: /var/log/jboss
  poll_interval: 250ms
alerts:
  restricted_urls: [/admin, /secret]
  dedup_window: 1h
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "logiwatch", cfg.App.Name)
	assert.Equal(t, 4, cfg.PG.MaxPoolSize)
	assert.Equal(t, "/var/log/jboss", cfg.Monitor.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.Monitor.PollInterval)
	assert.Equal(t, []string{"/admin", "/secret"}, cfg.Alerts.RestrictedURLs)
	assert.Equal(t, time.Hour, cfg.Alerts.DedupWindow)

	// defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".log", cfg.Monitor.Extension)
	assert.Equal(t, 100, cfg.Ingest.BatchSize)
	assert.Equal(t, "block", cfg.Ingest.OverflowPolicy)
	assert.Equal(t, 1000, cfg.Ingest.BufferCap)
	assert.Equal(t, 3, cfg.Alerts.LoginFailureThreshold)
	assert.False(t, cfg.Alerts.OffHours)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BUFFER_CAP", "250")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.Load(writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Ingest.BufferCap)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
