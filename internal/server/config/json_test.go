package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_grpc":             "www.example:9000",
		"database_dsn":                   "assets.db",
		"secret_key":                     "my_secret_key",
		"access_token_validity_duration": "10m",
		"s3_bucket":                      "bucket",
		"s3_use_path_style":              false,
		"s3_presigned_parts":             true,
		"max_concurrency":                16,
		"tolerance_factor":               1.1,
		"part_retries":                   0,
		"retry_base_delay":               "100ms",
		"stale_after":                    "12h",
		"retention_window":               "72h",
		"default_quota_bytes":            0,
		"download_url_ttl":               "5m",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "assets.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 10*time.Minute, cfg.AccessTokenValidityDuration)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.False(t, cfg.S3UsePathStyle)
		assert.True(t, cfg.S3PresignedParts)
		assert.Equal(t, 16, cfg.MaxConcurrency)
		assert.InDelta(t, 1.1, cfg.ToleranceFactor, 1e-9)
		assert.Equal(t, 0, cfg.PartRetries, "explicit zero retries is honoured")
		assert.Equal(t, 100*time.Millisecond, cfg.RetryBaseDelay)
		assert.Equal(t, 12*time.Hour, cfg.StaleAfter)
		assert.Equal(t, 72*time.Hour, cfg.RetentionWindow)
		assert.Equal(t, int64(0), cfg.DefaultQuotaBytes)
		assert.Equal(t, 5*time.Minute, cfg.DownloadURLTTL)

		assert.Equal(t, "us-east-1", cfg.S3Region, "omitted keys keep defaults")
		assert.Equal(t, 10*time.Minute, cfg.SweepInterval)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrGRPC: "defaults:1234", MaxConcurrency: 3}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
		assert.Equal(t, 3, cfg.MaxConcurrency)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
