package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "short and long flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "5",
				"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint", "-l", "debug",
				"-max-concurrency", "12", "-tolerance-factor=1.25", "-part-retries", "5", "-retry-base-delay", "250ms",
				"-stale-after", "6h", "-sweep-interval", "1m", "-retention", "48h", "-presigned-parts=true", "-staging-dir", "/var/stage",
				"-unknown", "ignored",
			},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 5 * time.Minute,
				LogLevel:                    "debug",
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "us-west-1",
				S3BaseEndpoint:              "http://endpoint",
				S3PresignedParts:            true,
				MaxConcurrency:              12,
				ToleranceFactor:             1.25,
				PartRetries:                 5,
				RetryBaseDelay:              250 * time.Millisecond,
				StaleAfter:                  6 * time.Hour,
				SweepInterval:               time.Minute,
				RetentionWindow:             48 * time.Hour,
				StagingDir:                  "/var/stage",
			},
		},
		{
			name:        "bad duration panics",
			args:        []string{"cmd", "-stale-after", "forever"},
			expectPanic: true,
		},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
