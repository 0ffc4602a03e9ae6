package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
)

var allowedFlags = []string{
	"-a", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-l",
	"-max-concurrency", "-tolerance-factor", "-part-retries", "-retry-base-delay",
	"-stale-after", "-sweep-interval", "-retention", "-presigned-parts", "-staging-dir",
}

// parseFlags populates Config fields from command-line flags.
//
// Short flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   log level
//
// Upload tunables use long names (-max-concurrency, -tolerance-factor,
// -part-retries, -retry-base-delay, -stale-after, -sweep-interval, -retention,
// -presigned-parts, -staging-dir).
//
// os.Args is first filtered with flagx.FilterArgs so flags owned by other
// components do not fail parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], allowedFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&config.S3PresignedParts, "presigned-parts", config.S3PresignedParts, "upload parts through presigned URLs")

	fs.IntVar(&config.MaxConcurrency, "max-concurrency", config.MaxConcurrency, "worker cap for mid-sized assets")
	fs.Float64Var(&config.ToleranceFactor, "tolerance-factor", config.ToleranceFactor, "quota tolerance multiplier")
	fs.IntVar(&config.PartRetries, "part-retries", config.PartRetries, "retries per part after the first attempt")
	fs.DurationVar(&config.RetryBaseDelay, "retry-base-delay", config.RetryBaseDelay, "part retry backoff base")
	fs.DurationVar(&config.StaleAfter, "stale-after", config.StaleAfter, "age after which unfinished sessions are orphaned")
	fs.DurationVar(&config.SweepInterval, "sweep-interval", config.SweepInterval, "orphan sweeper period")
	fs.DurationVar(&config.RetentionWindow, "retention", config.RetentionWindow, "how long terminal sessions are kept")
	fs.StringVar(&config.StagingDir, "staging-dir", config.StagingDir, "directory holding staged uploads")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
