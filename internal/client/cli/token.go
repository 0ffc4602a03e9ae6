package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/assetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/assetkeeper/internal/shared"
)

// SecretEnvVar holds the server signing secret for the token command.
const SecretEnvVar = "ASSETKEEPER_SECRET_KEY"

// Token mints an access token for an owner with the server's signing secret.
// It never talks to the server.
func (a *App) Token(_ context.Context, args []string) error {

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(a.out)
	owner := fs.String("owner", "", "owner id")
	ttl := fs.Duration("ttl", 24*time.Hour, "token validity")

	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *ttl <= 0 {
		fmt.Fprintln(a.out, "-ttl must be positive")
		return ErrUsage
	}

	if *owner == "" {
		v, err := GetSimpleText(a.reader, "Owner id", a.out)
		if err != nil {
			return err
		}
		*owner = v
	}
	if *owner == "" {
		return fmt.Errorf("owner id is required")
	}

	secret := []byte(os.Getenv(SecretEnvVar))
	if len(secret) == 0 {
		s, err := GetSecret(a.out)
		if err != nil {
			return err
		}
		secret = s
	}
	defer shared.WipeByteArray(secret)

	tok, err := auth.GenerateToken(*owner, secret, *ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tok)
	return nil
}

// Secret prints a fresh random signing secret for the server.
func (a *App) Secret(_ context.Context, args []string) error {

	fs := flag.NewFlagSet("secret", flag.ContinueOnError)
	fs.SetOutput(a.out)
	size := fs.Int("bytes", shared.MinSecretBytes, "random bytes before hex encoding")

	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	s, err := shared.NewSecret(*size)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, s)
	return nil
}
