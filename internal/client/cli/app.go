package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/assetkeeper/internal/client/client"
	"github.com/dmitrijs2005/assetkeeper/internal/client/config"
)

// ErrUsage is returned when a command line cannot be parsed. The usage text
// has already been printed.
var ErrUsage = errors.New("usage")

type App struct {
	config *config.Config
	client client.Client
	out    io.Writer
	reader *bufio.Reader
	isTTY  bool
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewUploadsClientService(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		client: apiClient,
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		isTTY:  term.IsTerminal(int(os.Stdout.Fd())),
	}, nil
}

func (a *App) Close() error {
	return a.client.Close()
}

// Run executes a single command. args must not contain the global flags
// consumed by config.LoadConfig.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "put":
		return a.Put(ctx, rest)
	case "status":
		return a.Status(ctx, rest)
	case "abort":
		return a.Abort(ctx, rest)
	case "download":
		return a.Download(ctx, rest)
	case "token":
		return a.Token(ctx, rest)
	case "secret":
		return a.Secret(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		a.usage()
		return ErrUsage
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: uploadctl [-a addr] [-t token] [-s staging] [-i seconds] <command>

Commands:
  put [-key k] [-type ct] [-meta name=value] <file>   upload a file
  status <session>                                     show session progress
  abort <session>                                      abort a session
  download <session>                                   print a download URL
  token [-owner id] [-ttl 24h]                         mint an access token
  secret [-bytes 32]                                   print a new signing secret
`)
}

func (a *App) pollInterval() time.Duration {
	if a.config.PollInterval <= 0 {
		return time.Second
	}
	return a.config.PollInterval
}

// oneSession parses the single <session> argument shared by several commands.
func (a *App) oneSession(cmd string, args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintf(a.out, "Usage: %s <session>\n", cmd)
		return "", ErrUsage
	}
	return args[0], nil
}
