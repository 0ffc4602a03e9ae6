package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/assetkeeper/internal/client/cli"
	"github.com/dmitrijs2005/assetkeeper/internal/client/config"
	"github.com/dmitrijs2005/assetkeeper/internal/flagx"
)

func main() {
	os.Exit(run())
}

func run() int {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer app.Close()

	args := flagx.StripArgs(os.Args[1:], config.GlobalFlags)
	if err := app.Run(ctx, args); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			log.Printf("%v", err)
		}
		return 1
	}
	return 0
}
