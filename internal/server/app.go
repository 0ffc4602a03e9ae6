// Package server wires the upload engine together: PostgreSQL registry, S3
// object store, quota gate, planners, orchestrator, orphan sweeper and the
// gRPC surface, and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/assetkeeper/internal/filex"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	"github.com/dmitrijs2005/assetkeeper/internal/server/config"
	"github.com/dmitrijs2005/assetkeeper/internal/server/orchestrator"
	"github.com/dmitrijs2005/assetkeeper/internal/server/planner"
	"github.com/dmitrijs2005/assetkeeper/internal/server/quota"
	"github.com/dmitrijs2005/assetkeeper/internal/server/registry"
	"github.com/dmitrijs2005/assetkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
	"github.com/dmitrijs2005/assetkeeper/internal/server/storage"
	"github.com/dmitrijs2005/assetkeeper/internal/server/sweeper"
	"github.com/dmitrijs2005/assetkeeper/internal/server/uploader"

	gs "github.com/dmitrijs2005/assetkeeper/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	uploadService *services.UploadService
	sweeper       *sweeper.Sweeper
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	stagingDir, err := filex.EnsureDir(c.StagingDir)
	if err != nil {
		return nil, fmt.Errorf("staging dir error: %w", err)
	}
	c.StagingDir = stagingDir

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager(c.DefaultQuotaBytes)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("repository manager error: %w", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, storage.Options{
		Bucket:         c.S3Bucket,
		Region:         c.S3Region,
		BaseEndpoint:   c.S3BaseEndpoint,
		AccessKey:      c.S3RootUser,
		SecretKey:      c.S3RootPassword,
		UsePathStyle:   c.S3UsePathStyle,
		PresignedParts: c.S3PresignedParts,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("object store error: %w", err)
	}

	reg := registry.New(db, rm, logger)
	orch := orchestrator.New(store, uploader.New(store, c.PartRetries, c.RetryBaseDelay, logger), reg, logger)
	gate := quota.NewGate(rm.Usage(db), c.ToleranceFactor, logger)
	pl := planner.New(c.SmallTierBytes, c.LargeTierBytes, c.MaxConcurrency)

	us := services.NewUploadService(gate, pl, orch, reg, store, c, logger)
	sw := sweeper.New(reg, store, orch, sweeper.Config{
		Interval:   c.SweepInterval,
		StaleAfter: c.StaleAfter,
		Retention:  c.RetentionWindow,
	}, logger)

	return &App{config: c, logger: logger, db: db, uploadService: us, sweeper: sw}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.uploadService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startSweeper(ctx context.Context) {
	if err := app.sweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(ctx, "sweeper stopped", "error", err)
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startSweeper(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
