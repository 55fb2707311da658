// Package server initializes and runs the catalog application: it selects a
// document store backend from the DSN, dials the auth and file services, and
// starts the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dmitrijs2005/filecatalog/internal/grpcx"
	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/authpb"
	"github.com/dmitrijs2005/filecatalog/internal/proto/filepb"
	"github.com/dmitrijs2005/filecatalog/internal/server/blob"
	"github.com/dmitrijs2005/filecatalog/internal/server/catalog"
	"github.com/dmitrijs2005/filecatalog/internal/server/config"
	"github.com/dmitrijs2005/filecatalog/internal/server/identity"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
	"github.com/dmitrijs2005/filecatalog/internal/server/store/memory"
	"github.com/dmitrijs2005/filecatalog/internal/server/store/mongostore"
	"github.com/dmitrijs2005/filecatalog/internal/server/store/postgres"

	gs "github.com/dmitrijs2005/filecatalog/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	stores   store.Manager
	catalog  *catalog.Service
	identity *identity.Resolver
	conns    []*grpc.ClientConn
}

// newStoreManager picks the backend by DSN scheme. An empty DSN keeps the
// catalog in memory, which is only useful for development and tests.
func newStoreManager(ctx context.Context, cfg *config.Config) (store.Manager, error) {
	switch {
	case cfg.DatabaseDSN == "":
		return memory.NewManager(), nil
	case strings.HasPrefix(cfg.DatabaseDSN, "mongodb://"):
		return mongostore.NewManager(ctx, cfg.DatabaseDSN, cfg.DatabaseName)
	case strings.HasPrefix(cfg.DatabaseDSN, "postgres://"):
		return postgres.NewManager(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database DSN: %s", cfg.DatabaseDSN)
	}
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpcx.CallOption()),
	)
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	sm, err := newStoreManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	authConn, err := dial(cfg.AuthServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("auth service dial error: %w", err)
	}
	fileConn, err := dial(cfg.FileServiceAddr)
	if err != nil {
		return nil, fmt.Errorf("file service dial error: %w", err)
	}

	resolver := identity.NewResolver(authpb.NewAuthClient(authConn))
	forwarder := blob.NewForwarder(filepb.NewFileClient(fileConn), logger)
	cs := catalog.NewService(sm, resolver, forwarder, logger)

	return &App{
		config:   cfg,
		logger:   logger,
		stores:   sm,
		catalog:  cs,
		identity: resolver,
		conns:    []*grpc.ClientConn{authConn, fileConn},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.catalog, app.identity)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.stores.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "store close error", "error", err.Error())
	}
	for _, conn := range app.conns {
		_ = conn.Close()
	}
}
