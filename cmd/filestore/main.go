package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/filecatalog/internal/filestore"
	"github.com/dmitrijs2005/filecatalog/internal/logging"
)

func main() {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigs
		cancel()
	}()

	cfg := filestore.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	storage, err := filestore.NewStorage(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	srv, err := filestore.NewGRPCServer(cfg.EndpointAddrGRPC, logger, storage)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
