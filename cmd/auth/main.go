package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/filecatalog/internal/authsvc"
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

	cfg := authsvc.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	sessions := authsvc.NewSessionStore(cfg.MaxSessions, cfg.SessionTTL)
	go sessions.RunJanitor(ctx, cfg.JanitorInterval)

	srv, err := authsvc.NewGRPCServer(cfg.EndpointAddrGRPC, logger, sessions)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
