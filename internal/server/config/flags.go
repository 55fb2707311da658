package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/filecatalog/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   document store DSN (mongodb:// or postgres://; empty = memory)
//	-n string   database name (Mongo backend)
//	-s string   auth service address
//	-f string   file service address
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-s", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabaseName, "n", config.DatabaseName, "database name")
	fs.StringVar(&config.AuthServiceAddr, "s", config.AuthServiceAddr, "auth service address")
	fs.StringVar(&config.FileServiceAddr, "f", config.FileServiceAddr, "file service address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
