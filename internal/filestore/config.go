// Package filestore implements the file content service. It owns the actual
// bytes behind catalog file entries, stored in an S3-compatible backend, and
// deletes them when the catalog forwards a removal.
package filestore

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/filecatalog/internal/flagx"
)

// Config holds runtime settings for the file content service.
type Config struct {
	EndpointAddrGRPC string
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with development defaults matching a local
// MinIO container. Override them in any real deployment.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50053"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "filecatalog"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config from defaults and command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 root user")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 root password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 root bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 root region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}
