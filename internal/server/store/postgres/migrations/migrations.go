// Package migrations embeds the goose migration files for the PostgreSQL
// store backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
