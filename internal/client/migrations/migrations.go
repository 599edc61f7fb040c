// Package migrations embeds the client-side SQLite migrations applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
