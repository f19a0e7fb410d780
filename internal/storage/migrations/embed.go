// Package migrations embeds the SQL migrations for the sqlite storage
// backend, applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
