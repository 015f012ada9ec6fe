// Package migrations embeds the catalog schema migrations applied by
// golang-migrate at startup and by the seed command.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var files embed.FS

// FS exposes the migration files at its root.
var FS fs.FS = files
