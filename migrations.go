// Package qrscanner holds assets shared by the binaries of the module.
package qrscanner

import (
	"embed"
	"io/fs"
)

// Migrations are the goose SQL migrations of the scan history database.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsFS returns Migrations rooted at the migrations directory, the
// layout goose providers expect.
func MigrationsFS() fs.FS {
	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}

	return sub
}
