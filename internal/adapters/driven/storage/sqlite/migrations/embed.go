// Package migrations holds the versioned schema of the history database.
package migrations

import "embed"

// FS holds the NNN_name.up.sql and NNN_name.down.sql pairs.
//
//go:embed *.sql
var FS embed.FS
