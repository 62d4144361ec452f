// Package migrations embeds the goose SQL migrations shared by the sqlite
// and postgres stores.
package migrations

import "embed"

// FS holds every migration file.
//
//go:embed *.sql
var FS embed.FS
