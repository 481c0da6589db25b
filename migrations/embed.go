package migrations

import "embed"

// Files holds the schema migrations applied by db.Open, ordered by their numeric prefix.
//
//go:embed *.sql
var Files embed.FS
