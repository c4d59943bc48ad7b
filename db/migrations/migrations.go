package migrations

import "embed"

// FS embeds the SQL migrations in this directory for golang-migrate's iofs
// source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves to.
const Version = 1
