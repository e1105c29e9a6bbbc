// Package migrations embeds the ordered goose migrations for the local store.
// Steps are strictly additive: a version bump creates missing tables and
// indexes, never drops or rewrites existing data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
