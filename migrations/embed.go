// Package migrations embeds the SQL schema migrations and seed data.
package migrations

import "embed"

// Postgres holds the golang-migrate migrations for PostgreSQL, under the "postgres" directory.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// PostgresDir is the directory inside Postgres that holds the migration files.
const PostgresDir = "postgres"

// SeedClients inserts the reference set of twelve clients.
//
//go:embed seed/clients.sql
var SeedClients string
