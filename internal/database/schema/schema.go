// Package schema embeds the goose migrations for the shop database.
package schema

import "embed"

// Migrations holds the SQL migration files, applied in filename order
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads
const MigrationsDir = "migrations"
