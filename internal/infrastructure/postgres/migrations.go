package postgres

import "embed"

// MigrationsFS migraciones SQL embebidas; las consume cmd/migrate vía iofs.
//
//go:embed migrations
var MigrationsFS embed.FS
