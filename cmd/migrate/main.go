package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/plazoleta/usuarios-api/internal/infrastructure/postgres"
	"github.com/plazoleta/usuarios-api/pkg/config"
)

func main() {
	op := flag.String("op", "up", "operación: up, down, version")
	steps := flag.Int("steps", 0, "pasos para up/down (0 = todos)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	src, err := iofs.New(postgres.MigrationsFS, "migrations")
	if err != nil {
		log.Fatalf("crear source de migraciones: %v", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "pgx5://"+trimScheme(cfg.DB.ConnectionString()))
	if err != nil {
		log.Fatalf("crear instancia de migrate: %v", err)
	}
	defer m.Close()

	switch *op {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-(*steps))
		} else {
			err = m.Down()
		}
	case "version":
		v, dirty, vErr := m.Version()
		if vErr != nil {
			log.Fatal(vErr)
		}
		fmt.Printf("versión: %d, dirty: %v\n", v, dirty)
		return
	default:
		log.Fatalf("operación desconocida: %s", *op)
	}

	if err != nil {
		if err == migrate.ErrNoChange {
			fmt.Println("sin cambios")
			return
		}
		log.Fatalf("migración: %v", err)
	}
	fmt.Println("migración aplicada")
}

// trimScheme deja el DSN sin esquema para anteponer el driver pgx5.
func trimScheme(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if len(dsn) > len(prefix) && dsn[:len(prefix)] == prefix {
			return dsn[len(prefix):]
		}
	}
	return dsn
}
