package main

import (
	"context"
	"flag"
	"log"

	"github.com/plazoleta/usuarios-api/internal/infrastructure/postgres"
	"github.com/plazoleta/usuarios-api/pkg/config"
	"github.com/plazoleta/usuarios-api/pkg/password"
)

// Siembra los roles del sistema y un administrador inicial. Sin estas filas la
// creación de usuarios falla con ROL_NO_ENCONTRADO, así que este comando debe
// correr una vez después de las migraciones.
func main() {
	adminCorreo := flag.String("admin-correo", "admin@plazoleta.com", "correo del administrador inicial")
	adminClave := flag.String("admin-clave", "", "clave del administrador inicial (obligatoria)")
	flag.Parse()

	if *adminClave == "" {
		log.Fatal("se requiere -admin-clave")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatalf("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	for _, rol := range []string{"ADMINISTRADOR", "PROPIETARIO", "EMPLEADO"} {
		if _, err := pool.Exec(ctx,
			`INSERT INTO usuarios.rol (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, rol,
		); err != nil {
			log.Fatalf("sembrar rol %s: %v", rol, err)
		}
	}

	hash, err := password.Encriptar(*adminClave)
	if err != nil {
		log.Fatalf("encriptar clave: %v", err)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO usuarios.usuario
			(first_name, last_name, document_number, phone, birth_date, email, password, role_id)
		SELECT 'Admin', 'Plazoleta', '0', '+570000000000', '1990-01-01', $1, $2, r.id
		FROM usuarios.rol r
		WHERE r.name = 'ADMINISTRADOR'
		ON CONFLICT (email) DO NOTHING`,
		*adminCorreo, hash,
	)
	if err != nil {
		log.Fatalf("sembrar administrador: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("administrador %s ya existía", *adminCorreo)
	} else {
		log.Printf("administrador %s creado", *adminCorreo)
	}
	log.Println("seed completado")
}
