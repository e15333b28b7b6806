package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plazoleta/usuarios-api/internal/domain"
	"github.com/plazoleta/usuarios-api/internal/domain/entity"
	"github.com/plazoleta/usuarios-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Guardar persiste un nuevo usuario. El rol se resuelve por nombre contra la
// tabla rol (el dominio solo lleva el nombre, nunca el id). Las violaciones de
// integridad (unicidad de correo/documento, longitudes, not-null) se traducen
// al error de dominio correspondiente.
func (r *UsuarioRepo) Guardar(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error) {
	var rolID int
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM usuarios.rol WHERE name = $1`, usuario.Rol.Nombre,
	).Scan(&rolID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("rol %s: %w", usuario.Rol.Nombre, domain.ErrRolNoEncontrado)
		}
		return nil, fmt.Errorf("buscar rol: %w", err)
	}

	query := `
		INSERT INTO usuarios.usuario
			(first_name, last_name, document_number, phone, birth_date, email, password, role_id, restaurant_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		RETURNING id, created_at`
	err = r.pool.QueryRow(ctx, query,
		usuario.Nombre, usuario.Apellido, usuario.Documento, usuario.Celular,
		usuario.FechaNacimiento, usuario.Correo, usuario.Clave, rolID, usuario.RestauranteID,
	).Scan(&usuario.ID, &usuario.CreatedAt)
	if err != nil {
		if esErrorIntegridad(err) {
			return nil, TraducirIntegridad(mensajeCompleto(err))
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}
	usuario.Rol.ID = rolID
	return usuario, nil
}

// ExisteCorreo indica si ya hay un usuario registrado con ese correo.
// Es un pre-chequeo: la garantía definitiva es el constraint único.
func (r *UsuarioRepo) ExisteCorreo(ctx context.Context, correo string) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM usuarios.usuario WHERE email = $1)`, correo,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("existe correo: %w", err)
	}
	return existe, nil
}

// BuscarPorID obtiene un usuario por ID, o (nil, nil) si no existe.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id int) (*entity.Usuario, error) {
	return r.buscar(ctx, `u.id = $1`, id)
}

// BuscarPorCorreo obtiene un usuario por correo, o (nil, nil) si no existe.
func (r *UsuarioRepo) BuscarPorCorreo(ctx context.Context, correo string) (*entity.Usuario, error) {
	return r.buscar(ctx, `u.email = $1`, correo)
}

func (r *UsuarioRepo) buscar(ctx context.Context, condicion string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.document_number, u.phone,
		       u.birth_date, u.email, u.password, r.id, r.name, u.restaurant_id, u.created_at
		FROM usuarios.usuario u
		JOIN usuarios.rol r ON r.id = u.role_id
		WHERE ` + condicion
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nombre, &u.Apellido, &u.Documento, &u.Celular,
		&u.FechaNacimiento, &u.Correo, &u.Clave, &u.Rol.ID, &u.Rol.Nombre,
		&u.RestauranteID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return &u, nil
}
