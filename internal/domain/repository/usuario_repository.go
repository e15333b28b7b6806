package repository

import (
	"context"

	"github.com/plazoleta/usuarios-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios.
//
// Guardar resuelve el rol por nombre (usuario.Rol.Nombre) dentro del adaptador y
// retorna domain.ErrRolNoEncontrado si el rol no está sembrado. Las violaciones
// de constraint (unicidad, longitud, not-null) llegan ya traducidas a errores de
// dominio; la unicidad de correo y documento la garantiza la base de datos, el
// pre-chequeo ExisteCorreo es solo una optimización.
//
// Las búsquedas devuelven (nil, nil) cuando el registro no existe: ausencia es
// un resultado normal, no un error.
type UsuarioRepository interface {
	Guardar(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error)
	ExisteCorreo(ctx context.Context, correo string) (bool, error)
	BuscarPorID(ctx context.Context, id int) (*entity.Usuario, error)
	BuscarPorCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
}
