package dto

import (
	"time"

	"github.com/plazoleta/usuarios-api/internal/domain/entity"
)

// FormatoFecha formato esperado para fechaNacimiento en los requests.
const FormatoFecha = "2006-01-02"

// CrearUsuarioRequest cuerpo para crear propietario o empleado. La validación
// de forma (presencia, fecha parseable) se agrega por campo en el boundary;
// las reglas de negocio (formato documento/correo/celular, mayoría de edad,
// unicidad) las aplica el caso de uso y cortan en el primer fallo.
type CrearUsuarioRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	Documento       string `json:"documento" validate:"required"`
	Celular         string `json:"celular" validate:"required"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Correo          string `json:"correo" validate:"required"`
	Clave           string `json:"clave" validate:"required"`
}

// ADatosCreacion convierte el request en el objeto de parámetros del dominio.
// restauranteID viene del token del propietario autenticado (nil para propietarios).
func (r CrearUsuarioRequest) ADatosCreacion(restauranteID *int) entity.DatosCreacionUsuario {
	var fecha *time.Time
	if f, err := time.Parse(FormatoFecha, r.FechaNacimiento); err == nil {
		fecha = &f
	}
	return entity.DatosCreacionUsuario{
		Nombre:          r.Nombre,
		Apellido:        r.Apellido,
		Documento:       r.Documento,
		Celular:         r.Celular,
		FechaNacimiento: fecha,
		Correo:          r.Correo,
		Clave:           r.Clave,
		RestauranteID:   restauranteID,
	}
}

// UsuarioResponse representación pública de un usuario (sin clave).
type UsuarioResponse struct {
	ID              int    `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Documento       string `json:"documento"`
	Celular         string `json:"celular"`
	FechaNacimiento string `json:"fechaNacimiento,omitempty"`
	Correo          string `json:"correo"`
	Rol             string `json:"rol"`
	RestauranteID   *int   `json:"restauranteId,omitempty"`
}

// AUsuarioResponse mapea la entidad a su representación pública.
func AUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}
	var fecha string
	if u.FechaNacimiento != nil {
		fecha = u.FechaNacimiento.Format(FormatoFecha)
	}
	return &UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		Apellido:        u.Apellido,
		Documento:       u.Documento,
		Celular:         u.Celular,
		FechaNacimiento: fecha,
		Correo:          u.Correo,
		Rol:             u.Rol.Nombre,
		RestauranteID:   u.RestauranteID,
	}
}
