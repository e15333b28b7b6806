package entity

import "time"

// Usuario registro de identidad del sistema. Clave guarda siempre el hash bcrypt,
// nunca la clave en claro después de pasar por el caso de uso de creación.
// El registro no se muta después de creado: no hay flujos de update/delete.
type Usuario struct {
	ID              int
	Nombre          string
	Apellido        string
	Documento       string
	Celular         string
	FechaNacimiento *time.Time
	Correo          string
	Clave           string
	Rol             Rol
	RestauranteID   *int // restaurante al que queda asociado un EMPLEADO; nil para propietarios
	CreatedAt       time.Time
}

// DatosCreacionUsuario objeto de parámetros inmutable para crear un Usuario.
// No incluye el rol: el rol lo decide la operación (crear propietario, crear
// empleado), no el llamador. RestauranteID solo aplica a empleados.
type DatosCreacionUsuario struct {
	Nombre          string
	Apellido        string
	Documento       string
	Celular         string
	FechaNacimiento *time.Time
	Correo          string
	Clave           string
	RestauranteID   *int
}

// EsMayorDeEdad indica si la fecha de nacimiento cumple 18 años o más a la
// fecha de referencia. Una fecha nula cuenta como menor de edad. El día exacto
// del cumpleaños 18 se acepta.
func EsMayorDeEdad(fechaNacimiento *time.Time, hoy time.Time) bool {
	if fechaNacimiento == nil {
		return false
	}
	cumple18 := fechaNacimiento.AddDate(18, 0, 0)
	return !hoy.Before(cumple18)
}
