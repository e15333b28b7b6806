package domain

import "errors"

// Errores de dominio (sin dependencias externas). El handler HTTP los mapea a
// status/código estable; por eso cada fallo esperado es distinguible por tipo.
var (
	ErrEmailInvalido         = errors.New("el correo electrónico no tiene un formato válido")
	ErrUsuarioMenorDeEdad    = errors.New("el usuario debe ser mayor de edad")
	ErrCorreoYaRegistrado    = errors.New("ya existe un usuario con este correo electrónico")
	ErrDocumentoYaRegistrado = errors.New("ya existe un usuario con este número de documento")
	ErrRegistroDuplicado     = errors.New("ya existe un registro con estos datos")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrRolNoEncontrado       = errors.New("rol no encontrado en la base de datos")
)

// CampoInvalidoError campo que no cumple una regla sintáctica o de negocio.
type CampoInvalidoError struct {
	Campo   string
	Mensaje string
}

func (e *CampoInvalidoError) Error() string { return e.Mensaje }

// NuevoCampoInvalido construye el error con el campo implicado.
func NuevoCampoInvalido(campo, mensaje string) *CampoInvalidoError {
	return &CampoInvalidoError{Campo: campo, Mensaje: mensaje}
}

// ValorExcedeLongitudError valor rechazado por el límite de longitud de una columna.
type ValorExcedeLongitudError struct {
	Campo   string
	Mensaje string
}

func (e *ValorExcedeLongitudError) Error() string { return e.Mensaje }

// NuevoValorExcedeLongitud construye el error; campo vacío se reporta como "desconocido".
func NuevoValorExcedeLongitud(mensaje, campo string) *ValorExcedeLongitudError {
	if campo == "" {
		campo = "desconocido"
	}
	return &ValorExcedeLongitudError{Campo: campo, Mensaje: mensaje}
}

// CampoObligatorioError violación not-null o fallo de almacenamiento sin clasificar.
type CampoObligatorioError struct {
	Mensaje string
}

func (e *CampoObligatorioError) Error() string { return e.Mensaje }

// NuevoCampoObligatorio construye el error con mensaje por defecto si viene vacío.
func NuevoCampoObligatorio(mensaje string) *CampoObligatorioError {
	if mensaje == "" {
		mensaje = "Falta un campo obligatorio"
	}
	return &CampoObligatorioError{Mensaje: mensaje}
}
