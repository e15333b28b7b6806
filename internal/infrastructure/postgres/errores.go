package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/plazoleta/usuarios-api/internal/domain"
)

// Traducción de errores de integridad de PostgreSQL a errores del dominio.
//
// La clasificación trabaja sobre el texto crudo del error (mensaje + detail +
// nombre del constraint) por palabras clave, como tabla ordenada de reglas.
// PostgreSQL no incluye el nombre de la columna en los errores 22001 ("value
// too long"), de ahí el match por varying(13) para el celular. Si pgconn
// expone suficiente metadata estructurada en el futuro, esta tabla puede
// reemplazarse por un clasificador sobre ConstraintName sin tocar el resto.

// reglaTraduccion par (predicado, traducción) evaluado en orden.
type reglaTraduccion struct {
	aplica   func(mensaje string) bool
	traducir func(mensaje string) error
}

var reglas = []reglaTraduccion{
	{aplica: esViolacionUnicidad, traducir: traducirUnicidad},
	{aplica: esValorDemasiadoLargo, traducir: traducirLongitud},
	{aplica: esViolacionNotNull, traducir: func(string) error { return domain.NuevoCampoObligatorio("") }},
}

// esErrorIntegridad indica si el error proviene de un constraint o límite de
// datos (clases 22 y 23 de PostgreSQL). Los demás errores (conexión, sintaxis)
// no se traducen: suben como fallo interno.
func esErrorIntegridad(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
}

// TraducirIntegridad clasifica el mensaje crudo de un error de integridad y
// devuelve siempre un error de dominio; nunca falla. Mensaje vacío o sin
// clasificar cae al caso genérico de guardado.
func TraducirIntegridad(mensaje string) error {
	if mensaje == "" {
		return domain.NuevoCampoObligatorio("Error al guardar los datos en la base de datos")
	}
	for _, r := range reglas {
		if r.aplica(mensaje) {
			return r.traducir(mensaje)
		}
	}
	return domain.NuevoCampoObligatorio("Error al guardar los datos en la base de datos")
}

// mensajeCompleto arma el texto a clasificar. Para *pgconn.PgError concatena
// mensaje, detail y constraint: el detail de un duplicado trae la columna
// (Key (email)=(...) already exists) que el mensaje solo no siempre nombra.
func mensajeCompleto(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.Join([]string{pgErr.Message, pgErr.Detail, pgErr.ConstraintName}, " ")
	}
	return err.Error()
}

func esViolacionUnicidad(mensaje string) bool {
	return strings.Contains(mensaje, "unique constraint") || strings.Contains(mensaje, "duplicate key")
}

func esValorDemasiadoLargo(mensaje string) bool {
	return strings.Contains(mensaje, "value too long") || strings.Contains(mensaje, "demasiado largo")
}

func esViolacionNotNull(mensaje string) bool {
	return strings.Contains(mensaje, "not-null") || strings.Contains(mensaje, "null value")
}

func traducirUnicidad(mensaje string) error {
	if strings.Contains(mensaje, "email") {
		return domain.ErrCorreoYaRegistrado
	}
	if strings.Contains(mensaje, "document") {
		return domain.ErrDocumentoYaRegistrado
	}
	return domain.ErrRegistroDuplicado
}

func traducirLongitud(mensaje string) error {
	switch {
	case strings.Contains(mensaje, "phone") || strings.Contains(mensaje, "varying(13)"):
		return domain.NuevoValorExcedeLongitud("El número de celular no puede tener más de 13 caracteres", "celular")
	case strings.Contains(mensaje, "document_number"):
		return domain.NuevoValorExcedeLongitud("El número de documento excede la longitud máxima permitida", "documento")
	case strings.Contains(mensaje, "email"):
		return domain.NuevoValorExcedeLongitud("El correo electrónico excede la longitud máxima permitida", "correo")
	case strings.Contains(mensaje, "first_name"):
		return domain.NuevoValorExcedeLongitud("El nombre excede la longitud máxima permitida", "nombre")
	case strings.Contains(mensaje, "last_name"):
		return domain.NuevoValorExcedeLongitud("El apellido excede la longitud máxima permitida", "apellido")
	case strings.Contains(mensaje, "password"):
		return domain.NuevoValorExcedeLongitud("La contraseña excede la longitud máxima permitida", "clave")
	default:
		return domain.NuevoValorExcedeLongitud("El valor excede la longitud máxima permitida", "desconocido")
	}
}
