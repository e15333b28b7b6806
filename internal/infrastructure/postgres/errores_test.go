package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazoleta/usuarios-api/internal/domain"
)

func TestTraducirIntegridad_Unicidad(t *testing.T) {
	casos := []struct {
		nombre   string
		mensaje  string
		esperado error
	}{
		{
			nombre:   "correo duplicado por detail",
			mensaje:  `duplicate key value violates unique constraint "usuario_email_key" Key (email)=(juan@example.com) already exists.`,
			esperado: domain.ErrCorreoYaRegistrado,
		},
		{
			nombre:   "documento duplicado por constraint",
			mensaje:  `duplicate key value violates unique constraint "usuario_document_number_key"`,
			esperado: domain.ErrDocumentoYaRegistrado,
		},
		{
			nombre:   "duplicado sin columna reconocible",
			mensaje:  `duplicate key value violates unique constraint "otra_tabla_key"`,
			esperado: domain.ErrRegistroDuplicado,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.ErrorIs(t, TraducirIntegridad(c.mensaje), c.esperado)
		})
	}
}

func TestTraducirIntegridad_Longitud(t *testing.T) {
	casos := []struct {
		nombre  string
		mensaje string
		campo   string
	}{
		// 22001 no nombra la columna; el tipo con su límite es la única pista.
		{nombre: "celular por varying(13)", mensaje: "value too long for type character varying(13)", campo: "celular"},
		{nombre: "celular por columna", mensaje: "value too long phone", campo: "celular"},
		{nombre: "documento", mensaje: "value too long document_number", campo: "documento"},
		{nombre: "correo", mensaje: "value too long email", campo: "correo"},
		{nombre: "nombre", mensaje: "value too long first_name", campo: "nombre"},
		{nombre: "apellido", mensaje: "value too long last_name", campo: "apellido"},
		{nombre: "clave", mensaje: "value too long password", campo: "clave"},
		{nombre: "columna desconocida", mensaje: "value too long for type character varying(50)", campo: "desconocido"},
		{nombre: "mensaje en español", mensaje: "el valor es demasiado largo para phone", campo: "celular"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := TraducirIntegridad(c.mensaje)

			var excedeLongitud *domain.ValorExcedeLongitudError
			require.ErrorAs(t, err, &excedeLongitud)
			assert.Equal(t, c.campo, excedeLongitud.Campo)
		})
	}
}

func TestTraducirIntegridad_NotNull(t *testing.T) {
	for _, mensaje := range []string{
		`null value in column "email" of relation "usuario" violates not-null constraint`,
		"not-null constraint violated",
	} {
		err := TraducirIntegridad(mensaje)

		var obligatorio *domain.CampoObligatorioError
		require.ErrorAs(t, err, &obligatorio, "mensaje %q", mensaje)
		assert.Equal(t, "Falta un campo obligatorio", obligatorio.Mensaje)
	}
}

func TestTraducirIntegridad_NuncaFalla(t *testing.T) {
	for _, mensaje := range []string{"", "algo completamente inesperado", "syntax error at or near"} {
		err := TraducirIntegridad(mensaje)

		var obligatorio *domain.CampoObligatorioError
		require.ErrorAs(t, err, &obligatorio, "mensaje %q", mensaje)
		assert.Equal(t, "Error al guardar los datos en la base de datos", obligatorio.Mensaje)
	}
}

// La unicidad se evalúa antes que la longitud: un mensaje que menciona ambas
// cosas se clasifica como duplicado.
func TestTraducirIntegridad_OrdenDeReglas(t *testing.T) {
	err := TraducirIntegridad("duplicate key value too long email")
	assert.ErrorIs(t, err, domain.ErrCorreoYaRegistrado)
}

func TestEsErrorIntegridad(t *testing.T) {
	casos := []struct {
		nombre   string
		err      error
		esperado bool
	}{
		{nombre: "violación de unicidad (23505)", err: &pgconn.PgError{Code: "23505"}, esperado: true},
		{nombre: "valor demasiado largo (22001)", err: &pgconn.PgError{Code: "22001"}, esperado: true},
		{nombre: "not-null (23502)", err: &pgconn.PgError{Code: "23502"}, esperado: true},
		{nombre: "error de sintaxis (42601)", err: &pgconn.PgError{Code: "42601"}, esperado: false},
		{nombre: "error envuelto", err: fmt.Errorf("insertar usuario: %w", &pgconn.PgError{Code: "23505"}), esperado: true},
		{nombre: "error común", err: errors.New("connection refused"), esperado: false},
		{nombre: "nil", err: nil, esperado: false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, esErrorIntegridad(c.err))
		})
	}
}

func TestMensajeCompleto_ConcatenaDetailYConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		Detail:         "Key (email)=(juan@example.com) already exists.",
		ConstraintName: "usuario_email_key",
	}

	mensaje := mensajeCompleto(fmt.Errorf("insertar usuario: %w", pgErr))

	assert.Contains(t, mensaje, "duplicate key")
	assert.Contains(t, mensaje, "email")
	assert.Contains(t, mensaje, "usuario_email_key")
}

func TestMensajeCompleto_ErrorComun(t *testing.T) {
	assert.Equal(t, "connection refused", mensajeCompleto(errors.New("connection refused")))
}
