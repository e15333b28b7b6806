package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/plazoleta/usuarios-api/internal/application/dto"
	"github.com/plazoleta/usuarios-api/internal/domain"
)

// responderErrorDominio mapea cada error de dominio a un status y código
// estables. Cualquier error no clasificado es interno: 500 con mensaje
// genérico, sin filtrar detalle al cliente.
func responderErrorDominio(c *fiber.Ctx, err error) error {
	var campoInvalido *domain.CampoInvalidoError
	var excedeLongitud *domain.ValorExcedeLongitudError
	var campoObligatorio *domain.CampoObligatorioError

	switch {
	case errors.As(err, &campoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "CAMPO_INVALIDO", Mensaje: campoInvalido.Mensaje, Campo: campoInvalido.Campo,
		})
	case errors.Is(err, domain.ErrEmailInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "EMAIL_INVALIDO", Mensaje: domain.ErrEmailInvalido.Error(),
		})
	case errors.Is(err, domain.ErrUsuarioMenorDeEdad):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "EDAD_INSUFICIENTE", Mensaje: domain.ErrUsuarioMenorDeEdad.Error(),
		})
	case errors.Is(err, domain.ErrCorreoYaRegistrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Codigo: "CORREO_YA_REGISTRADO", Mensaje: domain.ErrCorreoYaRegistrado.Error(), Campo: "correo",
		})
	case errors.Is(err, domain.ErrDocumentoYaRegistrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Codigo: "DOCUMENTO_YA_REGISTRADO", Mensaje: domain.ErrDocumentoYaRegistrado.Error(), Campo: "documento",
		})
	case errors.Is(err, domain.ErrRegistroDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Codigo: "REGISTRO_DUPLICADO", Mensaje: domain.ErrRegistroDuplicado.Error(),
		})
	case errors.As(err, &excedeLongitud):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "ERROR_BASE_DATOS", Mensaje: excedeLongitud.Mensaje, Campo: excedeLongitud.Campo,
		})
	case errors.As(err, &campoObligatorio):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "ERROR_BASE_DATOS", Mensaje: campoObligatorio.Mensaje, Campo: "desconocido",
		})
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Codigo: "CREDENCIALES_INVALIDAS", Mensaje: "Credenciales inválidas",
		})
	case errors.Is(err, domain.ErrRolNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Codigo: "ROL_NO_ENCONTRADO", Mensaje: domain.ErrRolNoEncontrado.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Codigo: "ERROR_INTERNO", Mensaje: "Ha ocurrido un error inesperado. Por favor, contacta al administrador",
		})
	}
}
