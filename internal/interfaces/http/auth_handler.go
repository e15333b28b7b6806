package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plazoleta/usuarios-api/internal/application/auth"
	"github.com/plazoleta/usuarios-api/internal/application/dto"
	"github.com/plazoleta/usuarios-api/pkg/validation"
)

// AuthHandler maneja el inicio de sesión.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "correo, clave, restauranteId opcional"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "CUERPO_INVALIDO", Mensaje: "cuerpo inválido",
		})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo:  "VALIDACION_FALLIDA",
			Mensaje: "Los datos enviados no cumplen con las validaciones requeridas",
			Errores: validation.Detalles(err),
		})
	}
	token, err := h.uc.Login(c.Context(), in.Correo, in.Clave, in.RestauranteID)
	if err != nil {
		return responderErrorDominio(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token})
}
