package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/plazoleta/usuarios-api/internal/application/dto"
	"github.com/plazoleta/usuarios-api/internal/application/usuario"
	"github.com/plazoleta/usuarios-api/pkg/validation"
)

// UsuarioHandler maneja creación y consulta de usuarios.
type UsuarioHandler struct {
	uc *usuario.UseCase
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(uc *usuario.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// CrearPropietario godoc
// @Summary      Crear un propietario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "datos del propietario"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/propietario [post]
func (h *UsuarioHandler) CrearPropietario(c *fiber.Ctx) error {
	in, err := h.parsearCreacion(c)
	if err != nil {
		return nil // respuesta ya escrita
	}
	// Propietarios no llevan restaurante asociado.
	if err := h.uc.CrearPropietario(c.Context(), in.ADatosCreacion(nil)); err != nil {
		return responderErrorDominio(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// CrearEmpleado godoc
// @Summary      Crear un empleado del restaurante del propietario autenticado
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "datos del empleado"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/empleado [post]
func (h *UsuarioHandler) CrearEmpleado(c *fiber.Ctx) error {
	in, err := h.parsearCreacion(c)
	if err != nil {
		return nil
	}
	// El restaurante sale del token del propietario, nunca del body.
	var restauranteID *int
	if claims := ClaimsDe(c); claims != nil {
		restauranteID = claims.RestauranteID
	}
	if err := h.uc.CrearEmpleado(c.Context(), in.ADatosCreacion(restauranteID)); err != nil {
		return responderErrorDominio(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// ObtenerPorID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path      int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/{id} [get]
func (h *UsuarioHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "CAMPO_INVALIDO", Mensaje: "el id debe ser numérico", Campo: "id",
		})
	}
	u, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return responderErrorDominio(c, err)
	}
	if u == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Codigo: "USUARIO_NO_ENCONTRADO", Mensaje: "usuario no encontrado",
		})
	}
	return c.JSON(dto.AUsuarioResponse(u))
}

// parsearCreacion parsea y valida el body de creación. Si falla, escribe la
// respuesta 400 (agregando los mensajes por campo) y devuelve error no nulo.
func (h *UsuarioHandler) parsearCreacion(c *fiber.Ctx) (dto.CrearUsuarioRequest, error) {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo: "CUERPO_INVALIDO", Mensaje: "cuerpo inválido",
		})
		return in, err
	}
	if err := validation.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Codigo:  "VALIDACION_FALLIDA",
			Mensaje: "Los datos enviados no cumplen con las validaciones requeridas",
			Errores: validation.Detalles(err),
		})
		return in, err
	}
	return in, nil
}
