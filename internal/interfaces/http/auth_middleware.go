package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/plazoleta/usuarios-api/internal/application/dto"
	"github.com/plazoleta/usuarios-api/pkg/jwt"
)

// Locals keys del contexto de request.
const (
	LocalClaims    = "tokenClaims"
	LocalPrincipal = "principal" // correo del usuario autenticado
	LocalAutoridad = "autoridad" // rol con prefijo ROLE_
)

const (
	bearerPrefix = "Bearer "
	rolePrefix   = "ROLE_"
)

// AuthContext establece el contexto de seguridad por request a partir del
// header Authorization. Nunca rechaza: sin token, o con token inválido o
// expirado, el request sigue como no autenticado y decide la autorización de
// cada ruta (RequireAutenticado / RequireRol). Con token válido instala los
// claims, el principal (correo) y la autoridad derivada del rol en c.Locals.
//
// No guarda estado entre requests: es seguro para requests concurrentes.
func AuthContext(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(authHeader, bearerPrefix) {
			token := strings.TrimSpace(authHeader[len(bearerPrefix):])
			if claims, err := jwt.Validar(jwtSecret, token); err == nil {
				c.Locals(LocalClaims, claims)
				c.Locals(LocalPrincipal, claims.Correo)
				c.Locals(LocalAutoridad, rolePrefix+claims.Rol)
			}
		}
		return c.Next()
	}
}

// ClaimsDe devuelve los claims del usuario autenticado, o nil si el request
// es anónimo. Debe usarse después de AuthContext.
func ClaimsDe(c *fiber.Ctx) *jwt.TokenClaims {
	claims, _ := c.Locals(LocalClaims).(*jwt.TokenClaims)
	return claims
}

// PrincipalDe devuelve el correo del usuario autenticado ("" si anónimo).
func PrincipalDe(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalPrincipal).(string)
	return s
}

// RequireAutenticado exige un token válido, sin importar el rol.
func RequireAutenticado() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ClaimsDe(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Codigo: "NO_AUTENTICADO", Mensaje: "se requiere un token válido",
			})
		}
		return c.Next()
	}
}

// RequireRol exige un token válido cuyo rol esté dentro de los permitidos.
// 401 si el request es anónimo o el token no trae rol; 403 si el rol no alcanza.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsDe(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Codigo: "NO_AUTENTICADO", Mensaje: "se requiere un token válido",
			})
		}
		if claims.Rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Codigo: "ROL_AUSENTE", Mensaje: "el token no incluye rol",
			})
		}
		for _, rol := range roles {
			if claims.Rol == rol {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Codigo: "ACCESO_DENEGADO", Mensaje: "el rol " + claims.Rol + " no puede ejecutar esta operación",
		})
	}
}
