package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazoleta/usuarios-api/internal/domain/entity"
	ifacehttp "github.com/plazoleta/usuarios-api/internal/interfaces/http"
	"github.com/plazoleta/usuarios-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func tokenDePrueba(t *testing.T, rol string, restauranteID *int) string {
	t.Helper()
	tok, err := jwt.Generar(testSecret, 42, "juan@example.com", rol, restauranteID, 3600)
	require.NoError(t, err)
	return tok
}

// appDePrueba arma una app mínima con el contexto de seguridad y una ruta
// protegida por el guard recibido, que responde con el principal del request.
func appDePrueba(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ifacehttp.AuthContext(testSecret))
	app.Get("/protegida", guard, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"principal": ifacehttp.PrincipalDe(c)})
	})
	return app
}

func hacerRequest(t *testing.T, app *fiber.App, authHeader string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func codigoDe(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Codigo string `json:"codigo"`
	}
	require.NoError(t, json.Unmarshal(cuerpo, &payload))
	return payload.Codigo
}

func TestAuthContext_SinHeader_SigueComoAnonimo(t *testing.T) {
	app := fiber.New()
	app.Use(ifacehttp.AuthContext(testSecret))
	app.Get("/publica", func(c *fiber.Ctx) error {
		assert.Nil(t, ifacehttp.ClaimsDe(c))
		assert.Equal(t, "", ifacehttp.PrincipalDe(c))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/publica", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Un token inválido no corta el request: la ruta decide si exige autenticación.
func TestAuthContext_TokenInvalido_SigueComoAnonimo(t *testing.T) {
	casos := map[string]string{
		"token basura":      "Bearer no-es-un-jwt",
		"esquema distinto":  "Basic dXN1YXJpbzpjbGF2ZQ==",
		"bearer sin token":  "Bearer ",
		"secret incorrecto": "Bearer " + tokenConOtroSecret(t),
	}

	for nombre, header := range casos {
		t.Run(nombre, func(t *testing.T) {
			app := fiber.New()
			app.Use(ifacehttp.AuthContext(testSecret))
			app.Get("/protegida", func(c *fiber.Ctx) error {
				assert.Nil(t, ifacehttp.ClaimsDe(c))
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
			req.Header.Set(fiber.HeaderAuthorization, header)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		})
	}
}

func tokenConOtroSecret(t *testing.T) string {
	t.Helper()
	tok, err := jwt.Generar("otro-secret-distinto", 1, "juan@example.com", entity.RolPropietario, nil, 3600)
	require.NoError(t, err)
	return tok
}

func TestAuthContext_TokenValido_InstalaClaims(t *testing.T) {
	restauranteID := 7
	app := fiber.New()
	app.Use(ifacehttp.AuthContext(testSecret))
	app.Get("/protegida", func(c *fiber.Ctx) error {
		claims := ifacehttp.ClaimsDe(c)
		require.NotNil(t, claims)
		assert.Equal(t, 42, claims.UsuarioID)
		assert.Equal(t, "juan@example.com", claims.Correo)
		assert.Equal(t, entity.RolPropietario, claims.Rol)
		require.NotNil(t, claims.RestauranteID)
		assert.Equal(t, 7, *claims.RestauranteID)
		assert.Equal(t, "juan@example.com", ifacehttp.PrincipalDe(c))
		assert.Equal(t, "ROLE_"+entity.RolPropietario, c.Locals(ifacehttp.LocalAutoridad))
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/protegida", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenDePrueba(t, entity.RolPropietario, &restauranteID))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAutenticado(t *testing.T) {
	app := appDePrueba(ifacehttp.RequireAutenticado())

	t.Run("anónimo recibe 401", func(t *testing.T) {
		resp := hacerRequest(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "NO_AUTENTICADO", codigoDe(t, resp))
	})

	t.Run("cualquier rol autenticado pasa", func(t *testing.T) {
		resp := hacerRequest(t, app, "Bearer "+tokenDePrueba(t, entity.RolEmpleado, nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRol(t *testing.T) {
	app := appDePrueba(ifacehttp.RequireRol(entity.RolAdministrador))

	t.Run("anónimo recibe 401", func(t *testing.T) {
		resp := hacerRequest(t, app, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "NO_AUTENTICADO", codigoDe(t, resp))
	})

	t.Run("token sin rol recibe 401", func(t *testing.T) {
		resp := hacerRequest(t, app, "Bearer "+tokenDePrueba(t, "", nil))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "ROL_AUSENTE", codigoDe(t, resp))
	})

	t.Run("rol insuficiente recibe 403", func(t *testing.T) {
		resp := hacerRequest(t, app, "Bearer "+tokenDePrueba(t, entity.RolEmpleado, nil))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "ACCESO_DENEGADO", codigoDe(t, resp))
	})

	t.Run("rol permitido pasa", func(t *testing.T) {
		resp := hacerRequest(t, app, "Bearer "+tokenDePrueba(t, entity.RolAdministrador, nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRequireRol_VariosRolesPermitidos(t *testing.T) {
	app := appDePrueba(ifacehttp.RequireRol(entity.RolAdministrador, entity.RolPropietario))

	resp := hacerRequest(t, app, "Bearer "+tokenDePrueba(t, entity.RolPropietario, nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
