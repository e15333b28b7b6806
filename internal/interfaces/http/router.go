package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plazoleta/usuarios-api/internal/application/auth"
	"github.com/plazoleta/usuarios-api/internal/application/usuario"
	"github.com/plazoleta/usuarios-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuarioUC *usuario.UseCase
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
//
// AuthContext corre para todos los requests y nunca rechaza: instala el
// principal si el token es válido y deja pasar si no. El rechazo lo deciden
// los guards por ruta: crear propietario es de ADMINISTRADOR, crear empleado
// es de PROPIETARIO (el restaurante sale de su token), y la consulta por id
// solo pide un token válido.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(AuthContext(deps.JWTSecret))

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/propietario", RequireRol(entity.RolAdministrador), usuarioHandler.CrearPropietario)
	usuarios.Post("/empleado", RequireRol(entity.RolPropietario), usuarioHandler.CrearEmpleado)
	usuarios.Get("/:id", RequireAutenticado(), usuarioHandler.ObtenerPorID)
}
