package auth

import (
	"context"

	"github.com/plazoleta/usuarios-api/internal/domain"
	"github.com/plazoleta/usuarios-api/internal/domain/repository"
	"github.com/plazoleta/usuarios-api/pkg/jwt"
	"github.com/plazoleta/usuarios-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret      string
	ExpSegundos int64
}

// UseCase caso de uso de autenticación: login con emisión de token.
type UseCase struct {
	repo   repository.UsuarioRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(repo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwtCfg: jwtCfg}
}

// Login verifica correo y clave, y genera el JWT. Correo inexistente y clave
// incorrecta producen el mismo ErrCredencialesInvalidas para no revelar cuál
// de los dos factores falló.
//
// restauranteID viene del request tal cual (un propietario puede acotar su
// sesión a uno de sus restaurantes); se embebe en el token sin verificarlo
// contra los restaurantes del propietario.
func (uc *UseCase) Login(ctx context.Context, correo, clave string, restauranteID *int) (string, error) {
	usuario, err := uc.repo.BuscarPorCorreo(ctx, correo)
	if err != nil {
		return "", err
	}
	if usuario == nil {
		return "", domain.ErrCredencialesInvalidas
	}
	if !password.Coincide(clave, usuario.Clave) {
		return "", domain.ErrCredencialesInvalidas
	}

	return jwt.Generar(uc.jwtCfg.Secret, usuario.ID, usuario.Correo, usuario.Rol.Nombre, restauranteID, uc.jwtCfg.ExpSegundos)
}
