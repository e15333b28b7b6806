package dto

// LoginRequest credenciales de inicio de sesión. RestauranteID es opcional:
// lo envía un propietario para acotar la sesión a uno de sus restaurantes.
type LoginRequest struct {
	Correo        string `json:"correo" validate:"required"`
	Clave         string `json:"clave" validate:"required"`
	RestauranteID *int   `json:"restauranteId"`
}

// LoginResponse token firmado para el header Authorization.
type LoginResponse struct {
	Token string `json:"token"`
}
