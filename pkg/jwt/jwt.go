package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims son los datos de identidad que viajan dentro de un token ya verificado.
// Rol siempre es string (vacío si el token no lo trae); RestauranteID solo está
// presente cuando el propietario inició sesión indicando un restaurante.
type TokenClaims struct {
	UsuarioID     int
	Correo        string
	Rol           string
	RestauranteID *int
}

// claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El subject es el ID numérico del usuario serializado como string.
type claims struct {
	jwt.RegisteredClaims
	Correo        string `json:"email"`
	Rol           string `json:"role"`
	RestauranteID *int   `json:"restaurante_id,omitempty"`
}

// Generar firma un token HS256 con id, correo, rol y (opcional) restauranteID.
// La expiración es issued-at + expSegundos.
func Generar(secret string, id int, correo, rol string, restauranteID *int, expSegundos int64) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expSegundos) * time.Second)),
		},
		Correo:        correo,
		Rol:           rol,
		RestauranteID: restauranteID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(secret))
}

// Validar verifica firma y expiración y devuelve los claims del token.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta;
// el llamador debe tratar ese error como "no autenticado", nunca como caída.
func Validar(secret, tokenString string) (*TokenClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("subject no numérico: %w", err)
	}
	return &TokenClaims{
		UsuarioID:     id,
		Correo:        c.Correo,
		Rol:           c.Rol,
		RestauranteID: c.RestauranteID,
	}, nil
}
