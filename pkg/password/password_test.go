package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazoleta/usuarios-api/pkg/password"
)

func TestEncriptar_HashesDistintosPorSalt(t *testing.T) {
	h1, err := password.Encriptar("password123")
	require.NoError(t, err)
	h2, err := password.Encriptar("password123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "el salt aleatorio debe producir hashes distintos")
	assert.NotEqual(t, "password123", h1, "el hash nunca es la clave en claro")
}

func TestCoincide_ClaveCorrecta(t *testing.T) {
	h, err := password.Encriptar("password123")
	require.NoError(t, err)

	assert.True(t, password.Coincide("password123", h))
}

func TestCoincide_ClaveIncorrecta(t *testing.T) {
	h, err := password.Encriptar("password123")
	require.NoError(t, err)

	assert.False(t, password.Coincide("otraclave", h))
	assert.False(t, password.Coincide("", h))
}
