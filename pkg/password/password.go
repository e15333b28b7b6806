package password

import "golang.org/x/crypto/bcrypt"

// Encriptar genera un hash bcrypt de la clave. Cada llamada produce un hash
// distinto (salt aleatorio por hash).
func Encriptar(clave string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Coincide verifica una clave en claro contra un hash bcrypt almacenado.
func Coincide(clave, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(clave)) == nil
}
