// Package password implementa el hash de contraseñas con PBKDF2-SHA256.
// El formato codificado es compatible con los hashes históricos del sistema:
//
//	pbkdf2:sha256:<iteraciones>$<salt hex>$<hash hex>
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	method     = "pbkdf2:sha256"
	iterations = 600000
	saltLen    = 16
	keyLen     = 32
)

// Hash deriva la contraseña con un salt aleatorio y devuelve la cadena codificada.
// Nunca se almacena la contraseña en claro.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("password: generar salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLen, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", method, iterations, hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// Verify compara la contraseña contra un hash codificado.
// La comparación de la clave derivada es en tiempo constante.
func Verify(encoded, plaintext string) bool {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return false
	}
	prefix := parts[0]
	if !strings.HasPrefix(prefix, method+":") {
		return false
	}
	iters, err := strconv.Atoi(strings.TrimPrefix(prefix, method+":"))
	if err != nil || iters <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(plaintext), salt, iters, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
