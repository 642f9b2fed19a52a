// Package password hashea y verifica contraseñas con bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
)

// MaxBytes límite de bcrypt; se cuenta en bytes, no en caracteres.
const MaxBytes = 72

// Hash genera un hash bcrypt con sal aleatoria por llamada.
// Una contraseña de más de MaxBytes bytes es un error de validación.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.Validation("password debe tener como máximo 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify informa si plain corresponde al hash. Un hash malformado devuelve
// domain.ErrInvalidHashFormat; una contraseña distinta o demasiado larga devuelve (false, nil).
func Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, domain.ErrInvalidHashFormat
	}
}
