package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores específicos envuelven una categoría; la capa HTTP los traduce con errors.Is.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrValidation      = errors.New("entrada inválida")
	ErrUnauthenticated = errors.New("no autenticado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrInactive        = errors.New("usuario inactivo")

	ErrInvalidToken      = errors.New("token inválido")
	ErrInvalidHashFormat = errors.New("formato de hash inválido")
)

var (
	ErrUserNotFound                   = wrap(ErrNotFound, "usuario no encontrado")
	ErrServiceNotFound                = wrap(ErrNotFound, "servicio no encontrado")
	ErrAppointmentNotFound            = wrap(ErrNotFound, "cita no encontrada")
	ErrAppointmentNotFoundAfterUpdate = wrap(ErrNotFound, "cita no encontrada después de actualizar")

	ErrEmailAlreadyExists = wrap(ErrConflict, "el email ya está registrado")
	ErrServiceNameExists  = wrap(ErrConflict, "ya existe un servicio con ese nombre")

	ErrEmptyPatch = wrap(ErrValidation, "no se enviaron datos para actualizar")

	ErrBadCredentialsEmail    = wrap(ErrUnauthenticated, "Correo incorrecto.")
	ErrBadCredentialsPassword = wrap(ErrUnauthenticated, "Contraseña incorrecta.")
)

// kindError asocia un mensaje propio a una categoría de la taxonomía.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func wrap(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Validation construye un error de validación con un mensaje legible para el cliente.
func Validation(msg string) error {
	return wrap(ErrValidation, msg)
}
