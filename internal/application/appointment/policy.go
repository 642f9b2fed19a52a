package appointment

import "github.com/jhoicas/Peluqueria-api/internal/domain/entity"

// Textos de reemplazo usados al listar citas con referencias rotas.
const (
	UserNotFoundLabel     = "Usuario no encontrado"
	EmployeeNotFoundLabel = "Empleado no encontrado"
)

// MissingPolicy qué nombre usar cuando la cuenta referenciada no se puede resolver.
type MissingPolicy int

const (
	// EmptyOnMissing deja el nombre vacío (al crear la cita).
	EmptyOnMissing MissingPolicy = iota
	// PlaceholderOnMissing usa UserNotFoundLabel / EmployeeNotFoundLabel (al listar).
	PlaceholderOnMissing
)

// Fallback nombre de reemplazo para una cuenta del pool indicado.
func (p MissingPolicy) Fallback(pool entity.Pool) string {
	if p == EmptyOnMissing {
		return ""
	}
	if pool == entity.PoolEmployee {
		return EmployeeNotFoundLabel
	}
	return UserNotFoundLabel
}

func (p MissingPolicy) String() string {
	if p == PlaceholderOnMissing {
		return "placeholder_on_missing"
	}
	return "empty_on_missing"
}
