package entity

import "time"

// Roles de cada pool de identidades.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// Pool selecciona la colección de cuentas sobre la que se busca.
type Pool int

const (
	PoolCustomer Pool = iota
	PoolEmployee
	// PoolEither busca primero en clientes y luego en empleados.
	PoolEither
)

// Role devuelve el rol que llevan las cuentas del pool.
func (p Pool) Role() string {
	if p == PoolEmployee {
		return RoleEmployee
	}
	return RoleCustomer
}

func (p Pool) String() string {
	switch p {
	case PoolCustomer:
		return "customer"
	case PoolEmployee:
		return "employee"
	default:
		return "either"
	}
}

// LookupField campos por los que se puede resolver una cuenta.
type LookupField string

const (
	FieldID    LookupField = "id"
	FieldEmail LookupField = "email"
)

// User representa una cuenta de cliente o de empleado; ambos pools comparten forma.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string // bcrypt
	Role         string // customer, employee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre para mostrar en las citas.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserPatch campos modificables de una cuenta. nil = sin cambio.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	IsActive  *bool
}

// IsEmpty indica que no se envió ningún campo.
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Phone == nil && p.IsActive == nil
}

// Apply copia sobre u los campos presentes.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
